// Package services holds the business rules that sit between the HTTP
// controllers and the repositories.
//
// Services defined in this package:
//   - CourseService: validation and error mapping for the course catalogue
package services
