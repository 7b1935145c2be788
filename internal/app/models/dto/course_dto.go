package dto

import "github.com/yigit/coursehub/internal/app/models"

// CreateCourseRequest is the body of POST /courses/
type CreateCourseRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=255" example:"python"`
}

// UpdateCourseRequest is the body of PUT /courses/{id}/
type UpdateCourseRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=255" example:"python"`
}

// PatchCourseRequest is the body of PATCH /courses/{id}/. Absent fields are left unchanged.
type PatchCourseRequest struct {
	Name *string `json:"name" form:"name" binding:"omitempty,max=255" example:"python"`
}

// CourseResponse is the wire representation of a course
type CourseResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"python"`
}

// NewCourseResponse converts a model to its wire form
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{ID: course.ID, Name: course.Name}
}

// NewCourseListResponse converts models to their wire form, never returning nil
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
