package models

// Course is a course in the catalogue
type Course struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"python"`
}
