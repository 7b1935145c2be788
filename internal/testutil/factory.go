// Package testutil provides object factories and an in-process HTTP client
// for exercising the API in tests.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// CourseOption overrides a field of a generated course
type CourseOption func(*models.Course)

// WithName sets the course name instead of a generated one
func WithName(name string) CourseOption {
	return func(c *models.Course) {
		c.Name = name
	}
}

// CourseFactory persists courses with generated defaults
type CourseFactory struct {
	store repositories.CourseStore
}

// NewCourseFactory creates a factory writing to store
func NewCourseFactory(store repositories.CourseStore) *CourseFactory {
	return &CourseFactory{store: store}
}

// Make persists one course and returns it with its assigned id
func (f *CourseFactory) Make(t testing.TB, opts ...CourseOption) *models.Course {
	t.Helper()

	course := &models.Course{Name: "course-" + uuid.NewString()}
	for _, opt := range opts {
		opt(course)
	}

	id, err := f.store.Create(context.Background(), course)
	if err != nil {
		t.Fatalf("failed to create test course: %v", err)
	}
	course.ID = id
	return course
}

// MakeMany persists quantity courses in creation order
func (f *CourseFactory) MakeMany(t testing.TB, quantity int, opts ...CourseOption) []*models.Course {
	t.Helper()

	courses := make([]*models.Course, 0, quantity)
	for i := 0; i < quantity; i++ {
		courses = append(courses, f.Make(t, opts...))
	}
	return courses
}

// CountCourses returns the number of stored courses
func CountCourses(t testing.TB, store repositories.CourseStore) int64 {
	t.Helper()

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count courses: %v", err)
	}
	return count
}
