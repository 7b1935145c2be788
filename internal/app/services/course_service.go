package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// MaxCourseNameLength is the longest accepted course name, in characters
const MaxCourseNameLength = 255

// CoursePatch carries the fields of a partial update. Nil fields are left unchanged.
type CoursePatch struct {
	Name *string
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	PatchCourse(ctx context.Context, id int64, patch CoursePatch) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	CountCourses(ctx context.Context) (int64, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseStore) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// normalizeName trims the name and checks it is neither blank nor too long
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError("name", "name cannot be blank")
	}
	if utf8.RuneCountInString(name) > MaxCourseNameLength {
		return "", apperrors.NewValidationError("name",
			fmt.Sprintf("name must be at most %d characters", MaxCourseNameLength))
	}
	return name, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", "invalid course ID")
	}
	return nil
}

// mapRepoError converts repository errors into application errors
func mapRepoError(err error, action string) error {
	if errors.Is(err, repositories.ErrCourseNotFound) {
		return apperrors.ErrCourseNotFound
	}
	if errors.Is(err, repositories.ErrInvalidValue) {
		return apperrors.NewValidationError("name", "name was rejected by the database")
	}
	return fmt.Errorf("error %s course: %w", action, err)
}

// CreateCourse creates a new course and returns it with its assigned id
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	name, err := normalizeName(course.Name)
	if err != nil {
		return nil, err
	}

	created := &models.Course{Name: name}
	id, err := s.courseRepo.Create(ctx, created)
	if err != nil {
		return nil, mapRepoError(err, "creating")
	}
	created.ID = id
	return created, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "retrieving")
	}
	return course, nil
}

// ListCourses returns the courses matching filter in id order
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse replaces every mutable field of an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if err := validateID(course.ID); err != nil {
		return nil, err
	}

	name, err := normalizeName(course.Name)
	if err != nil {
		return nil, err
	}

	updated := &models.Course{ID: course.ID, Name: name}
	if err := s.courseRepo.Update(ctx, updated); err != nil {
		return nil, mapRepoError(err, "updating")
	}
	return updated, nil
}

// PatchCourse applies the non-nil fields of patch to an existing course
func (s *courseServiceImpl) PatchCourse(ctx context.Context, id int64, patch CoursePatch) (*models.Course, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "patching")
	}

	if patch.Name == nil {
		return course, nil
	}

	name, err := normalizeName(*patch.Name)
	if err != nil {
		return nil, err
	}
	course.Name = name

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, mapRepoError(err, "patching")
	}
	return course, nil
}

// DeleteCourse deletes a course by ID
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting")
	}
	return nil
}

// CountCourses returns the number of stored courses
func (s *courseServiceImpl) CountCourses(ctx context.Context) (int64, error) {
	count, err := s.courseRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
