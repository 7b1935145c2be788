package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/coursehub/internal/app/models"
)

// MemoryCourseRepository keeps courses in process memory.
// Ids start at 1 and are never reused, matching a sequence backed table.
type MemoryCourseRepository struct {
	mu      sync.RWMutex
	courses map[int64]models.Course
	nextID  int64
}

// NewMemoryCourseRepository creates an empty in-memory course store
func NewMemoryCourseRepository() *MemoryCourseRepository {
	return &MemoryCourseRepository{
		courses: make(map[int64]models.Course),
		nextID:  1,
	}
}

// Create stores a course and returns its id
func (r *MemoryCourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.courses[id] = models.Course{ID: id, Name: course.Name}
	return id, nil
}

// GetByID retrieves a course by ID
func (r *MemoryCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, ErrCourseNotFound
	}
	return &course, nil
}

// List returns the courses matching filter ordered by id
func (r *MemoryCourseRepository) List(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := []*models.Course{}
	for _, c := range r.courses {
		if filter.ID != nil && c.ID != *filter.ID {
			continue
		}
		if filter.Name != nil && c.Name != *filter.Name {
			continue
		}
		course := c
		courses = append(courses, &course)
	}

	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

// Update sets the name of an existing course
func (r *MemoryCourseRepository) Update(ctx context.Context, course *models.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[course.ID]; !ok {
		return ErrCourseNotFound
	}
	r.courses[course.ID] = models.Course{ID: course.ID, Name: course.Name}
	return nil
}

// Delete removes a course by ID
func (r *MemoryCourseRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

// Count returns the total number of courses
func (r *MemoryCourseRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.courses)), nil
}
