// Package seed loads the default course catalogue.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursehub/internal/app/models"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
)

// DefaultCourseNames is the catalogue created by CreateDefaultData
var DefaultCourseNames = []string{
	"Introduction to Programming",
	"Data Structures",
	"Algorithms",
	"Databases",
	"Computer Networks",
	"Operating Systems",
}

// CreateDefaultData creates the default courses that don't exist yet and
// reports how many were created. Existing courses are matched by exact name.
// A failure on one course does not stop the others.
func CreateDefaultData(ctx context.Context, store appRepos.CourseStore, lgr zerolog.Logger) (int, error) {
	lgr.Info().Int("catalogue", len(DefaultCourseNames)).Msg("Checking/Creating default courses...")

	var finalErr error
	created := 0
	for _, name := range DefaultCourseNames {
		existing, err := store.List(ctx, appRepos.CourseFilter{Name: &name})
		if err != nil {
			lgr.Error().Err(err).Str("course", name).Msg("Error checking for existing course")
			finalErr = errors.Join(finalErr, fmt.Errorf("check %q: %w", name, err))
			continue
		}
		if len(existing) > 0 {
			continue
		}

		id, err := store.Create(ctx, &appModels.Course{Name: name})
		if err != nil {
			lgr.Error().Err(err).Str("course", name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, fmt.Errorf("create %q: %w", name, err))
			continue
		}
		lgr.Debug().Int64("id", id).Str("course", name).Msg("Default course created")
		created++
	}

	lgr.Info().Int("created", created).Msg("Default course check finished")
	return created, finalErr
}
