package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/seed"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_DRIVER", config.DriverMemory)
	t.Setenv("SERVER_MODE", "test")
	t.Setenv("LOG_LEVEL", "none")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestSetupDatabase_MemoryReturnsNoPool(t *testing.T) {
	cfg := memoryConfig(t)

	pool, err := SetupDatabase(context.Background(), cfg, zerolog.Nop())

	require.NoError(t, err)
	assert.Nil(t, pool)
}

func TestBuildDependencies(t *testing.T) {
	t.Run("memory store", func(t *testing.T) {
		deps, err := BuildDependencies(memoryConfig(t), nil, zerolog.Nop())
		require.NoError(t, err)
		assert.NotNil(t, deps.Repos.CourseRepository)
		assert.NotNil(t, deps.CourseService)
		assert.NotNil(t, deps.CourseController)
	})

	t.Run("postgres without pool", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.Database.Driver = config.DriverPostgres

		_, err := BuildDependencies(cfg, nil, zerolog.Nop())
		assert.Error(t, err)
	})
}

func TestSeedDefaultData(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)
	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	SeedDefaultData(ctx, cfg, deps)
	count, err := deps.Repos.CourseRepository.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	cfg.Seed.Enabled = true
	SeedDefaultData(ctx, cfg, deps)
	count, err = deps.Repos.CourseRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seed.DefaultCourseNames)), count)
}

func TestSetupRouter(t *testing.T) {
	cfg := memoryConfig(t)
	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	router := SetupRouter(cfg, deps, zerolog.Nop())

	tests := []struct {
		path     string
		wantCode int
	}{
		{"/ping", http.StatusOK},
		{"/api/v1/courses/", http.StatusOK},
		{"/swagger/doc.json", http.StatusOK},
		{"/api/v1/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
