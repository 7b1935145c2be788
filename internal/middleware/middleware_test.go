package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	require.NotNil(t, resp.Error)
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError dto.ErrorCode
		wantField string
	}{
		{"not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
		{"wrapped not found", fmt.Errorf("ctx: %w", apperrors.ErrResourceNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
		{"validation", apperrors.NewValidationError("name", "name cannot be blank"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "name"},
		{"database", fmt.Errorf("list: %w", &pgconn.PgError{Code: "42P01"}), http.StatusInternalServerError, dto.ErrorCodeDatabaseError, ""},
		{"database connect", &pgconn.ConnectError{}, http.StatusInternalServerError, dto.ErrorCodeDatabaseError, ""},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantCode, rr.Code)
			resp := decodeError(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error.Code)
			assert.Equal(t, tt.wantField, resp.Error.Field)
		})
	}
}

func TestHandleAPIError_DoesNotLeakInternals(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("password=hunter2"))

	assert.NotContains(t, rr.Body.String(), "hunter2")
}

type bindTarget struct {
	Name string `json:"name" form:"name" binding:"required,max=5"`
}

func TestBindRequest(t *testing.T) {
	ConfigureBinding()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantOK      bool
		wantField   string
	}{
		{"json ok", "application/json", `{"name":"go"}`, true, ""},
		{"form ok", "application/x-www-form-urlencoded", "name=go", true, ""},
		{"json missing", "application/json", `{}`, false, "name"},
		{"json too long", "application/json", `{"name":"python"}`, false, "name"},
		{"form missing", "application/x-www-form-urlencoded", "other=1", false, "name"},
		{"malformed json", "application/json", `{"name":`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", tt.contentType)

			var target bindTarget
			ok := BindRequest(c, &target)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "go", target.Name)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decodeError(t, rr)
			assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
			assert.Equal(t, tt.wantField, resp.Error.Field)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	lgr := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestLogger(lgr))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("generates an id", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

		id := rr.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), id)
		assert.Contains(t, buf.String(), `"status":204`)
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		buf.Reset()
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, incoming)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, incoming, rr.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a garbage id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.NotEqual(t, "<script>", rr.Header().Get(RequestIDHeader))
	})
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		rps           float64
		expectLimited bool
	}{
		{"Rate limiting enabled", 1, true},
		{"Rate limiting disabled with 0", 0, false},
		{"Rate limiting disabled with negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RateLimit(tt.rps, 1))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			for i := 0; i < 2; i++ {
				rr := httptest.NewRecorder()
				router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

				if tt.expectLimited && i == 1 {
					assert.Equal(t, http.StatusTooManyRequests, rr.Code)
					assert.Equal(t, dto.ErrorCodeRateLimited, decodeError(t, rr).Error.Code)
					continue
				}
				assert.Equal(t, http.StatusOK, rr.Code)
			}
		})
	}
}

func TestNotFoundHandler(t *testing.T) {
	router := gin.New()
	router.NoRoute(NotFoundHandler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, decodeError(t, rr).Error.Code)
}

func TestHandleAPIError_DatabaseErrorHidesDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, &pgconn.PgError{Code: "42P01", Message: `relation "courses" does not exist`})

	resp := decodeError(t, rr)
	assert.Equal(t, dto.ErrorSeverityCritical, resp.Error.Severity)
	assert.NotContains(t, rr.Body.String(), "courses")
	assert.NotContains(t, rr.Body.String(), "42P01")
}

type optionalTarget struct {
	Name *string `json:"name" form:"name" binding:"omitempty,max=5"`
}

func TestBindOptionalRequest(t *testing.T) {
	ConfigureBinding()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantOK      bool
		wantName    *string
	}{
		{"empty json body", "application/json", "", true, nil},
		{"empty object", "application/json", `{}`, true, nil},
		{"no content type", "", "", true, nil},
		{"json value", "application/json", `{"name":"go"}`, true, ptr("go")},
		{"form value", "application/x-www-form-urlencoded", "name=go", true, ptr("go")},
		{"too long", "application/json", `{"name":"python"}`, false, nil},
		{"malformed json", "application/json", `{"name":`, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rr)
			c.Request = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				c.Request.Header.Set("Content-Type", tt.contentType)
			}

			var target optionalTarget
			ok := BindOptionalRequest(c, &target)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				return
			}
			assert.Equal(t, tt.wantName, target.Name)
		})
	}
}

func TestMethodNotAllowedHandler(t *testing.T) {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(MethodNotAllowedHandler)
	router.GET("/things/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/things/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, dto.ErrorCodeMethodNotAllowed, decodeError(t, rr).Error.Code)
}

func ptr[T any](v T) *T {
	return &v
}
