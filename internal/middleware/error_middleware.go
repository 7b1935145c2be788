package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		message := "Resource not found"
		if errors.As(err, &custom) {
			message = custom.Error()
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message),
		))
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if errors.As(err, &custom) {
			detail.Message = custom.Error()
			detail.Field = custom.Field()
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	case dberrors.IsDatabaseError(err):
		// Log the SQLSTATE, never send it
		logger.FromContext(c.Request.Context()).Error().Err(err).
			Str("sqlstate", dberrors.Code(err)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Database error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error").
				WithSeverity(dto.ErrorSeverityCritical),
		))
	default:
		logger.FromContext(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

// NotFoundHandler answers unmatched routes with the standard error envelope
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Not found"),
	))
}

// MethodNotAllowedHandler answers a known path requested with an unsupported method
func MethodNotAllowedHandler(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeMethodNotAllowed, "Method \""+c.Request.Method+"\" not allowed"),
	))
}
