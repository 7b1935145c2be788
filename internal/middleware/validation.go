package middleware

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

var configureBindingOnce sync.Once

// ConfigureBinding makes gin's validator report json field names ("name")
// instead of Go field names ("Name").
func ConfigureBinding() {
	configureBindingOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// BindRequest binds the request body into obj according to its Content-Type
// (JSON, form or multipart) and writes a 400 response when binding fails.
// It reports whether the handler should continue.
func BindRequest(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// BindOptionalRequest is BindRequest for bodies whose fields are all optional.
// A missing or empty body binds as the zero value of obj.
func BindOptionalRequest(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBind(obj)
	if errors.Is(err, io.EOF) {
		// Nothing was decoded, still check obj against its tags
		err = binding.Validator.ValidateStruct(obj)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
