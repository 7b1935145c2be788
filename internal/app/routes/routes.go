package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, courseController *controllers.CourseController) {
	middleware.ConfigureBinding()
	router.NoRoute(middleware.NotFoundHandler)

	// Known paths with the wrong method answer 405
	router.HandleMethodNotAllowed = true
	router.NoMethod(middleware.MethodNotAllowedHandler)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.PingResponse{Message: "pong", Status: "success"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// The trailing slash form is canonical, gin redirects the bare form to it
	courses := v1.Group("/courses")
	{
		courses.GET("/", courseController.ListCourses)
		courses.POST("/", courseController.CreateCourse)
		courses.GET("/:id/", courseController.GetCourseByID)
		courses.PUT("/:id/", courseController.UpdateCourse)
		courses.PATCH("/:id/", courseController.PatchCourse)
		courses.DELETE("/:id/", courseController.DeleteCourse)
	}
}
