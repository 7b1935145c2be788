package main

import "github.com/yigit/coursehub/internal/cli"

// @title CourseHub API
// @version 1.0
// @description REST API for managing a course catalogue

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	cli.Execute()
}
