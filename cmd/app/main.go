package main

import (
	"go.uber.org/fx"

	"github.com/courseflow/course-service/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
