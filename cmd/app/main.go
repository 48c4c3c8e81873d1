package main

import (
	"github.com/Conte777/tubedigest/internal/app"
	"go.uber.org/fx"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
