package main

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

func (a *App) initFiber() {
	a.Fiber = fiber.New(fiber.Config{
		AppName:               a.Name,
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	if a.Config.StaticDir != "" {
		a.Fiber.Static("/", a.Config.StaticDir)
	}
}
