package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"

	"net/http"
)

type App struct {
	Name       string
	Config     *Config
	Logger     *logrus.Logger
	PromTail   promtail.Client
	HTTPClient *http.Client
	TGM        *tgbotapi.BotAPI
	Fiber      *fiber.App
}
