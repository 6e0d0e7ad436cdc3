package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	api "saxo/internal/api/http"
	"saxo/internal/controllers"
	"saxo/internal/usecasees"
)

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.Name = "saxo-orders"

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if app.Config.LokiAddr != "" {
		if err := app.initLoki(); err != nil {
			panic(err)
		}
	}

	app.initHTTPClient()
	app.initFiber()

	var tgmController controllers.TgmCtrl
	if app.Config.TelegramApiToken != "" {
		if err := app.initTgBot(); err != nil {
			panic(err)
		}

		chatID, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
		if err != nil {
			panic(err)
		}

		tgmController = controllers.NewTgmController(app.TGM, chatID)
	}

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Logger,
	)

	authUseCase := usecasees.NewAuthUseCase(
		clientController,
		app.Config.AppKey,
		app.Config.AppSecret,
		app.Config.RedirectURI,
		app.Config.TokenEndpoint,
		app.Logger,
	)

	instrumentUseCase := usecasees.NewInstrumentUseCase(
		clientController,
		app.Config.ApiUrl,
		app.Config.AccountKey,
		app.Logger,
	)

	orderUseCase := usecasees.NewOrderUseCase(
		clientController,
		tgmController,
		instrumentUseCase,
		app.Config.ApiUrl,
		app.Config.AccountKey,
		app.Config.SimFallbackPrice,
		app.Logger,
	)

	api.NewMiddleware(app.Fiber, app.Name).UseMetrics()
	api.RegisterHTTPEndpoints(app.Fiber, authUseCase, orderUseCase, instrumentUseCase, app.Logger)

	go func() {
		if err := app.Fiber.Listen(":" + app.Config.Port); err != nil {
			app.Logger.WithError(err).Fatal("server stopped")
		}
	}()

	app.Logger.Infof("listening on :%s", app.Config.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := app.Fiber.Shutdown(); err != nil {
		app.Logger.WithError(err).Error("shutdown")
	}

	if app.PromTail != nil {
		app.PromTail.Close()
	}
}
