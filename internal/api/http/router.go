package http

import (
	"saxo/internal/usecasees"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(
	f *fiber.App,
	auth usecasees.AuthUC,
	order usecasees.OrderUC,
	instrument usecasees.InstrumentUC,
	l *logrus.Logger,
) {
	h := NewHandler(f, auth, order, instrument, l)

	f.Post("/server", h.Token)

	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)
	router.Post("/orders/ordertype", h.SelectOrderType)
	router.Post("/orders/duration", h.SelectOrderDuration)
	router.Post("/orders/validate", h.ValidateOrder)
	router.Post("/orders/precheck", h.PreCheckOrder)
	router.Post("/orders", h.PlaceOrder)
	router.Patch("/orders", h.ModifyOrder)
	router.Delete("/orders", h.CancelOrder)
	router.Get("/instruments/:id/series", h.GetSeries)
	router.Get("/instruments/:id/costs", h.GetCosts)
}
