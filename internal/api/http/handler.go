package http

import (
	"errors"
	"strconv"
	"strings"

	"saxo/internal/controllers"
	"saxo/internal/usecasees"
	"saxo/internal/usecasees/structs"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	fiber *fiber.App

	authUseCase       usecasees.AuthUC
	orderUseCase      usecasees.OrderUC
	instrumentUseCase usecasees.InstrumentUC

	logger *logrus.Logger
}

func NewHandler(
	f *fiber.App,
	auth usecasees.AuthUC,
	order usecasees.OrderUC,
	instrument usecasees.InstrumentUC,
	l *logrus.Logger,
) *Handler {
	return &Handler{
		fiber:             f,
		authUseCase:       auth,
		orderUseCase:      order,
		instrumentUseCase: instrument,
		logger:            l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

// Token relays the authorization code or refresh token grant to the
// token endpoint and passes the token payload back untouched.
func (h *Handler) Token(c *fiber.Ctx) error {
	var tokenReq structs.TokenRequest
	if err := c.BodyParser(&tokenReq); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid request body")
	}

	body, err := h.authUseCase.RequestToken(&tokenReq)
	if err != nil {
		if errors.Is(err, usecasees.ErrMissingGrant) {
			return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "Invalid query parameters")
		}

		var apiErr *controllers.APIError
		if errors.As(err, &apiErr) {
			h.logger.Errorf("token endpoint responded %d", apiErr.StatusCode)
			return errorResponse(c, apiErr.StatusCode, "Unauthorized", apiErr.Message)
		}

		h.logger.WithError(err).Error("token request failed")
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

type shapeOrderRequest struct {
	Order            structs.Order        `json:"Order"`
	OrderType        structs.OrderType    `json:"OrderType"`
	DurationType     structs.DurationType `json:"DurationType"`
	Price            float64              `json:"Price"`
	StopLimitPrice   float64              `json:"StopLimitPrice"`
	TrailingDistance float64              `json:"TrailingstopDistanceToMarket"`
	TrailingStep     float64              `json:"TrailingStopStep"`
}

// SelectOrderType reshapes the posted order for the selected type and
// returns the mutated order.
func (h *Handler) SelectOrderType(c *fiber.Ctx) error {
	var shapeReq shapeOrderRequest
	if err := c.BodyParser(&shapeReq); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid request body")
	}

	prices := usecasees.ShapePrices{
		Price:            shapeReq.Price,
		StopLimitPrice:   shapeReq.StopLimitPrice,
		TrailingDistance: shapeReq.TrailingDistance,
		TrailingStep:     shapeReq.TrailingStep,
	}

	if err := h.orderUseCase.SelectOrderType(h.bearerToken(c), &shapeReq.Order, shapeReq.OrderType, prices); err != nil {
		if errors.Is(err, usecasees.ErrUnsupportedOrderType) {
			return errorResponse(c, fiber.StatusBadRequest, "BadRequest", err.Error())
		}
		return h.relayError(c, err)
	}

	return c.JSON(shapeReq.Order)
}

// SelectOrderDuration reshapes the posted order for the selected
// duration policy and returns the mutated order.
func (h *Handler) SelectOrderDuration(c *fiber.Ctx) error {
	var shapeReq shapeOrderRequest
	if err := c.BodyParser(&shapeReq); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid request body")
	}

	if err := h.orderUseCase.SelectOrderDuration(&shapeReq.Order, shapeReq.DurationType); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", err.Error())
	}

	return c.JSON(shapeReq.Order)
}

// ValidateOrder checks the posted order against the instrument's
// trading conditions; the response carries the raw conditions next to
// the warning list.
func (h *Handler) ValidateOrder(c *fiber.Ctx) error {
	token, ok := h.requireBearerToken(c)
	if !ok {
		return nil
	}

	var order structs.Order
	if err := c.BodyParser(&order); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid request body")
	}

	details, warnings, err := h.instrumentUseCase.Validate(token, &order)
	if err != nil {
		return h.relayError(c, err)
	}

	body := struct {
		Details  json.RawMessage `json:"Details"`
		Warnings []string        `json:"Warnings"`
	}{
		Details:  details,
		Warnings: warnings,
	}

	return c.JSON(body)
}

func (h *Handler) PreCheckOrder(c *fiber.Ctx) error {
	token, ok := h.requireBearerToken(c)
	if !ok {
		return nil
	}

	var order structs.Order
	if err := c.BodyParser(&order); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid request body")
	}

	body, err := h.orderUseCase.PreCheck(token, &order)
	if err != nil {
		return h.relayError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	token, ok := h.requireBearerToken(c)
	if !ok {
		return nil
	}

	var order structs.Order
	if err := c.BodyParser(&order); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid request body")
	}

	body, err := h.orderUseCase.Place(token, &order, c.Query("requestId") == "true")
	if err != nil {
		return h.relayError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) ModifyOrder(c *fiber.Ctx) error {
	token, ok := h.requireBearerToken(c)
	if !ok {
		return nil
	}

	var order structs.Order
	if err := c.BodyParser(&order); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid request body")
	}

	body, err := h.orderUseCase.Modify(token, &order, c.Query("requestId") == "true")
	if err != nil {
		if errors.Is(err, usecasees.ErrNoLastOrder) {
			return errorResponse(c, fiber.StatusBadRequest, "BadRequest", err.Error())
		}
		return h.relayError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	token, ok := h.requireBearerToken(c)
	if !ok {
		return nil
	}

	body, err := h.orderUseCase.Cancel(token)
	if err != nil {
		if errors.Is(err, usecasees.ErrNoLastOrder) {
			return errorResponse(c, fiber.StatusBadRequest, "BadRequest", err.Error())
		}
		return h.relayError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) GetSeries(c *fiber.Ctx) error {
	token, ok := h.requireBearerToken(c)
	if !ok {
		return nil
	}

	optionRootID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid instrument id")
	}

	body, err := h.instrumentUseCase.GetSeries(token, optionRootID)
	if err != nil {
		return h.relayError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) GetCosts(c *fiber.Ctx) error {
	token, ok := h.requireBearerToken(c)
	if !ok {
		return nil
	}

	optionRootID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BadRequest", "invalid instrument id")
	}

	body, err := h.instrumentUseCase.GetCosts(token, optionRootID)
	if err != nil {
		return h.relayError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) bearerToken(c *fiber.Ctx) string {
	return strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
}

func (h *Handler) requireBearerToken(c *fiber.Ctx) (string, bool) {
	token := h.bearerToken(c)
	if token == "" {
		_ = errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "missing bearer token")
		return "", false
	}

	return token, true
}

// relayError maps an upstream failure to the generic error shape: the
// upstream status and text when there was a response, 401 when the
// request never completed.
func (h *Handler) relayError(c *fiber.Ctx, err error) error {
	var apiErr *controllers.APIError
	if errors.As(err, &apiErr) {
		h.logger.Errorf("upstream responded %d", apiErr.StatusCode)
		return errorResponse(c, apiErr.StatusCode, "UpstreamError", apiErr.Message)
	}

	h.logger.WithError(err).Error("request failed")
	return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
}

func errorResponse(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(structs.ErrorResponse{
		Message:   message,
		ErrorCode: code,
	})
}
