package usecasees

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"saxo/internal/controllers"
	"saxo/internal/usecasees/structs"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	ordersURLPath   = "/trade/v2/orders"
	precheckURLPath = "/trade/v2/orders/precheck"

	// Demo inputs used when the caller supplies no explicit prices,
	// matching the values of the original sample order.
	defaultTriggerPrice     = 70
	defaultStopLimitPrice   = 71
	defaultTrailingDistance = 1
	defaultTrailingStep     = 0.1
)

var ErrNoLastOrder = errors.New("no order placed yet")

type orderUseCase struct {
	clientController  controllers.ClientCtrl
	tgmController     controllers.TgmCtrl
	instrumentUseCase *instrumentUseCase

	url              string
	accountKey       string
	simFallbackPrice float64

	// Single editing session, last-writer-wins; deliberately unguarded.
	lastOrderID string

	logger *logrus.Logger
}

func NewOrderUseCase(
	client controllers.ClientCtrl,
	tgmController controllers.TgmCtrl,
	instrumentUseCase *instrumentUseCase,
	url string,
	accountKey string,
	simFallbackPrice float64,
	logger *logrus.Logger,
) *orderUseCase {
	return &orderUseCase{
		clientController:  client,
		tgmController:     tgmController,
		instrumentUseCase: instrumentUseCase,
		url:               url,
		accountKey:        accountKey,
		simFallbackPrice:  simFallbackPrice,
		logger:            logger,
	}
}

// SelectOrderType resolves the price inputs and reshapes the order for
// the selected type. Limit orders take the live bid; on SIM the quote
// endpoint is not available and the configured fallback price is used.
func (u *orderUseCase) SelectOrderType(token string, order *structs.Order, selected structs.OrderType, prices ShapePrices) error {
	if prices.Price == 0 {
		prices.Price = defaultTriggerPrice
	}
	if prices.StopLimitPrice == 0 {
		prices.StopLimitPrice = defaultStopLimitPrice
	}
	if prices.TrailingDistance == 0 {
		prices.TrailingDistance = defaultTrailingDistance
	}
	if prices.TrailingStep == 0 {
		prices.TrailingStep = defaultTrailingStep
	}

	if selected == structs.OrderTypeLimit {
		bid, err := u.instrumentUseCase.GetQuote(token, order.AssetType, order.Uic)
		if err != nil {
			u.logger.WithError(err).Debug("infoprices unavailable, using fallback price")
			bid = u.simFallbackPrice
		}
		prices.Price = bid
	}

	if err := ApplyOrderType(order, selected, u.accountKey, prices); err != nil {
		u.logger.Errorf("unsupported order type %s", selected)
		return err
	}

	return nil
}

// SelectOrderDuration reshapes the order's duration for the selected
// policy.
func (u *orderUseCase) SelectOrderDuration(order *structs.Order, selected structs.DurationType) error {
	if err := ApplyOrderDuration(order, selected, time.Now()); err != nil {
		u.logger.Errorf("unsupported order duration %s", selected)
		return err
	}

	return nil
}

// PreCheck runs the dry-run validation of the order, reporting costs
// and margin impact without submitting anything. A fresh X-Request-ID
// keeps identical previews within 15 seconds from colliding upstream.
func (u *orderUseCase) PreCheck(token string, order *structs.Order) ([]byte, error) {
	order.AccountKey = u.accountKey
	order.FieldGroups = []string{"Costs", "MarginImpactBuySell"}

	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(baseURL.Path, precheckURLPath)

	headers := bearerHeaders(token)
	headers["X-Request-ID"] = uuid.NewString()

	out, _, err := u.clientController.Send(http.MethodPost, baseURL, body, headers)
	if err != nil {
		return nil, err
	}

	var result structs.PreCheckResponse
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, err
	}

	if result.PreCheckResult != "Ok" {
		u.logger.Errorf("order precheck result %s", result.PreCheckResult)
	}

	metrics[structs.MetricOrderPreCheck].Inc()

	return out, nil
}

// Place submits the order and remembers the returned order id for a
// later modify or cancel. Setting the external reference as
// X-Request-ID shields against duplicate submissions within 15
// seconds.
func (u *orderUseCase) Place(token string, order *structs.Order, useRequestIDHeader bool) ([]byte, error) {
	order.AccountKey = u.accountKey

	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(baseURL.Path, ordersURLPath)

	headers := bearerHeaders(token)
	if useRequestIDHeader {
		headers["X-Request-ID"] = order.ExternalReference
	}

	out, respHeaders, err := u.clientController.Send(http.MethodPost, baseURL, body, headers)
	if err != nil {
		return nil, err
	}

	var placed structs.OrderResponse
	if err := json.Unmarshal(out, &placed); err != nil {
		return nil, err
	}

	u.lastOrderID = placed.OrderId

	if requestID := respHeaders.Get("X-Request-ID"); requestID != "" {
		u.logger.Infof("order %s placed, X-Request-ID %s", placed.OrderId, requestID)
	} else {
		u.logger.Infof("order %s placed", placed.OrderId)
	}

	metrics[structs.MetricOrderPlaced].Inc()

	if u.tgmController != nil {
		if err := u.tgmController.Send(fmt.Sprintf("[ Order ]\n%s placed", placed.OrderId)); err != nil {
			u.logger.Debug(err)
		}
	}

	return out, nil
}

// Modify patches the last placed order with the given order fields.
func (u *orderUseCase) Modify(token string, order *structs.Order, useRequestIDHeader bool) ([]byte, error) {
	if u.lastOrderID == "" {
		return nil, ErrNoLastOrder
	}

	order.AccountKey = u.accountKey
	order.OrderId = u.lastOrderID

	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(baseURL.Path, ordersURLPath)

	headers := bearerHeaders(token)
	if useRequestIDHeader {
		headers["X-Request-ID"] = order.ExternalReference
	}

	out, respHeaders, err := u.clientController.Send(http.MethodPatch, baseURL, body, headers)
	if err != nil {
		return nil, err
	}

	if requestID := respHeaders.Get("X-Request-ID"); requestID != "" {
		u.logger.Infof("order %s modified, X-Request-ID %s", u.lastOrderID, requestID)
	} else {
		u.logger.Infof("order %s modified", u.lastOrderID)
	}

	metrics[structs.MetricOrderModified].Inc()

	return out, nil
}

// Cancel removes the last placed order from the book.
func (u *orderUseCase) Cancel(token string) ([]byte, error) {
	if u.lastOrderID == "" {
		return nil, ErrNoLastOrder
	}

	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(baseURL.Path, ordersURLPath, u.lastOrderID)

	q := baseURL.Query()
	q.Set("AccountKey", u.accountKey)
	baseURL.RawQuery = q.Encode()

	out, _, err := u.clientController.Send(http.MethodDelete, baseURL, nil, bearerHeaders(token))
	if err != nil {
		return nil, err
	}

	u.logger.Infof("order %s canceled", u.lastOrderID)

	metrics[structs.MetricOrderCanceled].Inc()

	if u.tgmController != nil {
		if err := u.tgmController.Send(fmt.Sprintf("[ Order ]\n%s canceled", u.lastOrderID)); err != nil {
			u.logger.Debug(err)
		}
	}

	return out, nil
}
