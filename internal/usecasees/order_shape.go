package usecasees

import (
	"fmt"
	"time"

	"saxo/internal/usecasees/structs"

	"github.com/pkg/errors"
)

var (
	ErrUnsupportedOrderType     = errors.New("unsupported order type")
	ErrUnsupportedOrderDuration = errors.New("unsupported order duration")
)

// ShapePrices carries the externally resolved price inputs for the
// order types that need them. For Limit orders the price comes from
// the live quote; for the stop variants it is the caller's trigger.
type ShapePrices struct {
	Price            float64
	StopLimitPrice   float64
	TrailingDistance float64
	TrailingStep     float64
}

// ApplyOrderType reshapes the order for the selected type: every
// price-related field is cleared first so nothing stale survives a
// type switch, then exactly the fields the type requires are set. The
// account key is stamped along the way. An unrecognized type leaves
// the order untouched.
func ApplyOrderType(order *structs.Order, selected structs.OrderType, accountKey string, prices ShapePrices) error {
	switch selected {
	case structs.OrderTypeMarket,
		structs.OrderTypeLimit,
		structs.OrderTypeStopIfBid,
		structs.OrderTypeStopIfOffered,
		structs.OrderTypeStopIfTraded,
		structs.OrderTypeStopLimit,
		structs.OrderTypeTrailingStop,
		structs.OrderTypeTrailingStopIfBid,
		structs.OrderTypeTrailingStopIfOffered,
		structs.OrderTypeTrailingStopIfTraded:
	default:
		return errors.Wrap(ErrUnsupportedOrderType, string(selected))
	}

	order.OrderType = selected
	order.AccountKey = accountKey
	order.OrderPrice = nil
	order.StopLimitPrice = nil
	order.TrailingstopDistanceToMarket = nil
	order.TrailingStopStep = nil

	switch selected {
	case structs.OrderTypeMarket:
		// Filled at the best price in the market, no price fields.
	case structs.OrderTypeLimit,
		structs.OrderTypeStopIfBid,
		structs.OrderTypeStopIfOffered,
		structs.OrderTypeStopIfTraded:
		order.OrderPrice = &prices.Price
	case structs.OrderTypeStopLimit:
		order.OrderPrice = &prices.Price
		order.StopLimitPrice = &prices.StopLimitPrice
	case structs.OrderTypeTrailingStop,
		structs.OrderTypeTrailingStopIfBid,
		structs.OrderTypeTrailingStopIfOffered,
		structs.OrderTypeTrailingStopIfTraded:
		order.OrderPrice = &prices.Price
		order.TrailingstopDistanceToMarket = &prices.TrailingDistance
		order.TrailingStopStep = &prices.TrailingStep
	}

	return nil
}

// ApplyOrderDuration reshapes the nested OrderDuration for the
// selected policy. GoodTillDate gets an expiration of now plus three
// calendar days with seconds zeroed; every other recognized policy
// must not carry an expiration.
func ApplyOrderDuration(order *structs.Order, selected structs.DurationType, now time.Time) error {
	switch selected {
	case structs.DurationDayOrder,
		structs.DurationGoodTillCancel,
		structs.DurationFillOrKill,
		structs.DurationImmediateOrCancel:
		order.OrderDuration.DurationType = selected
		order.OrderDuration.ExpirationDateTime = ""
		order.OrderDuration.ExpirationDateContainsTime = nil
	case structs.DurationGoodTillDate:
		exp := now.AddDate(0, 0, 3)
		exp = time.Date(exp.Year(), exp.Month(), exp.Day(), exp.Hour(), exp.Minute(), 0, 0, exp.Location())

		containsTime := true
		order.OrderDuration.DurationType = selected
		order.OrderDuration.ExpirationDateTime = formatExpiration(exp)
		order.OrderDuration.ExpirationDateContainsTime = &containsTime
	default:
		return errors.Wrap(ErrUnsupportedOrderDuration, string(selected))
	}

	return nil
}

// formatExpiration renders a local timestamp the way the API expects
// it: month, day and hour unpadded, minute padded, no timezone.
// Example: 2020-3-20T14:00:00.
func formatExpiration(t time.Time) string {
	return fmt.Sprintf("%d-%d-%dT%d:%02d:00", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
