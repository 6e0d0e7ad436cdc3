package usecasees

import (
	"fmt"

	"saxo/internal/usecasees/structs"

	"github.com/shopspring/decimal"
)

const complexProductWarning = "Your order relates to a complex product or service for which you must have appropriate knowledge and experience. " +
	"For more information, please see our instructional videos and guides. " +
	"By validating this order, you acknowledge that you have been informed of the risks of this transaction."

// CheckConditions validates the order against the instrument's trading
// conditions. Every check runs independently and none is fatal; the
// result is the list of warnings for the caller to show. Submission is
// never blocked here.
func CheckConditions(order *structs.Order, details *structs.InstrumentDetails) []string {
	var warnings []string

	if !details.IsTradable {
		warnings = append(warnings, "this instrument is not tradable")
	}

	if !orderTypeSupported(order.OrderType, details.SupportedOrderTypes) {
		warnings = append(warnings, fmt.Sprintf("the order type %s is not supported for this instrument", order.OrderType))
	}

	if order.OrderType != structs.OrderTypeMarket && order.OrderType != structs.OrderTypeTraspasoIn &&
		details.TickSizeScheme != nil && order.OrderPrice != nil {
		price := decimal.NewFromFloat(*order.OrderPrice)
		tickSize := tickSizeFor(price, details.TickSizeScheme)
		if !matchesTickSize(price, tickSize) {
			warnings = append(warnings, fmt.Sprintf("the price of %s doesn't match the tick size of %s", price, tickSize))
		}
	}

	if details.LotSizeType != structs.LotSizeTypeNotUsed {
		amount := decimal.NewFromFloat(order.Amount)
		if amount.LessThan(details.MinimumLotSize) {
			warnings = append(warnings, fmt.Sprintf("the amount must be at least the minimum lot size of %s", details.MinimumLotSize))
		}
		if details.LotSize != nil && !amount.Mod(*details.LotSize).IsZero() {
			warnings = append(warnings, fmt.Sprintf("the amount must be the lot size or a multiplication of %s", details.LotSize))
		}
	}

	if details.IsComplex {
		warnings = append(warnings, complexProductWarning)
	}

	return warnings
}

func orderTypeSupported(orderType structs.OrderType, supported []structs.OrderType) bool {
	for _, t := range supported {
		if t == orderType {
			return true
		}
	}

	return false
}

// tickSizeFor picks the band with the lowest HighPrice at or above the
// price. The API promises ascending bands, but nothing here depends on
// that ordering. No band matching means the default tick size applies.
func tickSizeFor(price decimal.Decimal, scheme *structs.TickSizeScheme) decimal.Decimal {
	tickSize := scheme.DefaultTickSize

	var bandHigh decimal.Decimal
	found := false
	for _, e := range scheme.Elements {
		if price.LessThanOrEqual(e.HighPrice) && (!found || e.HighPrice.LessThan(bandHigh)) {
			tickSize = e.TickSize
			bandHigh = e.HighPrice
			found = true
		}
	}

	return tickSize
}

// matchesTickSize reports whether the price is an exact multiple of
// the tick size. Exact decimal arithmetic makes the binary-float
// workaround of scaling by 10^decimals before the modulo unnecessary.
func matchesTickSize(price, tickSize decimal.Decimal) bool {
	if tickSize.IsZero() {
		return true
	}

	return price.Mod(tickSize).IsZero()
}
