package usecasees

import (
	"testing"

	"saxo/internal/usecasees/structs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetails() *structs.InstrumentDetails {
	return &structs.InstrumentDetails{
		AssetType:   "StockOption",
		Uic:         3386700,
		IsTradable:  true,
		LotSizeType: structs.LotSizeTypeNotUsed,
		SupportedOrderTypes: []structs.OrderType{
			structs.OrderTypeMarket,
			structs.OrderTypeLimit,
			structs.OrderTypeStopLimit,
		},
		TickSizeScheme: &structs.TickSizeScheme{
			DefaultTickSize: decimal.RequireFromString("0.1"),
			Elements: []structs.TickSizeElement{
				{
					HighPrice: decimal.RequireFromString("100"),
					TickSize:  decimal.RequireFromString("0.05"),
				},
			},
		},
	}
}

func limitOrderAt(price float64) *structs.Order {
	order := newTestOrder()
	order.OrderType = structs.OrderTypeLimit
	order.OrderPrice = &price
	return order
}

func Test_CheckConditions_TickSize(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		warning  string
		expected bool
	}{
		{name: "multiple of the band tick size", price: 99.95, expected: false},
		{name: "off the band tick size", price: 99.97, expected: true, warning: "the price of 99.97 doesn't match the tick size of 0.05"},
		{name: "multiple of the default tick size", price: 150.1, expected: false},
		{name: "off the default tick size", price: 150.15, expected: true, warning: "the price of 150.15 doesn't match the tick size of 0.1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			warnings := CheckConditions(limitOrderAt(tc.price), newTestDetails())

			if tc.expected {
				require.Len(t, warnings, 1)
				assert.Equal(t, tc.warning, warnings[0])
			} else {
				assert.Empty(t, warnings)
			}
		})
	}

	t.Run("market orders skip the tick check", func(t *testing.T) {
		order := limitOrderAt(99.97)
		order.OrderType = structs.OrderTypeMarket
		details := newTestDetails()
		details.SupportedOrderTypes = append(details.SupportedOrderTypes, structs.OrderTypeMarket)

		assert.Empty(t, CheckConditions(order, details))
	})

	t.Run("traspaso-in skips the tick check", func(t *testing.T) {
		order := limitOrderAt(99.97)
		order.OrderType = structs.OrderTypeTraspasoIn
		details := newTestDetails()
		details.SupportedOrderTypes = append(details.SupportedOrderTypes, structs.OrderTypeTraspasoIn)

		assert.Empty(t, CheckConditions(order, details))
	})

	t.Run("no scheme means no tick check", func(t *testing.T) {
		details := newTestDetails()
		details.TickSizeScheme = nil

		assert.Empty(t, CheckConditions(limitOrderAt(99.97), details))
	})

	t.Run("unsorted bands still pick the lowest matching one", func(t *testing.T) {
		details := newTestDetails()
		details.TickSizeScheme.Elements = []structs.TickSizeElement{
			{
				HighPrice: decimal.RequireFromString("1000"),
				TickSize:  decimal.RequireFromString("0.5"),
			},
			{
				HighPrice: decimal.RequireFromString("100"),
				TickSize:  decimal.RequireFromString("0.05"),
			},
		}

		warnings := CheckConditions(limitOrderAt(99.97), details)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "tick size of 0.05")
	})
}

func Test_CheckConditions_LotSize(t *testing.T) {
	newLotDetails := func() *structs.InstrumentDetails {
		lotSize := decimal.RequireFromString("5")
		details := newTestDetails()
		details.LotSizeType = "OddLotsNotAllowed"
		details.MinimumLotSize = decimal.RequireFromString("10")
		details.LotSize = &lotSize
		return details
	}

	marketOrderOf := func(amount float64) *structs.Order {
		order := newTestOrder()
		order.OrderType = structs.OrderTypeMarket
		order.Amount = amount
		return order
	}

	t.Run("below the minimum lot size", func(t *testing.T) {
		warnings := CheckConditions(marketOrderOf(7), newLotDetails())
		assert.Contains(t, warnings, "the amount must be at least the minimum lot size of 10")
		assert.Contains(t, warnings, "the amount must be the lot size or a multiplication of 5")
	})

	t.Run("above the minimum but off the lot size", func(t *testing.T) {
		warnings := CheckConditions(marketOrderOf(12), newLotDetails())
		require.Len(t, warnings, 1)
		assert.Equal(t, "the amount must be the lot size or a multiplication of 5", warnings[0])
	})

	t.Run("a clean multiple passes", func(t *testing.T) {
		assert.Empty(t, CheckConditions(marketOrderOf(15), newLotDetails()))
	})

	t.Run("not a multiple of the lot size", func(t *testing.T) {
		warnings := CheckConditions(marketOrderOf(17), newLotDetails())
		require.Len(t, warnings, 1)
		assert.Equal(t, "the amount must be the lot size or a multiplication of 5", warnings[0])
	})

	t.Run("lot sizing disabled", func(t *testing.T) {
		details := newLotDetails()
		details.LotSizeType = structs.LotSizeTypeNotUsed

		assert.Empty(t, CheckConditions(marketOrderOf(12), details))
	})
}

func Test_CheckConditions_Warnings(t *testing.T) {
	t.Run("not tradable", func(t *testing.T) {
		details := newTestDetails()
		details.IsTradable = false

		warnings := CheckConditions(limitOrderAt(99.95), details)
		assert.Contains(t, warnings, "this instrument is not tradable")
	})

	t.Run("unsupported order type", func(t *testing.T) {
		order := limitOrderAt(99.95)
		order.OrderType = structs.OrderTypeTrailingStop

		warnings := CheckConditions(order, newTestDetails())
		assert.Contains(t, warnings, "the order type TrailingStop is not supported for this instrument")
	})

	t.Run("complex product always warns", func(t *testing.T) {
		details := newTestDetails()
		details.IsComplex = true

		warnings := CheckConditions(limitOrderAt(99.95), details)
		require.Len(t, warnings, 1)
		assert.Equal(t, complexProductWarning, warnings[0])
	})

	t.Run("all checks run independently", func(t *testing.T) {
		details := newTestDetails()
		details.IsTradable = false
		details.IsComplex = true
		details.SupportedOrderTypes = nil

		warnings := CheckConditions(limitOrderAt(99.97), details)
		assert.Len(t, warnings, 4)
	})
}
