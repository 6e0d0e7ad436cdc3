package usecasees

import (
	"errors"
	"testing"
	"time"

	"saxo/internal/usecasees/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *structs.Order {
	return &structs.Order{
		Amount:            10,
		AssetType:         "StockOption",
		BuySell:           "Buy",
		ExternalReference: "MyOptionOrderCorrelationId",
		ManualOrder:       true,
		OrderType:         structs.OrderTypeMarket,
		Uic:               3386700,
		OrderDuration: structs.OrderDuration{
			DurationType: structs.DurationDayOrder,
		},
	}
}

func Test_ApplyOrderType(t *testing.T) {
	prices := ShapePrices{
		Price:            70,
		StopLimitPrice:   71,
		TrailingDistance: 1,
		TrailingStep:     0.1,
	}

	t.Run("market clears every price field", func(t *testing.T) {
		order := newTestOrder()
		require.NoError(t, ApplyOrderType(order, structs.OrderTypeStopLimit, "acc", prices))
		require.NoError(t, ApplyOrderType(order, structs.OrderTypeMarket, "acc", prices))

		assert.Equal(t, structs.OrderTypeMarket, order.OrderType)
		assert.Equal(t, "acc", order.AccountKey)
		assert.Nil(t, order.OrderPrice)
		assert.Nil(t, order.StopLimitPrice)
		assert.Nil(t, order.TrailingstopDistanceToMarket)
		assert.Nil(t, order.TrailingStopStep)
	})

	t.Run("every non-market type carries a price", func(t *testing.T) {
		for _, orderType := range []structs.OrderType{
			structs.OrderTypeLimit,
			structs.OrderTypeStopIfBid,
			structs.OrderTypeStopIfOffered,
			structs.OrderTypeStopIfTraded,
			structs.OrderTypeStopLimit,
			structs.OrderTypeTrailingStop,
			structs.OrderTypeTrailingStopIfBid,
			structs.OrderTypeTrailingStopIfOffered,
			structs.OrderTypeTrailingStopIfTraded,
		} {
			order := newTestOrder()
			require.NoError(t, ApplyOrderType(order, orderType, "acc", prices))

			require.NotNil(t, order.OrderPrice, "%s", orderType)
			assert.Equal(t, float64(70), *order.OrderPrice, "%s", orderType)
		}
	})

	t.Run("stop limit sets the limit price", func(t *testing.T) {
		order := newTestOrder()
		require.NoError(t, ApplyOrderType(order, structs.OrderTypeStopLimit, "acc", prices))

		require.NotNil(t, order.OrderPrice)
		require.NotNil(t, order.StopLimitPrice)
		assert.Equal(t, float64(71), *order.StopLimitPrice)
		assert.Nil(t, order.TrailingstopDistanceToMarket)

		require.NoError(t, ApplyOrderType(order, structs.OrderTypeStopIfBid, "acc", prices))
		assert.Nil(t, order.StopLimitPrice)
	})

	t.Run("trailing stop sets distance and step", func(t *testing.T) {
		for _, orderType := range []structs.OrderType{
			structs.OrderTypeTrailingStop,
			structs.OrderTypeTrailingStopIfBid,
			structs.OrderTypeTrailingStopIfOffered,
			structs.OrderTypeTrailingStopIfTraded,
		} {
			order := newTestOrder()
			require.NoError(t, ApplyOrderType(order, orderType, "acc", prices))

			require.NotNil(t, order.OrderPrice, "%s", orderType)
			require.NotNil(t, order.TrailingstopDistanceToMarket, "%s", orderType)
			require.NotNil(t, order.TrailingStopStep, "%s", orderType)
			assert.Equal(t, float64(1), *order.TrailingstopDistanceToMarket)
			assert.Equal(t, 0.1, *order.TrailingStopStep)

			require.NoError(t, ApplyOrderType(order, structs.OrderTypeMarket, "acc", prices))
			assert.Nil(t, order.OrderPrice)
			assert.Nil(t, order.TrailingstopDistanceToMarket)
			assert.Nil(t, order.TrailingStopStep)
		}
	})

	t.Run("unknown type leaves the order untouched", func(t *testing.T) {
		order := newTestOrder()
		require.NoError(t, ApplyOrderType(order, structs.OrderTypeStopLimit, "acc", prices))
		before := *order

		err := ApplyOrderType(order, structs.OrderType("Algorithmic"), "other", prices)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedOrderType))
		assert.Equal(t, before, *order)
	})

	t.Run("traspaso-in is not shaped", func(t *testing.T) {
		order := newTestOrder()
		err := ApplyOrderType(order, structs.OrderTypeTraspasoIn, "acc", prices)
		assert.True(t, errors.Is(err, ErrUnsupportedOrderType))
	})
}

func Test_ApplyOrderDuration(t *testing.T) {
	t.Run("good till date sets the expiration three days out", func(t *testing.T) {
		order := newTestOrder()
		now := time.Date(2020, 3, 17, 14, 0, 42, 987654321, time.UTC)

		require.NoError(t, ApplyOrderDuration(order, structs.DurationGoodTillDate, now))

		assert.Equal(t, structs.DurationGoodTillDate, order.OrderDuration.DurationType)
		assert.Equal(t, "2020-3-20T14:00:00", order.OrderDuration.ExpirationDateTime)
		require.NotNil(t, order.OrderDuration.ExpirationDateContainsTime)
		assert.True(t, *order.OrderDuration.ExpirationDateContainsTime)
	})

	t.Run("expiration crosses a month boundary", func(t *testing.T) {
		order := newTestOrder()
		now := time.Date(2021, 1, 30, 9, 5, 59, 0, time.UTC)

		require.NoError(t, ApplyOrderDuration(order, structs.DurationGoodTillDate, now))

		assert.Equal(t, "2021-2-2T9:05:00", order.OrderDuration.ExpirationDateTime)
	})

	t.Run("plain durations drop the expiration", func(t *testing.T) {
		for _, durationType := range []structs.DurationType{
			structs.DurationDayOrder,
			structs.DurationGoodTillCancel,
			structs.DurationFillOrKill,
			structs.DurationImmediateOrCancel,
		} {
			order := newTestOrder()
			require.NoError(t, ApplyOrderDuration(order, structs.DurationGoodTillDate, time.Now()))
			require.NoError(t, ApplyOrderDuration(order, durationType, time.Now()))

			assert.Equal(t, durationType, order.OrderDuration.DurationType)
			assert.Empty(t, order.OrderDuration.ExpirationDateTime, "%s", durationType)
			assert.Nil(t, order.OrderDuration.ExpirationDateContainsTime, "%s", durationType)
		}
	})

	t.Run("unknown duration leaves the order untouched", func(t *testing.T) {
		order := newTestOrder()
		require.NoError(t, ApplyOrderDuration(order, structs.DurationGoodTillDate, time.Now()))
		before := *order

		err := ApplyOrderDuration(order, structs.DurationType("AtTheOpening"), time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedOrderDuration))
		assert.Equal(t, before, *order)
	})
}
