package structs

import "github.com/shopspring/decimal"

const LotSizeTypeNotUsed = "NotUsed"

// InstrumentDetails is the OrderSetting field group of the instrument
// details endpoint, the part relevant for order validation.
type InstrumentDetails struct {
	AssetType           string           `json:"AssetType"`
	Uic                 int64            `json:"Uic"`
	IsTradable          bool             `json:"IsTradable"`
	IsComplex           bool             `json:"IsComplex"`
	LotSizeType         string           `json:"LotSizeType"`
	MinimumLotSize      decimal.Decimal  `json:"MinimumLotSize"`
	LotSize             *decimal.Decimal `json:"LotSize,omitempty"`
	SupportedOrderTypes []OrderType      `json:"SupportedOrderTypes"`
	TickSizeScheme      *TickSizeScheme  `json:"TickSizeScheme,omitempty"`
}

type TickSizeScheme struct {
	DefaultTickSize decimal.Decimal   `json:"DefaultTickSize"`
	Elements        []TickSizeElement `json:"Elements"`
}

type TickSizeElement struct {
	HighPrice decimal.Decimal `json:"HighPrice"`
	TickSize  decimal.Decimal `json:"TickSize"`
}
