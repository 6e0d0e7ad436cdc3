package structs

// OrderType is the execution strategy of an order. It decides which
// price fields must be present on the wire.
type OrderType string

const (
	OrderTypeMarket                OrderType = "Market"
	OrderTypeLimit                 OrderType = "Limit"
	OrderTypeStopIfBid             OrderType = "StopIfBid"
	OrderTypeStopIfOffered         OrderType = "StopIfOffered"
	OrderTypeStopIfTraded          OrderType = "StopIfTraded"
	OrderTypeStopLimit             OrderType = "StopLimit"
	OrderTypeTrailingStop          OrderType = "TrailingStop"
	OrderTypeTrailingStopIfBid     OrderType = "TrailingStopIfBid"
	OrderTypeTrailingStopIfOffered OrderType = "TrailingStopIfOffered"
	OrderTypeTrailingStopIfTraded  OrderType = "TrailingStopIfTraded"

	// Accepted by the API but never shaped here; only the tick-size
	// check knows about it.
	OrderTypeTraspasoIn OrderType = "TraspasoIn"
)

// DurationType is the time-validity policy of an order.
type DurationType string

const (
	DurationDayOrder          DurationType = "DayOrder"
	DurationGoodTillCancel    DurationType = "GoodTillCancel"
	DurationFillOrKill        DurationType = "FillOrKill"
	DurationImmediateOrCancel DurationType = "ImmediateOrCancel"
	DurationGoodTillDate      DurationType = "GoodTillDate"
)

// Order is the single-leg order payload. Optional fields are pointers
// with omitempty so that a cleared field disappears from the wire, the
// invariant being that exactly the fields required by the current
// OrderType and DurationType are present.
type Order struct {
	AccountKey                   string        `json:"AccountKey,omitempty"`
	Amount                       float64       `json:"Amount"`
	AssetType                    string        `json:"AssetType"`
	BuySell                      string        `json:"BuySell"`
	ExternalReference            string        `json:"ExternalReference,omitempty"`
	ManualOrder                  bool          `json:"ManualOrder"`
	OrderId                      string        `json:"OrderId,omitempty"`
	OrderType                    OrderType     `json:"OrderType"`
	OrderPrice                   *float64      `json:"OrderPrice,omitempty"`
	StopLimitPrice               *float64      `json:"StopLimitPrice,omitempty"`
	TrailingstopDistanceToMarket *float64      `json:"TrailingstopDistanceToMarket,omitempty"`
	TrailingStopStep             *float64      `json:"TrailingStopStep,omitempty"`
	Uic                          int64         `json:"Uic"`
	OrderDuration                OrderDuration `json:"OrderDuration"`
	FieldGroups                  []string      `json:"FieldGroups,omitempty"`
}

type OrderDuration struct {
	DurationType               DurationType `json:"DurationType"`
	ExpirationDateTime         string       `json:"ExpirationDateTime,omitempty"`
	ExpirationDateContainsTime *bool        `json:"ExpirationDateContainsTime,omitempty"`
}

// OrderResponse is the placement/cancellation acknowledgement.
type OrderResponse struct {
	OrderId string `json:"OrderId"`
}

// PreCheckResponse carries the only field the backend inspects; the
// full body is relayed untouched.
type PreCheckResponse struct {
	PreCheckResult string `json:"PreCheckResult"`
}
