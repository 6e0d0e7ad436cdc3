package structs

type MetricConst int

const (
	MetricTokenExchange MetricConst = iota
	MetricOrderPreCheck
	MetricOrderPlaced
	MetricOrderModified
	MetricOrderCanceled
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricTokenExchange:
		return "token_exchange_total"
	case MetricOrderPreCheck:
		return "order_precheck_total"
	case MetricOrderPlaced:
		return "order_placed_total"
	case MetricOrderModified:
		return "order_modified_total"
	case MetricOrderCanceled:
		return "order_canceled_total"
	}

	return "unknown"
}
