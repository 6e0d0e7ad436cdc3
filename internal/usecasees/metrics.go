package usecasees

import (
	"saxo/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metrics = initMetrics()

func initMetrics() map[structs.MetricConst]prometheus.Counter {
	out := make(map[structs.MetricConst]prometheus.Counter)

	for _, m := range []structs.MetricConst{
		structs.MetricTokenExchange,
		structs.MetricOrderPreCheck,
		structs.MetricOrderPlaced,
		structs.MetricOrderModified,
		structs.MetricOrderCanceled,
	} {
		out[m] = promauto.NewCounter(prometheus.CounterOpts{
			Name: m.ToString(),
			Help: m.ToString(),
		})
	}

	return out
}
