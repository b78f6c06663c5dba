package bbb

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/openconf/meetpool/internal/otel"
)

var (
	apiRequests  metric.Int64Counter
	apiFailures  metric.Int64Counter
	apiLatencyMs metric.Int64Histogram
)

func init() {
	f := intotel.NewFactory("bbb.client", intotel.PrefixBackend)

	f.Int64Counter(&apiRequests, "api.requests",
		metric.WithDescription("BBB API calls, labelled by action"))

	f.Int64Counter(&apiFailures, "api.failures",
		metric.WithDescription("BBB API calls that failed at the HTTP layer"))

	f.Int64Histogram(&apiLatencyMs, "api.latency",
		metric.WithDescription("BBB API round-trip latency"),
		metric.WithUnit("ms"))
}
