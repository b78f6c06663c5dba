package registry

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/openconf/meetpool/internal/otel"
)

var (
	serversRegistered metric.Int64UpDownCounter
	serversActive     metric.Int64UpDownCounter
	occupancyTotal    metric.Int64UpDownCounter
	meetingsRunning   metric.Int64UpDownCounter
)

func init() {
	f := intotel.NewFactory("meeting.registry", intotel.PrefixRegistry)

	f.Int64UpDownCounter(&serversRegistered, "servers.registered",
		metric.WithDescription("Servers currently registered"))

	f.Int64UpDownCounter(&serversActive, "servers.active",
		metric.WithDescription("Servers currently in the scheduling rotation"))

	f.Int64UpDownCounter(&occupancyTotal, "occupancy.total",
		metric.WithDescription("Active memberships summed over all servers"))

	f.Int64UpDownCounter(&meetingsRunning, "meetings.running",
		metric.WithDescription("Meetings currently in the running state"))
}
