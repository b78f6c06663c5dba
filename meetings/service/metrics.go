package service

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/openconf/meetpool/internal/otel"
)

var (
	// Capacity scheduling metrics
	serverPickAttempts metric.Int64Counter
	serverPickSuccess  metric.Int64Counter
	serverPickFailed   metric.Int64Counter

	// Meeting lifecycle metrics
	meetingsCreated      metric.Int64Counter
	meetingsCreateFailed metric.Int64Counter
	meetingsEnded        metric.Int64Counter
	backendRetries       metric.Int64Counter

	// Membership metrics
	joinAdmitted  metric.Int64Counter
	joinRejected  metric.Int64Counter
	usersBanned   metric.Int64Counter
	usersExited   metric.Int64Counter
	infoCacheHits metric.Int64Counter

	// Health monitor metrics
	healthProbes        metric.Int64Counter
	healthProbeFailures metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("meeting.service", intotel.PrefixMeetings)

	f.Int64Counter(&serverPickAttempts, "server.pick.attempts",
		metric.WithDescription("Total capable server pick attempts"))

	f.Int64Counter(&serverPickSuccess, "server.pick.success",
		metric.WithDescription("Successful capable server picks"))

	f.Int64Counter(&serverPickFailed, "server.pick.failed",
		metric.WithDescription("Failed capable server picks (no free capacity)"))

	f.Int64Counter(&meetingsCreated, "meetings.created",
		metric.WithDescription("Meetings created on a backend server"))

	f.Int64Counter(&meetingsCreateFailed, "meetings.create_failed",
		metric.WithDescription("Meeting create attempts rejected or failed"))

	f.Int64Counter(&meetingsEnded, "meetings.ended",
		metric.WithDescription("Meetings transitioned to ended"))

	f.Int64Counter(&backendRetries, "backend.retries",
		metric.WithDescription("Backend calls retried after an unavailable error"))

	f.Int64Counter(&joinAdmitted, "join.admitted",
		metric.WithDescription("Join requests admitted"))

	f.Int64Counter(&joinRejected, "join.rejected",
		metric.WithDescription("Join requests rejected, labelled by reason"))

	f.Int64Counter(&usersBanned, "members.banned",
		metric.WithDescription("Memberships banned"))

	f.Int64Counter(&usersExited, "members.exited",
		metric.WithDescription("Memberships exited"))

	f.Int64Counter(&infoCacheHits, "info.cache_hits",
		metric.WithDescription("Meeting info lookups served from the LRU cache"))

	f.Int64Counter(&healthProbes, "health.probes",
		metric.WithDescription("Backend liveness probes sent"))

	f.Int64Counter(&healthProbeFailures, "health.probe_failures",
		metric.WithDescription("Backend liveness probes that failed"))
}
