package service

import (
	"context"

	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/meetings"
)

type schedulerImpl struct {
	registry meetings.Registry
	logger   *log.Logger
}

func NewScheduler(registry meetings.Registry, logger *log.Logger) meetings.Scheduler {
	return &schedulerImpl{
		registry: registry,
		logger:   logger,
	}
}

// SelectCapableServer returns the active server with the most free capacity.
// Ties go to the lowest id. The pick reserves nothing; admission re-checks
// capacity under the server mutex.
func (sc *schedulerImpl) SelectCapableServer(ctx context.Context) (*meetings.Server, error) {
	serverPickAttempts.Add(ctx, 1)

	servers, err := sc.registry.ListServers(ctx)
	if err != nil {
		serverPickFailed.Add(ctx, 1)
		return nil, err
	}

	var best *meetings.Server
	for _, srv := range servers {
		if !srv.Active {
			continue
		}
		if srv.Free() <= 0 {
			continue
		}
		// servers arrive sorted by id, so strict > keeps the lowest id on ties
		if best == nil || srv.Free() > best.Free() {
			best = srv
		}
	}
	if best == nil {
		serverPickFailed.Add(ctx, 1)
		return nil, errors.New(meetings.ErrNoCapableServer, "no server with free capacity")
	}

	serverPickSuccess.Add(ctx, 1)
	sc.logger.Debug("picked server",
		log.Int64("serverId", best.ID), log.Int("free", best.Free()))
	return best, nil
}

// CanJoinServer is a point-in-time capacity check; the answer may be stale
// by the time the caller acts on it.
func (sc *schedulerImpl) CanJoinServer(ctx context.Context, serverID int64) (bool, error) {
	srv, err := sc.registry.GetServer(ctx, serverID)
	if err != nil {
		return false, err
	}
	return srv.Occupancy < srv.Limit, nil
}
