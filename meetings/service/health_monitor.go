package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/internal/scheduler"
	"github.com/openconf/meetpool/meetings"
)

const (
	keySweep        = "sweep"
	keyServerPrefix = "server/"
)

// ProbeFunc answers whether the given server is reachable.
type ProbeFunc func(ctx context.Context, serverID int64) bool

// NewBackendProbe builds a ProbeFunc that asks a server's backend a cheap
// status question. Any failure counts as unhealthy.
func NewBackendProbe(registry meetings.Registry, clients *ClientPool, logger *log.Logger) ProbeFunc {
	return func(ctx context.Context, serverID int64) bool {
		srv, err := registry.GetServer(ctx, serverID)
		if err != nil {
			return false
		}
		if _, err := clients.get(srv).IsMeetingRunning(ctx, uuid.NewString()); err != nil {
			logger.Debug("Backend probe failed",
				log.Int64("serverId", serverID),
				log.Error(err))
			return false
		}
		return true
	}
}

// HealthMonitor probes every registered server on a fixed interval and
// reports liveness back to the registry. Probes are staggered through a
// keyed scheduler so a large fleet does not fire all at once; a periodic
// sweep picks up servers registered after the monitor started.
type HealthMonitor struct {
	registry meetings.Registry
	probe    ProbeFunc
	sched    *scheduler.KeyedScheduler

	probeInterval time.Duration
	sweepInterval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *log.Logger
}

func NewHealthMonitor(
	registry meetings.Registry,
	probe ProbeFunc,
	probeInterval time.Duration,
	logger *log.Logger,
) *HealthMonitor {
	return &HealthMonitor{
		registry:      registry,
		probe:         probe,
		sched:         scheduler.NewKeyedScheduler(logger.Module("Scheduler")),
		probeInterval: probeInterval,
		sweepInterval: probeInterval * 2,
		logger:        logger,
	}
}

func (hm *HealthMonitor) Start(ctx context.Context) error {
	ctx, hm.cancel = context.WithCancel(ctx)

	hm.sweep(ctx)
	hm.sched.Enqueue(keySweep, hm.sweepInterval)

	hm.wg.Add(1)
	go hm.loop(ctx)
	return nil
}

func (hm *HealthMonitor) Stop() error {
	if hm.cancel != nil {
		hm.cancel()
	}
	hm.sched.Shutdown()
	hm.wg.Wait()
	return nil
}

func (hm *HealthMonitor) loop(ctx context.Context) {
	defer hm.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-hm.sched.Chan():
			if !ok {
				return
			}
			hm.fire(ctx, key)
		}
	}
}

func (hm *HealthMonitor) fire(ctx context.Context, key string) {
	if key == keySweep {
		hm.sweep(ctx)
		hm.sched.Enqueue(keySweep, hm.sweepInterval)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(key, keyServerPrefix), 10, 64)
	if err != nil {
		hm.logger.Warn("malformed probe key", log.String("key", key))
		return
	}

	healthy := hm.probe(ctx, id)
	if err := hm.registry.SetActive(ctx, id, healthy); err != nil {
		// server was removed; drop it from the probe rotation
		return
	}
	if !healthy {
		hm.logger.Warn("server probe failed", log.Int64("serverId", id))
	}
	hm.sched.Enqueue(key, hm.probeInterval)
}

// sweep enqueues a staggered probe for every registered server. Enqueueing
// an already scheduled key keeps the earlier deadline, so the rotation of
// known servers is unaffected.
func (hm *HealthMonitor) sweep(ctx context.Context) {
	servers, err := hm.registry.ListServers(ctx)
	if err != nil || len(servers) == 0 {
		return
	}

	step := hm.probeInterval / time.Duration(len(servers))
	for i, srv := range servers {
		key := fmt.Sprintf("%s%d", keyServerPrefix, srv.ID)
		hm.sched.Enqueue(key, time.Duration(i)*step)
	}
}
