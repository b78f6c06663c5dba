package service

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/openconf/meetpool/internal/bbb"
	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/internal/retry"
	streamredis "github.com/openconf/meetpool/internal/stream/redis"
	isync "github.com/openconf/meetpool/internal/sync"
	"github.com/openconf/meetpool/meetings"
)

const (
	infoCacheSize = 512
	infoCacheTTL  = 5 * time.Second
)

type infoEntry struct {
	info      *meetings.MeetingInfoResponse
	fetchedAt time.Time
}

type meetingSvcImpl struct {
	registry meetings.Registry
	sched    meetings.Scheduler
	records  meetings.RecordStore
	events   streamredis.Producer
	clients  *ClientPool
	retry    retry.Retry

	// creating marks external ids with an in-flight create so a duplicate
	// create fails fast without touching the backend
	creating  *isync.Map[string, struct{}]
	infoCache *lru.Cache[string, infoEntry]
	flight    singleflight.Group

	clock  clockwork.Clock
	logger *log.Logger
}

func NewMeetingService(
	registry meetings.Registry,
	sched meetings.Scheduler,
	records meetings.RecordStore,
	events streamredis.Producer,
	clients *ClientPool,
	rt retry.Retry,
	clock clockwork.Clock,
	logger *log.Logger,
) meetings.MeetingService {
	cache, _ := lru.New[string, infoEntry](infoCacheSize)
	return &meetingSvcImpl{
		registry:  registry,
		sched:     sched,
		records:   records,
		events:    events,
		clients:   clients,
		retry:     rt,
		creating:  isync.NewMap[string, struct{}](),
		infoCache: cache,
		clock:     clock,
		logger:    logger,
	}
}

func (ms *meetingSvcImpl) CreateMeeting(ctx context.Context, req *meetings.CreateMeetingRequest) (*meetings.MeetingResponse, error) {
	if _, inflight := ms.creating.LoadOrStore(req.MeetingID, struct{}{}); inflight {
		meetingsCreateFailed.Add(ctx, 1)
		return nil, errors.Newf(meetings.ErrMeetingExists,
			"meeting %s create already in progress", req.MeetingID)
	}
	defer ms.creating.Delete(req.MeetingID)

	// duplicate running id is a local conflict; the backend is never called
	if existing, err := ms.registry.GetMeeting(ctx, req.MeetingID); err == nil &&
		existing.State == meetings.StateRunning {
		meetingsCreateFailed.Add(ctx, 1)
		return nil, errors.Newf(meetings.ErrMeetingExists,
			"meeting %s is already running", req.MeetingID)
	}

	srv, err := ms.sched.SelectCapableServer(ctx)
	if err != nil {
		meetingsCreateFailed.Add(ctx, 1)
		return nil, err
	}

	client := ms.clients.get(srv)
	var result *bbb.CreateResult
	err = ms.retry.Do(ctx, func() error {
		var opErr error
		result, opErr = client.CreateMeeting(ctx, &bbb.CreateRequest{
			Name:      req.Name,
			MeetingID: req.MeetingID,
			Record:    req.Record,
		})
		if opErr != nil && !errors.Is(opErr, bbb.ErrBackendUnavailable) {
			return backoff.Permanent(opErr)
		}
		if opErr != nil {
			backendRetries.Add(ctx, 1)
		}
		return opErr
	})
	if err != nil {
		meetingsCreateFailed.Add(ctx, 1)
		if errors.Is(err, bbb.ErrAlreadyExisted) {
			return nil, errors.Wrapf(meetings.ErrMeetingExists, err,
				"backend already hosts meeting %s", req.MeetingID)
		}
		return nil, err
	}

	meeting := &meetings.Meeting{
		ExternalID:  req.MeetingID,
		InternalID:  result.InternalMeetingID,
		Name:        req.Name,
		ServerID:    srv.ID,
		ModeratorPW: result.ModeratorPW,
		AttendeePW:  result.AttendeePW,
		Record:      req.Record,
		State:       meetings.StateRunning,
		CreatedAt:   ms.clock.Now().UTC(),
	}
	if err := ms.registry.AddMeeting(ctx, meeting); err != nil {
		meetingsCreateFailed.Add(ctx, 1)
		// best effort rollback, the backend meeting is orphaned otherwise
		if endErr := client.EndMeeting(ctx, req.MeetingID, result.ModeratorPW); endErr != nil {
			ms.logger.Warn("rollback of backend meeting failed",
				log.String("meetingId", req.MeetingID), log.Error(endErr))
		}
		return nil, err
	}

	meetingsCreated.Add(ctx, 1)
	ms.publish(ctx, "meeting.created", req.MeetingID, srv.ID)
	ms.logger.Info("meeting created",
		log.String("meetingId", req.MeetingID), log.Int64("serverId", srv.ID))

	return &meetings.MeetingResponse{
		MeetingID:   meeting.ExternalID,
		Name:        meeting.Name,
		ServerID:    srv.ID,
		ServerURL:   srv.URL,
		State:       meeting.State,
		ModeratorPW: meeting.ModeratorPW,
		AttendeePW:  meeting.AttendeePW,
		Record:      meeting.Record,
		CreatedAt:   meeting.CreatedAt,
	}, nil
}

func (ms *meetingSvcImpl) EndMeeting(ctx context.Context, externalID, password string) error {
	meeting, err := ms.registry.GetMeeting(ctx, externalID)
	if err != nil {
		return err
	}
	if meeting.State != meetings.StateRunning {
		return errors.Newf(meetings.ErrMeetingEnded, "meeting %s already ended", externalID)
	}
	if password != meeting.ModeratorPW {
		return errors.New(meetings.ErrInvalidCredentials, "moderator password mismatch")
	}

	srv, err := ms.registry.GetServer(ctx, meeting.ServerID)
	if err != nil {
		return err
	}

	// local state stays untouched unless the backend confirms the end
	if err := ms.clients.get(srv).EndMeeting(ctx, externalID, meeting.ModeratorPW); err != nil {
		return err
	}

	ended, err := ms.registry.EndMeeting(ctx, externalID)
	if err != nil {
		return err
	}
	meetingsEnded.Add(ctx, 1)
	ms.infoCache.Remove(externalID)
	ms.publish(ctx, "meeting.ended", externalID, srv.ID)

	if ended.Record && ms.records != nil {
		rec := &meetings.Recording{
			MeetingID: ended.ExternalID,
			Name:      ended.Name,
			ServerURL: srv.URL,
			EndedAt:   *ended.EndedAt,
		}
		if err := ms.records.Save(ctx, rec); err != nil {
			ms.logger.Warn("failed to archive recording",
				log.String("meetingId", externalID), log.Error(err))
		}
	}

	ms.logger.Info("meeting ended", log.String("meetingId", externalID))
	return nil
}

// GetMeetingInfo serves reads from a short-lived cache and collapses
// concurrent backend lookups for the same meeting into one call.
func (ms *meetingSvcImpl) GetMeetingInfo(ctx context.Context, externalID string) (*meetings.MeetingInfoResponse, error) {
	if entry, ok := ms.infoCache.Get(externalID); ok &&
		ms.clock.Since(entry.fetchedAt) < infoCacheTTL {
		infoCacheHits.Add(ctx, 1)
		return entry.info, nil
	}

	v, err, _ := ms.flight.Do(externalID, func() (any, error) {
		meeting, err := ms.registry.GetMeeting(ctx, externalID)
		if err != nil {
			return nil, err
		}
		srv, err := ms.registry.GetServer(ctx, meeting.ServerID)
		if err != nil {
			return nil, err
		}

		raw, err := ms.clients.get(srv).GetMeetingInfo(ctx, externalID)
		if err != nil {
			if errors.Is(err, bbb.ErrNotFound) {
				return nil, errors.Wrapf(meetings.ErrMeetingNotFound, err,
					"meeting %s unknown to backend", externalID)
			}
			return nil, err
		}

		info := &meetings.MeetingInfoResponse{
			MeetingID:        externalID,
			Name:             raw.MeetingName,
			Running:          raw.Running,
			Recording:        raw.Recording,
			ParticipantCount: raw.ParticipantCount,
			ModeratorCount:   raw.ModeratorCount,
		}
		ms.infoCache.Add(externalID, infoEntry{info: info, fetchedAt: ms.clock.Now()})
		return info, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*meetings.MeetingInfoResponse), nil
}

// IsBackendHealthy probes the server with an innocuous lookup of a meeting
// that cannot exist. Any error means unhealthy; none escape.
func (ms *meetingSvcImpl) IsBackendHealthy(ctx context.Context, serverID int64) bool {
	healthProbes.Add(ctx, 1)

	srv, err := ms.registry.GetServer(ctx, serverID)
	if err != nil {
		healthProbeFailures.Add(ctx, 1)
		return false
	}
	if _, err := ms.clients.get(srv).IsMeetingRunning(ctx, uuid.NewString()); err != nil {
		healthProbeFailures.Add(ctx, 1)
		return false
	}
	return true
}

func (ms *meetingSvcImpl) publish(ctx context.Context, event, meetingID string, serverID int64) {
	if ms.events == nil {
		return
	}
	if _, err := ms.events.Add(ctx, map[string]interface{}{
		"event":     event,
		"meetingId": meetingID,
		"serverId":  serverID,
		"ts":        ms.clock.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		ms.logger.Warn("failed to publish event",
			log.String("event", event), log.Error(err))
	}
}
