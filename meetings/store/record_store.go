package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/internal/redis"
	"github.com/openconf/meetpool/meetings"
)

const (
	fieldName      = "name"
	fieldServerURL = "serverUrl"
	fieldEndedAt   = "endedAt"
)

// recordStoreImpl persists recording stubs in redis: one hash per meeting
// plus a set indexing all archived meeting ids.
type recordStoreImpl struct {
	client redis.Forever
	prefix string
	logger *log.Logger
}

func NewRecordStore(client redis.Forever, prefix string, logger *log.Logger) meetings.RecordStore {
	return &recordStoreImpl{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (rs *recordStoreImpl) recordKey(meetingID string) string {
	return fmt.Sprintf("%srecord/%s", rs.prefix, meetingID)
}

func (rs *recordStoreImpl) indexKey() string {
	return rs.prefix + "records"
}

func (rs *recordStoreImpl) Save(ctx context.Context, rec *meetings.Recording) error {
	key := rs.recordKey(rec.MeetingID)
	if err := rs.client.HSet(ctx, key,
		fieldName, rec.Name,
		fieldServerURL, rec.ServerURL,
		fieldEndedAt, rec.EndedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("failed to store recording: %w", err)
	}
	if err := rs.client.SAdd(ctx, rs.indexKey(), rec.MeetingID); err != nil {
		return fmt.Errorf("failed to index recording: %w", err)
	}

	rs.logger.Info("recording archived", log.String("meetingId", rec.MeetingID))
	return nil
}

func (rs *recordStoreImpl) Get(ctx context.Context, meetingID string) (*meetings.Recording, error) {
	fields, err := rs.client.HGetAll(ctx, rs.recordKey(meetingID))
	if err != nil {
		return nil, fmt.Errorf("failed to get recording: %w", err)
	}
	if len(fields) == 0 {
		return nil, errors.Newf(meetings.ErrRecordingNotFound,
			"no recording for meeting %s", meetingID)
	}
	return rs.fromFields(meetingID, fields)
}

func (rs *recordStoreImpl) List(ctx context.Context) ([]*meetings.Recording, error) {
	ids, err := rs.client.SMembers(ctx, rs.indexKey())
	if err != nil {
		return nil, fmt.Errorf("failed to list recordings: %w", err)
	}

	out := make([]*meetings.Recording, 0, len(ids))
	for _, id := range ids {
		rec, err := rs.Get(ctx, id)
		if err != nil {
			// an index entry without its hash is skipped, not fatal
			if errors.Is(err, meetings.ErrRecordingNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndedAt.Before(out[j].EndedAt) })
	return out, nil
}

func (rs *recordStoreImpl) fromFields(meetingID string, fields map[string]string) (*meetings.Recording, error) {
	endedAt, err := time.Parse(time.RFC3339Nano, fields[fieldEndedAt])
	if err != nil {
		return nil, fmt.Errorf("malformed recording for meeting %s: %w", meetingID, err)
	}
	return &meetings.Recording{
		MeetingID: meetingID,
		Name:      fields[fieldName],
		ServerURL: fields[fieldServerURL],
		EndedAt:   endedAt,
	}, nil
}
