package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/meetings"
)

// serverEntry carries the server record plus the admission mutex. The mutex
// serializes "read occupancy, admit, increment" so occupancy can never pass
// the limit between the check and the commit.
type serverEntry struct {
	mu     sync.Mutex
	server meetings.Server
}

type meetingEntry struct {
	meeting     meetings.Meeting
	memberships []string
}

type registryImpl struct {
	mu sync.RWMutex

	servers      map[int64]*serverEntry
	meetings     map[string]*meetingEntry
	memberships  map[string]*meetings.Membership
	users        map[string]*meetings.User           // alias -> user
	bans         map[string]map[string]struct{}      // meetingID -> banned aliases
	nextServerID int64

	clock  clockwork.Clock
	logger *log.Logger
}

func New(clock clockwork.Clock, logger *log.Logger) meetings.Registry {
	return &registryImpl{
		servers:      make(map[int64]*serverEntry),
		meetings:     make(map[string]*meetingEntry),
		memberships:  make(map[string]*meetings.Membership),
		users:        make(map[string]*meetings.User),
		bans:         make(map[string]map[string]struct{}),
		nextServerID: 1,
		clock:        clock,
		logger:       logger,
	}
}

func (rg *registryImpl) CreateServer(ctx context.Context, url, secret string, limit int) (*meetings.Server, error) {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	id := rg.nextServerID
	rg.nextServerID++

	rg.servers[id] = &serverEntry{
		server: meetings.Server{
			ID:     id,
			URL:    url,
			Secret: secret,
			Limit:  limit,
			Active: true,
		},
	}
	serversRegistered.Add(ctx, 1)
	serversActive.Add(ctx, 1)
	rg.logger.Info("server registered",
		log.Int64("serverId", id), log.String("url", url), log.Int("limit", limit))

	srv := rg.servers[id].server
	return &srv, nil
}

func (rg *registryImpl) UpdateServer(ctx context.Context, id int64, url, secret string, limit int) (*meetings.Server, error) {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	entry, ok := rg.servers[id]
	if !ok {
		return nil, errors.Newf(meetings.ErrServerNotFound, "server %d not found", id)
	}

	entry.mu.Lock()
	entry.server.URL = url
	entry.server.Secret = secret
	entry.server.Limit = limit
	srv := entry.server
	entry.mu.Unlock()

	return &srv, nil
}

func (rg *registryImpl) DeleteServer(ctx context.Context, id int64) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	entry, ok := rg.servers[id]
	if !ok {
		return errors.Newf(meetings.ErrServerNotFound, "server %d not found", id)
	}
	for _, me := range rg.meetings {
		if me.meeting.ServerID == id && me.meeting.State == meetings.StateRunning {
			return errors.Newf(meetings.ErrServerNotEmpty,
				"server %d still hosts meeting %s", id, me.meeting.ExternalID)
		}
	}

	delete(rg.servers, id)
	serversRegistered.Add(ctx, -1)
	if entry.server.Active {
		serversActive.Add(ctx, -1)
	}
	rg.logger.Info("server removed", log.Int64("serverId", entry.server.ID))
	return nil
}

func (rg *registryImpl) GetServer(ctx context.Context, id int64) (*meetings.Server, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	entry, ok := rg.servers[id]
	if !ok {
		return nil, errors.Newf(meetings.ErrServerNotFound, "server %d not found", id)
	}

	entry.mu.Lock()
	srv := entry.server
	entry.mu.Unlock()
	return &srv, nil
}

func (rg *registryImpl) ListServers(ctx context.Context) ([]*meetings.Server, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	out := make([]*meetings.Server, 0, len(rg.servers))
	for _, entry := range rg.servers {
		entry.mu.Lock()
		srv := entry.server
		entry.mu.Unlock()
		out = append(out, &srv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (rg *registryImpl) SetActive(ctx context.Context, id int64, active bool) error {
	rg.mu.RLock()
	entry, ok := rg.servers[id]
	rg.mu.RUnlock()
	if !ok {
		return errors.Newf(meetings.ErrServerNotFound, "server %d not found", id)
	}

	entry.mu.Lock()
	changed := entry.server.Active != active
	entry.server.Active = active
	entry.mu.Unlock()

	if changed {
		if active {
			serversActive.Add(ctx, 1)
		} else {
			serversActive.Add(ctx, -1)
		}
		rg.logger.Info("server liveness changed",
			log.Int64("serverId", id), log.Bool("active", active))
	}
	return nil
}

func (rg *registryImpl) AddMeeting(ctx context.Context, meeting *meetings.Meeting) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	if _, ok := rg.servers[meeting.ServerID]; !ok {
		return errors.Newf(meetings.ErrServerNotFound, "server %d not found", meeting.ServerID)
	}
	if existing, ok := rg.meetings[meeting.ExternalID]; ok &&
		existing.meeting.State == meetings.StateRunning {
		return errors.Newf(meetings.ErrMeetingExists,
			"meeting %s is already running", meeting.ExternalID)
	}

	// an ended meeting with the same id may be recreated; the new run replaces it
	m := *meeting
	m.State = meetings.StateRunning
	if m.CreatedAt.IsZero() {
		m.CreatedAt = rg.clock.Now().UTC()
	}
	rg.meetings[m.ExternalID] = &meetingEntry{meeting: m}
	meetingsRunning.Add(ctx, 1)
	return nil
}

func (rg *registryImpl) GetMeeting(ctx context.Context, externalID string) (*meetings.Meeting, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	entry, ok := rg.meetings[externalID]
	if !ok {
		return nil, errors.Newf(meetings.ErrMeetingNotFound, "meeting %s not found", externalID)
	}
	m := entry.meeting
	return &m, nil
}

func (rg *registryImpl) EndMeeting(ctx context.Context, externalID string) (*meetings.Meeting, error) {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	entry, ok := rg.meetings[externalID]
	if !ok {
		return nil, errors.Newf(meetings.ErrMeetingNotFound, "meeting %s not found", externalID)
	}
	if entry.meeting.State != meetings.StateRunning {
		return nil, errors.Newf(meetings.ErrMeetingEnded, "meeting %s already ended", externalID)
	}

	freed := 0
	for _, msID := range entry.memberships {
		ms := rg.memberships[msID]
		if ms != nil && ms.Active() {
			ms.Exited = true
			freed++
		}
	}

	if srv, ok := rg.servers[entry.meeting.ServerID]; ok && freed > 0 {
		srv.mu.Lock()
		srv.server.Occupancy -= freed
		srv.mu.Unlock()
	}

	now := rg.clock.Now().UTC()
	entry.meeting.State = meetings.StateEnded
	entry.meeting.EndedAt = &now
	m := entry.meeting

	meetingsRunning.Add(ctx, -1)
	occupancyTotal.Add(ctx, int64(-freed))

	rg.logger.Info("meeting ended",
		log.String("meetingId", externalID), log.Int("freedSlots", freed))
	return &m, nil
}

// AdmitMember commits a join. Everything admission-relevant is re-verified
// under the server mutex so a concurrent admit cannot slip past the limit
// or create a second active membership for the same user.
func (rg *registryImpl) AdmitMember(ctx context.Context, externalID string, user *meetings.User, role meetings.Role) (*meetings.Membership, error) {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	entry, ok := rg.meetings[externalID]
	if !ok {
		return nil, errors.Newf(meetings.ErrMeetingNotFound, "meeting %s not found", externalID)
	}
	if entry.meeting.State != meetings.StateRunning {
		return nil, errors.Newf(meetings.ErrMeetingEnded, "meeting %s already ended", externalID)
	}
	srv, ok := rg.servers[entry.meeting.ServerID]
	if !ok {
		return nil, errors.Newf(meetings.ErrServerNotFound, "server %d not found", entry.meeting.ServerID)
	}
	if banned, ok := rg.bans[externalID]; ok {
		if _, hit := banned[user.Alias]; hit {
			return nil, errors.Newf(meetings.ErrUserBanned,
				"user %s is banned from meeting %s", user.Alias, externalID)
		}
	}

	stored, ok := rg.users[user.Alias]
	if !ok {
		u := *user
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		rg.users[u.Alias] = &u
		stored = &u
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, msID := range entry.memberships {
		ms := rg.memberships[msID]
		if ms != nil && ms.UserID == stored.ID && ms.Active() {
			return nil, errors.Newf(meetings.ErrUserAlreadyJoined,
				"user %s already joined meeting %s", user.Alias, externalID)
		}
	}
	if srv.server.Occupancy >= srv.server.Limit {
		return nil, errors.Newf(meetings.ErrServerFull,
			"server %d is at capacity (%d/%d)",
			srv.server.ID, srv.server.Occupancy, srv.server.Limit)
	}

	ms := &meetings.Membership{
		ID:        uuid.NewString(),
		MeetingID: externalID,
		UserID:    stored.ID,
		Role:      role,
		JoinedAt:  rg.clock.Now().UTC(),
	}
	rg.memberships[ms.ID] = ms
	entry.memberships = append(entry.memberships, ms.ID)
	srv.server.Occupancy++
	occupancyTotal.Add(ctx, 1)

	out := *ms
	return &out, nil
}

func (rg *registryImpl) GetMembership(ctx context.Context, membershipID string) (*meetings.Membership, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	ms, ok := rg.memberships[membershipID]
	if !ok {
		return nil, errors.Newf(meetings.ErrMembershipNotFound, "membership %s not found", membershipID)
	}
	out := *ms
	return &out, nil
}

// BanMember is idempotent; the ban outlives the membership and applies to
// every future join of the same alias on the same meeting.
func (rg *registryImpl) BanMember(ctx context.Context, membershipID string) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	ms, ok := rg.memberships[membershipID]
	if !ok {
		return errors.Newf(meetings.ErrMembershipNotFound, "membership %s not found", membershipID)
	}
	if ms.Banned {
		return nil
	}

	wasActive := ms.Active()
	ms.Banned = true

	alias := ""
	for a, u := range rg.users {
		if u.ID == ms.UserID {
			alias = a
			break
		}
	}
	if alias != "" {
		if rg.bans[ms.MeetingID] == nil {
			rg.bans[ms.MeetingID] = make(map[string]struct{})
		}
		rg.bans[ms.MeetingID][alias] = struct{}{}
	}

	if wasActive {
		rg.releaseSlot(ctx, ms.MeetingID)
	}
	rg.logger.Info("user banned",
		log.String("membershipId", membershipID), log.String("meetingId", ms.MeetingID))
	return nil
}

func (rg *registryImpl) ExitMember(ctx context.Context, membershipID string) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	ms, ok := rg.memberships[membershipID]
	if !ok {
		return errors.Newf(meetings.ErrMembershipNotFound, "membership %s not found", membershipID)
	}
	if !ms.Active() {
		return nil
	}

	ms.Exited = true
	rg.releaseSlot(ctx, ms.MeetingID)
	return nil
}

func (rg *registryImpl) FindUser(ctx context.Context, alias string) (*meetings.User, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	u, ok := rg.users[alias]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (rg *registryImpl) IsBanned(ctx context.Context, externalID, alias string) (bool, error) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	banned, ok := rg.bans[externalID]
	if !ok {
		return false, nil
	}
	_, hit := banned[alias]
	return hit, nil
}

// releaseSlot gives one capacity slot back to the meeting's server.
// Callers hold rg.mu.
func (rg *registryImpl) releaseSlot(ctx context.Context, externalID string) {
	entry, ok := rg.meetings[externalID]
	if !ok {
		return
	}
	srv, ok := rg.servers[entry.meeting.ServerID]
	if !ok {
		return
	}
	srv.mu.Lock()
	if srv.server.Occupancy > 0 {
		srv.server.Occupancy--
		occupancyTotal.Add(ctx, -1)
	}
	srv.mu.Unlock()
}
