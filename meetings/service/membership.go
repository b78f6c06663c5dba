package service

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/openconf/meetpool/internal/bbb"
	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/meetings"
)

// rolePolicy decides the credential check and the backend join identity for
// a role. Moderators and attendees authenticate with the meeting passwords
// issued at create time; guests carry no password and join flagged as guest.
type rolePolicy struct {
	password func(m *meetings.Meeting) string
	userID   string
	guest    bool
}

var rolePolicies = map[meetings.Role]rolePolicy{
	meetings.RoleModerator: {
		password: func(m *meetings.Meeting) string { return m.ModeratorPW },
		userID:   "1",
	},
	meetings.RoleAttendee: {
		password: func(m *meetings.Meeting) string { return m.AttendeePW },
		userID:   "2",
	},
	meetings.RoleGuest: {
		guest: true,
	},
}

type membershipSvcImpl struct {
	registry meetings.Registry
	sched    meetings.Scheduler
	clients  *ClientPool
	clock    clockwork.Clock
	logger   *log.Logger
}

func NewMembershipService(
	registry meetings.Registry,
	sched meetings.Scheduler,
	clients *ClientPool,
	clock clockwork.Clock,
	logger *log.Logger,
) meetings.MembershipService {
	return &membershipSvcImpl{
		registry: registry,
		sched:    sched,
		clients:  clients,
		clock:    clock,
		logger:   logger,
	}
}

// JoinMeeting runs the admission checks in a fixed order so a request that
// fails several of them reports the first failure: meeting liveness, then
// ban status, then capacity, then credentials. The registry re-verifies the
// volatile ones atomically when the membership is committed.
func (mb *membershipSvcImpl) JoinMeeting(ctx context.Context, req *meetings.JoinMeetingRequest) (*meetings.JoinResponse, error) {
	meeting, err := mb.registry.GetMeeting(ctx, req.MeetingID)
	if err != nil {
		return nil, mb.reject(ctx, err, "meeting_not_found")
	}
	if meeting.State != meetings.StateRunning {
		return nil, mb.reject(ctx,
			errors.Newf(meetings.ErrMeetingEnded, "meeting %s already ended", req.MeetingID),
			"meeting_ended")
	}

	banned, err := mb.registry.IsBanned(ctx, req.MeetingID, req.Alias)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, mb.reject(ctx,
			errors.Newf(meetings.ErrUserBanned,
				"user %s is banned from meeting %s", req.Alias, req.MeetingID),
			"banned")
	}

	ok, err := mb.sched.CanJoinServer(ctx, meeting.ServerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, mb.reject(ctx,
			errors.Newf(meetings.ErrServerFull,
				"server %d is at capacity", meeting.ServerID),
			"server_full")
	}

	policy, ok := rolePolicies[req.Role]
	if !ok {
		return nil, mb.reject(ctx,
			errors.Newf(meetings.ErrInvalidCredentials, "unknown role %s", req.Role),
			"bad_credentials")
	}
	if policy.password != nil && req.Password != policy.password(meeting) {
		return nil, mb.reject(ctx,
			errors.Newf(meetings.ErrInvalidCredentials,
				"wrong password for role %s", req.Role),
			"bad_credentials")
	}

	user := &meetings.User{Alias: req.Alias, FullName: req.FullName}
	if existing, err := mb.registry.FindUser(ctx, req.Alias); err == nil && existing != nil {
		user = existing
	}

	membership, err := mb.registry.AdmitMember(ctx, req.MeetingID, user, req.Role)
	if err != nil {
		return nil, mb.reject(ctx, err, "admission")
	}

	srv, err := mb.registry.GetServer(ctx, meeting.ServerID)
	if err != nil {
		return nil, err
	}

	joinReq := &bbb.JoinRequest{
		MeetingID: req.MeetingID,
		FullName:  req.FullName,
		UserID:    policy.userID,
		Guest:     policy.guest,
	}
	if policy.password != nil {
		joinReq.Password = policy.password(meeting)
	}

	joinAdmitted.Add(ctx, 1)
	mb.logger.Info("user joined",
		log.String("meetingId", req.MeetingID),
		log.String("alias", req.Alias),
		log.String("role", string(req.Role)))

	return &meetings.JoinResponse{
		MembershipID: membership.ID,
		MeetingID:    membership.MeetingID,
		UserID:       membership.UserID,
		Role:         membership.Role,
		JoinedAt:     membership.JoinedAt,
		JoinURL:      mb.clients.get(srv).JoinURL(joinReq),
	}, nil
}

func (mb *membershipSvcImpl) BanUser(ctx context.Context, membershipID string) error {
	if err := mb.registry.BanMember(ctx, membershipID); err != nil {
		return err
	}
	usersBanned.Add(ctx, 1)
	return nil
}

func (mb *membershipSvcImpl) ExitUser(ctx context.Context, membershipID string) error {
	if err := mb.registry.ExitMember(ctx, membershipID); err != nil {
		return err
	}
	usersExited.Add(ctx, 1)
	return nil
}

func (mb *membershipSvcImpl) reject(ctx context.Context, err error, reason string) error {
	joinRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	return err
}
