package meetings

import (
	"context"
	"time"

	"github.com/openconf/meetpool/internal/errors"
)

// Role of a participant inside a meeting. The role decides which
// credential check applies on join and which backend identity is used.
type Role string

const (
	RoleModerator Role = "moderator"
	RoleAttendee  Role = "attendee"
	RoleGuest     Role = "guest"
)

// MeetingState is the lifecycle state of a meeting. A meeting only gets a
// local record once Running; Ended is terminal.
type MeetingState string

const (
	StateRunning MeetingState = "running"
	StateEnded   MeetingState = "ended"
)

// Error codes of the meetings domain. Transport maps these to HTTP statuses.
const (
	ErrMeetingNotFound    errors.Code = "meeting not found"
	ErrMeetingEnded       errors.Code = "meeting ended"
	ErrMeetingExists      errors.Code = "meeting already exists"
	ErrServerNotFound     errors.Code = "server not found"
	ErrServerNotEmpty     errors.Code = "server not empty"
	ErrServerFull         errors.Code = "server full"
	ErrNoCapableServer    errors.Code = "no capable server"
	ErrUserBanned         errors.Code = "user banned"
	ErrUserAlreadyJoined  errors.Code = "user already joined"
	ErrInvalidCredentials errors.Code = "invalid credentials"
	ErrMembershipNotFound errors.Code = "membership not found"
	ErrRecordingNotFound  errors.Code = "recording not found"
)

// Server is a registered backend conferencing server. Occupancy is the
// number of active memberships across its running meetings and never
// exceeds Limit at admission time.
type Server struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Secret    string `json:"-"`
	Limit     int    `json:"limit"`
	Occupancy int    `json:"occupancy"`
	Active    bool   `json:"active"`
}

// Free returns the remaining admission headroom.
func (s *Server) Free() int {
	return s.Limit - s.Occupancy
}

// Meeting binds an externally named meeting to the server it runs on,
// together with the credentials the backend issued at create time.
type Meeting struct {
	ExternalID  string       `json:"meetingId"`
	InternalID  string       `json:"internalMeetingId"`
	Name        string       `json:"name"`
	ServerID    int64        `json:"serverId"`
	ModeratorPW string       `json:"-"`
	AttendeePW  string       `json:"-"`
	Record      bool         `json:"record"`
	State       MeetingState `json:"state"`
	CreatedAt   time.Time    `json:"createdAt"`
	EndedAt     *time.Time   `json:"endedAt,omitempty"`
}

// User is a known participant, keyed by alias. Users are created lazily on
// their first join and survive across meetings.
type User struct {
	ID       string `json:"id"`
	Alias    string `json:"alias"`
	FullName string `json:"fullName"`
}

// Membership records one user's participation in one meeting. Banned and
// Exited memberships stay around as history; only non-exited, non-banned
// ones hold capacity.
type Membership struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meetingId"`
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
	Banned    bool      `json:"banned"`
	Exited    bool      `json:"exited"`
}

// Active reports whether this membership currently holds a capacity slot.
func (m *Membership) Active() bool {
	return !m.Banned && !m.Exited
}

// Recording is the archived stub of a recorded meeting, persisted when the
// meeting ends.
type Recording struct {
	MeetingID string    `json:"meetingId"`
	Name      string    `json:"name"`
	ServerURL string    `json:"serverUrl"`
	EndedAt   time.Time `json:"endedAt"`
}

// Registry owns servers, the meeting to server binding and the per-meeting
// membership sets. All admission-relevant mutations are per-server atomic.
type Registry interface {
	CreateServer(ctx context.Context, url, secret string, limit int) (*Server, error)
	UpdateServer(ctx context.Context, id int64, url, secret string, limit int) (*Server, error)
	DeleteServer(ctx context.Context, id int64) error
	GetServer(ctx context.Context, id int64) (*Server, error)
	ListServers(ctx context.Context) ([]*Server, error)
	SetActive(ctx context.Context, id int64, active bool) error

	AddMeeting(ctx context.Context, meeting *Meeting) error
	GetMeeting(ctx context.Context, externalID string) (*Meeting, error)
	EndMeeting(ctx context.Context, externalID string) (*Meeting, error)

	// AdmitMember re-verifies meeting liveness, ban status, capacity and
	// single-active-membership under the server mutex, then commits the
	// membership and bumps occupancy in the same critical section.
	AdmitMember(ctx context.Context, externalID string, user *User, role Role) (*Membership, error)
	GetMembership(ctx context.Context, membershipID string) (*Membership, error)
	BanMember(ctx context.Context, membershipID string) error
	ExitMember(ctx context.Context, membershipID string) error

	FindUser(ctx context.Context, alias string) (*User, error)
	IsBanned(ctx context.Context, externalID, alias string) (bool, error)
}

// Scheduler picks servers by free capacity.
type Scheduler interface {
	SelectCapableServer(ctx context.Context) (*Server, error)
	CanJoinServer(ctx context.Context, serverID int64) (bool, error)
}

// MeetingService drives the meeting lifecycle against the backend servers.
type MeetingService interface {
	CreateMeeting(ctx context.Context, req *CreateMeetingRequest) (*MeetingResponse, error)
	EndMeeting(ctx context.Context, externalID, password string) error
	GetMeetingInfo(ctx context.Context, externalID string) (*MeetingInfoResponse, error)
	IsBackendHealthy(ctx context.Context, serverID int64) bool
}

// MembershipService admits, bans and exits participants.
type MembershipService interface {
	JoinMeeting(ctx context.Context, req *JoinMeetingRequest) (*JoinResponse, error)
	BanUser(ctx context.Context, membershipID string) error
	ExitUser(ctx context.Context, membershipID string) error
}

// RecordStore archives recording stubs of ended meetings.
type RecordStore interface {
	Save(ctx context.Context, rec *Recording) error
	Get(ctx context.Context, meetingID string) (*Recording, error)
	List(ctx context.Context) ([]*Recording, error)
}

// Service-level request/response types.

type CreateMeetingRequest struct {
	Name      string
	MeetingID string
	Record    bool
}

type MeetingResponse struct {
	MeetingID   string       `json:"meetingId"`
	Name        string       `json:"name"`
	ServerID    int64        `json:"serverId"`
	ServerURL   string       `json:"serverUrl"`
	State       MeetingState `json:"state"`
	ModeratorPW string       `json:"moderatorPW"`
	AttendeePW  string       `json:"attendeePW"`
	Record      bool         `json:"record"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type MeetingInfoResponse struct {
	MeetingID        string `json:"meetingId"`
	Name             string `json:"name"`
	Running          bool   `json:"running"`
	Recording        bool   `json:"recording"`
	ParticipantCount int    `json:"participantCount"`
	ModeratorCount   int    `json:"moderatorCount"`
}

type JoinMeetingRequest struct {
	MeetingID string
	Alias     string
	FullName  string
	Role      Role
	Password  string
}

type JoinResponse struct {
	MembershipID string    `json:"membershipId"`
	MeetingID    string    `json:"meetingId"`
	UserID       string    `json:"userId"`
	Role         Role      `json:"role"`
	JoinedAt     time.Time `json:"joinedAt"`
	JoinURL      string    `json:"joinUrl"`
}
