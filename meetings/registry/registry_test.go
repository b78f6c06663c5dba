package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"

	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/meetings"
)

type RegistryTestSuite struct {
	suite.Suite
	clock clockwork.Clock
	reg   meetings.Registry
	ctx   context.Context
}

func (s *RegistryTestSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.reg = New(s.clock, log.NewNop())
	s.ctx = context.Background()
}

func (s *RegistryTestSuite) addServer(limit int) *meetings.Server {
	srv, err := s.reg.CreateServer(s.ctx, "https://bbb-1.example.com", "secret", limit)
	s.Require().NoError(err)
	return srv
}

func (s *RegistryTestSuite) addMeeting(serverID int64, externalID string) {
	err := s.reg.AddMeeting(s.ctx, &meetings.Meeting{
		ExternalID:  externalID,
		Name:        "Test Meeting",
		ServerID:    serverID,
		ModeratorPW: "modpw",
		AttendeePW:  "attpw",
	})
	s.Require().NoError(err)
}

func (s *RegistryTestSuite) TestServerCRUD() {
	srv := s.addServer(10)
	s.Equal(int64(1), srv.ID)
	s.True(srv.Active)
	s.Equal(10, srv.Limit)

	updated, err := s.reg.UpdateServer(s.ctx, srv.ID, "https://bbb-2.example.com", "new-secret", 20)
	s.NoError(err)
	s.Equal(20, updated.Limit)
	s.Equal("https://bbb-2.example.com", updated.URL)

	list, err := s.reg.ListServers(s.ctx)
	s.NoError(err)
	s.Len(list, 1)

	s.NoError(s.reg.DeleteServer(s.ctx, srv.ID))
	_, err = s.reg.GetServer(s.ctx, srv.ID)
	s.True(errors.Is(err, meetings.ErrServerNotFound))
}

func (s *RegistryTestSuite) TestServersSortedByID() {
	s.addServer(5)
	s.addServer(5)
	s.addServer(5)

	list, err := s.reg.ListServers(s.ctx)
	s.NoError(err)
	s.Len(list, 3)
	s.Equal(int64(1), list[0].ID)
	s.Equal(int64(2), list[1].ID)
	s.Equal(int64(3), list[2].ID)
}

func (s *RegistryTestSuite) TestDeleteServerWithRunningMeeting() {
	srv := s.addServer(10)
	s.addMeeting(srv.ID, "standup")

	err := s.reg.DeleteServer(s.ctx, srv.ID)
	s.True(errors.Is(err, meetings.ErrServerNotEmpty))

	_, err = s.reg.EndMeeting(s.ctx, "standup")
	s.NoError(err)
	s.NoError(s.reg.DeleteServer(s.ctx, srv.ID))
}

func (s *RegistryTestSuite) TestDuplicateRunningMeeting() {
	srv := s.addServer(10)
	s.addMeeting(srv.ID, "standup")

	err := s.reg.AddMeeting(s.ctx, &meetings.Meeting{ExternalID: "standup", ServerID: srv.ID})
	s.True(errors.Is(err, meetings.ErrMeetingExists))

	// once ended, the same external id may run again
	_, err = s.reg.EndMeeting(s.ctx, "standup")
	s.NoError(err)
	s.NoError(s.reg.AddMeeting(s.ctx, &meetings.Meeting{ExternalID: "standup", ServerID: srv.ID}))
}

func (s *RegistryTestSuite) TestAdmitMember() {
	srv := s.addServer(2)
	s.addMeeting(srv.ID, "standup")

	ms, err := s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice", FullName: "Alice"}, meetings.RoleModerator)
	s.NoError(err)
	s.NotEmpty(ms.ID)
	s.NotEmpty(ms.UserID)
	s.Equal(meetings.RoleModerator, ms.Role)

	got, err := s.reg.GetServer(s.ctx, srv.ID)
	s.NoError(err)
	s.Equal(1, got.Occupancy)
}

func (s *RegistryTestSuite) TestAdmitRejectsSecondActiveMembership() {
	srv := s.addServer(5)
	s.addMeeting(srv.ID, "standup")

	_, err := s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.NoError(err)

	_, err = s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.True(errors.Is(err, meetings.ErrUserAlreadyJoined))
}

func (s *RegistryTestSuite) TestAdmitRespectsCapacity() {
	srv := s.addServer(1)
	s.addMeeting(srv.ID, "standup")

	_, err := s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.NoError(err)

	_, err = s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "bob"}, meetings.RoleAttendee)
	s.True(errors.Is(err, meetings.ErrServerFull))
}

func (s *RegistryTestSuite) TestConcurrentAdmitsNeverExceedLimit() {
	const limit = 10
	const contenders = 50

	srv := s.addServer(limit)
	s.addMeeting(srv.ID, "standup")

	var wg sync.WaitGroup
	admitted := make(chan struct{}, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.reg.AdmitMember(s.ctx, "standup",
				&meetings.User{Alias: fmt.Sprintf("user-%d", n)}, meetings.RoleAttendee)
			if err == nil {
				admitted <- struct{}{}
			}
		}(i)
	}
	wg.Wait()
	close(admitted)

	count := 0
	for range admitted {
		count++
	}
	s.Equal(limit, count)

	got, err := s.reg.GetServer(s.ctx, srv.ID)
	s.NoError(err)
	s.Equal(limit, got.Occupancy)
}

func (s *RegistryTestSuite) TestAdmitRejectsEndedMeeting() {
	srv := s.addServer(5)
	s.addMeeting(srv.ID, "standup")
	_, err := s.reg.EndMeeting(s.ctx, "standup")
	s.NoError(err)

	_, err = s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.True(errors.Is(err, meetings.ErrMeetingEnded))
}

func (s *RegistryTestSuite) TestBanMember() {
	srv := s.addServer(5)
	s.addMeeting(srv.ID, "standup")

	ms, err := s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.NoError(err)

	s.NoError(s.reg.BanMember(s.ctx, ms.ID))
	// idempotent: second ban changes nothing
	s.NoError(s.reg.BanMember(s.ctx, ms.ID))

	got, err := s.reg.GetServer(s.ctx, srv.ID)
	s.NoError(err)
	s.Equal(0, got.Occupancy)

	banned, err := s.reg.IsBanned(s.ctx, "standup", "alice")
	s.NoError(err)
	s.True(banned)

	// the ban is permanent for this meeting
	_, err = s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.True(errors.Is(err, meetings.ErrUserBanned))
}

func (s *RegistryTestSuite) TestExitMember() {
	srv := s.addServer(5)
	s.addMeeting(srv.ID, "standup")

	ms, err := s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.NoError(err)

	s.NoError(s.reg.ExitMember(s.ctx, ms.ID))
	s.NoError(s.reg.ExitMember(s.ctx, ms.ID))

	got, err := s.reg.GetServer(s.ctx, srv.ID)
	s.NoError(err)
	s.Equal(0, got.Occupancy)

	// history is kept
	stored, err := s.reg.GetMembership(s.ctx, ms.ID)
	s.NoError(err)
	s.True(stored.Exited)
	s.False(stored.Banned)

	// exit is not a ban; the user may come back
	_, err = s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.NoError(err)
}

func (s *RegistryTestSuite) TestEndMeetingFreesOnlyActiveSlots() {
	srv := s.addServer(5)
	s.addMeeting(srv.ID, "standup")

	_, err := s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice"}, meetings.RoleAttendee)
	s.NoError(err)
	ms2, err := s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "bob"}, meetings.RoleAttendee)
	s.NoError(err)
	s.NoError(s.reg.ExitMember(s.ctx, ms2.ID))

	ended, err := s.reg.EndMeeting(s.ctx, "standup")
	s.NoError(err)
	s.Equal(meetings.StateEnded, ended.State)
	s.NotNil(ended.EndedAt)

	got, err := s.reg.GetServer(s.ctx, srv.ID)
	s.NoError(err)
	s.Equal(0, got.Occupancy)

	_, err = s.reg.EndMeeting(s.ctx, "standup")
	s.True(errors.Is(err, meetings.ErrMeetingEnded))
}

func (s *RegistryTestSuite) TestFindUserCreatedOnFirstJoin() {
	srv := s.addServer(5)
	s.addMeeting(srv.ID, "standup")

	u, err := s.reg.FindUser(s.ctx, "alice")
	s.NoError(err)
	s.Nil(u)

	_, err = s.reg.AdmitMember(s.ctx, "standup",
		&meetings.User{Alias: "alice", FullName: "Alice"}, meetings.RoleAttendee)
	s.NoError(err)

	u, err = s.reg.FindUser(s.ctx, "alice")
	s.NoError(err)
	s.Require().NotNil(u)
	s.NotEmpty(u.ID)
	s.Equal("Alice", u.FullName)
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
