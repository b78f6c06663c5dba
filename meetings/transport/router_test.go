package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/openconf/meetpool/internal/bbb"
	interrors "github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/jwt"
	jwtmocks "github.com/openconf/meetpool/internal/jwt/mocks"
	"github.com/openconf/meetpool/internal/log"
	"github.com/openconf/meetpool/meetings"
	"github.com/openconf/meetpool/meetings/mocks"
)

type routerMocks struct {
	meetingSvc *mocks.MockMeetingService
	memberSvc  *mocks.MockMembershipService
	registry   *mocks.MockRegistry
	sched      *mocks.MockScheduler
	records    *mocks.MockRecordStore
	jwtAuth    *jwtmocks.MockAuth
}

func setupRouter(t *testing.T) (*Router, *routerMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := &routerMocks{
		meetingSvc: mocks.NewMockMeetingService(ctrl),
		memberSvc:  mocks.NewMockMembershipService(ctrl),
		registry:   mocks.NewMockRegistry(ctrl),
		sched:      mocks.NewMockScheduler(ctrl),
		records:    mocks.NewMockRecordStore(ctrl),
		jwtAuth:    jwtmocks.NewMockAuth(ctrl),
	}
	router := NewRouter(m.meetingSvc, m.memberSvc, m.registry, m.sched, m.records, m.jwtAuth, log.NewTest(t))
	return router, m
}

func doJSON(router *Router, method, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.Handler().ServeHTTP(w, req)
	return w
}

func adminHeaders(m *routerMocks) map[string]string {
	m.jwtAuth.EXPECT().
		Verify("admin-token").
		Return(&jwt.Payload{Subject: "ops", Role: "admin"}, nil)
	return map[string]string{"Authorization": "Bearer admin-token"}
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, "GET", "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestCreateMeeting(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			CreateMeeting(gomock.Any(), &meetings.CreateMeetingRequest{
				Name: "Standup", MeetingID: "standup", Record: true,
			}).
			Return(&meetings.MeetingResponse{
				MeetingID: "standup",
				Name:      "Standup",
				ServerID:  1,
				State:     meetings.StateRunning,
			}, nil)

		w := doJSON(router, "POST", "/api/meetings", map[string]any{
			"meetingId": "standup", "name": "Standup", "record": true,
		}, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Conflict", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			CreateMeeting(gomock.Any(), gomock.Any()).
			Return(nil, interrors.New(meetings.ErrMeetingExists, "already running"))

		w := doJSON(router, "POST", "/api/meetings", map[string]any{
			"meetingId": "standup", "name": "Standup",
		}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("NoCapacity", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			CreateMeeting(gomock.Any(), gomock.Any()).
			Return(nil, interrors.New(meetings.ErrNoCapableServer, "no server"))

		w := doJSON(router, "POST", "/api/meetings", map[string]any{
			"meetingId": "standup", "name": "Standup",
		}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("BackendUnavailable", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			CreateMeeting(gomock.Any(), gomock.Any()).
			Return(nil, interrors.New(bbb.ErrBackendUnavailable, "timeout"))

		w := doJSON(router, "POST", "/api/meetings", map[string]any{
			"meetingId": "standup", "name": "Standup",
		}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("BackendRejected", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			CreateMeeting(gomock.Any(), gomock.Any()).
			Return(nil, interrors.New(bbb.ErrBackendRejected, "checksum error"))

		w := doJSON(router, "POST", "/api/meetings", map[string]any{
			"meetingId": "standup", "name": "Standup",
		}, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("InvalidMeetingID", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, "POST", "/api/meetings", map[string]any{
			"meetingId": "a!", "name": "Standup",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetMeetingInfo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			GetMeetingInfo(gomock.Any(), "standup").
			Return(&meetings.MeetingInfoResponse{
				MeetingID: "standup", Running: true, ParticipantCount: 4,
			}, nil)

		w := doJSON(router, "GET", "/api/meetings/standup", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Meeting meetings.MeetingInfoResponse `json:"meeting"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Meeting.Running)
		assert.Equal(t, 4, response.Meeting.ParticipantCount)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			GetMeetingInfo(gomock.Any(), "ghost-1").
			Return(nil, interrors.New(meetings.ErrMeetingNotFound, "not found"))

		w := doJSON(router, "GET", "/api/meetings/ghost-1", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestJoinMeeting(t *testing.T) {
	joinBody := map[string]any{
		"alias": "alice", "fullName": "Alice", "role": "moderator", "password": "modpw",
	}

	t.Run("RedirectsToJoinURL", func(t *testing.T) {
		router, m := setupRouter(t)

		m.memberSvc.EXPECT().
			JoinMeeting(gomock.Any(), &meetings.JoinMeetingRequest{
				MeetingID: "standup",
				Alias:     "alice",
				FullName:  "Alice",
				Role:      meetings.RoleModerator,
				Password:  "modpw",
			}).
			Return(&meetings.JoinResponse{
				MembershipID: "ms-1",
				MeetingID:    "standup",
				JoinURL:      "https://bbb-1.example.com/api/join?x=1",
			}, nil)

		w := doJSON(router, "POST", "/api/meetings/standup/join", joinBody, nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://bbb-1.example.com/api/join?x=1", w.Header().Get("Location"))
	})

	t.Run("Banned", func(t *testing.T) {
		router, m := setupRouter(t)

		m.memberSvc.EXPECT().
			JoinMeeting(gomock.Any(), gomock.Any()).
			Return(nil, interrors.New(meetings.ErrUserBanned, "banned"))

		w := doJSON(router, "POST", "/api/meetings/standup/join", joinBody, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ServerFull", func(t *testing.T) {
		router, m := setupRouter(t)

		m.memberSvc.EXPECT().
			JoinMeeting(gomock.Any(), gomock.Any()).
			Return(nil, interrors.New(meetings.ErrServerFull, "full"))

		w := doJSON(router, "POST", "/api/meetings/standup/join", joinBody, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		router, m := setupRouter(t)

		m.memberSvc.EXPECT().
			JoinMeeting(gomock.Any(), gomock.Any()).
			Return(nil, interrors.New(meetings.ErrInvalidCredentials, "wrong password"))

		w := doJSON(router, "POST", "/api/meetings/standup/join", joinBody, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, "POST", "/api/meetings/standup/join", map[string]any{
			"alias": "alice", "fullName": "Alice", "role": "overlord",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEndMeeting(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			EndMeeting(gomock.Any(), "standup", "modpw").
			Return(nil)

		w := doJSON(router, "POST", "/api/meetings/standup/end",
			map[string]any{"password": "modpw"}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("AlreadyEnded", func(t *testing.T) {
		router, m := setupRouter(t)

		m.meetingSvc.EXPECT().
			EndMeeting(gomock.Any(), "standup", "modpw").
			Return(interrors.New(meetings.ErrMeetingEnded, "already ended"))

		w := doJSON(router, "POST", "/api/meetings/standup/end",
			map[string]any{"password": "modpw"}, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestExitMember(t *testing.T) {
	membershipID := "0c95cf77-7b31-4c4c-8d52-9bb85b2e904e"

	t.Run("Success", func(t *testing.T) {
		router, m := setupRouter(t)

		m.memberSvc.EXPECT().ExitUser(gomock.Any(), membershipID).Return(nil)

		w := doJSON(router, "POST", "/api/members/"+membershipID+"/exit", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, m := setupRouter(t)

		m.memberSvc.EXPECT().
			ExitUser(gomock.Any(), membershipID).
			Return(interrors.New(meetings.ErrMembershipNotFound, "not found"))

		w := doJSON(router, "POST", "/api/members/"+membershipID+"/exit", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminAuth(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, "GET", "/api/admin/servers", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		router, m := setupRouter(t)

		m.jwtAuth.EXPECT().
			Verify("bad-token").
			Return(nil, interrors.New(jwt.ErrInvalidToken, "invalid token"))

		w := doJSON(router, "GET", "/api/admin/servers", nil,
			map[string]string{"Authorization": "Bearer bad-token"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("WrongRole", func(t *testing.T) {
		router, m := setupRouter(t)

		m.jwtAuth.EXPECT().
			Verify("user-token").
			Return(&jwt.Payload{Subject: "alice", Role: "attendee"}, nil)

		w := doJSON(router, "GET", "/api/admin/servers", nil,
			map[string]string{"Authorization": "Bearer user-token"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminServers(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.registry.EXPECT().
			CreateServer(gomock.Any(), "https://bbb-1.example.com", "secret", 50).
			Return(&meetings.Server{ID: 1, URL: "https://bbb-1.example.com", Limit: 50, Active: true}, nil)

		w := doJSON(router, "POST", "/api/admin/servers", map[string]any{
			"url": "https://bbb-1.example.com", "secret": "secret", "limit": 50,
		}, headers)
		assert.Equal(t, http.StatusCreated, w.Code)

		// the shared secret never leaves the API
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("List", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.registry.EXPECT().
			ListServers(gomock.Any()).
			Return([]*meetings.Server{{ID: 1}, {ID: 2}}, nil)

		w := doJSON(router, "GET", "/api/admin/servers", nil, headers)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(2), response["count"])
	})

	t.Run("DeleteNonEmpty", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.registry.EXPECT().
			DeleteServer(gomock.Any(), int64(1)).
			Return(interrors.New(meetings.ErrServerNotEmpty, "still hosts meetings"))

		w := doJSON(router, "DELETE", "/api/admin/servers/1", nil, headers)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Update", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.registry.EXPECT().
			UpdateServer(gomock.Any(), int64(1), "https://bbb-2.example.com", "s2", 80).
			Return(&meetings.Server{ID: 1, URL: "https://bbb-2.example.com", Limit: 80}, nil)

		w := doJSON(router, "PUT", "/api/admin/servers/1", map[string]any{
			"url": "https://bbb-2.example.com", "secret": "s2", "limit": 80,
		}, headers)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Capable", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.sched.EXPECT().
			SelectCapableServer(gomock.Any()).
			Return(&meetings.Server{ID: 3, Limit: 100, Occupancy: 10, Active: true}, nil)

		w := doJSON(router, "GET", "/api/admin/servers/capable", nil, headers)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CapableNone", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.sched.EXPECT().
			SelectCapableServer(gomock.Any()).
			Return(nil, interrors.New(meetings.ErrNoCapableServer, "no free capacity"))

		w := doJSON(router, "GET", "/api/admin/servers/capable", nil, headers)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminBan(t *testing.T) {
	membershipID := "0c95cf77-7b31-4c4c-8d52-9bb85b2e904e"

	router, m := setupRouter(t)
	headers := adminHeaders(m)

	m.memberSvc.EXPECT().BanUser(gomock.Any(), membershipID).Return(nil)

	w := doJSON(router, "POST", "/api/admin/members/"+membershipID+"/ban", nil, headers)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRecordings(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.records.EXPECT().
			Get(gomock.Any(), "standup").
			Return(&meetings.Recording{MeetingID: "standup", Name: "Standup"}, nil)

		w := doJSON(router, "GET", "/api/admin/recordings/standup", nil, headers)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetMissing", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.records.EXPECT().
			Get(gomock.Any(), "ghost-1").
			Return(nil, interrors.New(meetings.ErrRecordingNotFound, "no recording"))

		w := doJSON(router, "GET", "/api/admin/recordings/ghost-1", nil, headers)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List", func(t *testing.T) {
		router, m := setupRouter(t)
		headers := adminHeaders(m)

		m.records.EXPECT().
			List(gomock.Any()).
			Return([]*meetings.Recording{{MeetingID: "standup"}}, nil)

		w := doJSON(router, "GET", "/api/admin/recordings", nil, headers)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
