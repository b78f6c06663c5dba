package transport

// CreateMeetingRequest is the body of POST /api/meetings.
type CreateMeetingRequest struct {
	// MeetingID: 3-64 characters (letters, numbers, hyphens, underscores)
	MeetingID string `json:"meetingId" binding:"required,meetingid"`
	// Name: display name shown to participants
	Name string `json:"name" binding:"required,min=1,max=128"`
	// Record: ask the backend to record the session
	Record bool `json:"record"`
}

// MeetingURI binds the :meetingId path parameter.
type MeetingURI struct {
	MeetingID string `uri:"meetingId" binding:"required,meetingid"`
}

// JoinMeetingBody is the body of POST /api/meetings/:meetingId/join.
type JoinMeetingBody struct {
	// Alias: stable identity of the user across meetings
	Alias string `json:"alias" binding:"required,alias"`
	// FullName: display name inside the meeting
	FullName string `json:"fullName" binding:"required,fullname"`
	// Role: moderator, attendee or guest
	Role string `json:"role" binding:"required,role"`
	// Password: required for moderator and attendee roles
	Password string `json:"password" binding:"omitempty,max=64"`
}

// EndMeetingBody is the body of POST /api/meetings/:meetingId/end.
type EndMeetingBody struct {
	Password string `json:"password" binding:"required,max=64"`
}

// MembershipURI binds the :membershipId path parameter.
type MembershipURI struct {
	MembershipID string `uri:"membershipId" binding:"required,uuid"`
}

// UpsertServerBody is the body of server create and update calls.
type UpsertServerBody struct {
	URL string `json:"url" binding:"required,url"`
	// Secret: shared API secret of the backend server
	Secret string `json:"secret" binding:"required,min=1,max=128"`
	// Limit: admission capacity, at least 1
	Limit int `json:"limit" binding:"required,min=1"`
}

// ServerURI binds the :serverId path parameter.
type ServerURI struct {
	ServerID int64 `uri:"serverId" binding:"required,min=1"`
}
