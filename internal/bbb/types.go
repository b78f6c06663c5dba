package bbb

import (
	"context"
	"encoding/xml"
)

// Client talks to a single BigBlueButton-compatible media server.
type Client interface {
	CreateMeeting(ctx context.Context, req *CreateRequest) (*CreateResult, error)
	EndMeeting(ctx context.Context, meetingID, password string) error
	GetMeetingInfo(ctx context.Context, meetingID string) (*MeetingInfo, error)
	IsMeetingRunning(ctx context.Context, meetingID string) (bool, error)
	// JoinURL builds a signed join URL locally; no network call.
	JoinURL(req *JoinRequest) string
}

type CreateRequest struct {
	Name      string
	MeetingID string
	Record    bool
}

type CreateResult struct {
	MeetingID         string
	InternalMeetingID string
	ModeratorPW       string
	AttendeePW        string
	CreateTime        int64
}

type JoinRequest struct {
	MeetingID string
	FullName  string
	Password  string
	UserID    string
	Guest     bool
}

type MeetingInfo struct {
	MeetingName       string `json:"meetingName"`
	MeetingID         string `json:"meetingId"`
	InternalMeetingID string `json:"internalMeetingId"`
	Running           bool   `json:"running"`
	Recording         bool   `json:"recording"`
	ParticipantCount  int    `json:"participantCount"`
	ModeratorCount    int    `json:"moderatorCount"`
	CreateTime        int64  `json:"createTime"`
}

const (
	returncodeSuccess = "SUCCESS"

	messageKeyNotFound    = "notFound"
	messageKeyIDNotUnique = "idNotUnique"
)

// XML payloads of the BBB API. Every response carries a returncode and,
// on failure, a messageKey/message pair.
type createResponse struct {
	XMLName           xml.Name `xml:"response"`
	ReturnCode        string   `xml:"returncode"`
	MessageKey        string   `xml:"messageKey"`
	Message           string   `xml:"message"`
	MeetingID         string   `xml:"meetingID"`
	InternalMeetingID string   `xml:"internalMeetingID"`
	ModeratorPW       string   `xml:"moderatorPW"`
	AttendeePW        string   `xml:"attendeePW"`
	CreateTime        int64    `xml:"createTime"`
}

type endResponse struct {
	XMLName    xml.Name `xml:"response"`
	ReturnCode string   `xml:"returncode"`
	MessageKey string   `xml:"messageKey"`
	Message    string   `xml:"message"`
}

type isMeetingRunningResponse struct {
	XMLName    xml.Name `xml:"response"`
	ReturnCode string   `xml:"returncode"`
	MessageKey string   `xml:"messageKey"`
	Message    string   `xml:"message"`
	Running    bool     `xml:"running"`
}

type meetingInfoResponse struct {
	XMLName           xml.Name `xml:"response"`
	ReturnCode        string   `xml:"returncode"`
	MessageKey        string   `xml:"messageKey"`
	Message           string   `xml:"message"`
	MeetingName       string   `xml:"meetingName"`
	MeetingID         string   `xml:"meetingID"`
	InternalMeetingID string   `xml:"internalMeetingID"`
	Running           bool     `xml:"running"`
	Recording         bool     `xml:"recording"`
	ParticipantCount  int      `xml:"participantCount"`
	ModeratorCount    int      `xml:"moderatorCount"`
	CreateTime        int64    `xml:"createTime"`
}
