package bbb

import (
	"context"
	"encoding/xml"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/openconf/meetpool/internal/errors"
	"github.com/openconf/meetpool/internal/log"
)

const (
	actionCreate           = "create"
	actionEnd              = "end"
	actionGetMeetingInfo   = "getMeetingInfo"
	actionIsMeetingRunning = "isMeetingRunning"
	actionJoin             = "join"

	bbbAPITimeout = 10 * time.Second
)

var (
	client = resty.New().
		SetTimeout(bbbAPITimeout)
)

type apiImpl struct {
	baseURL string
	secret  string
	logger  *log.Logger
}

// New creates a BBB API client for one server, backed by go-resty.
func New(baseURL, secret string, logger *log.Logger) Client {
	if logger == nil {
		panic("logger is required")
	}
	return &apiImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		logger:  logger,
	}
}

func (api *apiImpl) CreateMeeting(ctx context.Context, req *CreateRequest) (*CreateResult, error) {
	params := url.Values{}
	params.Set("name", req.Name)
	params.Set("meetingID", req.MeetingID)
	params.Set("record", strconv.FormatBool(req.Record))

	var resp createResponse
	if err := api.get(ctx, actionCreate, params, &resp); err != nil {
		return nil, err
	}
	if err := checkFailure(actionCreate, resp.ReturnCode, resp.MessageKey, resp.Message); err != nil {
		return nil, err
	}
	if resp.ModeratorPW == "" || resp.AttendeePW == "" {
		return nil, errors.New(ErrInvalidPayload, "bbb create response missing credentials")
	}

	return &CreateResult{
		MeetingID:         resp.MeetingID,
		InternalMeetingID: resp.InternalMeetingID,
		ModeratorPW:       resp.ModeratorPW,
		AttendeePW:        resp.AttendeePW,
		CreateTime:        resp.CreateTime,
	}, nil
}

func (api *apiImpl) EndMeeting(ctx context.Context, meetingID, password string) error {
	params := url.Values{}
	params.Set("meetingID", meetingID)
	params.Set("password", password)

	var resp endResponse
	if err := api.get(ctx, actionEnd, params, &resp); err != nil {
		return err
	}
	return checkFailure(actionEnd, resp.ReturnCode, resp.MessageKey, resp.Message)
}

func (api *apiImpl) GetMeetingInfo(ctx context.Context, meetingID string) (*MeetingInfo, error) {
	params := url.Values{}
	params.Set("meetingID", meetingID)

	var resp meetingInfoResponse
	if err := api.get(ctx, actionGetMeetingInfo, params, &resp); err != nil {
		return nil, err
	}
	if err := checkFailure(actionGetMeetingInfo, resp.ReturnCode, resp.MessageKey, resp.Message); err != nil {
		return nil, err
	}

	return &MeetingInfo{
		MeetingName:       resp.MeetingName,
		MeetingID:         resp.MeetingID,
		InternalMeetingID: resp.InternalMeetingID,
		Running:           resp.Running,
		Recording:         resp.Recording,
		ParticipantCount:  resp.ParticipantCount,
		ModeratorCount:    resp.ModeratorCount,
		CreateTime:        resp.CreateTime,
	}, nil
}

func (api *apiImpl) IsMeetingRunning(ctx context.Context, meetingID string) (bool, error) {
	params := url.Values{}
	params.Set("meetingID", meetingID)

	var resp isMeetingRunningResponse
	if err := api.get(ctx, actionIsMeetingRunning, params, &resp); err != nil {
		return false, err
	}
	if err := checkFailure(actionIsMeetingRunning, resp.ReturnCode, resp.MessageKey, resp.Message); err != nil {
		return false, err
	}
	return resp.Running, nil
}

// JoinURL builds the signed join redirect URL. Role-specific parameters
// (userID for moderators/attendees, guest flag for guests) are expected to
// be filled in by the caller; this mirrors the backend's join contract.
func (api *apiImpl) JoinURL(req *JoinRequest) string {
	params := url.Values{}
	params.Set("meetingID", req.MeetingID)
	params.Set("fullName", req.FullName)
	if req.Password != "" {
		params.Set("password", req.Password)
	}
	if req.UserID != "" {
		params.Set("userID", req.UserID)
	}
	if req.Guest {
		params.Set("guest", "true")
	}
	return buildURL(api.baseURL, api.secret, actionJoin, params)
}

func (api *apiImpl) get(ctx context.Context, action string, params url.Values, out any) error {
	api.logger.Debug("bbb req", log.String("action", action), log.Any("params", params))
	apiRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))

	start := time.Now()
	resp, err := client.R().
		SetContext(ctx).
		Get(buildURL(api.baseURL, api.secret, action, params))
	apiLatencyMs.Record(ctx, time.Since(start).Milliseconds(),
		metric.WithAttributes(attribute.String("action", action)))
	if err != nil {
		apiFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
		// transport errors and timeouts are indistinguishable here; both retryable
		return errors.Wrapf(ErrBackendUnavailable, err, "bbb %s request failed", action)
	}
	if resp.IsError() {
		apiFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
		return errors.Newf(ErrBackendUnavailable, "bbb http error: (code: %d)", resp.StatusCode())
	}
	api.logger.Debug("bbb resp", log.Int("status", resp.StatusCode()), log.ByteString("body", resp.Body()))

	if err := xml.Unmarshal(resp.Body(), out); err != nil {
		return errors.Wrapf(ErrInvalidPayload, err, "decode bbb %s response", action)
	}
	return nil
}

// checkFailure maps a FAILED returncode to a coded error, keeping the
// backend's message attached so callers never have to guess intent.
func checkFailure(action, returncode, messageKey, message string) error {
	if returncode == returncodeSuccess {
		return nil
	}
	switch messageKey {
	case messageKeyNotFound:
		return errors.Newf(ErrNotFound, "bbb %s: %s", action, message)
	case messageKeyIDNotUnique:
		return errors.Newf(ErrAlreadyExisted, "bbb %s: %s", action, message)
	}
	return errors.Newf(ErrBackendRejected, "bbb %s rejected: %s (%s)", action, message, messageKey)
}
