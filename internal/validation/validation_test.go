package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ValidationTestSuite is the test suite for validation package
type ValidationTestSuite struct {
	suite.Suite
	validator *validator.Validate
}

// SetupTest runs before each test
func (s *ValidationTestSuite) SetupTest() {
	s.validator = validator.New()
}

// TestValidationTestSuite runs the test suite
func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

// TestValidateMeetingID tests the custom meetingid validation tag
func (s *ValidationTestSuite) TestValidateMeetingID() {
	err := Register(s.validator, "meetingid", ValidateMeetingID)
	s.Require().NoError(err)

	tests := []struct {
		name      string
		meetingID string
		wantErr   bool
	}{
		{name: "valid alphanumeric", meetingID: "meet123", wantErr: false},
		{name: "valid with hyphens", meetingID: "meet-123", wantErr: false},
		{name: "valid with underscores", meetingID: "meet_123", wantErr: false},
		{name: "valid mixed", meetingID: "My-Meeting_123", wantErr: false},
		{name: "valid minimum length", meetingID: "abc", wantErr: false},
		{name: "too short", meetingID: "ab", wantErr: true},
		{name: "too long", meetingID: string(make([]byte, 65)), wantErr: true},
		{name: "invalid characters", meetingID: "meet 123", wantErr: true},
		{name: "invalid dot", meetingID: "meet.123", wantErr: true},
		{name: "empty", meetingID: "", wantErr: true},
	}

	type payload struct {
		MeetingID string `validate:"meetingid"`
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.validator.Struct(payload{MeetingID: tt.meetingID})
			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

// TestRegisterAlias tests alias registration
func (s *ValidationTestSuite) TestRegisterAlias() {
	RegisterAlias(s.validator, "role", "oneof=moderator attendee guest")

	type payload struct {
		Role string `validate:"role"`
	}

	s.NoError(s.validator.Struct(payload{Role: "moderator"}))
	s.NoError(s.validator.Struct(payload{Role: "attendee"}))
	s.NoError(s.validator.Struct(payload{Role: "guest"}))
	s.Error(s.validator.Struct(payload{Role: "host"}))
	s.Error(s.validator.Struct(payload{Role: ""}))
}

// TestFormatValidationError tests validation error formatting
func (s *ValidationTestSuite) TestFormatValidationError() {
	type payload struct {
		Name string `validate:"required"`
	}

	err := s.validator.Struct(payload{})
	s.Require().Error(err)

	formatted := FormatValidationError(err)
	s.Require().Len(formatted, 1)
	assert.Equal(s.T(), "Name", formatted[0].Field)
	assert.NotEmpty(s.T(), formatted[0].Message)
}

// TestFormatValidationError_NonValidationError returns empty for other errors
func (s *ValidationTestSuite) TestFormatValidationError_NonValidationError() {
	formatted := FormatValidationError(assert.AnError)
	s.Empty(formatted)
}
