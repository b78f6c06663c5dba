package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var meetingIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,64}$`)

func init() {
	MustRegisterGin("meetingid", ValidateMeetingID)
	MustRegisterGinAlias("role", "oneof=moderator attendee guest")
	MustRegisterGinAlias("fullname", "min=1,max=128")
	MustRegisterGinAlias("alias", "alphanum,min=1,max=64")
}

// ValidateMeetingID validates meeting ID format: 3-64 characters, alphanumeric with hyphens and underscores
func ValidateMeetingID(fl validator.FieldLevel) bool {
	return meetingIDRegex.MatchString(fl.Field().String())
}
