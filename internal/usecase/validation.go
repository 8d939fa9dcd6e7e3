package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/sociallead-crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Username) == "" {
		errors = append(errors, ValidationError{"username", "is required"})
	} else if len(input.Username) > 100 {
		errors = append(errors, ValidationError{"username", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.InitialMessage) == "" {
		errors = append(errors, ValidationError{"initialMessage", "is required"})
	}

	if !entity.ValidPlatform(entity.LeadPlatform(input.Platform)) {
		errors = append(errors, ValidationError{"platform", "must be Instagram or Facebook"})
	}

	if !entity.ValidType(entity.LeadType(input.Type)) {
		errors = append(errors, ValidationError{"type", "must be DM, Comment or Lead Form"})
	}

	if input.CapturedAt != "" && !isValidDateTime(input.CapturedAt) {
		errors = append(errors, ValidationError{"capturedAt", "must be a valid ISO8601 datetime"})
	}

	return errors
}

func isValidDateTime(value string) bool {
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}

func parseDateOrNow(dateStr string) time.Time {
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Now()
	}
	return t
}
