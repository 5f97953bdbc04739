package evaluation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrApplicationIDRequired = errors.New("applicationId is required")
	ErrNotFound              = errors.New("evaluation not found")
	ErrNotInterviewed        = errors.New("application has not reached the interview stage")
	ErrApplicationClosed     = errors.New("application is in a terminal rejected state")
)

// UnknownCreditCodeError flags achievement codes absent from the credit
// table. They are rejected rather than silently scored as zero.
type UnknownCreditCodeError struct {
	Codes []string
}

func (e *UnknownCreditCodeError) Error() string {
	return fmt.Sprintf("unknown credit codes: %s", strings.Join(e.Codes, ", "))
}

type UnknownRoleError struct {
	Roles []string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown experience roles: %s", strings.Join(e.Roles, ", "))
}
