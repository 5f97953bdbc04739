package hiring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrForbidden         = errors.New("role not permitted for this transition")
	ErrInvalidTransition = errors.New("current stage does not allow this transition")
	ErrAlreadyEndorsed   = errors.New("application already endorsed")
)

// MissingDocumentsError is the endorsement precondition failure. It
// carries the exact list of empty required document fields.
type MissingDocumentsError struct {
	Missing []string
}

func (e *MissingDocumentsError) Error() string {
	return fmt.Sprintf("required documents missing: %s", strings.Join(e.Missing, ", "))
}
