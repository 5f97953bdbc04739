package hire

import "errors"

var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrContractNotFound   = errors.New("contract not found")
	ErrFacultyNotFound    = errors.New("faculty record not found")
	ErrInvalidDecision    = errors.New("contract decision not allowed from current status")
	ErrConflict           = errors.New("contract number conflict")
)
