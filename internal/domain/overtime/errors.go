package overtime

import "errors"

// Overtime domain errors
var (
	ErrRequestNotFound         = errors.New("overtime request not found")
	ErrRequestExists           = errors.New("overtime request already exists for this employee and date")
	ErrRequestAlreadyProcessed = errors.New("overtime request already processed")
)
