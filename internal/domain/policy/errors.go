package policy

import "errors"

// Policy domain errors
var (
	ErrGroupNotFound    = errors.New("employee group not found in working-hours config")
	ErrStoreUnavailable = errors.New("working-hours config store unavailable")
)
