package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write is
// rejected because the stored record no longer matches the expected state.
var ErrConditionFailed = errors.New("condition failed")
