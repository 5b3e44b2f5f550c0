package background

import "errors"

// ErrUnknownJob is returned for a job name the scheduler does not know.
var ErrUnknownJob = errors.New("unknown job")
