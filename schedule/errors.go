package schedule

import "errors"

// ErrStepCanceled indicates the context passed to Step was canceled
// before every agent in the step finished computing its new velocity.
var ErrStepCanceled = errors.New("schedule: step canceled")
