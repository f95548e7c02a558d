package vesting

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrCliffNotReached is returned when a release is requested before
	// the claim's cliff time. No amount is available before the cliff,
	// regardless of how much time passed since the schedule start.
	ErrCliffNotReached = errors.Register(1200, "cliff not reached")

	// ErrNoReleasableAmount is returned when the entitled amount was
	// already paid out in full at the time of the request.
	ErrNoReleasableAmount = errors.Register(1201, "nothing to release")
)
