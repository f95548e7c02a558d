package timelock

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrStillLocked is returned when an unlock is requested before the
	// unlock time. An unlock at exactly the unlock time succeeds.
	ErrStillLocked = errors.Register(1210, "still locked")

	// ErrNotUnitOwner is returned when the transaction signer does not
	// hold the unit that is to be locked.
	ErrNotUnitOwner = errors.Register(1211, "not the unit owner")
)
