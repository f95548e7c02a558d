package timelock

import (
	"regexp"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &LockMsg{}, migration.NoModification)
	migration.MustRegister(1, &UnlockMsg{}, migration.NoModification)
}

const (
	pathLockMsg   = "timelock/lock"
	pathUnlockMsg = "timelock/unlock"
)

var _ weave.Msg = (*LockMsg)(nil)
var _ weave.Msg = (*UnlockMsg)(nil)

// Path fulfills weave.Msg interface to allow routing.
func (LockMsg) Path() string {
	return pathLockMsg
}

// Path fulfills weave.Msg interface to allow routing.
func (UnlockMsg) Path() string {
	return pathUnlockMsg
}

// Validate makes sure that this is sensible.
func (m *LockMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateUnit(m.Asset, m.UnitId); err != nil {
		return err
	}
	if m.Period <= 0 {
		return errors.Wrap(errors.ErrInput, "period must be greater than zero")
	}
	return nil
}

// Validate makes sure that this is sensible.
func (m *UnlockMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateUnit(m.Asset, m.UnitId)
}

// The asset name must not contain the unit index key separator.
var validAsset = regexp.MustCompile(`^[a-z0-9_\-]{3,32}$`).MatchString

func validateUnit(asset string, unitID []byte) error {
	if !validAsset(asset) {
		return errors.Wrapf(errors.ErrInput, "invalid asset name %q", asset)
	}
	if len(unitID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "unit id")
	}
	if len(unitID) > 64 {
		return errors.Wrap(errors.ErrInput, "unit id too long")
	}
	return nil
}
