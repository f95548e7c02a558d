package vesting

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateMsg{}, migration.NoModification)
	migration.MustRegister(1, &ReleaseMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

const (
	pathCreateMsg              = "vesting/create"
	pathReleaseMsg             = "vesting/release"
	pathTransferMsg            = "vesting/transfer"
	pathUpdateConfigurationMsg = "vesting/update_configuration"
)

var _ weave.Msg = (*CreateMsg)(nil)
var _ weave.Msg = (*ReleaseMsg)(nil)
var _ weave.Msg = (*TransferMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Path fulfills weave.Msg interface to allow routing.
func (CreateMsg) Path() string {
	return pathCreateMsg
}

// Path fulfills weave.Msg interface to allow routing.
func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

// Path fulfills weave.Msg interface to allow routing.
func (TransferMsg) Path() string {
	return pathTransferMsg
}

// Path fulfills weave.Msg interface to allow routing.
func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

// Validate makes sure that this is sensible.
func (m *CreateMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	if m.Source != nil {
		if err := m.Source.Validate(); err != nil {
			return errors.Wrap(err, "source")
		}
	}
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := m.StartTime.Validate(); err != nil {
		return errors.Wrap(err, "start time")
	}
	if m.StartTime == 0 {
		// Zero time is a valid value that dates to 1970-01-01. We
		// know that this value is in the past and makes no sense.
		// Most likely the value was not provided and a zero value
		// remained.
		return errors.Wrap(errors.ErrInput, "start time is required")
	}
	if m.CliffTime < m.StartTime {
		return errors.Wrap(errors.ErrInput, "cliff before start time")
	}
	if m.Duration <= 0 {
		return errors.Wrap(errors.ErrInput, "duration must be greater than zero")
	}
	return nil
}

// Validate makes sure that this is sensible.
func (m *ReleaseMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateClaimID(m.ClaimId)
}

// Validate makes sure that this is sensible.
func (m *TransferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateClaimID(m.ClaimId); err != nil {
		return err
	}
	if len(m.NewHolder) == 0 {
		return errors.Wrap(errors.ErrEmpty, "new holder")
	}
	if err := m.NewHolder.Validate(); err != nil {
		return errors.Wrap(err, "new holder")
	}
	return nil
}

// Validate will skip any zero fields and validate the set ones.
func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	var err error
	if len(m.Patch.Owner) != 0 {
		err = errors.Wrap(m.Patch.Owner.Validate(), "owner")
	}
	if m.Patch.MinDuration < 0 {
		err = errors.Append(err, errors.Wrap(errors.ErrInput, "minimum duration cannot be negative"))
	}
	return err
}

func validateClaimID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "claim id: %X", id)
	}
	return nil
}
