package unit

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &IssueMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

const (
	pathIssueMsg               = "unit/issue"
	pathTransferMsg            = "unit/transfer"
	pathUpdateConfigurationMsg = "unit/update_configuration"
)

var _ weave.Msg = (*IssueMsg)(nil)
var _ weave.Msg = (*TransferMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Path fulfills weave.Msg interface to allow routing.
func (IssueMsg) Path() string {
	return pathIssueMsg
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
func (m *IssueMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateUnitID(m.Asset, m.UnitId); err != nil {
		return err
	}
	if err := m.Holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	return nil
}

// Validate makes sure that this is sensible.
func (m *TransferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateUnitID(m.Asset, m.UnitId); err != nil {
		return err
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
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
	if len(m.Patch.Issuer) != 0 {
		err = errors.Append(err, errors.Wrap(m.Patch.Issuer.Validate(), "issuer"))
	}
	return err
}
