package unit

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	// Owner field is optional. Without an owner the configuration cannot
	// be updated anymore.
	if len(c.Owner) != 0 {
		if err := c.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner address")
		}
	}
	// Issuer field is optional. Without an issuer no new units can be
	// registered.
	if len(c.Issuer) != 0 {
		if err := c.Issuer.Validate(); err != nil {
			return errors.Wrap(err, "issuer address")
		}
	}
	return nil
}
