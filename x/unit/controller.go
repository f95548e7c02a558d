package unit

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller gives access to unit ownership. It is the implementation of
// the unit controller interfaces that other extensions declare.
type Controller struct {
	bucket orm.ModelBucket
}

// NewController returns a controller backed by the unit bucket.
func NewController() *Controller {
	return &Controller{bucket: NewBucket()}
}

// Holder returns the current holder of a unit.
func (c *Controller) Holder(db weave.KVStore, asset string, unitID []byte) (weave.Address, error) {
	var u Unit
	if err := c.bucket.One(db, unitKey(asset, unitID), &u); err != nil {
		return nil, errors.Wrapf(err, "unit %q %X", asset, unitID)
	}
	return u.Holder, nil
}

// Transfer moves a unit between two accounts. It fails if the source is
// not the current holder of the unit.
func (c *Controller) Transfer(db weave.KVStore, asset string, unitID []byte, src, dst weave.Address) error {
	key := unitKey(asset, unitID)
	var u Unit
	if err := c.bucket.One(db, key, &u); err != nil {
		return errors.Wrapf(err, "unit %q %X", asset, unitID)
	}
	if !u.Holder.Equals(src) {
		return errors.Wrap(errors.ErrUnauthorized, "source does not hold the unit")
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	u.Holder = dst
	if _, err := c.bucket.Put(db, key, &u); err != nil {
		return errors.Wrap(err, "cannot store unit")
	}
	return nil
}

// Issue registers a new unit. It fails if a unit with the same asset and
// ID already exists.
func (c *Controller) Issue(db weave.KVStore, asset string, unitID []byte, holder weave.Address) error {
	key := unitKey(asset, unitID)
	var existing Unit
	switch err := c.bucket.One(db, key, &existing); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "unit %q %X", asset, unitID)
	case errors.ErrNotFound.Is(err):
		// All good, the unit does not exist yet.
	default:
		return errors.Wrap(err, "cannot check for an existing unit")
	}

	u := Unit{
		Metadata: &weave.Metadata{Schema: 1},
		Asset:    asset,
		UnitId:   unitID,
		Holder:   holder,
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if _, err := c.bucket.Put(db, key, &u); err != nil {
		return errors.Wrap(err, "cannot store unit")
	}
	return nil
}
