package unit

import (
	"regexp"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Unit{}, migration.NoModification)
}

var _ orm.CloneableData = (*Unit)(nil)

// Validate ensures the unit is valid.
func (u *Unit) Validate() error {
	if err := u.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateUnitID(u.Asset, u.UnitId); err != nil {
		return err
	}
	if err := u.Holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	return nil
}

// Copy makes a deep copy of this unit.
func (u *Unit) Copy() orm.CloneableData {
	unitID := make([]byte, len(u.UnitId))
	copy(unitID, u.UnitId)
	return &Unit{
		Metadata: u.Metadata.Copy(),
		Asset:    u.Asset,
		UnitId:   unitID,
		Holder:   u.Holder.Clone(),
	}
}

// NewBucket returns a bucket to store units. A unit is stored under its
// natural key, built from the asset name and the unit ID. Units are
// additionally indexed by the holder.
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("unit", &Unit{},
		orm.WithIndex("holder", idxHolder, false),
	)
	return migration.NewModelBucket("unit", b)
}

// unitKey builds the store key of a unit. The asset name cannot contain
// the separator so the mapping is unambiguous.
func unitKey(asset string, unitID []byte) []byte {
	key := make([]byte, 0, len(asset)+1+len(unitID))
	key = append(key, asset...)
	key = append(key, '/')
	return append(key, unitID...)
}

func idxHolder(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	u, ok := obj.Value().(*Unit)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Unit")
	}
	return u.Holder, nil
}

// The asset name must not contain the unit key separator.
var validAsset = regexp.MustCompile(`^[a-z0-9_\-]{3,32}$`).MatchString

func validateUnitID(asset string, unitID []byte) error {
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
