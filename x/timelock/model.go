package timelock

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Lock{}, migration.NoModification)
}

var _ orm.CloneableData = (*Lock)(nil)

// Validate ensures the lock is valid.
func (l *Lock) Validate() error {
	if err := l.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := l.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := validateUnit(l.Asset, l.UnitId); err != nil {
		return err
	}
	if err := l.UnlockTime.Validate(); err != nil {
		return errors.Wrap(err, "unlock time")
	}
	if l.UnlockTime == 0 {
		return errors.Wrap(errors.ErrInput, "unlock time is required")
	}
	if err := l.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy makes a deep copy of this lock.
func (l *Lock) Copy() orm.CloneableData {
	unitID := make([]byte, len(l.UnitId))
	copy(unitID, l.UnitId)
	return &Lock{
		Metadata:   l.Metadata.Copy(),
		Owner:      l.Owner.Clone(),
		Asset:      l.Asset,
		UnitId:     unitID,
		UnlockTime: l.UnlockTime,
		Address:    l.Address.Clone(),
	}
}

// Condition calculates the custody account condition of a lock given its
// key. A locked unit is held on the address of this condition until
// unlocked.
func Condition(key []byte) weave.Condition {
	return weave.NewCondition("timelock", "seq", key)
}

// NewBucket returns a bucket to store locks. Locks are indexed by the
// owner and by the unit they hold. The unit index is unique because a
// unit in custody cannot be locked a second time.
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("lock", &Lock{},
		orm.WithIDSequence(lockSeq),
		orm.WithIndex("owner", idxOwner, false),
		orm.WithIndex("unit", idxUnit, true),
	)
	return migration.NewModelBucket("timelock", b)
}

var lockSeq = orm.NewSequence("timelock", "id")

// unitKey builds the unit index key. The asset name cannot contain the
// separator so the mapping is unambiguous.
func unitKey(asset string, unitID []byte) []byte {
	key := make([]byte, 0, len(asset)+1+len(unitID))
	key = append(key, asset...)
	key = append(key, '/')
	return append(key, unitID...)
}

func toLock(obj orm.Object) (*Lock, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	l, ok := obj.Value().(*Lock)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Lock")
	}
	return l, nil
}

func idxOwner(obj orm.Object) ([]byte, error) {
	l, err := toLock(obj)
	if err != nil {
		return nil, err
	}
	return l.Owner, nil
}

func idxUnit(obj orm.Object) ([]byte, error) {
	l, err := toLock(obj)
	if err != nil {
		return nil, err
	}
	return unitKey(l.Asset, l.UnitId), nil
}
