package timelock

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	lockCost   int64 = 100
	unlockCost int64 = 0
)

// Tag keys used to index delivered transactions.
const (
	tagAction     = "action"
	tagLockID     = "lock-id"
	tagOwner      = "owner"
	tagUnlockTime = "unlock-time"
)

// UnitController gives access to single asset units without direct access
// to their storage. It is implemented by the asset registry that manages
// unit ownership.
type UnitController interface {
	// Holder returns the current holder of a unit.
	Holder(db weave.KVStore, asset string, unitID []byte) (weave.Address, error)
	// Transfer moves a unit between two accounts. It must fail if the
	// source is not the current holder.
	Transfer(db weave.KVStore, asset string, unitID []byte, src, dst weave.Address) error
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl UnitController) {
	r = migration.SchemaMigratingRegistry("timelock", r)
	bucket := NewBucket()

	r.Handle(&LockMsg{}, LockHandler{auth, bucket, ctrl})
	r.Handle(&UnlockMsg{}, UnlockHandler{auth, bucket, ctrl})
}

// RegisterQuery will register this bucket as "/locks".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("locks", qr)
}

// LockHandler moves an asset unit into custody until the unlock time.
type LockHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   UnitController
}

var _ weave.Handler = LockHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h LockHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: lockCost}, nil
}

// Deliver creates the lock record and moves the unit to its custody
// account. The record is written first so that a nested call triggered
// from within the transfer already sees the unit as locked.
func (h LockHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key, err := lockSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}

	lock := &Lock{
		Metadata:   &weave.Metadata{Schema: 1},
		Owner:      owner,
		Asset:      msg.Asset,
		UnitId:     msg.UnitId,
		UnlockTime: blockTime(ctx).Add(msg.Period.Duration()),
		Address:    Condition(key).Address(),
	}
	if _, err := h.bucket.Put(db, key, lock); err != nil {
		return nil, errors.Wrap(err, "cannot store lock")
	}

	if err := h.ctrl.Transfer(db, msg.Asset, msg.UnitId, owner, lock.Address); err != nil {
		return nil, errors.Wrap(err, "cannot take unit into custody")
	}

	res := &weave.DeliverResult{Data: key}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagLockID), Value: key},
		{Key: []byte(tagOwner), Value: owner},
		{Key: []byte(tagUnlockTime), Value: []byte(lock.UnlockTime.String())},
		{Key: []byte(tagAction), Value: []byte("lock")},
	}...)
	return res, nil
}

// validate does all common pre-processing between Check and Deliver. It
// returns the current unit holder together with the message.
func (h LockHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*LockMsg, weave.Address, error) {
	var msg LockMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	holder, err := h.ctrl.Holder(db, msg.Asset, msg.UnitId)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot resolve unit holder")
	}
	// A unit already in custody is held by a lock condition address that
	// no transaction can sign for, so a second lock fails here as well.
	if !h.auth.HasAddress(ctx, holder) {
		return nil, nil, ErrNotUnitOwner
	}

	return &msg, holder, nil
}

// UnlockHandler returns a locked unit to its owner once the unlock time
// is reached. Anyone can execute it, the unit always goes back to the
// owner recorded in the lock.
type UnlockHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   UnitController
}

var _ weave.Handler = UnlockHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h UnlockHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: unlockCost}, nil
}

// Deliver removes the lock record and moves the unit back to the owner.
// The record is deleted before the unit moves, so a nested unlock
// triggered from within the transfer cannot find the lock anymore.
func (h UnlockHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	_, key, lock, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.bucket.Delete(db, key); err != nil {
		return nil, errors.Wrap(err, "cannot delete lock")
	}

	if err := h.ctrl.Transfer(db, lock.Asset, lock.UnitId, lock.Address, lock.Owner); err != nil {
		return nil, errors.Wrap(err, "cannot return unit")
	}

	res := &weave.DeliverResult{Data: key}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagLockID), Value: key},
		{Key: []byte(tagOwner), Value: lock.Owner},
		{Key: []byte(tagAction), Value: []byte("unlock")},
	}...)
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h UnlockHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UnlockMsg, []byte, *Lock, error) {
	var msg UnlockMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	var locks []*Lock
	keys, err := h.bucket.ByIndex(db, "unit", unitKey(msg.Asset, msg.UnitId), &locks)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load lock from the store")
	}
	if len(locks) == 0 {
		return nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "no lock for unit %q %X", msg.Asset, msg.UnitId)
	}
	key, lock := keys[0], locks[0]

	if !isReached(ctx, lock.UnlockTime) {
		return nil, nil, nil, errors.Wrapf(ErrStillLocked, "until %s", lock.UnlockTime)
	}

	return &msg, key, lock, nil
}
