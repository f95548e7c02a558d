package timelock_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/custody/x/timelock"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

var blockNow = time.Now().Round(time.Second)

// unitRegistry is an in memory unit ownership registry implementing the
// UnitController interface.
type unitRegistry struct {
	units map[string]weave.Address
}

func newUnitRegistry() *unitRegistry {
	return &unitRegistry{units: make(map[string]weave.Address)}
}

func (r *unitRegistry) register(asset string, unitID []byte, holder weave.Address) {
	r.units[asset+"/"+string(unitID)] = holder
}

func (r *unitRegistry) Holder(db weave.KVStore, asset string, unitID []byte) (weave.Address, error) {
	holder, ok := r.units[asset+"/"+string(unitID)]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "unit %q %X", asset, unitID)
	}
	return holder, nil
}

func (r *unitRegistry) Transfer(db weave.KVStore, asset string, unitID []byte, src, dst weave.Address) error {
	holder, err := r.Holder(db, asset, unitID)
	if err != nil {
		return err
	}
	if !holder.Equals(src) {
		return errors.Wrap(errors.ErrUnauthorized, "source does not hold the unit")
	}
	r.units[asset+"/"+string(unitID)] = dst
	return nil
}

func TestLockHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	cases := map[string]struct {
		signer         weave.Condition
		mutator        func(msg *timelock.LockMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore, units *unitRegistry)
	}{
		"happy path": {
			signer: alice,
			check: func(t *testing.T, db weave.KVStore, units *unitRegistry) {
				var lock timelock.Lock
				err := timelock.NewBucket().One(db, weavetest.SequenceID(1), &lock)
				assert.Nil(t, err)
				assert.Equal(t, alice.Address(), lock.Owner)
				assert.Equal(t, "tickets", lock.Asset)
				assert.Equal(t, []byte("unit-1"), lock.UnitId)
				assert.Equal(t, weave.AsUnixTime(blockNow).Add(600*time.Second), lock.UnlockTime)

				// The unit is held by the custody account now.
				holder, err := units.Holder(db, "tickets", []byte("unit-1"))
				assert.Nil(t, err)
				assert.Equal(t, lock.Address, holder)
			},
		},
		"signer does not hold the unit": {
			signer:         pete,
			wantCheckErr:   timelock.ErrNotUnitOwner,
			wantDeliverErr: timelock.ErrNotUnitOwner,
		},
		"unknown unit": {
			signer: alice,
			mutator: func(msg *timelock.LockMsg) {
				msg.UnitId = []byte("no-such-unit")
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			units := newUnitRegistry()
			units.register("tickets", []byte("unit-1"), alice.Address())

			r := app.NewRouter()
			authenticator := &weavetest.CtxAuth{Key: "auth"}
			auth := x.ChainAuth(authenticator)
			timelock.RegisterRoutes(r, auth, units)

			db := store.MemStore()
			migration.MustInitPkg(db, "timelock")

			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, tc.signer)

			msg := &timelock.LockMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Asset:    "tickets",
				UnitId:   []byte("unit-1"),
				Period:   600,
			}
			if tc.mutator != nil {
				tc.mutator(msg)
			}
			tx := &weavetest.Tx{Msg: msg}

			cache := db.CacheWrap()
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, db, units)
			}
		})
	}
}

func TestLockedUnitCannotBeLockedAgain(t *testing.T) {
	alice := weavetest.NewCondition()

	units := newUnitRegistry()
	units.register("tickets", []byte("unit-1"), alice.Address())

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	timelock.RegisterRoutes(r, auth, units)

	db := store.MemStore()
	migration.MustInitPkg(db, "timelock")

	ctx := weave.WithHeight(context.Background(), 100)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	tx := &weavetest.Tx{Msg: &timelock.LockMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Asset:    "tickets",
		UnitId:   []byte("unit-1"),
		Period:   600,
	}}
	_, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	// The unit is in custody now. Even the original owner cannot sign for
	// the custody account, so a second lock must be rejected.
	if _, err := r.Deliver(ctx, db, tx); !timelock.ErrNotUnitOwner.Is(err) {
		t.Fatalf("second lock expected not unit owner, got %+v", err)
	}
}

func TestUnlockHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	const period = 600 * time.Second

	cases := map[string]struct {
		signer         weave.Condition
		mutator        func(msg *timelock.UnlockMsg)
		blockDelta     time.Duration
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore, units *unitRegistry)
	}{
		"unlock after the unlock time": {
			signer:     alice,
			blockDelta: period + time.Hour,
			check: func(t *testing.T, db weave.KVStore, units *unitRegistry) {
				// The unit is back with the owner and the lock is gone.
				holder, err := units.Holder(db, "tickets", []byte("unit-1"))
				assert.Nil(t, err)
				assert.Equal(t, alice.Address(), holder)

				var lock timelock.Lock
				if err := timelock.NewBucket().One(db, weavetest.SequenceID(1), &lock); !errors.ErrNotFound.Is(err) {
					t.Fatalf("lock record expected to be deleted, got %+v", err)
				}
			},
		},
		"unlock at exactly the unlock time": {
			signer:     alice,
			blockDelta: period,
			check: func(t *testing.T, db weave.KVStore, units *unitRegistry) {
				holder, err := units.Holder(db, "tickets", []byte("unit-1"))
				assert.Nil(t, err)
				assert.Equal(t, alice.Address(), holder)
			},
		},
		"anyone can unlock, the unit goes back to the owner": {
			signer:     pete,
			blockDelta: period + time.Hour,
			check: func(t *testing.T, db weave.KVStore, units *unitRegistry) {
				holder, err := units.Holder(db, "tickets", []byte("unit-1"))
				assert.Nil(t, err)
				assert.Equal(t, alice.Address(), holder)
			},
		},
		"too early": {
			signer:         alice,
			blockDelta:     period - time.Second,
			wantCheckErr:   timelock.ErrStillLocked,
			wantDeliverErr: timelock.ErrStillLocked,
		},
		"unknown unit": {
			signer: alice,
			mutator: func(msg *timelock.UnlockMsg) {
				msg.UnitId = []byte("no-such-unit")
			},
			blockDelta:     period + time.Hour,
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			units := newUnitRegistry()
			units.register("tickets", []byte("unit-1"), alice.Address())

			r := app.NewRouter()
			authenticator := &weavetest.CtxAuth{Key: "auth"}
			auth := x.ChainAuth(authenticator)
			timelock.RegisterRoutes(r, auth, units)

			db := store.MemStore()
			migration.MustInitPkg(db, "timelock")

			lockUnit(t, r, authenticator, db, alice, "tickets", []byte("unit-1"))

			ctx := weave.WithHeight(context.Background(), 200)
			ctx = weave.WithBlockTime(ctx, blockNow.Add(tc.blockDelta))
			ctx = authenticator.SetConditions(ctx, tc.signer)

			msg := &timelock.UnlockMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Asset:    "tickets",
				UnitId:   []byte("unit-1"),
			}
			if tc.mutator != nil {
				tc.mutator(msg)
			}
			tx := &weavetest.Tx{Msg: msg}

			cache := db.CacheWrap()
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, db, units)
			}
		})
	}
}

// reentrantRegistry wraps a unit registry and makes a nested unlock
// attempt in the middle of the transfer back to the owner.
type reentrantRegistry struct {
	*unitRegistry
	router    weave.Handler
	ctx       weave.Context
	tx        weave.Tx
	reentered bool
	nestedErr error
}

func (r *reentrantRegistry) Transfer(db weave.KVStore, asset string, unitID []byte, src, dst weave.Address) error {
	if r.router != nil && !r.reentered {
		r.reentered = true
		_, r.nestedErr = r.router.Deliver(r.ctx, db, r.tx)
	}
	return r.unitRegistry.Transfer(db, asset, unitID, src, dst)
}

func TestUnlockDeletesBeforeTransfer(t *testing.T) {
	alice := weavetest.NewCondition()

	units := &reentrantRegistry{unitRegistry: newUnitRegistry()}
	units.register("tickets", []byte("unit-1"), alice.Address())

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	timelock.RegisterRoutes(r, auth, units)

	db := store.MemStore()
	migration.MustInitPkg(db, "timelock")

	lockUnit(t, r, authenticator, db, alice, "tickets", []byte("unit-1"))

	ctx := weave.WithHeight(context.Background(), 200)
	ctx = weave.WithBlockTime(ctx, blockNow.Add(time.Hour))
	ctx = authenticator.SetConditions(ctx, alice)

	tx := &weavetest.Tx{Msg: &timelock.UnlockMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Asset:    "tickets",
		UnitId:   []byte("unit-1"),
	}}
	units.router = r
	units.ctx = ctx
	units.tx = tx

	_, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	// The lock record was deleted before the unit moved, so the nested
	// unlock found no lock to act on.
	if !units.reentered {
		t.Fatal("the nested unlock was never attempted")
	}
	if !errors.ErrNotFound.Is(units.nestedErr) {
		t.Fatalf("nested unlock expected not found, got %+v", units.nestedErr)
	}

	holder, err := units.Holder(db, "tickets", []byte("unit-1"))
	assert.Nil(t, err)
	assert.Equal(t, alice.Address(), holder)
}

func TestLockEmitsUnlockTimeTag(t *testing.T) {
	alice := weavetest.NewCondition()

	units := newUnitRegistry()
	units.register("tickets", []byte("unit-1"), alice.Address())

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	timelock.RegisterRoutes(r, auth, units)

	db := store.MemStore()
	migration.MustInitPkg(db, "timelock")

	ctx := weave.WithHeight(context.Background(), 100)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	tx := &weavetest.Tx{Msg: &timelock.LockMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Asset:    "tickets",
		UnitId:   []byte("unit-1"),
		Period:   600,
	}}
	res, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	wantTime := weave.AsUnixTime(blockNow).Add(600 * time.Second)
	assert.Equal(t, wantTime.String(), tagValue(t, res.Tags, "unlock-time"))
	assert.Equal(t, "lock", tagValue(t, res.Tags, "action"))
}

// tagValue returns the value of the first tag with the given key.
func tagValue(t *testing.T, tags []common.KVPair, key string) string {
	t.Helper()
	for _, tag := range tags {
		if string(tag.Key) == key {
			return string(tag.Value)
		}
	}
	t.Fatalf("tag %q not found", key)
	return ""
}

// lockUnit delivers a lock message for the given unit with a period of
// 600 seconds, starting at blockNow.
func lockUnit(
	t *testing.T,
	r weave.Handler,
	authenticator *weavetest.CtxAuth,
	db weave.KVStore,
	owner weave.Condition,
	asset string,
	unitID []byte,
) {
	t.Helper()

	ctx := weave.WithHeight(context.Background(), 100)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, owner)

	tx := &weavetest.Tx{Msg: &timelock.LockMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Asset:    asset,
		UnitId:   unitID,
		Period:   600,
	}}
	_, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
}
