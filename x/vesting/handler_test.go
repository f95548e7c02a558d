package vesting_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/custody/x/vesting"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/tendermint/tendermint/libs/common"
)

var blockNow = time.Now().Round(time.Second)

func TestCreateClaimHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	claimAmount := coin.NewCoin(0, 1000, "VST")
	initialCoins, err := coin.CombineCoins(coin.NewCoin(1, 0, "VST"))
	assert.Nil(t, err)

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := vesting.NewBucket()

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	vesting.RegisterRoutes(r, auth, ctrl)

	cases := map[string]struct {
		setup          func(t *testing.T, ctx weave.Context, db weave.KVStore) weave.Context
		mutator        func(msg *vesting.CreateMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore) weave.Context {
				setBalance(t, db, bank, alice.Address(), initialCoins)
				return authenticator.SetConditions(ctx, alice)
			},
			check: func(t *testing.T, db weave.KVStore) {
				var claim vesting.Claim
				err := bucket.One(db, weavetest.SequenceID(1), &claim)
				assert.Nil(t, err)
				assert.Equal(t, alice.Address(), claim.Source)
				assert.Equal(t, bob.Address(), claim.Holder)
				assert.Equal(t, true, claim.Released.IsZero())

				coins := balance(t, db, bank, claim.Address)
				want, err := coin.CombineCoins(claimAmount)
				assert.Nil(t, err)
				assert.Equal(t, true, coins.Equals(want))
			},
		},
		"source defaults to the main signer": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore) weave.Context {
				setBalance(t, db, bank, alice.Address(), initialCoins)
				return authenticator.SetConditions(ctx, alice)
			},
			mutator: func(msg *vesting.CreateMsg) {
				msg.Source = nil
			},
			check: func(t *testing.T, db weave.KVStore) {
				var claim vesting.Claim
				err := bucket.One(db, weavetest.SequenceID(1), &claim)
				assert.Nil(t, err)
				assert.Equal(t, alice.Address(), claim.Source)
			},
		},
		"start time in the past": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore) weave.Context {
				return authenticator.SetConditions(ctx, alice)
			},
			mutator: func(msg *vesting.CreateMsg) {
				msg.StartTime = weave.AsUnixTime(blockNow.Add(-time.Hour))
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"signer is not the source": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore) weave.Context {
				return authenticator.SetConditions(ctx, pete)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"source account is empty": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore) weave.Context {
				return authenticator.SetConditions(ctx, alice)
			},
			wantDeliverErr: errors.ErrEmpty,
		},
		"duration below the configured minimum": {
			setup: func(t *testing.T, ctx weave.Context, db weave.KVStore) weave.Context {
				conf := vesting.Configuration{
					Metadata:    &weave.Metadata{Schema: 1},
					MinDuration: 10000,
				}
				err := gconf.Save(db, "vesting", &conf)
				assert.Nil(t, err)
				setBalance(t, db, bank, alice.Address(), initialCoins)
				return authenticator.SetConditions(ctx, alice)
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "vesting", "cash")

			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if tc.setup != nil {
				ctx = tc.setup(t, ctx, db)
			}

			msg := &vesting.CreateMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Source:    alice.Address(),
				Holder:    bob.Address(),
				Amount:    &claimAmount,
				StartTime: weave.AsUnixTime(blockNow),
				CliffTime: weave.AsUnixTime(blockNow).Add(100 * time.Second),
				Duration:  1000,
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
				tc.check(t, db)
			}
		})
	}
}

func TestReleaseClaimHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	claimAmount := coin.NewCoin(0, 1000, "VST")

	cases := map[string]struct {
		signer         weave.Condition
		claimID        []byte
		blockDelta     time.Duration
		releaseTwice   bool
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		wantBalance    coin.Coin
	}{
		"nothing before the cliff": {
			signer:         bob,
			blockDelta:     99 * time.Second,
			wantDeliverErr: vesting.ErrCliffNotReached,
		},
		"elapsed part at the cliff": {
			signer:      bob,
			blockDelta:  100 * time.Second,
			wantBalance: coin.NewCoin(0, 100, "VST"),
		},
		"half way through the schedule": {
			signer:      bob,
			blockDelta:  500 * time.Second,
			wantBalance: coin.NewCoin(0, 500, "VST"),
		},
		"full amount after the end": {
			signer:      bob,
			blockDelta:  5000 * time.Second,
			wantBalance: coin.NewCoin(0, 1000, "VST"),
		},
		"a second release at the same instant pays nothing": {
			signer:         bob,
			blockDelta:     500 * time.Second,
			releaseTwice:   true,
			wantDeliverErr: vesting.ErrNoReleasableAmount,
			wantBalance:    coin.NewCoin(0, 500, "VST"),
		},
		"only the holder can release": {
			signer:         pete,
			blockDelta:     500 * time.Second,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown claim": {
			signer:         bob,
			claimID:        weavetest.SequenceID(124),
			blockDelta:     500 * time.Second,
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			bank := cash.NewBucket()
			ctrl := cash.NewController(bank)

			r := app.NewRouter()
			authenticator := &weavetest.CtxAuth{Key: "auth"}
			auth := x.ChainAuth(authenticator)
			vesting.RegisterRoutes(r, auth, ctrl)

			db := store.MemStore()
			migration.MustInitPkg(db, "vesting", "cash")

			claimID := createClaim(t, r, authenticator, db, alice, bob, claimAmount, bank)

			ctx := weave.WithHeight(context.Background(), 200)
			ctx = weave.WithBlockTime(ctx, blockNow.Add(tc.blockDelta))
			ctx = authenticator.SetConditions(ctx, tc.signer)

			if tc.claimID != nil {
				claimID = tc.claimID
			}
			tx := &weavetest.Tx{Msg: &vesting.ReleaseMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ClaimId:  claimID,
			}}

			cache := db.CacheWrap()
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if tc.releaseTwice {
				_, err := r.Deliver(ctx, db, tx)
				assert.Nil(t, err)
			}
			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}

			if !tc.wantBalance.IsZero() {
				coins := balance(t, db, bank, bob.Address())
				want, err := coin.CombineCoins(tc.wantBalance)
				assert.Nil(t, err)
				if !coins.Equals(want) {
					t.Fatalf("want balance %v, got %v", want, coins)
				}
			}
		})
	}
}

func TestTransferClaimHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	carl := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	claimAmount := coin.NewCoin(0, 1000, "VST")

	cases := map[string]struct {
		signer         weave.Condition
		claimID        []byte
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path": {
			signer: bob,
			check: func(t *testing.T, db weave.KVStore) {
				var claim vesting.Claim
				err := vesting.NewBucket().One(db, weavetest.SequenceID(1), &claim)
				assert.Nil(t, err)
				assert.Equal(t, carl.Address(), claim.Holder)
				// The schedule and the settled amount must not change.
				assert.Equal(t, true, claim.Released.IsZero())
				assert.Equal(t, true, claim.Amount.Equals(claimAmount))
			},
		},
		"only the holder can transfer": {
			signer:         pete,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"the source cannot transfer": {
			signer:         alice,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown claim": {
			signer:         bob,
			claimID:        weavetest.SequenceID(124),
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			bank := cash.NewBucket()
			ctrl := cash.NewController(bank)

			r := app.NewRouter()
			authenticator := &weavetest.CtxAuth{Key: "auth"}
			auth := x.ChainAuth(authenticator)
			vesting.RegisterRoutes(r, auth, ctrl)

			db := store.MemStore()
			migration.MustInitPkg(db, "vesting", "cash")

			claimID := createClaim(t, r, authenticator, db, alice, bob, claimAmount, bank)

			ctx := weave.WithHeight(context.Background(), 200)
			ctx = weave.WithBlockTime(ctx, blockNow)
			ctx = authenticator.SetConditions(ctx, tc.signer)

			if tc.claimID != nil {
				claimID = tc.claimID
			}
			tx := &weavetest.Tx{Msg: &vesting.TransferMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				ClaimId:   claimID,
				NewHolder: carl.Address(),
			}}

			cache := db.CacheWrap()
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, db)
			}
		})
	}
}

func TestTransferredClaimReleasesToNewHolder(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	carl := weavetest.NewCondition()

	claimAmount := coin.NewCoin(0, 1000, "VST")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	vesting.RegisterRoutes(r, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "vesting", "cash")

	claimID := createClaim(t, r, authenticator, db, alice, bob, claimAmount, bank)

	ctx := weave.WithHeight(context.Background(), 200)
	ctx = weave.WithBlockTime(ctx, blockNow.Add(500*time.Second))

	_, err := r.Deliver(authenticator.SetConditions(ctx, bob), db, &weavetest.Tx{Msg: &vesting.TransferMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ClaimId:   claimID,
		NewHolder: carl.Address(),
	}})
	assert.Nil(t, err)

	releaseTx := &weavetest.Tx{Msg: &vesting.ReleaseMsg{
		Metadata: &weave.Metadata{Schema: 1},
		ClaimId:  claimID,
	}}

	// The old holder lost all rights to the claim.
	if _, err := r.Deliver(authenticator.SetConditions(ctx, bob), db, releaseTx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("old holder release expected unauthorized, got %+v", err)
	}

	// The new holder collects the vested amount, including the part that
	// vested before the transfer.
	_, err = r.Deliver(authenticator.SetConditions(ctx, carl), db, releaseTx)
	assert.Nil(t, err)

	coins := balance(t, db, bank, carl.Address())
	want, err := coin.CombineCoins(coin.NewCoin(0, 500, "VST"))
	assert.Nil(t, err)
	assert.Equal(t, true, coins.Equals(want))
}

// reentrantController wraps a cash controller and makes a nested release
// attempt in the middle of the payout.
type reentrantController struct {
	ctrl      vesting.CashController
	router    weave.Handler
	ctx       weave.Context
	tx        weave.Tx
	reentered bool
	nestedErr error
}

func (c *reentrantController) MoveCoins(db weave.KVStore, src, dst weave.Address, amount coin.Coin) error {
	if c.router != nil && !c.reentered {
		c.reentered = true
		_, c.nestedErr = c.router.Deliver(c.ctx, db, c.tx)
	}
	return c.ctrl.MoveCoins(db, src, dst, amount)
}

func TestReleaseIsSettledBeforePayout(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	claimAmount := coin.NewCoin(0, 1000, "VST")

	bank := cash.NewBucket()
	ctrl := &reentrantController{ctrl: cash.NewController(bank)}

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	vesting.RegisterRoutes(r, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "vesting", "cash")

	claimID := createClaim(t, r, authenticator, db, alice, bob, claimAmount, bank)

	ctx := weave.WithHeight(context.Background(), 200)
	ctx = weave.WithBlockTime(ctx, blockNow.Add(500*time.Second))
	ctx = authenticator.SetConditions(ctx, bob)

	tx := &weavetest.Tx{Msg: &vesting.ReleaseMsg{
		Metadata: &weave.Metadata{Schema: 1},
		ClaimId:  claimID,
	}}
	ctrl.router = r
	ctrl.ctx = ctx
	ctrl.tx = tx

	_, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	// The claim was settled before the funds moved, so the nested release
	// found nothing left to pay out.
	if !ctrl.reentered {
		t.Fatal("the nested release was never attempted")
	}
	if !vesting.ErrNoReleasableAmount.Is(ctrl.nestedErr) {
		t.Fatalf("nested release expected nothing to release, got %+v", ctrl.nestedErr)
	}

	coins := balance(t, db, bank, bob.Address())
	want, err := coin.CombineCoins(coin.NewCoin(0, 500, "VST"))
	assert.Nil(t, err)
	assert.Equal(t, true, coins.Equals(want))
}

// createClaim funds the source account and delivers a create message for
// a claim of the given amount, starting at blockNow with a cliff 100
// seconds later and a schedule of 1000 seconds. It returns the claim key.
func createClaim(
	t *testing.T,
	r weave.Handler,
	authenticator *weavetest.CtxAuth,
	db weave.KVStore,
	source weave.Condition,
	holder weave.Condition,
	amount coin.Coin,
	bank cash.Bucket,
) []byte {
	t.Helper()

	funding, err := coin.CombineCoins(amount)
	assert.Nil(t, err)
	setBalance(t, db, bank, source.Address(), funding)

	ctx := weave.WithHeight(context.Background(), 100)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, source)

	tx := &weavetest.Tx{Msg: &vesting.CreateMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Source:    source.Address(),
		Holder:    holder.Address(),
		Amount:    &amount,
		StartTime: weave.AsUnixTime(blockNow),
		CliffTime: weave.AsUnixTime(blockNow).Add(100 * time.Second),
		Duration:  1000,
	}}
	res, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	return res.Data
}

func TestCreateClaimEmitsAmountTag(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	claimAmount := coin.NewCoin(0, 1000, "VST")
	funding, err := coin.CombineCoins(claimAmount)
	assert.Nil(t, err)

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	vesting.RegisterRoutes(r, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "vesting", "cash")
	setBalance(t, db, bank, alice.Address(), funding)

	ctx := weave.WithHeight(context.Background(), 100)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	tx := &weavetest.Tx{Msg: &vesting.CreateMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Source:    alice.Address(),
		Holder:    bob.Address(),
		Amount:    &claimAmount,
		StartTime: weave.AsUnixTime(blockNow),
		CliffTime: weave.AsUnixTime(blockNow).Add(100 * time.Second),
		Duration:  1000,
	}}
	res, err := r.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	assert.Equal(t, claimAmount.String(), tagValue(t, res.Tags, "amount"))
	assert.Equal(t, "create", tagValue(t, res.Tags, "action"))
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

func setBalance(t *testing.T, db weave.KVStore, bank cash.Bucket, addr weave.Address, coins coin.Coins) {
	t.Helper()
	acct, err := cash.WalletWith(addr, coins...)
	assert.Nil(t, err)
	err = bank.Save(db, acct)
	assert.Nil(t, err)
}

func balance(t *testing.T, db weave.KVStore, bank cash.Bucket, addr weave.Address) coin.Coins {
	t.Helper()
	acct, err := bank.Get(db, addr)
	assert.Nil(t, err)
	return cash.AsCoins(acct)
}
