package unit_test

import (
	"context"
	"testing"

	"github.com/iov-one/custody/x/unit"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
)

func TestIssueHandler(t *testing.T) {
	issuer := weavetest.NewCondition()
	alice := weavetest.NewCondition()

	cases := map[string]struct {
		signer         weave.Condition
		issuerAddr     weave.Address
		mutator        func(msg *unit.IssueMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"issuer can register a unit": {
			signer:     issuer,
			issuerAddr: issuer.Address(),
		},
		"anyone else cannot": {
			signer:         alice,
			issuerAddr:     issuer.Address(),
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"without an issuer issuance is disabled": {
			signer:         issuer,
			issuerAddr:     nil,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"duplicate unit": {
			signer:     issuer,
			issuerAddr: issuer.Address(),
			mutator: func(msg *unit.IssueMsg) {
				msg.UnitId = []byte("unit-0")
			},
			wantDeliverErr: errors.ErrDuplicate,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "unit")
			setConfiguration(t, db, tc.issuerAddr)

			ctrl := unit.NewController()
			assert.Nil(t, ctrl.Issue(db, "tickets", []byte("unit-0"), alice.Address()))

			r := app.NewRouter()
			authenticator := &weavetest.CtxAuth{Key: "auth"}
			unit.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl)

			ctx := weave.WithHeight(context.Background(), 100)
			ctx = authenticator.SetConditions(ctx, tc.signer)

			msg := &unit.IssueMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Asset:    "tickets",
				UnitId:   []byte("unit-1"),
				Holder:   alice.Address(),
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
			if tc.wantDeliverErr != nil {
				return
			}
			holder, err := ctrl.Holder(db, msg.Asset, msg.UnitId)
			assert.Nil(t, err)
			assert.Equal(t, msg.Holder, holder)
		})
	}
}

func TestTransferHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bobby := weavetest.NewCondition()

	cases := map[string]struct {
		signer         weave.Condition
		mutator        func(msg *unit.TransferMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"holder can give the unit away": {
			signer: alice,
		},
		"non holder cannot": {
			signer:         bobby,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown unit": {
			signer: alice,
			mutator: func(msg *unit.TransferMsg) {
				msg.UnitId = []byte("no-such-unit")
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "unit")
			setConfiguration(t, db, nil)

			ctrl := unit.NewController()
			assert.Nil(t, ctrl.Issue(db, "tickets", []byte("unit-1"), alice.Address()))

			r := app.NewRouter()
			authenticator := &weavetest.CtxAuth{Key: "auth"}
			unit.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl)

			ctx := weave.WithHeight(context.Background(), 100)
			ctx = authenticator.SetConditions(ctx, tc.signer)

			msg := &unit.TransferMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Asset:       "tickets",
				UnitId:      []byte("unit-1"),
				Destination: bobby.Address(),
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
			if tc.wantDeliverErr != nil {
				return
			}
			holder, err := ctrl.Holder(db, "tickets", []byte("unit-1"))
			assert.Nil(t, err)
			assert.Equal(t, bobby.Address(), holder)
		})
	}
}

func setConfiguration(t *testing.T, db weave.KVStore, issuer weave.Address) {
	t.Helper()

	err := gconf.Save(db, "unit", &unit.Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    weavetest.NewCondition().Address(),
		Issuer:   issuer,
	})
	assert.Nil(t, err)
}
