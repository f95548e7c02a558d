package unit_test

import (
	"testing"

	"github.com/iov-one/custody/x/unit"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestUnitValidate(t *testing.T) {
	goodUnit := func() *unit.Unit {
		return &unit.Unit{
			Metadata: &weave.Metadata{Schema: 1},
			Asset:    "tickets",
			UnitId:   []byte("unit-1"),
			Holder:   weavetest.NewCondition().Address(),
		}
	}

	cases := map[string]struct {
		mutate  func(u *unit.Unit)
		wantErr *errors.Error
	}{
		"valid unit": {
			mutate: func(u *unit.Unit) {},
		},
		"missing metadata": {
			mutate:  func(u *unit.Unit) { u.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing asset": {
			mutate:  func(u *unit.Unit) { u.Asset = "" },
			wantErr: errors.ErrInput,
		},
		"asset with the key separator": {
			mutate:  func(u *unit.Unit) { u.Asset = "tic/kets" },
			wantErr: errors.ErrInput,
		},
		"asset too short": {
			mutate:  func(u *unit.Unit) { u.Asset = "ab" },
			wantErr: errors.ErrInput,
		},
		"missing unit id": {
			mutate:  func(u *unit.Unit) { u.UnitId = nil },
			wantErr: errors.ErrEmpty,
		},
		"unit id too long": {
			mutate:  func(u *unit.Unit) { u.UnitId = make([]byte, 65) },
			wantErr: errors.ErrInput,
		},
		"missing holder": {
			mutate:  func(u *unit.Unit) { u.Holder = nil },
			wantErr: errors.ErrEmpty,
		},
		"invalid holder": {
			mutate:  func(u *unit.Unit) { u.Holder = []byte("too short") },
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			u := goodUnit()
			tc.mutate(u)
			if err := u.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
