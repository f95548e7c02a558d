package timelock_test

import (
	"testing"

	"github.com/iov-one/custody/x/timelock"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestLockValidate(t *testing.T) {
	goodLock := func() *timelock.Lock {
		return &timelock.Lock{
			Metadata:   &weave.Metadata{Schema: 1},
			Owner:      weavetest.NewCondition().Address(),
			Asset:      "tickets",
			UnitId:     []byte("unit-1"),
			UnlockTime: 12345,
			Address:    timelock.Condition(weavetest.SequenceID(1)).Address(),
		}
	}

	cases := map[string]struct {
		mutate  func(l *timelock.Lock)
		wantErr *errors.Error
	}{
		"valid lock": {
			mutate: func(l *timelock.Lock) {},
		},
		"missing metadata": {
			mutate:  func(l *timelock.Lock) { l.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing owner": {
			mutate:  func(l *timelock.Lock) { l.Owner = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing asset": {
			mutate:  func(l *timelock.Lock) { l.Asset = "" },
			wantErr: errors.ErrInput,
		},
		"missing unit id": {
			mutate:  func(l *timelock.Lock) { l.UnitId = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing unlock time": {
			mutate:  func(l *timelock.Lock) { l.UnlockTime = 0 },
			wantErr: errors.ErrInput,
		},
		"negative unlock time": {
			mutate:  func(l *timelock.Lock) { l.UnlockTime = -1 },
			wantErr: errors.ErrState,
		},
		"missing address": {
			mutate:  func(l *timelock.Lock) { l.Address = nil },
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			l := goodLock()
			tc.mutate(l)
			if err := l.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
