package timelock_test

import (
	"testing"

	"github.com/iov-one/custody/x/timelock"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

func TestLockMsgValidate(t *testing.T) {
	goodMsg := func() *timelock.LockMsg {
		return &timelock.LockMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Asset:    "tickets",
			UnitId:   []byte("unit-1"),
			Period:   600,
		}
	}

	cases := map[string]struct {
		mutate  func(msg *timelock.LockMsg)
		wantErr *errors.Error
	}{
		"valid message": {
			mutate: func(msg *timelock.LockMsg) {},
		},
		"missing metadata": {
			mutate:  func(msg *timelock.LockMsg) { msg.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing asset": {
			mutate:  func(msg *timelock.LockMsg) { msg.Asset = "" },
			wantErr: errors.ErrInput,
		},
		"asset name too short": {
			mutate:  func(msg *timelock.LockMsg) { msg.Asset = "ab" },
			wantErr: errors.ErrInput,
		},
		"asset name with forbidden characters": {
			mutate:  func(msg *timelock.LockMsg) { msg.Asset = "tick/ets" },
			wantErr: errors.ErrInput,
		},
		"missing unit id": {
			mutate:  func(msg *timelock.LockMsg) { msg.UnitId = nil },
			wantErr: errors.ErrEmpty,
		},
		"unit id too long": {
			mutate:  func(msg *timelock.LockMsg) { msg.UnitId = make([]byte, 65) },
			wantErr: errors.ErrInput,
		},
		"zero period": {
			mutate:  func(msg *timelock.LockMsg) { msg.Period = 0 },
			wantErr: errors.ErrInput,
		},
		"negative period": {
			mutate:  func(msg *timelock.LockMsg) { msg.Period = -5 },
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := goodMsg()
			tc.mutate(msg)
			if err := msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestUnlockMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     *timelock.UnlockMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &timelock.UnlockMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Asset:    "tickets",
				UnitId:   []byte("unit-1"),
			},
		},
		"missing metadata": {
			msg: &timelock.UnlockMsg{
				Asset:  "tickets",
				UnitId: []byte("unit-1"),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing asset": {
			msg: &timelock.UnlockMsg{
				Metadata: &weave.Metadata{Schema: 1},
				UnitId:   []byte("unit-1"),
			},
			wantErr: errors.ErrInput,
		},
		"missing unit id": {
			msg: &timelock.UnlockMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Asset:    "tickets",
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
