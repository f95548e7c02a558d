package vesting_test

import (
	"testing"

	"github.com/iov-one/custody/x/vesting"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestCreateMsgValidate(t *testing.T) {
	goodMsg := func() *vesting.CreateMsg {
		amount := coin.NewCoin(1, 0, "VST")
		return &vesting.CreateMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Source:    weavetest.NewCondition().Address(),
			Holder:    weavetest.NewCondition().Address(),
			Amount:    &amount,
			StartTime: 1000,
			CliffTime: 1100,
			Duration:  1000,
		}
	}

	cases := map[string]struct {
		mutate  func(msg *vesting.CreateMsg)
		wantErr *errors.Error
	}{
		"valid message": {
			mutate: func(msg *vesting.CreateMsg) {},
		},
		"source is optional": {
			mutate: func(msg *vesting.CreateMsg) { msg.Source = nil },
		},
		"cliff can equal start": {
			mutate: func(msg *vesting.CreateMsg) { msg.CliffTime = msg.StartTime },
		},
		"missing metadata": {
			mutate:  func(msg *vesting.CreateMsg) { msg.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing holder": {
			mutate:  func(msg *vesting.CreateMsg) { msg.Holder = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing amount": {
			mutate:  func(msg *vesting.CreateMsg) { msg.Amount = nil },
			wantErr: errors.ErrAmount,
		},
		"zero amount": {
			mutate: func(msg *vesting.CreateMsg) {
				zero := coin.NewCoin(0, 0, "VST")
				msg.Amount = &zero
			},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			mutate: func(msg *vesting.CreateMsg) {
				neg := coin.NewCoin(-1, 0, "VST")
				msg.Amount = &neg
			},
			wantErr: errors.ErrAmount,
		},
		"missing start time": {
			mutate:  func(msg *vesting.CreateMsg) { msg.StartTime = 0 },
			wantErr: errors.ErrInput,
		},
		"cliff before start": {
			mutate:  func(msg *vesting.CreateMsg) { msg.CliffTime = msg.StartTime - 1 },
			wantErr: errors.ErrInput,
		},
		"zero duration": {
			mutate:  func(msg *vesting.CreateMsg) { msg.Duration = 0 },
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

func TestReleaseMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     *vesting.ReleaseMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &vesting.ReleaseMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ClaimId:  weavetest.SequenceID(1),
			},
		},
		"missing metadata": {
			msg: &vesting.ReleaseMsg{
				ClaimId: weavetest.SequenceID(1),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing claim id": {
			msg: &vesting.ReleaseMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrInput,
		},
		"claim id of a wrong length": {
			msg: &vesting.ReleaseMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ClaimId:  []byte("x"),
			},
			wantErr: errors.ErrInput,
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

func TestTransferMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     *vesting.TransferMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &vesting.TransferMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				ClaimId:   weavetest.SequenceID(1),
				NewHolder: weavetest.NewCondition().Address(),
			},
		},
		"missing metadata": {
			msg: &vesting.TransferMsg{
				ClaimId:   weavetest.SequenceID(1),
				NewHolder: weavetest.NewCondition().Address(),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing claim id": {
			msg: &vesting.TransferMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				NewHolder: weavetest.NewCondition().Address(),
			},
			wantErr: errors.ErrInput,
		},
		"missing new holder": {
			msg: &vesting.TransferMsg{
				Metadata: &weave.Metadata{Schema: 1},
				ClaimId:  weavetest.SequenceID(1),
			},
			wantErr: errors.ErrEmpty,
		},
		"invalid new holder": {
			msg: &vesting.TransferMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				ClaimId:   weavetest.SequenceID(1),
				NewHolder: []byte("too short"),
			},
			wantErr: errors.ErrInput,
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

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     *vesting.UpdateConfigurationMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: &vesting.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &vesting.Configuration{
					Owner:       weavetest.NewCondition().Address(),
					MinDuration: 60,
				},
			},
		},
		"missing patch": {
			msg: &vesting.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrEmpty,
		},
		"negative minimum duration": {
			msg: &vesting.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &vesting.Configuration{
					MinDuration: -1,
				},
			},
			wantErr: errors.ErrInput,
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
