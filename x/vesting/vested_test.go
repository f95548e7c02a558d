package vesting

import (
	"math"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestVestedAmount(t *testing.T) {
	// A claim over 1000 fractional units, starting at second 1000, with a
	// cliff 100 seconds later and a schedule of 1000 seconds in total.
	claim := func() *Claim {
		amount := coin.NewCoin(0, 1000, "VST")
		zero := coin.NewCoin(0, 0, "VST")
		return &Claim{
			Metadata:  &weave.Metadata{Schema: 1},
			Amount:    &amount,
			Released:  &zero,
			StartTime: 1000,
			CliffTime: 1100,
			Duration:  1000,
		}
	}

	cases := map[string]struct {
		now     weave.UnixTime
		wantErr *errors.Error
		want    coin.Coin
	}{
		"before the start nothing is vested": {
			now:  500,
			want: coin.NewCoin(0, 0, "VST"),
		},
		"before the cliff nothing is vested": {
			now:  1099,
			want: coin.NewCoin(0, 0, "VST"),
		},
		"at the cliff the elapsed part is vested": {
			now:  1100,
			want: coin.NewCoin(0, 100, "VST"),
		},
		"half way through": {
			now:  1500,
			want: coin.NewCoin(0, 500, "VST"),
		},
		"one second before the end": {
			now:  1999,
			want: coin.NewCoin(0, 999, "VST"),
		},
		"at the end the full amount is vested": {
			now:  2000,
			want: coin.NewCoin(0, 1000, "VST"),
		},
		"long after the end the full amount is vested": {
			now:  math.MaxInt32,
			want: coin.NewCoin(0, 1000, "VST"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := vestedAmount(claim(), tc.now)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVestedAmountRoundsDown(t *testing.T) {
	// 10 units over 3 seconds does not divide evenly. The entitlement must
	// round down at every step and still reach the full amount at the end.
	amount := coin.NewCoin(0, 10, "VST")
	zero := coin.NewCoin(0, 0, "VST")
	c := &Claim{
		Metadata:  &weave.Metadata{Schema: 1},
		Amount:    &amount,
		Released:  &zero,
		StartTime: 100,
		CliffTime: 100,
		Duration:  3,
	}

	wants := map[weave.UnixTime]coin.Coin{
		100: coin.NewCoin(0, 0, "VST"),
		101: coin.NewCoin(0, 3, "VST"),
		102: coin.NewCoin(0, 6, "VST"),
		103: coin.NewCoin(0, 10, "VST"),
	}
	for now, want := range wants {
		got, err := vestedAmount(c, now)
		assert.Nil(t, err)
		if !got.Equals(want) {
			t.Fatalf("at %d: want %v, got %v", now, want, got)
		}
	}
}

func TestVestedAmountIsMonotonic(t *testing.T) {
	amount := coin.NewCoin(123, 456789, "VST")
	zero := coin.NewCoin(0, 0, "VST")
	c := &Claim{
		Metadata:  &weave.Metadata{Schema: 1},
		Amount:    &amount,
		Released:  &zero,
		StartTime: 0,
		CliffTime: 7,
		Duration:  97,
	}

	prev := coin.NewCoin(0, 0, "VST")
	for now := weave.UnixTime(0); now <= 100; now++ {
		got, err := vestedAmount(c, now)
		assert.Nil(t, err)
		if !got.IsGTE(prev) {
			t.Fatalf("entitlement shrunk at %d: %v < %v", now, got, prev)
		}
		prev = got
	}
	if !prev.Equals(amount) {
		t.Fatalf("full amount not reached: %v", prev)
	}
}

func TestVestedAmountOverflow(t *testing.T) {
	// A huge amount multiplied by the elapsed time does not fit an int64.
	// The computation must fail instead of silently wrapping around.
	amount := coin.Coin{Ticker: "VST", Whole: math.MaxInt64 / 2}
	zero := coin.NewCoin(0, 0, "VST")
	c := &Claim{
		Metadata:  &weave.Metadata{Schema: 1},
		Amount:    &amount,
		Released:  &zero,
		StartTime: 0,
		CliffTime: 0,
		Duration:  math.MaxInt32,
	}

	if _, err := vestedAmount(c, 1000000); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
}

func TestWithdrawable(t *testing.T) {
	amount := coin.NewCoin(0, 1000, "VST")

	cases := map[string]struct {
		released coin.Coin
		now      weave.UnixTime
		wantErr  *errors.Error
		want     coin.Coin
	}{
		"nothing can be withdrawn before the cliff": {
			released: coin.NewCoin(0, 0, "VST"),
			now:      1099,
			wantErr:  ErrCliffNotReached,
		},
		"everything vested so far": {
			released: coin.NewCoin(0, 0, "VST"),
			now:      1500,
			want:     coin.NewCoin(0, 500, "VST"),
		},
		"only the not yet released part": {
			released: coin.NewCoin(0, 300, "VST"),
			now:      1500,
			want:     coin.NewCoin(0, 200, "VST"),
		},
		"settled up at this instant": {
			released: coin.NewCoin(0, 500, "VST"),
			now:      1500,
			wantErr:  ErrNoReleasableAmount,
		},
		"settled up after the end": {
			released: coin.NewCoin(0, 1000, "VST"),
			now:      9999,
			wantErr:  ErrNoReleasableAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := &Claim{
				Metadata:  &weave.Metadata{Schema: 1},
				Amount:    &amount,
				Released:  &tc.released,
				StartTime: 1000,
				CliffTime: 1100,
				Duration:  1000,
			}
			got, err := withdrawable(c, tc.now)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
