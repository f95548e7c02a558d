package vesting

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// vestedAmount returns the part of the claim's total amount that the
// schedule makes available at the given time.
//
// Before the cliff time nothing is available, even if time elapsed since
// the schedule start. From the end of the schedule the whole amount is
// returned, so no rounding leftover can ever be locked forever. In between
// the entitlement grows linearly:
//
//   total * (now - start) / duration
//
// Multiplication is done before the division to keep precision. It is a
// checked operation and fails with ErrOverflow instead of wrapping around.
// The division rounds down.
func vestedAmount(c *Claim, now weave.UnixTime) (coin.Coin, error) {
	if now < c.CliffTime {
		return coin.Coin{Ticker: c.Amount.Ticker}, nil
	}
	if now >= c.StartTime.Add(c.Duration.Duration()) {
		return *c.Amount, nil
	}
	elapsed := int64(now - c.StartTime)
	scaled, err := c.Amount.Multiply(elapsed)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "scale amount")
	}
	part, _, err := scaled.Divide(int64(c.Duration))
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "divide amount")
	}
	return part, nil
}

// withdrawable returns the amount that can be paid out right now. That is
// the vested amount minus what was already released.
//
// It fails with ErrCliffNotReached before the cliff time and with
// ErrNoReleasableAmount when the whole vested amount was already paid out.
func withdrawable(c *Claim, now weave.UnixTime) (coin.Coin, error) {
	if now < c.CliffTime {
		return coin.Coin{}, errors.Wrapf(ErrCliffNotReached, "cliff at %s", c.CliffTime)
	}
	vested, err := vestedAmount(c, now)
	if err != nil {
		return coin.Coin{}, err
	}
	delta, err := vested.Subtract(*c.Released)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "subtract released")
	}
	if !delta.IsPositive() {
		return coin.Coin{}, errors.Wrap(ErrNoReleasableAmount, "claim is settled up")
	}
	return delta, nil
}
