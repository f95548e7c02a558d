package vesting

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/x/cash"
)

var _ weave.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct {
	Minter cash.CoinMinter
}

// FromGenesis will parse initial claims from genesis and save them in the
// database. Funds backing a genesis claim are minted to its custody
// account.
func (i *Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	if err := gconf.InitConfig(db, opts, "vesting", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var claims []struct {
		Source    weave.Address      `json:"source"`
		Holder    weave.Address      `json:"holder"`
		Amount    *coin.Coin         `json:"amount"`
		StartTime weave.UnixTime     `json:"start_time"`
		CliffTime weave.UnixTime     `json:"cliff_time"`
		Duration  weave.UnixDuration `json:"duration"`
	}
	if err := opts.ReadOptions("vesting", &claims); err != nil {
		return err
	}

	bucket := NewBucket()
	for j, c := range claims {
		key, err := claimSeq.NextVal(db)
		if err != nil {
			return errors.Wrap(err, "cannot acquire key")
		}
		claim := Claim{
			Metadata:  &weave.Metadata{Schema: 1},
			Source:    c.Source,
			Holder:    c.Holder,
			Amount:    c.Amount,
			Released:  &coin.Coin{Ticker: c.Amount.GetTicker()},
			StartTime: c.StartTime,
			CliffTime: c.CliffTime,
			Duration:  c.Duration,
			Address:   Condition(key).Address(),
		}
		if err := claim.Validate(); err != nil {
			return errors.Wrapf(err, "invalid claim at position %d", j)
		}
		if _, err := bucket.Put(db, key, &claim); err != nil {
			return errors.Wrapf(err, "cannot store claim at position %d", j)
		}
		if err := i.Minter.CoinMint(db, claim.Address, *claim.Amount); err != nil {
			return errors.Wrap(err, "failed to issue coins")
		}
	}
	return nil
}
