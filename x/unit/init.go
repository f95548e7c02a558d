package unit

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

var _ weave.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

// FromGenesis will parse initial units from genesis and save them in the
// database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	if err := gconf.InitConfig(db, opts, "unit", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var units []struct {
		Asset  string        `json:"asset"`
		UnitID []byte        `json:"unit_id"`
		Holder weave.Address `json:"holder"`
	}
	if err := opts.ReadOptions("unit", &units); err != nil {
		return err
	}

	ctrl := NewController()
	for i, u := range units {
		if err := ctrl.Issue(db, u.Asset, u.UnitID, u.Holder); err != nil {
			return errors.Wrapf(err, "cannot issue unit at position %d", i)
		}
	}
	return nil
}
