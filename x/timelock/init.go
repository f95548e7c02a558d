package timelock

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

var _ weave.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

// FromGenesis will parse initial locks from genesis and save them in the
// database. Genesis units are expected to be assigned to the lock custody
// accounts by the asset registry initialization.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var locks []struct {
		Owner      weave.Address  `json:"owner"`
		Asset      string         `json:"asset"`
		UnitID     []byte         `json:"unit_id"`
		UnlockTime weave.UnixTime `json:"unlock_time"`
	}
	if err := opts.ReadOptions("timelock", &locks); err != nil {
		return err
	}

	bucket := NewBucket()
	for i, l := range locks {
		key, err := lockSeq.NextVal(db)
		if err != nil {
			return errors.Wrap(err, "cannot acquire key")
		}
		lock := Lock{
			Metadata:   &weave.Metadata{Schema: 1},
			Owner:      l.Owner,
			Asset:      l.Asset,
			UnitId:     l.UnitID,
			UnlockTime: l.UnlockTime,
			Address:    Condition(key).Address(),
		}
		if err := lock.Validate(); err != nil {
			return errors.Wrapf(err, "invalid lock at position %d", i)
		}
		if _, err := bucket.Put(db, key, &lock); err != nil {
			return errors.Wrapf(err, "cannot store lock at position %d", i)
		}
	}
	return nil
}
