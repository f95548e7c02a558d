package timelock_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/custody/x/timelock"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	genesis := fmt.Sprintf(`
{
	"timelock": [
		{
			"owner": %q,
			"asset": "tickets",
			"unit_id": "dW5pdC0x",
			"unlock_time": 10600
		}
	]
}
`, alice)
	var opts weave.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	migration.MustInitPkg(db, "timelock")

	var ini timelock.Initializer
	assert.Nil(t, ini.FromGenesis(opts, weave.GenesisParams{}, db))

	key := weavetest.SequenceID(1)
	bucket := timelock.NewBucket()
	var lock timelock.Lock
	assert.Nil(t, bucket.One(db, key, &lock))
	assert.Equal(t, alice, lock.Owner)
	assert.Equal(t, "tickets", lock.Asset)
	assert.Equal(t, []byte("unit-1"), lock.UnitId)
	assert.Equal(t, weave.UnixTime(10600), lock.UnlockTime)
	assert.Equal(t, timelock.Condition(key).Address(), lock.Address)
}
