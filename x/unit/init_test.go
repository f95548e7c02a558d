package unit_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/custody/x/unit"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bobby := weavetest.NewCondition().Address()

	genesis := fmt.Sprintf(`
{
	"conf": {
		"unit": {
			"metadata": {"schema": 1},
			"owner": %q,
			"issuer": %q
		}
	},
	"unit": [
		{
			"asset": "tickets",
			"unit_id": "dW5pdC0x",
			"holder": %q
		}
	]
}
`, alice, alice, bobby)
	var opts weave.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	migration.MustInitPkg(db, "unit")

	var ini unit.Initializer
	assert.Nil(t, ini.FromGenesis(opts, weave.GenesisParams{}, db))

	var conf unit.Configuration
	assert.Nil(t, gconf.Load(db, "unit", &conf))
	assert.Equal(t, alice, conf.Issuer)

	holder, err := unit.NewController().Holder(db, "tickets", []byte("unit-1"))
	assert.Nil(t, err)
	assert.Equal(t, bobby, holder)
}
