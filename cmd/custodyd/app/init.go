package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/custody/x/timelock"
	"github.com/iov-one/custody/x/unit"
	"github.com/iov-one/custody/x/vesting"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/validators"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// You can set
//   - the ticker of the initial account wallet,
//   - the address of the initial account.
//
// When not provided, a random key is generated and the secret is
// printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the recovery secret
		bz, secret, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(secret)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)

	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{"whole": 123456789, "ticker": ticker},
				},
			},
		},
		"conf": dict{
			"cash": dict{
				"collector_address": addr,
				"minimal_fee":       coin.Coin{},
			},
			"migration": dict{
				"admin": addr,
			},
			"vesting": dict{
				"metadata":     dict{"schema": 1},
				"owner":        addr,
				"min_duration": 0,
			},
			"unit": dict{
				"metadata": dict{"schema": 1},
				"owner":    addr,
				"issuer":   addr,
			},
		},
		"initialize_schema": array{
			dict{"ver": 1, "pkg": "cash"},
			dict{"ver": 1, "pkg": "sigs"},
			dict{"ver": 1, "pkg": "utils"},
			dict{"ver": 1, "pkg": "validators"},
			dict{"ver": 1, "pkg": "vesting"},
			dict{"ver": 1, "pkg": "timelock"},
			dict{"ver": 1, "pkg": "unit"},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" stays "" to use memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack()
	application, err := Application("custody", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}

	return DecorateApp(application, options), nil
}

// DecorateApp adds initializers and Logger to an Application
func DecorateApp(application app.BaseApp, options *server.Options) app.BaseApp {
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&validators.Initializer{},
		&vesting.Initializer{Minter: CashControl()},
		&timelock.Initializer{},
		&unit.Initializer{},
	))
	application.WithLogger(options.Logger)
	return application
}

// InlineApp will take a previously prepared CommitStore and return a
// complete Application
func InlineApp(kv weave.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	stack := Stack()
	ctx := context.Background()
	store := app.NewStoreApp("custody", kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, TxDecoder, stack, nil, debug)
	base.WithLogger(logger)
	return base
}

// GenerateCoinKey returns the address of a new random key, along with
// the hex encoded private key needed to recover it.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	secret := fmt.Sprintf("%X", privKey.GetEd25519())
	return addr, secret, nil
}
