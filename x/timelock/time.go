package timelock

import (
	"github.com/iov-one/weave"
)

// isReached returns true if the given time is equal to or earlier than
// the current block time. A lock expiring exactly now can be unlocked.
//
// This function panics if the block time is not provided in the context.
// This must never happen. The panic is here to prevent a broken setup from
// processing data incorrectly.
func isReached(ctx weave.Context, t weave.UnixTime) bool {
	blockNow, err := weave.BlockTime(ctx)
	if err != nil {
		panic(err)
	}
	return t <= weave.AsUnixTime(blockNow)
}

// blockTime returns the current block time as declared in the context.
func blockTime(ctx weave.Context) weave.UnixTime {
	blockNow, err := weave.BlockTime(ctx)
	if err != nil {
		panic(err)
	}
	return weave.AsUnixTime(blockNow)
}
