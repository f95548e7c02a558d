package vesting

import (
	"github.com/iov-one/weave"
)

// inThePast returns true if given time is strictly before the current block
// time. A value equal to the block time is not considered past, so a
// schedule starting exactly now is acceptable.
//
// This function panics if the block time is not provided in the context.
// This must never happen. The panic is here to prevent a broken setup from
// processing data incorrectly.
func inThePast(ctx weave.Context, t weave.UnixTime) bool {
	blockNow, err := weave.BlockTime(ctx)
	if err != nil {
		panic(err)
	}
	return t.Time().Before(blockNow)
}

// blockTime returns the current block time as declared in the context.
func blockTime(ctx weave.Context) weave.UnixTime {
	blockNow, err := weave.BlockTime(ctx)
	if err != nil {
		panic(err)
	}
	return weave.AsUnixTime(blockNow)
}
