package app

import (
	"testing"

	"github.com/iov-one/custody/x/vesting"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/sigs"
)

func TestTxDecoderRoundTrip(t *testing.T) {
	amount := coin.NewCoin(100, 0, "IOV")
	msg := &vesting.CreateMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Source:    weavetest.NewCondition().Address(),
		Holder:    weavetest.NewCondition().Address(),
		Amount:    &amount,
		StartTime: 1000,
		CliffTime: 1100,
		Duration:  1000,
	}
	tx := &Tx{Sum: &Tx_VestingCreateMsg{VestingCreateMsg: msg}}

	raw, err := tx.Marshal()
	assert.Nil(t, err)

	decoded, err := TxDecoder(raw)
	assert.Nil(t, err)

	got, err := decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, msg.Path(), got.Path())
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	alice := weavetest.NewKey()

	msg := &vesting.ReleaseMsg{
		Metadata: &weave.Metadata{Schema: 1},
		ClaimId:  weavetest.SequenceID(1),
	}
	tx := &Tx{Sum: &Tx_VestingReleaseMsg{VestingReleaseMsg: msg}}

	unsigned, err := tx.GetSignBytes()
	assert.Nil(t, err)

	sig, err := sigs.SignTx(alice, tx, "test-chain", 0)
	assert.Nil(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	signed, err := tx.GetSignBytes()
	assert.Nil(t, err)
	assert.Equal(t, unsigned, signed)
}

func TestStackBuilds(t *testing.T) {
	if h := Stack(); h == nil {
		t.Fatal("cannot build the application stack")
	}
}
