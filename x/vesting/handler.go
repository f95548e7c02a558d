package vesting

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// pay claim creation cost up-front
	createClaimCost   int64 = 300
	releaseClaimCost  int64 = 0
	transferClaimCost int64 = 50
)

// Tag keys used to index delivered transactions. Consumers must treat the
// emitted pairs as an append-only audit log, not a query interface.
const (
	tagAction  = "action"
	tagClaimID = "claim-id"
	tagHolder  = "holder"
	tagAmount  = "amount"
)

// CashController allows to move coins between accounts without direct
// access to the wallet bucket. Required functionality is implemented by
// the weave x/cash extension.
type CashController interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("vesting", r)
	bucket := NewBucket()

	r.Handle(&CreateMsg{}, CreateClaimHandler{auth, bucket, ctrl})
	r.Handle(&ReleaseMsg{}, ReleaseClaimHandler{auth, bucket, ctrl})
	r.Handle(&TransferMsg{}, TransferClaimHandler{auth, bucket})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register this bucket as "/claims".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("claims", qr)
}

// NewConfigHandler returns a handler for the configuration update message.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("vesting", &conf, auth, migration.CurrentAdmin)
}

// CreateClaimHandler deposits funds under a new vesting claim.
type CreateClaimHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   CashController
}

var _ weave.Handler = CreateClaimHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h CreateClaimHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	res := &weave.CheckResult{
		GasAllocated: createClaimCost,
	}
	return res, nil
}

// Deliver moves the funds from the source to the claim's custody account
// if all preconditions are met.
func (h CreateClaimHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// apply a default for source
	source := msg.Source
	if source == nil {
		source = x.AnySigner(ctx, h.auth).Address()
	}

	key, err := claimSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}

	claim := &Claim{
		Metadata:  &weave.Metadata{Schema: 1},
		Source:    source,
		Holder:    msg.Holder,
		Amount:    msg.Amount,
		Released:  &coin.Coin{Ticker: msg.Amount.Ticker},
		StartTime: msg.StartTime,
		CliffTime: msg.CliffTime,
		Duration:  msg.Duration,
		Address:   Condition(key).Address(),
	}
	if _, err := h.bucket.Put(db, key, claim); err != nil {
		return nil, errors.Wrap(err, "cannot store claim")
	}

	// Deposit to the custody account. Failure aborts the whole
	// transaction, together with the record write above.
	if err := h.ctrl.MoveCoins(db, claim.Source, claim.Address, *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot deposit")
	}

	res := &weave.DeliverResult{Data: key}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagClaimID), Value: key},
		{Key: []byte(tagHolder), Value: claim.Holder},
		{Key: []byte(tagAmount), Value: []byte(msg.Amount.String())},
		{Key: []byte(tagAction), Value: []byte("create")},
	}...)
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateClaimHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if inThePast(ctx, msg.StartTime) {
		return nil, errors.Wrap(errors.ErrInput, "start time in the past")
	}

	var conf Configuration
	switch err := gconf.Load(db, "vesting", &conf); {
	case err == nil:
		if conf.MinDuration > 0 && msg.Duration < conf.MinDuration {
			return nil, errors.Wrapf(errors.ErrInput, "duration below the configured minimum of %d", conf.MinDuration)
		}
	case errors.ErrNotFound.Is(err):
		// No configuration was initialized, no minimum is enforced.
	default:
		return nil, errors.Wrap(err, "load configuration")
	}

	// Source must authorize this (if not set, defaults to the signer).
	if msg.Source != nil {
		if !h.auth.HasAddress(ctx, msg.Source) {
			return nil, errors.ErrUnauthorized
		}
	}

	return &msg, nil
}

// ReleaseClaimHandler pays out the vested part of a claim to its holder.
type ReleaseClaimHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   CashController
}

var _ weave.Handler = ReleaseClaimHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h ReleaseClaimHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: releaseClaimCost}, nil
}

// Deliver pays out the amount vested up to the current block time. The
// claim is updated before the funds move, so a nested release triggered
// from within the transfer observes the already settled record and cannot
// be paid twice.
func (h ReleaseClaimHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, claim, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	delta, err := withdrawable(claim, blockTime(ctx))
	if err != nil {
		return nil, err
	}

	released, err := claim.Released.Add(delta)
	if err != nil {
		return nil, errors.Wrap(err, "update released")
	}
	claim.Released = &released
	if _, err := h.bucket.Put(db, msg.ClaimId, claim); err != nil {
		return nil, errors.Wrap(err, "cannot store claim")
	}

	// Withdraw from the custody account only after the record was
	// settled.
	if err := h.ctrl.MoveCoins(db, claim.Address, claim.Holder, delta); err != nil {
		return nil, errors.Wrap(err, "cannot withdraw")
	}

	res := &weave.DeliverResult{Data: msg.ClaimId}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagClaimID), Value: msg.ClaimId},
		{Key: []byte(tagAmount), Value: []byte(delta.String())},
		{Key: []byte(tagAction), Value: []byte("release")},
	}...)
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ReleaseClaimHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ReleaseMsg, *Claim, error) {
	var msg ReleaseMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var claim Claim
	if err := h.bucket.One(db, msg.ClaimId, &claim); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load claim from the store")
	}

	// Only the current holder can release.
	if !h.auth.HasAddress(ctx, claim.Holder) {
		return nil, nil, errors.ErrUnauthorized
	}

	return &msg, &claim, nil
}

// TransferClaimHandler reassigns the holder of a claim. No funds are
// moved and the released amount is not changed. The new holder acquires
// all future entitlement.
type TransferClaimHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ weave.Handler = TransferClaimHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h TransferClaimHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: transferClaimCost}, nil
}

// Deliver updates the claim holder if all preconditions are met.
func (h TransferClaimHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, claim, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	oldHolder := claim.Holder
	claim.Holder = msg.NewHolder
	if _, err := h.bucket.Put(db, msg.ClaimId, claim); err != nil {
		return nil, errors.Wrap(err, "cannot save claim")
	}

	res := &weave.DeliverResult{Data: msg.ClaimId}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagClaimID), Value: msg.ClaimId},
		{Key: []byte(tagHolder), Value: msg.NewHolder},
		{Key: []byte("old-holder"), Value: oldHolder},
		{Key: []byte(tagAction), Value: []byte("transfer")},
	}...)
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h TransferClaimHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferMsg, *Claim, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var claim Claim
	if err := h.bucket.One(db, msg.ClaimId, &claim); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load claim from the store")
	}

	// Only the current holder can give the claim away.
	if !h.auth.HasAddress(ctx, claim.Holder) {
		return nil, nil, errors.ErrUnauthorized
	}

	return &msg, &claim, nil
}
