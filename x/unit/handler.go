package unit

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	issueCost    int64 = 100
	transferCost int64 = 50
)

const (
	tagAction = "action"
	tagAsset  = "asset"
	tagHolder = "holder"
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The given controller must be backed by the same bucket that
// this package uses for storage.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl *Controller) {
	r = migration.SchemaMigratingRegistry("unit", r)

	r.Handle(&IssueMsg{}, IssueHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register this bucket as "/units".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("units", qr)
}

// NewConfigHandler returns a handler for the configuration update message.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("unit", &conf, auth, migration.CurrentAdmin)
}

// IssueHandler registers new units. Only the configured issuer can do
// that.
type IssueHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weave.Handler = IssueHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h IssueHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: issueCost}, nil
}

// Deliver registers the unit if all preconditions are met.
func (h IssueHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.ctrl.Issue(db, msg.Asset, msg.UnitId, msg.Holder); err != nil {
		return nil, errors.Wrap(err, "cannot issue unit")
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagAsset), Value: []byte(msg.Asset)},
		{Key: []byte(tagHolder), Value: msg.Holder},
		{Key: []byte(tagAction), Value: []byte("issue")},
	}...)
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h IssueHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*IssueMsg, error) {
	var msg IssueMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	var conf Configuration
	if err := gconf.Load(db, "unit", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	if len(conf.Issuer) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no issuer configured")
	}
	if !h.auth.HasAddress(ctx, conf.Issuer) {
		return nil, errors.ErrUnauthorized
	}

	return &msg, nil
}

// TransferHandler moves a unit to another holder. Only the current
// holder can give the unit away.
type TransferHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ weave.Handler = TransferHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h TransferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: transferCost}, nil
}

// Deliver updates the unit holder if all preconditions are met.
func (h TransferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, holder, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.ctrl.Transfer(db, msg.Asset, msg.UnitId, holder, msg.Destination); err != nil {
		return nil, errors.Wrap(err, "cannot transfer unit")
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagAsset), Value: []byte(msg.Asset)},
		{Key: []byte(tagHolder), Value: msg.Destination},
		{Key: []byte(tagAction), Value: []byte("transfer")},
	}...)
	return res, nil
}

// validate does all common pre-processing between Check and Deliver. It
// returns the current unit holder together with the message.
func (h TransferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferMsg, weave.Address, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	holder, err := h.ctrl.Holder(db, msg.Asset, msg.UnitId)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot resolve unit holder")
	}
	if !h.auth.HasAddress(ctx, holder) {
		return nil, nil, errors.ErrUnauthorized
	}

	return &msg, holder, nil
}
