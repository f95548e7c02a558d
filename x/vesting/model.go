package vesting

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Claim{}, migration.NoModification)
}

var _ orm.CloneableData = (*Claim)(nil)

// Validate ensures the claim is valid.
func (c *Claim) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := c.Holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	if coin.IsEmpty(c.Amount) || !c.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if err := c.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if c.Released == nil {
		return errors.Wrap(errors.ErrEmpty, "released")
	}
	if !c.Released.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "released cannot be negative")
	}
	if !c.Released.SameType(*c.Amount) {
		return errors.Wrap(errors.ErrCurrency, "released currency")
	}
	if !c.Amount.IsGTE(*c.Released) {
		return errors.Wrap(errors.ErrAmount, "released exceeds total amount")
	}
	if err := c.StartTime.Validate(); err != nil {
		return errors.Wrap(err, "start time")
	}
	if c.CliffTime < c.StartTime {
		return errors.Wrap(errors.ErrInput, "cliff before start time")
	}
	if c.Duration <= 0 {
		return errors.Wrap(errors.ErrInput, "duration must be greater than zero")
	}
	if err := c.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return nil
}

// Copy makes a deep copy of this claim.
func (c *Claim) Copy() orm.CloneableData {
	return &Claim{
		Metadata:  c.Metadata.Copy(),
		Source:    c.Source.Clone(),
		Holder:    c.Holder.Clone(),
		Amount:    c.Amount.Clone(),
		Released:  c.Released.Clone(),
		StartTime: c.StartTime,
		CliffTime: c.CliffTime,
		Duration:  c.Duration,
		Address:   c.Address.Clone(),
	}
}

// Condition calculates the custody account condition of a claim given its
// key. Funds deposited for a claim are held on the address of this
// condition until released.
func Condition(key []byte) weave.Condition {
	return weave.NewCondition("vesting", "seq", key)
}

// NewBucket returns a bucket to store claims. Claims are indexed by the
// current holder and by the source that funded them. Iteration order of an
// index is unspecified and can change when records are removed or
// reassigned.
func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vest", &Claim{},
		orm.WithIDSequence(claimSeq),
		orm.WithIndex("holder", idxHolder, false),
		orm.WithIndex("source", idxSource, false),
	)
	return migration.NewModelBucket("vesting", b)
}

var claimSeq = orm.NewSequence("vesting", "id")

func toClaim(obj orm.Object) (*Claim, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	c, ok := obj.Value().(*Claim)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Claim")
	}
	return c, nil
}

func idxHolder(obj orm.Object) ([]byte, error) {
	c, err := toClaim(obj)
	if err != nil {
		return nil, err
	}
	return c.Holder, nil
}

func idxSource(obj orm.Object) ([]byte, error) {
	c, err := toClaim(obj)
	if err != nil {
		return nil, err
	}
	return c.Source, nil
}
