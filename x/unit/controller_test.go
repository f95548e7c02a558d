package unit_test

import (
	"testing"

	"github.com/iov-one/custody/x/unit"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerIssueAndHolder(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "unit")

	alice := weavetest.NewCondition().Address()

	ctrl := unit.NewController()
	require.NoError(t, ctrl.Issue(db, "tickets", []byte("unit-1"), alice))

	holder, err := ctrl.Holder(db, "tickets", []byte("unit-1"))
	require.NoError(t, err)
	assert.Equal(t, alice, holder)

	_, err = ctrl.Holder(db, "tickets", []byte("no-such-unit"))
	assert.True(t, errors.ErrNotFound.Is(err), "unknown unit expected not found, got %+v", err)

	err = ctrl.Issue(db, "tickets", []byte("unit-1"), alice)
	assert.True(t, errors.ErrDuplicate.Is(err), "second issue expected duplicate, got %+v", err)
}

func TestControllerTransfer(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "unit")

	alice := weavetest.NewCondition().Address()
	bobby := weavetest.NewCondition().Address()

	ctrl := unit.NewController()
	require.NoError(t, ctrl.Issue(db, "tickets", []byte("unit-1"), alice))

	// Only the current holder can be the transfer source.
	err := ctrl.Transfer(db, "tickets", []byte("unit-1"), bobby, alice)
	assert.True(t, errors.ErrUnauthorized.Is(err), "transfer from a non holder expected unauthorized, got %+v", err)

	require.NoError(t, ctrl.Transfer(db, "tickets", []byte("unit-1"), alice, bobby))

	holder, err := ctrl.Holder(db, "tickets", []byte("unit-1"))
	require.NoError(t, err)
	assert.Equal(t, bobby, holder)
}

func TestControllerAssetsDoNotCollide(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "unit")

	alice := weavetest.NewCondition().Address()
	bobby := weavetest.NewCondition().Address()

	ctrl := unit.NewController()
	require.NoError(t, ctrl.Issue(db, "tickets", []byte("unit-1"), alice))
	require.NoError(t, ctrl.Issue(db, "badges", []byte("unit-1"), bobby))

	holder, err := ctrl.Holder(db, "tickets", []byte("unit-1"))
	require.NoError(t, err)
	assert.Equal(t, alice, holder)

	holder, err = ctrl.Holder(db, "badges", []byte("unit-1"))
	require.NoError(t, err)
	assert.Equal(t, bobby, holder)
}
