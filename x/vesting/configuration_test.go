package vesting_test

import (
	"testing"

	"github.com/iov-one/custody/x/vesting"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		conf    vesting.Configuration
		wantErr *errors.Error
	}{
		"valid configuration": {
			conf: vesting.Configuration{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       weavetest.NewCondition().Address(),
				MinDuration: 60,
			},
		},
		"owner is optional": {
			conf: vesting.Configuration{
				Metadata: &weave.Metadata{Schema: 1},
			},
		},
		"missing metadata": {
			conf:    vesting.Configuration{},
			wantErr: errors.ErrMetadata,
		},
		"negative minimum duration": {
			conf: vesting.Configuration{
				Metadata:    &weave.Metadata{Schema: 1},
				MinDuration: -1,
			},
			wantErr: errors.ErrState,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.conf.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
