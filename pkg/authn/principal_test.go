package authn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishbay/wishbay/pkg/authn"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	kind, err := authn.ParseKind("user")
	require.NoError(t, err)
	assert.Equal(t, authn.KindUser, kind)

	kind, err = authn.ParseKind("vendor")
	require.NoError(t, err)
	assert.Equal(t, authn.KindVendor, kind)

	for _, bad := range []string{"", "admin", "User", "robot"} {
		_, err := authn.ParseKind(bad)
		assert.ErrorIs(t, err, authn.ErrUnknownKind, "input %q", bad)
	}
}
