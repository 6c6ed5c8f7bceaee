package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestIsDeterministicHex(t *testing.T) {
	t.Parallel()

	d := Digester{Salt: "panaderia-salt-2024-", Secret: "test-secret"}

	first := d.Digest("Baker99")
	second := d.Digest("Baker99")

	require.Equal(t, first, second)
	require.Len(t, first, 64)
	require.Regexp(t, "^[0-9a-f]{64}$", first)
}

func TestDigestDependsOnSaltAndSecret(t *testing.T) {
	t.Parallel()

	base := Digester{Salt: "salt-a", Secret: "secret-a"}

	require.NotEqual(t, base.Digest("pw"), Digester{Salt: "salt-b", Secret: "secret-a"}.Digest("pw"))
	require.NotEqual(t, base.Digest("pw"), Digester{Salt: "salt-a", Secret: "secret-b"}.Digest("pw"))
	require.NotEqual(t, base.Digest("pw"), base.Digest("pw2"))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	d := Digester{Salt: "s", Secret: "k"}
	stored := d.Digest("Admin2024!")

	require.True(t, d.Verify("Admin2024!", stored))
	require.False(t, d.Verify("admin2024!", stored))
	require.False(t, d.Verify("", stored))
}

func TestLoadOrCreateSecretRoundTrip(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/secret"

	first, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := LoadOrCreateSecret(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
