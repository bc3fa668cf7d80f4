package derive

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Frozen known-answer vectors for scheme V1 under the test KDF profile
// (8 MiB, t=1, p=1, salt "family-password-root-v1"), generated with the
// reference Argon2id implementation. These values must never change; an
// incompatible change to any part of the pipeline requires a new version tag.
const (
	katRootPhrase = "correct horse battery staple extra words here"

	katMasterHex = "17bb36d7d67f1e8650c2d9035803bc60d4f148d729ef5961071bff953d4a67cd"
	katHotHex    = "069bca23b4f96f8a62cba95566bc54504ac72af653e06357b32ec6a0027cf16a"
	katColdHex   = "cdae687ad3ccdc403240cc70afb1cf3885c81317e74faef2991039b344371dff"
	katSSHHex    = "31095ad61c7e3fc1783cc9a5d93831170148403e6916eb70c829b48ee275c8af"

	katHotPhrase  = "absurd-absurd-abstract-ability-abandon-able"
	katColdPhrase = "about-absorb-above-absorb-absurd-absorb"
	katSSHPhrase  = "ability-above-above-ability-absorb-absurd"
)

func katMasterKey(t *testing.T) []byte {
	t.Helper()
	scheme := SchemeV1()
	normalized, err := Normalize([]byte(katRootPhrase))
	require.NoError(t, err)
	master, err := DeriveMasterKey(normalized, scheme.Salt, scheme.Test)
	require.NoError(t, err)
	return master
}

func TestVectors_MasterKey(t *testing.T) {
	assert.Equal(t, katMasterHex, hex.EncodeToString(katMasterKey(t)))
}

func TestVectors_MasterKeyNormalizationInsensitive(t *testing.T) {
	scheme := SchemeV1()
	normalized, err := Normalize([]byte("  Correct   HORSE battery\tstaple extra words here "))
	require.NoError(t, err)
	master, err := DeriveMasterKey(normalized, scheme.Salt, scheme.Test)
	require.NoError(t, err)
	assert.Equal(t, katMasterHex, hex.EncodeToString(master))
}

func TestVectors_ChildKeys(t *testing.T) {
	master := katMasterKey(t)

	hot, err := DeriveChildKey(master, LabelHot())
	require.NoError(t, err)
	cold, err := DeriveChildKey(master, LabelCold())
	require.NoError(t, err)
	ssh, err := CustomLabel("ssh")
	require.NoError(t, err)
	custom, err := DeriveChildKey(master, ssh)
	require.NoError(t, err)

	assert.Equal(t, katHotHex, hex.EncodeToString(hot))
	assert.Equal(t, katColdHex, hex.EncodeToString(cold))
	assert.Equal(t, katSSHHex, hex.EncodeToString(custom))
}

func TestVectors_Passphrases(t *testing.T) {
	wl := testWordlist(t, katWords...)
	master := katMasterKey(t)

	ssh, err := CustomLabel("ssh")
	require.NoError(t, err)

	tests := []struct {
		name  string
		label Label
		want  string
	}{
		{"Hot", LabelHot(), katHotPhrase},
		{"Cold", LabelCold(), katColdPhrase},
		{"CustomSSH", ssh, katSSHPhrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveChildKey(master, tt.label)
			require.NoError(t, err)
			phrase, err := Encode(key, wl, 6, "-")
			require.NoError(t, err)
			assert.Equal(t, tt.want, phrase)
		})
	}
}

func TestVectors_EndToEndSession(t *testing.T) {
	wl := testWordlist(t, katWords...)
	scheme := SchemeV1()

	session, err := NewSession([]byte(katRootPhrase), scheme, scheme.Test)
	require.NoError(t, err)
	defer session.Destroy()

	hot, err := session.Passphrase(LabelHot(), wl, 6, "-")
	require.NoError(t, err)
	cold, err := session.Passphrase(LabelCold(), wl, 6, "-")
	require.NoError(t, err)

	assert.Equal(t, katHotPhrase, hot)
	assert.Equal(t, katColdPhrase, cold)
}

func TestVectors_WordlistFingerprint(t *testing.T) {
	wl := testWordlist(t, katWords...)
	assert.Equal(t, "c81b91eded957a1383da5bd9a297d6471bca6e75e951c105514b3ab9a0c881fe", wl.Fingerprint())
}
