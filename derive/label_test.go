package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservedLabels(t *testing.T) {
	assert.Equal(t, "HOT_PHRASE_V1", string(LabelHot().Bytes()))
	assert.Equal(t, "COLD_PHRASE_V1", string(LabelCold().Bytes()))
	assert.False(t, LabelHot().IsCustom())
	assert.False(t, LabelCold().IsCustom())
}

func TestCustomLabel(t *testing.T) {
	l, err := CustomLabel("ssh")
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM:ssh", string(l.Bytes()))
	assert.Equal(t, "ssh", l.String())
	assert.True(t, l.IsCustom())
}

func TestCustomLabel_Empty(t *testing.T) {
	_, err := CustomLabel("")
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestCustomLabel_CannotForgeReserved(t *testing.T) {
	// Even custom labels that spell out a reserved tag encode to distinct
	// bytes because of the namespace prefix.
	crafted := []string{
		"HOT_PHRASE_V1",
		"COLD_PHRASE_V1",
		"CUSTOM:HOT_PHRASE_V1",
		"hot_phrase_v1",
	}
	for _, text := range crafted {
		l, err := CustomLabel(text)
		require.NoError(t, err)
		assert.NotEqual(t, string(LabelHot().Bytes()), string(l.Bytes()))
		assert.NotEqual(t, string(LabelCold().Bytes()), string(l.Bytes()))
	}
}
