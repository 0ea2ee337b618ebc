package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_EnabledFor(t *testing.T) {
	settings := &Settings{
		Root:    "/repo",
		Enabled: map[CheckCode]struct{}{CodeE501: {}, CodeW291: {}},
		PerFileIgnores: []PerFileIgnore{
			{Pattern: "**/*_test.go", Codes: []CheckCode{CodeE501}},
			{Pattern: "gen.go", Codes: []CheckCode{CodeW291}},
		},
	}

	assert.True(t, settings.EnabledFor("/repo/pkg/a.go", CodeE501))
	assert.False(t, settings.EnabledFor("/repo/pkg/a_test.go", CodeE501))
	assert.True(t, settings.EnabledFor("/repo/pkg/a_test.go", CodeW291))
	assert.False(t, settings.EnabledFor("/repo/sub/gen.go", CodeW291))
	assert.False(t, settings.EnabledFor("/repo/pkg/a.go", CodeD100))
}

func TestSettings_IsFixable(t *testing.T) {
	t.Run("nil fixable set allows every fixable code", func(t *testing.T) {
		settings := &Settings{}

		assert.True(t, settings.IsFixable(CodeW291))
		assert.False(t, settings.IsFixable(CodeE501))
	})

	t.Run("explicit fixable set restricts", func(t *testing.T) {
		settings := &Settings{Fixable: map[CheckCode]struct{}{CodeW292: {}}}

		assert.False(t, settings.IsFixable(CodeW291))
		assert.True(t, settings.IsFixable(CodeW292))
	})

	t.Run("nil settings", func(t *testing.T) {
		var settings *Settings

		assert.False(t, settings.IsEnabled(CodeE501))
		assert.False(t, settings.IsFixable(CodeW291))
	})
}

func TestParseSerializationFormat(t *testing.T) {
	format, err := ParseSerializationFormat("JSON")
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseSerializationFormat("sarif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCachePolicyFromFlag(t *testing.T) {
	assert.Equal(t, CacheReadWrite, CachePolicyFromFlag(true))
	assert.Equal(t, CacheNone, CachePolicyFromFlag(false))
}
