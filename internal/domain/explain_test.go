package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/lintel/internal/model"
)

func TestExplain(t *testing.T) {
	text, err := Explain(m.CodeB001, m.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "B001 (Bug risk): Comparison to a boolean literal\n", text)

	structured, err := Explain(m.CodeD100, m.FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"D100","category":"Documentation","summary":"Missing package doc comment"}`, structured)

	_, err = Explain(m.CodeE501, m.SerializationFormat("yaml"))
	assert.ErrorIs(t, err, m.ErrUnknownFormat)

	_, err = Explain(m.CheckCode(""), m.FormatText)
	assert.ErrorIs(t, err, m.ErrUnknownCode)
}
