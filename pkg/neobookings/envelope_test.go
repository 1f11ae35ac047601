package neobookings

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope("en")

	assert.Equal(t, "en", env.Language)
	assert.NotEmpty(t, env.Timestamp)

	_, err := uuid.Parse(env.RequestID)
	assert.NoError(t, err)
}

func TestNewEnvelopeDefaultLanguage(t *testing.T) {
	env := NewEnvelope("")
	assert.Equal(t, DefaultLanguage, env.Language)
}

func TestNewEnvelopeFreshPerCall(t *testing.T) {
	a := NewEnvelope("es")
	b := NewEnvelope("es")
	assert.NotEqual(t, a.RequestID, b.RequestID)
}

func TestEnvelopeJSONKeys(t *testing.T) {
	env := Envelope{RequestID: "rid", Timestamp: "ts", Language: "es"}

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"RequestId":"rid","Timestamp":"ts","Language":"es"}`, string(data))
}

func TestValidLanguage(t *testing.T) {
	for _, lang := range Languages {
		assert.True(t, ValidLanguage(lang), lang)
	}
	assert.False(t, ValidLanguage("jp"))
	assert.False(t, ValidLanguage(""))
	assert.False(t, ValidLanguage("ES"))
}
