package toolbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, input json.RawMessage) (string, error) {
	return string(input), nil
}

func errorHandler(_ context.Context, _ json.RawMessage) (string, error) {
	return "", errors.New("tool failed")
}

func newEchoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "Echoes input",
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler:     echoHandler,
	}
}

func TestNew(t *testing.T) {
	tb := New()
	assert.NotNil(t, tb)
	assert.Empty(t, tb.Tools())
}

func TestRegisterAndGet(t *testing.T) {
	tb := New()
	tb.Register(newEchoTool("echo"))

	got, ok := tb.Get("echo")
	assert.True(t, ok)
	assert.Equal(t, "echo", got.Name)
}

func TestGetNotFound(t *testing.T) {
	tb := New()

	_, ok := tb.Get("missing")
	assert.False(t, ok)
}

func TestRegisterMultiple(t *testing.T) {
	tb := New()
	tb.Register(
		newEchoTool("a"),
		newEchoTool("b"),
		newEchoTool("c"),
	)

	assert.Len(t, tb.Tools(), 3)
}

func TestRegisterReplace(t *testing.T) {
	tb := New()
	tb.Register(Tool{
		Name:        "tool",
		Description: "original",
		Handler:     echoHandler,
	})
	tb.Register(Tool{
		Name:        "tool",
		Description: "replaced",
		Handler:     echoHandler,
	})

	got, ok := tb.Get("tool")
	require.True(t, ok)
	assert.Equal(t, "replaced", got.Description)
	assert.Len(t, tb.Tools(), 1)
}

func TestMerge(t *testing.T) {
	a := New()
	a.Register(newEchoTool("one"))

	b := New()
	b.Register(newEchoTool("two"))

	a.Merge(b)
	assert.Len(t, a.Tools(), 2)

	_, ok := a.Get("two")
	assert.True(t, ok)
}

func TestCall(t *testing.T) {
	tb := New()
	tb.Register(newEchoTool("echo"))

	out, err := tb.Call(context.Background(), "echo", json.RawMessage(`{"x":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, out)
}

func TestCallNilArguments(t *testing.T) {
	tb := New()
	tb.Register(newEchoTool("echo"))

	out, err := tb.Call(context.Background(), "echo", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, out)
}

func TestCallNotFound(t *testing.T) {
	tb := New()

	_, err := tb.Call(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool not found")
}

func TestCallHandlerError(t *testing.T) {
	tb := New()
	tb.Register(Tool{Name: "boom", Handler: errorHandler})

	_, err := tb.Call(context.Background(), "boom", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool failed")
}
