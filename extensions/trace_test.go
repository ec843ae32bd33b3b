package extensions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jedi "github.com/ChristianBelloni/je-di"
	"github.com/ChristianBelloni/je-di/extensions"
)

func TestTraceExtensionRecordsChain(t *testing.T) {
	t.Parallel()

	trace := extensions.NewTraceExtension()

	printer := jedi.FromWorld[error](func(w *world) (string, error) {
		return w.username, nil
	}, jedi.WithName("printer"))
	looper := jedi.FromDependency(printer, func(w *world, p *string) (string, error) {
		return *p, nil
	}, jedi.WithName("looper"))

	c := jedi.New(world{username: "alice"}, jedi.WithExtension(trace))

	_, err := jedi.Extract(c, looper)
	require.NoError(t, err)

	steps := trace.Steps()
	require.Len(t, steps, 3)
	assert.Equal(t, "printer", steps[0].Resolver)
	assert.Equal(t, 2, steps[0].Depth)
	assert.Equal(t, "looper", steps[1].Resolver)
	assert.Equal(t, 1, steps[1].Depth)
	assert.Equal(t, jedi.OpExtract, steps[2].Kind)
	assert.Equal(t, 0, steps[2].Depth)

	rendered := trace.Render()
	assert.Contains(t, rendered, "printer")
	assert.Contains(t, rendered, "looper")
}

func TestTraceExtensionKeepsLastExtraction(t *testing.T) {
	t.Parallel()

	trace := extensions.NewTraceExtension()
	errBoom := errors.New("boom")

	ok := jedi.FromWorld[error](func(w *world) (string, error) {
		return w.username, nil
	}, jedi.WithName("ok"))
	failing := jedi.FromWorld[error](func(w *world) (string, error) {
		return "", errBoom
	}, jedi.WithName("failing"))

	c := jedi.New(world{username: "alice"}, jedi.WithExtension(trace))

	_, err := jedi.Extract(c, ok)
	require.NoError(t, err)
	_, err = jedi.Extract(c, failing)
	require.Error(t, err)

	steps := trace.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, "failing", steps[0].Resolver)
	assert.Equal(t, errBoom, steps[0].Err)

	assert.Contains(t, trace.Render(), "ERR: boom")
}

func TestTraceExtensionEmptyRender(t *testing.T) {
	t.Parallel()

	trace := extensions.NewTraceExtension()

	assert.Equal(t, "(no extraction recorded)", trace.Render())
}
