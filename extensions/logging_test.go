package extensions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	jedi "github.com/ChristianBelloni/je-di"
	"github.com/ChristianBelloni/je-di/extensions"
)

type world struct {
	username string
}

func TestLoggingExtensionLogsSteps(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	ext := extensions.NewLoggingExtension(zap.New(core))

	printer := jedi.FromWorld[error](func(w *world) (string, error) {
		return w.username, nil
	}, jedi.WithName("printer"))

	c := jedi.New(world{username: "alice"}, jedi.WithExtension(ext))

	_, err := jedi.Extract(c, printer)
	require.NoError(t, err)

	entries := logs.FilterMessage("construction step completed").All()
	require.Len(t, entries, 2) // the resolve step and the extract step

	fields := entries[0].ContextMap()
	assert.Equal(t, "resolve", fields["kind"])
	assert.Equal(t, "printer", fields["resolver"])
}

func TestLoggingExtensionLogsFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	ext := extensions.NewLoggingExtension(zap.New(core))

	errBoom := errors.New("boom")
	failing := jedi.FromWorld[error](func(w *world) (string, error) {
		return "", errBoom
	}, jedi.WithName("failing"))

	c := jedi.New(world{}, jedi.WithExtension(ext))

	_, err := jedi.Extract(c, failing)
	require.Error(t, err)
	assert.Equal(t, errBoom, err, "logging must not alter the propagated error")

	require.NotEmpty(t, logs.FilterMessage("construction step failed").All())
	aborted := logs.FilterMessage("extraction aborted").All()
	require.Len(t, aborted, 1)
	assert.Equal(t, "failing", aborted[0].ContextMap()["resolver"])
}
