package jedi_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jedi "github.com/ChristianBelloni/je-di"
)

// recordingExtension captures the operations it observes.
type recordingExtension struct {
	jedi.BaseExtension

	mu      sync.Mutex
	wrapped []jedi.Operation
	failed  []jedi.Operation
}

func newRecordingExtension() *recordingExtension {
	return &recordingExtension{BaseExtension: jedi.NewBaseExtension("recording")}
}

func (e *recordingExtension) Wrap(ctx context.Context, next func() (any, error), op *jedi.Operation) (any, error) {
	result, err := next()
	e.mu.Lock()
	e.wrapped = append(e.wrapped, *op)
	e.mu.Unlock()
	return result, err
}

func (e *recordingExtension) OnError(err error, op *jedi.Operation) {
	e.mu.Lock()
	e.failed = append(e.failed, *op)
	e.mu.Unlock()
}

func TestWorldAccessor(t *testing.T) {
	t.Parallel()

	c := jedi.New(testWorld{username: "alice"})

	assert.Equal(t, "alice", c.World().username)
}

func TestConcurrentExtractions(t *testing.T) {
	t.Parallel()

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{username: w.username}, nil
	})
	looper := jedi.FromDependency(printer, func(w *testWorld, p *Printer) (Looper, error) {
		return Looper{printer: *p}, nil
	})

	c := jedi.New(testWorld{username: "alice"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := jedi.Extract(c, looper)
			assert.NoError(t, err)
			assert.Equal(t, "alice", l.printer.username)
		}()
	}
	wg.Wait()

	assert.Equal(t, "alice", c.World().username, "extraction never mutates the world")
}

func TestExtensionObservesStepsInDependencyOrder(t *testing.T) {
	t.Parallel()

	rec := newRecordingExtension()

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{username: w.username}, nil
	}, jedi.WithName("printer"))
	looper := jedi.FromDependency(printer, func(w *testWorld, p *Printer) (Looper, error) {
		return Looper{printer: *p}, nil
	}, jedi.WithName("looper"))

	c := jedi.New(testWorld{username: "alice"}, jedi.WithExtension(rec))

	_, err := jedi.Extract(c, looper)
	require.NoError(t, err)

	require.Len(t, rec.wrapped, 3)
	assert.Equal(t, "printer", rec.wrapped[0].Resolver)
	assert.Equal(t, jedi.OpResolve, rec.wrapped[0].Kind)
	assert.Equal(t, 2, rec.wrapped[0].Depth)
	assert.Equal(t, "looper", rec.wrapped[1].Resolver)
	assert.Equal(t, jedi.OpDerive, rec.wrapped[1].Kind)
	assert.Equal(t, 1, rec.wrapped[1].Depth)
	assert.Equal(t, jedi.OpExtract, rec.wrapped[2].Kind)
	assert.Equal(t, 0, rec.wrapped[2].Depth)
	assert.Empty(t, rec.failed)
}

func TestExtensionOnErrorFiresForFailingStep(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	rec := newRecordingExtension()

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{}, errBoom
	}, jedi.WithName("printer"))
	looper := jedi.FromDependency(printer, func(w *testWorld, p *Printer) (Looper, error) {
		return Looper{printer: *p}, nil
	}, jedi.WithName("looper"))

	c := jedi.New(testWorld{}, jedi.WithExtension(rec))

	_, err := jedi.Extract(c, looper)
	require.Error(t, err)
	assert.Equal(t, errBoom, err, "extensions observe the error but never replace it")

	// The failing step and the extraction entry point report the error; the
	// short-circuited derivation in between never becomes a step at all.
	require.Len(t, rec.failed, 2)
	assert.Equal(t, "printer", rec.failed[0].Resolver)
	assert.Equal(t, jedi.OpResolve, rec.failed[0].Kind)
	assert.Equal(t, jedi.OpExtract, rec.failed[1].Kind)
}

func TestExtensionsRunInRegistrationOrder(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	first := &orderedExtension{BaseExtension: jedi.NewBaseExtension("first"), log: log}
	second := &orderedExtension{BaseExtension: jedi.NewBaseExtension("second"), log: log}

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{}, nil
	})

	c := jedi.New(testWorld{}, jedi.WithExtension(first), jedi.WithExtension(second))

	_, err := jedi.Extract(c, printer)
	require.NoError(t, err)

	// Two steps (resolve, extract), each entering first before second.
	assert.Equal(t, []string{"first", "second", "first", "second"}, log.names())
}

type orderedExtension struct {
	jedi.BaseExtension
	log *callLog
}

func (e *orderedExtension) Wrap(ctx context.Context, next func() (any, error), op *jedi.Operation) (any, error) {
	e.log.add(e.Name())
	return next()
}
