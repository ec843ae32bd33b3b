package jedi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jedi "github.com/ChristianBelloni/je-di"
)

func TestExtractDirect(t *testing.T) {
	t.Parallel()

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{username: w.username}, nil
	})

	c := jedi.New(testWorld{username: "alice"})

	p, err := jedi.Extract(c, printer)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.username)
}

func TestExtractDerived(t *testing.T) {
	t.Parallel()

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{username: w.username}, nil
	})
	looper := jedi.FromDependency(printer, func(w *testWorld, p *Printer) (Looper, error) {
		return Looper{printer: *p}, nil
	})

	c := jedi.New(testWorld{username: "alice"})

	l, err := jedi.Extract(c, looper)
	require.NoError(t, err)
	assert.Equal(t, "alice", l.printer.username)
}

func TestDerivedShortCircuitsOnDependencyError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	log := &callLog{}

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{}, errBoom
	})
	looper := jedi.FromDependency(printer, func(w *testWorld, p *Printer) (Looper, error) {
		log.add("derive")
		return Looper{printer: *p}, nil
	})

	c := jedi.New(testWorld{})

	_, err := jedi.Extract(c, looper)
	require.Error(t, err)
	// The dependency's error value reaches the caller unchanged.
	assert.Equal(t, errBoom, err)
	assert.Zero(t, log.count("derive"), "derivation function must not run after a dependency failure")
}

func TestChainInvokesEachLevelOnceLeafFirst(t *testing.T) {
	t.Parallel()

	const depth = 5
	log := &callLog{}

	chain := jedi.FromWorld[error](func(w *testWorld) (int, error) {
		log.add("level1")
		return 1, nil
	})
	for i := 2; i <= depth; i++ {
		level := fmt.Sprintf("level%d", i)
		chain = jedi.FromDependency(chain, func(w *testWorld, d *int) (int, error) {
			log.add(level)
			return *d + 1, nil
		})
	}

	c := jedi.New(testWorld{})

	v, err := jedi.Extract(c, chain)
	require.NoError(t, err)
	assert.Equal(t, depth, v)
	assert.Equal(t, []string{"level1", "level2", "level3", "level4", "level5"}, log.names())
}

func TestNoCachingBetweenExtractions(t *testing.T) {
	t.Parallel()

	log := &callLog{}

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		log.add("printer")
		return Printer{username: w.username}, nil
	})
	looper := jedi.FromDependency(printer, func(w *testWorld, p *Printer) (Looper, error) {
		log.add("looper")
		return Looper{printer: *p}, nil
	})

	c := jedi.New(testWorld{username: "alice"})

	_, err := jedi.Extract(c, looper)
	require.NoError(t, err)
	_, err = jedi.Extract(c, looper)
	require.NoError(t, err)

	assert.Equal(t, 2, log.count("printer"), "every extraction reconstructs its whole chain")
	assert.Equal(t, 2, log.count("looper"))
}

func TestMapErrorConvertsFailure(t *testing.T) {
	t.Parallel()

	errInner := errors.New("inner")
	errOuter := errors.New("outer")

	failing := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{}, errInner
	})
	adapted := jedi.MapError[error](failing, func(err error) error {
		return fmt.Errorf("%w: %w", errOuter, err)
	})

	c := jedi.New(testWorld{})

	_, err := jedi.Extract(c, adapted)
	require.Error(t, err)
	assert.ErrorIs(t, err, errOuter)
	assert.ErrorIs(t, err, errInner)
}

func TestMapErrorLeavesSuccessUntouched(t *testing.T) {
	t.Parallel()

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{username: w.username}, nil
	})
	adapted := jedi.MapError[error](printer, func(err error) error {
		t.Fatal("conversion must not run on success")
		return err
	})

	c := jedi.New(testWorld{username: "alice"})

	p, err := jedi.Extract(c, adapted)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.username)
}

func TestResolverNames(t *testing.T) {
	t.Parallel()

	byType := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{}, nil
	})
	named := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{}, nil
	}, jedi.WithName("printer"))

	assert.Contains(t, byType.Name(), "Printer")
	assert.Equal(t, "printer", named.Name())
}
