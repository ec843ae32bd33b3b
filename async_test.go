package jedi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jedi "github.com/ChristianBelloni/je-di"
)

var errUnauthorized = errors.New("unauthorized")

type authHeader struct {
	token string
}

type validatedUser struct {
	name string
}

func TestExtractAsyncResolvesChain(t *testing.T) {
	t.Parallel()

	printer := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (Printer, error) {
		return Printer{username: w.username}, nil
	})
	looper := jedi.FromAsyncDependency(printer, func(ctx context.Context, w *testWorld, p *Printer) (Looper, error) {
		return Looper{printer: *p}, nil
	})

	c := jedi.New(testWorld{username: "alice"})

	l, err := jedi.ExtractAsync(context.Background(), c, looper)
	require.NoError(t, err)
	assert.Equal(t, "alice", l.printer.username)
}

func TestAsyncFailurePathSkipsServiceLookup(t *testing.T) {
	t.Parallel()

	log := &callLog{}

	header := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (authHeader, error) {
		if w.token == "" {
			return authHeader{}, errUnauthorized
		}
		return authHeader{token: w.token}, nil
	})
	user := jedi.FromAsyncDependency(header, func(ctx context.Context, w *testWorld, h *authHeader) (validatedUser, error) {
		log.add("lookup")
		return validatedUser{name: "alice"}, nil
	})

	c := jedi.New(testWorld{token: ""})

	_, err := jedi.ExtractAsync(context.Background(), c, user)
	require.Error(t, err)
	assert.Equal(t, errUnauthorized, err)
	assert.Zero(t, log.count("lookup"), "no service lookup may happen after an auth failure")
}

func TestAsyncGroupResolvesSequentially(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	member := func(name string) jedi.AsyncResolver[testWorld, error, string] {
		return jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (string, error) {
			log.add(name)
			return name, nil
		}, jedi.WithName(name))
	}

	c := jedi.New(testWorld{})

	v, err := jedi.ExtractAsync(context.Background(), c, jedi.AsyncGroup3(member("m1"), member("m2"), member("m3")))
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2", "m3"}, log.names())
	assert.Equal(t, "m1", v.V1)
	assert.Equal(t, "m3", v.V3)
}

func TestAsyncGroupShortCircuitsOnFirstFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	log := &callLog{}

	m1 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		log.add("m1")
		return 1, nil
	})
	m2 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		log.add("m2")
		return 0, errBoom
	})
	m3 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		log.add("m3")
		return 3, nil
	})

	c := jedi.New(testWorld{})

	_, err := jedi.ExtractAsync(context.Background(), c, jedi.AsyncGroup3(m1, m2, m3))
	require.Error(t, err)
	assert.Equal(t, errBoom, err)
	assert.Equal(t, 1, log.count("m1"))
	assert.Zero(t, log.count("m3"))
}

func TestExtractAsyncHonorsCancellation(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	ctx, cancel := context.WithCancel(context.Background())

	m1 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		log.add("m1")
		cancel()
		return 1, nil
	})
	m2 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		log.add("m2")
		return 2, nil
	})

	c := jedi.New(testWorld{})

	_, err := jedi.ExtractAsync(ctx, c, jedi.AsyncGroup2(m1, m2))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, log.count("m1"))
	assert.Zero(t, log.count("m2"), "the chain is abandoned before the next step begins")
}

func TestAsyncLiftFromSync(t *testing.T) {
	t.Parallel()

	printer := jedi.FromWorld[error](func(w *testWorld) (Printer, error) {
		return Printer{username: w.username}, nil
	})
	looper := jedi.FromAsyncDependency(printer.Async(), func(ctx context.Context, w *testWorld, p *Printer) (Looper, error) {
		return Looper{printer: *p}, nil
	})

	c := jedi.New(testWorld{username: "alice"})

	l, err := jedi.ExtractAsync(context.Background(), c, looper)
	require.NoError(t, err)
	assert.Equal(t, "alice", l.printer.username)
}

func TestParallelGroupResolvesAllMembers(t *testing.T) {
	t.Parallel()

	log := &callLog{}

	m1 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (string, error) {
		log.add("m1")
		return "a", nil
	})
	m2 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		log.add("m2")
		return 2, nil
	})
	m3 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (bool, error) {
		log.add("m3")
		return true, nil
	})

	c := jedi.New(testWorld{})

	v, err := jedi.ExtractAsync(context.Background(), c, jedi.ParallelGroup3(m1, m2, m3))
	require.NoError(t, err)
	assert.Equal(t, 1, log.count("m1"))
	assert.Equal(t, 1, log.count("m2"))
	assert.Equal(t, 1, log.count("m3"))
	assert.Equal(t, "a", v.V1)
	assert.Equal(t, 2, v.V2)
	assert.True(t, v.V3)
}

func TestParallelGroupCancelsSiblingsOnFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	started := make(chan struct{})

	m1 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})
	m2 := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		<-started
		return 0, errBoom
	})

	c := jedi.New(testWorld{})

	_, err := jedi.ExtractAsync(context.Background(), c, jedi.ParallelGroup2(m1, m2))
	require.Error(t, err)
	assert.Equal(t, errBoom, err, "the construction failure wins over the cancellations it causes")
}

func TestMapAsyncErrorConvertsFailure(t *testing.T) {
	t.Parallel()

	errInner := errors.New("inner")
	errOuter := errors.New("outer")

	failing := jedi.FromAsyncWorld[error](func(ctx context.Context, w *testWorld) (int, error) {
		return 0, errInner
	})
	adapted := jedi.MapAsyncError[error](failing, func(err error) error {
		return errOuter
	})

	c := jedi.New(testWorld{})

	_, err := jedi.ExtractAsync(context.Background(), c, adapted)
	require.Error(t, err)
	assert.Equal(t, errOuter, err)
}
