package jedi

import "context"

// Container owns exactly one World value and exposes extraction. It is
// stateless beyond the World: extractions share no computed results, and the
// World is only ever read.
type Container[W any] struct {
	world      W
	extensions []Extension
}

// ContainerOption is a modifier for containers
type ContainerOption func(*containerConfig)

type containerConfig struct {
	extensions []Extension
}

// WithExtension returns an option that registers an extension on a
// container. Extensions run in registration order.
func WithExtension(ext Extension) ContainerOption {
	return func(cfg *containerConfig) {
		cfg.extensions = append(cfg.extensions, ext)
	}
}

// New creates a container owning the given World value
func New[W any](world W, opts ...ContainerOption) *Container[W] {
	cfg := containerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Container[W]{
		world:      world,
		extensions: cfg.extensions,
	}
}

// World returns the container's World. The resolver machinery never mutates
// it; handing out the pointer keeps extraction and direct access consistent.
func (c *Container[W]) World() *W {
	return &c.world
}

// Extract runs the full construction chain of r against the container's
// World and returns the resolved value, or the error of whichever step
// failed, unchanged. Nothing is cached: calling Extract twice runs every
// construction function twice.
//
// The resolver's World type must match the container's; a mismatch is a
// compile error.
func Extract[W any, E error, T any](c *Container[W], r Resolver[W, E, T]) (T, error) {
	rc := &resolveCtx{
		ctx:        context.Background(),
		extensions: c.extensions,
	}
	return runStep(rc, r.name, OpExtract, func() (T, error) {
		return r.resolve(rc.child(), &c.world)
	})
}

// ExtractAsync is Extract for async resolvers. Construction steps receive
// ctx and may block on I/O; the chain still resolves dependency-first with
// the same short-circuit-on-first-error policy. If ctx is cancelled the
// chain is abandoned before the next step begins and ctx's error is
// returned; already-resolved intermediate values are discarded without
// compensation.
func ExtractAsync[W any, E error, T any](ctx context.Context, c *Container[W], r AsyncResolver[W, E, T]) (T, error) {
	rc := &resolveCtx{
		ctx:        ctx,
		extensions: c.extensions,
	}
	return runStep(rc, r.name, OpExtract, func() (T, error) {
		return r.resolve(rc.child(), &c.world)
	})
}
