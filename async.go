package jedi

import "context"

// AsyncResolver is the async counterpart of Resolver: construction functions
// receive a context.Context and may block on I/O. Ordering and
// short-circuit guarantees are identical to the sync variant.
type AsyncResolver[W any, E error, T any] struct {
	name    string
	resolve func(rc *resolveCtx, w *W) (T, error)
}

// Name returns the resolver's name
func (r AsyncResolver[W, E, T]) Name() string {
	return r.name
}

// Async lifts a sync resolver into the async variant so it can serve as a
// dependency or group member in an async chain.
func (r Resolver[W, E, T]) Async() AsyncResolver[W, E, T] {
	return AsyncResolver[W, E, T]{
		name:    r.name,
		resolve: r.resolve,
	}
}

// FromAsyncWorld declares a direct async resolver. As with FromWorld, the
// error domain E is named explicitly and W and T are inferred.
func FromAsyncWorld[E error, W, T any](fn func(context.Context, *W) (T, error), opts ...Option) AsyncResolver[W, E, T] {
	o := buildOptions(typeNameOf[T](), opts)
	return AsyncResolver[W, E, T]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (T, error) {
			if err := rc.ctx.Err(); err != nil {
				var zero T
				return zero, err
			}
			return runStep(rc, o.name, OpResolve, func() (T, error) {
				return fn(rc.ctx, w)
			})
		},
	}
}

// FromAsyncDependency declares a derived async resolver. Semantics match
// FromDependency: the dependency resolves first, its error short-circuits
// the chain unchanged, and fn only runs on success. Cancellation is checked
// before the dependency and again before the derivation step.
func FromAsyncDependency[W any, E error, D, T any](
	dep AsyncResolver[W, E, D],
	fn func(context.Context, *W, *D) (T, error),
	opts ...Option,
) AsyncResolver[W, E, T] {
	o := buildOptions(typeNameOf[T](), opts)
	return AsyncResolver[W, E, T]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (T, error) {
			var zero T
			if err := rc.ctx.Err(); err != nil {
				return zero, err
			}
			d, err := dep.resolve(rc.child(), w)
			if err != nil {
				return zero, err
			}
			if err := rc.ctx.Err(); err != nil {
				return zero, err
			}
			return runStep(rc, o.name, OpDerive, func() (T, error) {
				return fn(rc.ctx, w, &d)
			})
		},
	}
}

// MapAsyncError is MapError for async resolvers
func MapAsyncError[F error, W any, E error, T any](
	r AsyncResolver[W, E, T],
	convert func(error) error,
	opts ...Option,
) AsyncResolver[W, F, T] {
	o := buildOptions(r.name, opts)
	return AsyncResolver[W, F, T]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (T, error) {
			v, err := r.resolve(rc, w)
			if err != nil {
				var zero T
				return zero, convert(err)
			}
			return v, nil
		},
	}
}
