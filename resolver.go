package jedi

import "context"

// Resolver declares how a value of type T is constructed from a World of
// type W, failing within the error domain E.
//
// W and E anchor the resolver to one chain: every dependency of a resolver,
// and every member of a group it joins, must carry the same W and E. E is a
// compile-time marker only; construction functions return ordinary errors,
// and whichever step fails is the exact error value the extraction returns.
type Resolver[W any, E error, T any] struct {
	name    string
	resolve func(rc *resolveCtx, w *W) (T, error)
}

// Name returns the resolver's name (the target type name unless overridden
// with WithName).
func (r Resolver[W, E, T]) Name() string {
	return r.name
}

// Option is a modifier for resolvers
type Option func(*resolverOptions)

type resolverOptions struct {
	name string
}

// WithName returns an option that overrides a resolver's default name,
// as reported to extensions.
func WithName(name string) Option {
	return func(o *resolverOptions) {
		o.name = name
	}
}

func buildOptions(defaultName string, opts []Option) resolverOptions {
	o := resolverOptions{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FromWorld declares a direct resolver: T is constructed from the World
// alone. The error domain E must be named explicitly; W and T are inferred
// from the construction function:
//
//	printer := jedi.FromWorld[error](func(w *World) (Printer, error) { ... })
func FromWorld[E error, W, T any](fn func(*W) (T, error), opts ...Option) Resolver[W, E, T] {
	o := buildOptions(typeNameOf[T](), opts)
	return Resolver[W, E, T]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (T, error) {
			return runStep(rc, o.name, OpResolve, func() (T, error) {
				return fn(w)
			})
		},
	}
}

// FromDependency declares a derived resolver: T is constructed from the
// World plus one already-resolved dependency D. The returned resolver also
// behaves as a direct one, which is what lets chains of arbitrary depth be
// expressed purely through derived declarations: resolving it resolves dep
// first (recursively), and only on success invokes fn with the World and the
// resolved dependency. On failure the dependency's error is returned
// unchanged and fn is never called.
func FromDependency[W any, E error, D, T any](
	dep Resolver[W, E, D],
	fn func(*W, *D) (T, error),
	opts ...Option,
) Resolver[W, E, T] {
	o := buildOptions(typeNameOf[T](), opts)
	return Resolver[W, E, T]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (T, error) {
			d, err := dep.resolve(rc.child(), w)
			if err != nil {
				var zero T
				return zero, err
			}
			return runStep(rc, o.name, OpDerive, func() (T, error) {
				return fn(w, &d)
			})
		},
	}
}

// MapError re-anchors a resolver into the error domain F, applying the
// caller-declared conversion to any error the wrapped resolver produces.
// The conversion is expected to be lossless. F must be named explicitly;
// the remaining type parameters are inferred:
//
//	adapted := jedi.MapError[*AppError](r, wrapAsAppError)
func MapError[F error, W any, E error, T any](
	r Resolver[W, E, T],
	convert func(error) error,
	opts ...Option,
) Resolver[W, F, T] {
	o := buildOptions(r.name, opts)
	return Resolver[W, F, T]{
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

// resolveCtx threads per-extraction state through a chain
type resolveCtx struct {
	ctx        context.Context
	extensions []Extension
	depth      int
}

func (rc *resolveCtx) child() *resolveCtx {
	return rc.branch(rc.ctx)
}

func (rc *resolveCtx) branch(ctx context.Context) *resolveCtx {
	return &resolveCtx{
		ctx:        ctx,
		extensions: rc.extensions,
		depth:      rc.depth + 1,
	}
}

// runStep executes one construction step, chained through the container's
// extensions (middleware pattern, last registered wraps first). The step's
// error is propagated as-is; extensions observe it but must not replace it.
func runStep[T any](rc *resolveCtx, name string, kind OperationKind, fn func() (T, error)) (T, error) {
	if len(rc.extensions) == 0 {
		return fn()
	}

	op := &Operation{
		Kind:     kind,
		Resolver: name,
		Target:   typeNameOf[T](),
		Depth:    rc.depth,
	}

	next := func() (any, error) {
		return fn()
	}

	for i := len(rc.extensions) - 1; i >= 0; i-- {
		ext := rc.extensions[i]
		currentNext := next
		next = func() (any, error) {
			return ext.Wrap(rc.ctx, currentNext, op)
		}
	}

	result, err := next()

	if err != nil {
		for _, ext := range rc.extensions {
			ext.OnError(err, op)
		}
		var zero T
		return zero, err
	}

	return safeAssert[T](result)
}
