// Package jedi builds typed object graphs from a single shared context value,
// the World, with the entire composition checked at compile time.
//
// # Overview
//
// Jedi organizes code around three core concepts:
//
//  1. Resolvers: declarations of how a value is constructed from the World
//  2. Groups: fixed-arity tuples of sibling resolvers resolved as one unit
//  3. Containers: owners of a single World value exposing extraction
//
// There is no runtime registry and no lookup: a resolver is an ordinary
// generic value, and which construction chain runs is fixed by the types
// involved. A chain is anchored to one World type W and one error domain E;
// mixing resolvers with different anchors fails to type-check.
//
// # Basic Usage
//
// Declare how each type is built, then extract:
//
//	type World struct{ Username string }
//
//	printer := jedi.FromWorld[error](func(w *World) (Printer, error) {
//	    return Printer{Username: w.Username}, nil
//	})
//
//	looper := jedi.FromDependency(printer, func(w *World, p *Printer) (Looper, error) {
//	    return Looper{Printer: *p}, nil
//	})
//
//	c := jedi.New(World{Username: "alice"})
//	l, err := jedi.Extract(c, looper)
//
// FromDependency is the derived-to-direct bridge: extracting a derived value
// first resolves its dependency (recursively, to arbitrary depth), then
// invokes the derivation function with the World and the resolved dependency.
// If the dependency fails, its error is returned unchanged and the derivation
// function is never called.
//
// # Groups
//
// A resolver that needs several siblings at once depends on a group:
//
//	pair := jedi.Group2(db, cache)
//
//	service := jedi.FromDependency(pair, func(w *World, d *jedi.Tuple2[*DB, *Cache]) (*Service, error) {
//	    return NewService(d.V1, d.V2), nil
//	})
//
// Group members resolve strictly left to right. The first failure aborts the
// remaining members; there are no partial tuples. This ordering is a
// contract, not an accident, so side effects inside construction functions
// are deterministic.
//
// # Async Resolution
//
// The async variant mirrors the sync one, with construction functions that
// receive a context and may block on I/O:
//
//	header := jedi.FromAsyncWorld[error](func(ctx context.Context, w *World) (AuthHeader, error) {
//	    return fetchHeader(ctx, w.Token)
//	})
//
//	user := jedi.FromAsyncDependency(header, validateUser)
//
//	u, err := jedi.ExtractAsync(ctx, c, user)
//
// Ordering and short-circuit guarantees are identical to the sync variant;
// async groups still resolve sequentially. ParallelGroup2..ParallelGroup9
// exist as a deliberate, explicitly named relaxation that resolves members
// concurrently. Cancelling the context abandons the chain before the next
// construction step begins; partially resolved values are discarded.
//
// # No Caching
//
// Every extraction reconstructs its full chain from the World. Values that
// must be shared across extractions belong inside the World itself (for
// example as a cloned handle), not inside the resolver.
//
// # Extensions
//
// Extensions hook into every construction step for cross-cutting concerns:
//
//	c := jedi.New(world,
//	    jedi.WithExtension(extensions.NewLoggingExtension(logger)),
//	)
//
// See the extensions subpackage for structured logging and extraction
// tracing.
//
// # Thread Safety
//
// A Container never mutates its World, so independent extractions may run
// concurrently. Concurrency safety of resources stored inside the World is
// the caller's responsibility.
package jedi
