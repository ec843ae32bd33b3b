package jedi

import "golang.org/x/sync/errgroup"

// AsyncGroup2 is Group2 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup2[W any, E error, T1, T2 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	opts ...Option,
) AsyncResolver[W, E, Tuple2[T1, T2]] {
	o := buildOptions(groupName(r1.name, r2.name), opts)
	return AsyncResolver[W, E, Tuple2[T1, T2]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple2[T1, T2], error) {
			var out Tuple2[T1, T2]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple2[T1, T2], error) {
				out.V1 = v1
				out.V2 = v2
				return out, nil
			})
		},
	}
}

// AsyncGroup3 is Group3 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup3[W any, E error, T1, T2, T3 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	opts ...Option,
) AsyncResolver[W, E, Tuple3[T1, T2, T3]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name), opts)
	return AsyncResolver[W, E, Tuple3[T1, T2, T3]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple3[T1, T2, T3], error) {
			var out Tuple3[T1, T2, T3]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple3[T1, T2, T3], error) {
				out.V1 = v1
				out.V2 = v2
				out.V3 = v3
				return out, nil
			})
		},
	}
}

// AsyncGroup4 is Group4 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup4[W any, E error, T1, T2, T3, T4 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	opts ...Option,
) AsyncResolver[W, E, Tuple4[T1, T2, T3, T4]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name), opts)
	return AsyncResolver[W, E, Tuple4[T1, T2, T3, T4]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple4[T1, T2, T3, T4], error) {
			var out Tuple4[T1, T2, T3, T4]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple4[T1, T2, T3, T4], error) {
				out.V1 = v1
				out.V2 = v2
				out.V3 = v3
				out.V4 = v4
				return out, nil
			})
		},
	}
}

// AsyncGroup5 is Group5 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup5[W any, E error, T1, T2, T3, T4, T5 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	opts ...Option,
) AsyncResolver[W, E, Tuple5[T1, T2, T3, T4, T5]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name), opts)
	return AsyncResolver[W, E, Tuple5[T1, T2, T3, T4, T5]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple5[T1, T2, T3, T4, T5], error) {
			var out Tuple5[T1, T2, T3, T4, T5]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple5[T1, T2, T3, T4, T5], error) {
				out.V1 = v1
				out.V2 = v2
				out.V3 = v3
				out.V4 = v4
				out.V5 = v5
				return out, nil
			})
		},
	}
}

// AsyncGroup6 is Group6 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup6[W any, E error, T1, T2, T3, T4, T5, T6 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	opts ...Option,
) AsyncResolver[W, E, Tuple6[T1, T2, T3, T4, T5, T6]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name), opts)
	return AsyncResolver[W, E, Tuple6[T1, T2, T3, T4, T5, T6]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple6[T1, T2, T3, T4, T5, T6], error) {
			var out Tuple6[T1, T2, T3, T4, T5, T6]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v6, err := r6.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple6[T1, T2, T3, T4, T5, T6], error) {
				out.V1 = v1
				out.V2 = v2
				out.V3 = v3
				out.V4 = v4
				out.V5 = v5
				out.V6 = v6
				return out, nil
			})
		},
	}
}

// AsyncGroup7 is Group7 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup7[W any, E error, T1, T2, T3, T4, T5, T6, T7 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	r7 AsyncResolver[W, E, T7],
	opts ...Option,
) AsyncResolver[W, E, Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name), opts)
	return AsyncResolver[W, E, Tuple7[T1, T2, T3, T4, T5, T6, T7]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
			var out Tuple7[T1, T2, T3, T4, T5, T6, T7]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v6, err := r6.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v7, err := r7.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
				out.V1 = v1
				out.V2 = v2
				out.V3 = v3
				out.V4 = v4
				out.V5 = v5
				out.V6 = v6
				out.V7 = v7
				return out, nil
			})
		},
	}
}

// AsyncGroup8 is Group8 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup8[W any, E error, T1, T2, T3, T4, T5, T6, T7, T8 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	r7 AsyncResolver[W, E, T7],
	r8 AsyncResolver[W, E, T8],
	opts ...Option,
) AsyncResolver[W, E, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name, r8.name), opts)
	return AsyncResolver[W, E, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
			var out Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v6, err := r6.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v7, err := r7.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v8, err := r8.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
				out.V1 = v1
				out.V2 = v2
				out.V3 = v3
				out.V4 = v4
				out.V5 = v5
				out.V6 = v6
				out.V7 = v7
				out.V8 = v8
				return out, nil
			})
		},
	}
}

// AsyncGroup9 is Group9 for async resolvers. Members still resolve
// sequentially, left to right; cancellation is checked before each member.
func AsyncGroup9[W any, E error, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	r7 AsyncResolver[W, E, T7],
	r8 AsyncResolver[W, E, T8],
	r9 AsyncResolver[W, E, T9],
	opts ...Option,
) AsyncResolver[W, E, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name, r8.name, r9.name), opts)
	return AsyncResolver[W, E, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
			var out Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v6, err := r6.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v7, err := r7.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v8, err := r8.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			if err := rc.ctx.Err(); err != nil {
				return out, err
			}
			v9, err := r9.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
				out.V1 = v1
				out.V2 = v2
				out.V3 = v3
				out.V4 = v4
				out.V5 = v5
				out.V6 = v6
				out.V7 = v7
				out.V8 = v8
				out.V9 = v9
				return out, nil
			})
		},
	}
}

// ParallelGroup2 resolves 2 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup2: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup2[W any, E error, T1, T2 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	opts ...Option,
) AsyncResolver[W, E, Tuple2[T1, T2]] {
	o := buildOptions(groupName(r1.name, r2.name), opts)
	return AsyncResolver[W, E, Tuple2[T1, T2]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple2[T1, T2], error) {
			var out Tuple2[T1, T2]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple2[T1, T2]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple2[T1, T2], error) {
				return out, nil
			})
		},
	}
}

// ParallelGroup3 resolves 3 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup3: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup3[W any, E error, T1, T2, T3 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	opts ...Option,
) AsyncResolver[W, E, Tuple3[T1, T2, T3]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name), opts)
	return AsyncResolver[W, E, Tuple3[T1, T2, T3]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple3[T1, T2, T3], error) {
			var out Tuple3[T1, T2, T3]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			g.Go(func() error {
				v, err := r3.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V3 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple3[T1, T2, T3]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple3[T1, T2, T3], error) {
				return out, nil
			})
		},
	}
}

// ParallelGroup4 resolves 4 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup4: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup4[W any, E error, T1, T2, T3, T4 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	opts ...Option,
) AsyncResolver[W, E, Tuple4[T1, T2, T3, T4]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name), opts)
	return AsyncResolver[W, E, Tuple4[T1, T2, T3, T4]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple4[T1, T2, T3, T4], error) {
			var out Tuple4[T1, T2, T3, T4]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			g.Go(func() error {
				v, err := r3.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V3 = v
				return nil
			})
			g.Go(func() error {
				v, err := r4.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V4 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple4[T1, T2, T3, T4]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple4[T1, T2, T3, T4], error) {
				return out, nil
			})
		},
	}
}

// ParallelGroup5 resolves 5 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup5: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup5[W any, E error, T1, T2, T3, T4, T5 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	opts ...Option,
) AsyncResolver[W, E, Tuple5[T1, T2, T3, T4, T5]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name), opts)
	return AsyncResolver[W, E, Tuple5[T1, T2, T3, T4, T5]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple5[T1, T2, T3, T4, T5], error) {
			var out Tuple5[T1, T2, T3, T4, T5]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			g.Go(func() error {
				v, err := r3.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V3 = v
				return nil
			})
			g.Go(func() error {
				v, err := r4.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V4 = v
				return nil
			})
			g.Go(func() error {
				v, err := r5.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V5 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple5[T1, T2, T3, T4, T5]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple5[T1, T2, T3, T4, T5], error) {
				return out, nil
			})
		},
	}
}

// ParallelGroup6 resolves 6 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup6: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup6[W any, E error, T1, T2, T3, T4, T5, T6 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	opts ...Option,
) AsyncResolver[W, E, Tuple6[T1, T2, T3, T4, T5, T6]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name), opts)
	return AsyncResolver[W, E, Tuple6[T1, T2, T3, T4, T5, T6]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple6[T1, T2, T3, T4, T5, T6], error) {
			var out Tuple6[T1, T2, T3, T4, T5, T6]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			g.Go(func() error {
				v, err := r3.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V3 = v
				return nil
			})
			g.Go(func() error {
				v, err := r4.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V4 = v
				return nil
			})
			g.Go(func() error {
				v, err := r5.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V5 = v
				return nil
			})
			g.Go(func() error {
				v, err := r6.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V6 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple6[T1, T2, T3, T4, T5, T6]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple6[T1, T2, T3, T4, T5, T6], error) {
				return out, nil
			})
		},
	}
}

// ParallelGroup7 resolves 7 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup7: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup7[W any, E error, T1, T2, T3, T4, T5, T6, T7 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	r7 AsyncResolver[W, E, T7],
	opts ...Option,
) AsyncResolver[W, E, Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name), opts)
	return AsyncResolver[W, E, Tuple7[T1, T2, T3, T4, T5, T6, T7]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
			var out Tuple7[T1, T2, T3, T4, T5, T6, T7]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			g.Go(func() error {
				v, err := r3.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V3 = v
				return nil
			})
			g.Go(func() error {
				v, err := r4.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V4 = v
				return nil
			})
			g.Go(func() error {
				v, err := r5.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V5 = v
				return nil
			})
			g.Go(func() error {
				v, err := r6.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V6 = v
				return nil
			})
			g.Go(func() error {
				v, err := r7.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V7 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple7[T1, T2, T3, T4, T5, T6, T7]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
				return out, nil
			})
		},
	}
}

// ParallelGroup8 resolves 8 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup8: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup8[W any, E error, T1, T2, T3, T4, T5, T6, T7, T8 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	r7 AsyncResolver[W, E, T7],
	r8 AsyncResolver[W, E, T8],
	opts ...Option,
) AsyncResolver[W, E, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name, r8.name), opts)
	return AsyncResolver[W, E, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
			var out Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			g.Go(func() error {
				v, err := r3.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V3 = v
				return nil
			})
			g.Go(func() error {
				v, err := r4.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V4 = v
				return nil
			})
			g.Go(func() error {
				v, err := r5.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V5 = v
				return nil
			})
			g.Go(func() error {
				v, err := r6.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V6 = v
				return nil
			})
			g.Go(func() error {
				v, err := r7.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V7 = v
				return nil
			})
			g.Go(func() error {
				v, err := r8.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V8 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
				return out, nil
			})
		},
	}
}

// ParallelGroup9 resolves 9 members concurrently. This deliberately
// relaxes the left-to-right ordering contract of AsyncGroup9: members'
// side effects may interleave. The first failure cancels the remaining
// members' contexts and is returned; the tuple keeps declaration order.
func ParallelGroup9[W any, E error, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](
	r1 AsyncResolver[W, E, T1],
	r2 AsyncResolver[W, E, T2],
	r3 AsyncResolver[W, E, T3],
	r4 AsyncResolver[W, E, T4],
	r5 AsyncResolver[W, E, T5],
	r6 AsyncResolver[W, E, T6],
	r7 AsyncResolver[W, E, T7],
	r8 AsyncResolver[W, E, T8],
	r9 AsyncResolver[W, E, T9],
	opts ...Option,
) AsyncResolver[W, E, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name, r8.name, r9.name), opts)
	return AsyncResolver[W, E, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
			var out Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]
			g, gctx := errgroup.WithContext(rc.ctx)
			g.Go(func() error {
				v, err := r1.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V1 = v
				return nil
			})
			g.Go(func() error {
				v, err := r2.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V2 = v
				return nil
			})
			g.Go(func() error {
				v, err := r3.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V3 = v
				return nil
			})
			g.Go(func() error {
				v, err := r4.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V4 = v
				return nil
			})
			g.Go(func() error {
				v, err := r5.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V5 = v
				return nil
			})
			g.Go(func() error {
				v, err := r6.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V6 = v
				return nil
			})
			g.Go(func() error {
				v, err := r7.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V7 = v
				return nil
			})
			g.Go(func() error {
				v, err := r8.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V8 = v
				return nil
			})
			g.Go(func() error {
				v, err := r9.resolve(rc.branch(gctx), w)
				if err != nil {
					return err
				}
				out.V9 = v
				return nil
			})
			if err := g.Wait(); err != nil {
				return Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{}, err
			}
			return runStep(rc, o.name, OpGroup, func() (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
				return out, nil
			})
		},
	}
}
