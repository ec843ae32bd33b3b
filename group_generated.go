package jedi

//go:generate go run codegen/main.go -w

// Tuple2 is the value of a resolved 2-member group
type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Tuple3 is the value of a resolved 3-member group
type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Tuple4 is the value of a resolved 4-member group
type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Tuple5 is the value of a resolved 5-member group
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Tuple6 is the value of a resolved 6-member group
type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// Tuple7 is the value of a resolved 7-member group
type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

// Tuple8 is the value of a resolved 8-member group
type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

// Tuple9 is the value of a resolved 9-member group
type Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
}

// Group2 resolves 2 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group2[W any, E error, T1, T2 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	opts ...Option,
) Resolver[W, E, Tuple2[T1, T2]] {
	o := buildOptions(groupName(r1.name, r2.name), opts)
	return Resolver[W, E, Tuple2[T1, T2]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple2[T1, T2], error) {
			var out Tuple2[T1, T2]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
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

// Group3 resolves 3 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group3[W any, E error, T1, T2, T3 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	r3 Resolver[W, E, T3],
	opts ...Option,
) Resolver[W, E, Tuple3[T1, T2, T3]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name), opts)
	return Resolver[W, E, Tuple3[T1, T2, T3]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple3[T1, T2, T3], error) {
			var out Tuple3[T1, T2, T3]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
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

// Group4 resolves 4 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group4[W any, E error, T1, T2, T3, T4 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	r3 Resolver[W, E, T3],
	r4 Resolver[W, E, T4],
	opts ...Option,
) Resolver[W, E, Tuple4[T1, T2, T3, T4]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name), opts)
	return Resolver[W, E, Tuple4[T1, T2, T3, T4]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple4[T1, T2, T3, T4], error) {
			var out Tuple4[T1, T2, T3, T4]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
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

// Group5 resolves 5 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group5[W any, E error, T1, T2, T3, T4, T5 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	r3 Resolver[W, E, T3],
	r4 Resolver[W, E, T4],
	r5 Resolver[W, E, T5],
	opts ...Option,
) Resolver[W, E, Tuple5[T1, T2, T3, T4, T5]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name), opts)
	return Resolver[W, E, Tuple5[T1, T2, T3, T4, T5]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple5[T1, T2, T3, T4, T5], error) {
			var out Tuple5[T1, T2, T3, T4, T5]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
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

// Group6 resolves 6 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group6[W any, E error, T1, T2, T3, T4, T5, T6 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	r3 Resolver[W, E, T3],
	r4 Resolver[W, E, T4],
	r5 Resolver[W, E, T5],
	r6 Resolver[W, E, T6],
	opts ...Option,
) Resolver[W, E, Tuple6[T1, T2, T3, T4, T5, T6]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name), opts)
	return Resolver[W, E, Tuple6[T1, T2, T3, T4, T5, T6]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple6[T1, T2, T3, T4, T5, T6], error) {
			var out Tuple6[T1, T2, T3, T4, T5, T6]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
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

// Group7 resolves 7 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group7[W any, E error, T1, T2, T3, T4, T5, T6, T7 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	r3 Resolver[W, E, T3],
	r4 Resolver[W, E, T4],
	r5 Resolver[W, E, T5],
	r6 Resolver[W, E, T6],
	r7 Resolver[W, E, T7],
	opts ...Option,
) Resolver[W, E, Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name), opts)
	return Resolver[W, E, Tuple7[T1, T2, T3, T4, T5, T6, T7]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
			var out Tuple7[T1, T2, T3, T4, T5, T6, T7]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v6, err := r6.resolve(rc.child(), w)
			if err != nil {
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

// Group8 resolves 8 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group8[W any, E error, T1, T2, T3, T4, T5, T6, T7, T8 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	r3 Resolver[W, E, T3],
	r4 Resolver[W, E, T4],
	r5 Resolver[W, E, T5],
	r6 Resolver[W, E, T6],
	r7 Resolver[W, E, T7],
	r8 Resolver[W, E, T8],
	opts ...Option,
) Resolver[W, E, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name, r8.name), opts)
	return Resolver[W, E, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
			var out Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v6, err := r6.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v7, err := r7.resolve(rc.child(), w)
			if err != nil {
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

// Group9 resolves 9 sibling resolvers sharing one World and error domain
// as a single unit, strictly left to right; the first failure aborts the
// remaining members and is returned unchanged.
func Group9[W any, E error, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](
	r1 Resolver[W, E, T1],
	r2 Resolver[W, E, T2],
	r3 Resolver[W, E, T3],
	r4 Resolver[W, E, T4],
	r5 Resolver[W, E, T5],
	r6 Resolver[W, E, T6],
	r7 Resolver[W, E, T7],
	r8 Resolver[W, E, T8],
	r9 Resolver[W, E, T9],
	opts ...Option,
) Resolver[W, E, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	o := buildOptions(groupName(r1.name, r2.name, r3.name, r4.name, r5.name, r6.name, r7.name, r8.name, r9.name), opts)
	return Resolver[W, E, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]]{
		name: o.name,
		resolve: func(rc *resolveCtx, w *W) (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
			var out Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]
			v1, err := r1.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v2, err := r2.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v3, err := r3.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v4, err := r4.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v5, err := r5.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v6, err := r6.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v7, err := r7.resolve(rc.child(), w)
			if err != nil {
				return out, err
			}
			v8, err := r8.resolve(rc.child(), w)
			if err != nil {
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
