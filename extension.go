package jedi

import "context"

// Extension provides hooks into the extraction lifecycle
type Extension interface {
	// Name returns the extension's name
	Name() string

	// Wrap intercepts a single construction step
	Wrap(ctx context.Context, next func() (any, error), op *Operation) (any, error)

	// OnError handles the error produced by a failing step
	OnError(err error, op *Operation)
}

// BaseExtension provides default implementations for Extension methods
type BaseExtension struct {
	name string
}

// NewBaseExtension creates a new base extension with the given name
func NewBaseExtension(name string) BaseExtension {
	return BaseExtension{name: name}
}

func (e *BaseExtension) Name() string {
	return e.name
}

func (e *BaseExtension) Wrap(ctx context.Context, next func() (any, error), op *Operation) (any, error) {
	return next()
}

func (e *BaseExtension) OnError(err error, op *Operation) {
}

// Operation describes the construction step being intercepted
type Operation struct {
	// Kind is the step variant
	Kind OperationKind
	// Resolver is the resolver's name (target type name unless WithName overrode it)
	Resolver string
	// Target is the constructed type's name
	Target string
	// Depth is the step's distance from the extraction entry point
	Depth int
}

// OperationKind represents the type of construction step
type OperationKind string

const (
	// OpExtract surrounds a whole extraction chain
	OpExtract OperationKind = "extract"
	// OpResolve indicates a direct construction from the World
	OpResolve OperationKind = "resolve"
	// OpDerive indicates a derivation from an already-resolved dependency
	OpDerive OperationKind = "derive"
	// OpGroup indicates the assembly of a resolved group tuple
	OpGroup OperationKind = "group"
)
