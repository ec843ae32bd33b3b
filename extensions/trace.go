package extensions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m1gwings/treedrawer/tree"

	jedi "github.com/ChristianBelloni/je-di"
)

// TraceStep records one completed construction step of an extraction.
type TraceStep struct {
	Resolver string
	Kind     jedi.OperationKind
	Depth    int
	Duration time.Duration
	Err      error
}

// TraceExtension records the construction steps of the most recent
// extraction on a container and can render them as a tree. Steps appear in
// completion order (dependencies before their dependents), which is also the
// order the resolver guarantees for side effects.
//
// Only whole extractions are kept: a chain that aborts mid-way is replaced
// by the next extraction's trace. When several extractions run concurrently
// on one container their steps interleave; trace one at a time.
type TraceExtension struct {
	jedi.BaseExtension

	mu      sync.Mutex
	pending []TraceStep
	last    []TraceStep
}

// NewTraceExtension creates a trace extension
func NewTraceExtension() *TraceExtension {
	return &TraceExtension{
		BaseExtension: jedi.NewBaseExtension("trace"),
	}
}

func (e *TraceExtension) Wrap(ctx context.Context, next func() (any, error), op *jedi.Operation) (any, error) {
	start := time.Now()
	result, err := next()

	e.record(TraceStep{
		Resolver: op.Resolver,
		Kind:     op.Kind,
		Depth:    op.Depth,
		Duration: time.Since(start),
		Err:      err,
	})

	return result, err
}

func (e *TraceExtension) record(s TraceStep) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = append(e.pending, s)

	// The extract step completes last; it closes the trace.
	if s.Kind == jedi.OpExtract {
		e.last = e.pending
		e.pending = nil
	}
}

// Steps returns the recorded steps of the last completed extraction, in
// completion order.
func (e *TraceExtension) Steps() []TraceStep {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]TraceStep, len(e.last))
	copy(out, e.last)
	return out
}

// Render draws the last completed extraction as a tree, dependencies under
// their dependents.
func (e *TraceExtension) Render() string {
	steps := e.Steps()
	if len(steps) == 0 {
		return "(no extraction recorded)"
	}

	root := buildTraceTree(steps)
	if root == nil {
		return "(no extraction recorded)"
	}

	t := tree.NewTree(tree.NodeString(stepLabel(root.step)))
	drawChildren(t, root)
	return fmt.Sprint(t)
}

type traceNode struct {
	step     TraceStep
	children []*traceNode
}

// buildTraceTree reassembles the step list (post-order: children complete
// before their parent) into a tree using the recorded depths.
func buildTraceTree(steps []TraceStep) *traceNode {
	var stack []*traceNode

	for _, s := range steps {
		n := &traceNode{step: s}

		split := len(stack)
		for split > 0 && stack[split-1].step.Depth > s.Depth {
			split--
		}
		n.children = append(n.children, stack[split:]...)
		stack = append(stack[:split], n)
	}

	if len(stack) == 0 {
		return nil
	}
	// A complete trace collapses to the extract step; an interleaved or
	// partial one may not, so fall back to the last root.
	return stack[len(stack)-1]
}

func drawChildren(t *tree.Tree, n *traceNode) {
	for i, c := range n.children {
		t.AddChild(tree.NodeString(stepLabel(c.step)))
		child, err := t.Child(i)
		if err != nil {
			continue
		}
		drawChildren(child, c)
	}
}

func stepLabel(s TraceStep) string {
	if s.Err != nil {
		return fmt.Sprintf("%s [%s] ERR: %v", s.Resolver, s.Kind, s.Err)
	}
	return fmt.Sprintf("%s [%s] %s", s.Resolver, s.Kind, s.Duration.Round(time.Microsecond))
}
