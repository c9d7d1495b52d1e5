package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"inversion-spec/internal/shared"
	"inversion-spec/internal/types"
)

// ReferenceResolver replaces every name-based reference in the built
// graph with a direct edge to the referenced node: alias targets,
// inline namedType members, the declared error type, and call
// input/output types.
//
// Pure alias chains (namedType -> namedType -> ...) returning to their
// origin have no concrete representation and are fatal.  Cycles passing
// through a struct, array, or optional boundary are ordinary recursive
// data structures and resolve without error: the container gives eager
// expansion a place to stop.
type ReferenceResolver struct{}

func NewReferenceResolver() ReferenceResolver {
	return ReferenceResolver{}
}

type aliasColor int

const (
	aliasWhite aliasColor = iota
	aliasGrey
	aliasBlack
)

// Resolve walks the whole document.  It never aborts on a dangling
// name; the sweep completes so one run reports every unresolved
// reference.  A non-empty return means the graph is not usable.
func (r ReferenceResolver) Resolve(ctx context.Context, doc *types.Document, graph map[string]*types.TypeNode) Diagnostics {
	walker := &refWalker{graph: graph, colors: make(map[string]aliasColor)}

	for _, decl := range doc.Types {
		node, ok := graph[decl.Name]
		if !ok {
			continue
		}
		if node.Kind == types.KindNamed {
			walker.resolveAliasChain(decl.Name)
		}
	}
	for _, decl := range doc.Types {
		node, ok := graph[decl.Name]
		if !ok {
			continue
		}
		walker.resolveInline(node, decl.Name, []string{specKey, "types", decl.Name})
	}

	if doc.ErrorType != "" {
		if _, ok := graph[doc.ErrorType]; !ok {
			walker.diags = append(walker.diags, Diagnostic{
				Kind:      DiagUnresolvedReference,
				Namespace: "document",
				Subject:   "errorType",
				Path:      []string{specKey, "errorType"},
				Message:   fmt.Sprintf("errorType references undeclared type %q", doc.ErrorType),
			})
		}
	}
	for _, call := range doc.CallsOut {
		walker.resolveCallTypes(call)
	}
	for _, call := range doc.CallsIn {
		walker.resolveCallTypes(call)
	}

	log.Ctx(ctx).Debug().
		Int("errors", len(walker.diags)).
		Msg("reference resolution completed")
	return walker.diags
}

type refWalker struct {
	graph  map[string]*types.TypeNode
	colors map[string]aliasColor
	diags  Diagnostics
}

// resolveAliasChain follows a pure alias chain from one declared name,
// setting Target edges as it goes.  Three colors distinguish untouched,
// in-progress, and settled names; hitting an in-progress name means the
// chain closed on itself without ever reaching a non-alias kind.
func (w *refWalker) resolveAliasChain(name string) {
	var chain []string
	current := name
	for {
		if w.colors[current] == aliasBlack {
			break
		}
		node := w.graph[current]
		if node == nil || node.Kind != types.KindNamed {
			break
		}
		if w.colors[current] == aliasGrey {
			w.reportAliasCycle(chain, current)
			break
		}
		w.colors[current] = aliasGrey
		chain = append(chain, current)

		if node.Ref == "" {
			// builder already reported the missing reference
			break
		}
		target, ok := w.graph[node.Ref]
		if !ok {
			w.diags = append(w.diags, Diagnostic{
				Kind:      DiagUnresolvedReference,
				Namespace: "types",
				Subject:   current,
				Path:      []string{specKey, "types", current, "content"},
				Message:   fmt.Sprintf("alias %q references undeclared type %q", current, node.Ref),
			})
			break
		}
		node.Target = target
		current = node.Ref
	}
	for _, member := range chain {
		w.colors[member] = aliasBlack
	}
}

// reportAliasCycle emits exactly one diagnostic for the cycle closing
// at origin.  The member list is rotated to start at the smallest name
// so the report does not depend on which member was inspected first.
func (w *refWalker) reportAliasCycle(chain []string, origin string) {
	start := 0
	for i, member := range chain {
		if member == origin {
			start = i
			break
		}
	}
	members := append([]string(nil), chain[start:]...)

	smallest := 0
	for i, member := range members {
		if member < members[smallest] {
			smallest = i
		}
	}
	rotated := append(append([]string(nil), members[smallest:]...), members[:smallest]...)

	sorted := append([]string(nil), members...)
	sort.Strings(sorted)

	w.diags = append(w.diags, Diagnostic{
		Kind:      DiagCyclicAlias,
		Namespace: "types",
		Subject:   rotated[0],
		Path:      []string{specKey, "types", rotated[0], "content"},
		Message: fmt.Sprintf("cyclic alias chain %s -> %s with no concrete type (members: %s)",
			strings.Join(rotated, " -> "), rotated[0], strings.Join(sorted, ", ")),
	})
}

// resolveInline walks a declared type's inline content, resolving
// namedType references that appear inside containers.  These edges may
// legally point back at the declaring type: the walk never follows a
// Target, so recursion through containers terminates.
func (w *refWalker) resolveInline(node *types.TypeNode, subject string, path []string) {
	if node == nil {
		return
	}
	switch node.Kind {
	case types.KindOptional, types.KindArray:
		w.resolveInline(node.Elem, subject, shared.ExtendPath(path, "content"))
	case types.KindStruct, types.KindEnum:
		for i := range node.Fields {
			fieldPath := shared.ExtendPath(path, "content", node.Fields[i].Name, "content")
			w.resolveInline(node.Fields[i].Type, subject, fieldPath)
		}
	case types.KindNamed:
		if node.Name != "" {
			// declared alias, fully handled by the chain pass
			return
		}
		if node.Target != nil || node.Ref == "" {
			return
		}
		target, ok := w.graph[node.Ref]
		if !ok {
			w.diags = append(w.diags, Diagnostic{
				Kind:      DiagUnresolvedReference,
				Namespace: "types",
				Subject:   subject,
				Path:      path,
				Message:   fmt.Sprintf("type %q references undeclared type %q", subject, node.Ref),
			})
			return
		}
		node.Target = target
	}
}

func (w *refWalker) resolveCallTypes(call types.Call) {
	w.checkCallType(call, "input", call.Input)
	w.checkCallType(call, "output", call.Output)
}

func (w *refWalker) checkCallType(call types.Call, role string, name string) {
	if name == "" {
		// decoder already reported the missing field
		return
	}
	if _, ok := w.graph[name]; !ok {
		w.diags = append(w.diags, Diagnostic{
			Kind:      DiagUnresolvedReference,
			Namespace: string(call.Direction),
			Subject:   call.Name,
			Path:      []string{specKey, string(call.Direction), call.Name, role},
			Message:   fmt.Sprintf("call %s %q references undeclared type %q", role, call.Name, name),
		})
	}
}
