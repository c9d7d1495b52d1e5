package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"inversion-spec/internal/shared"
	"inversion-spec/internal/types"
)

// SchemaValidator runs the structural checks over the resolved graph
// and the feature/call namespaces.  Every check is independent and all
// of them execute; diagnostics accumulate instead of short-circuiting.
type SchemaValidator struct{}

func NewSchemaValidator() SchemaValidator {
	return SchemaValidator{}
}

func (v SchemaValidator) Validate(ctx context.Context, doc *types.Document, graph map[string]*types.TypeNode) Diagnostics {
	var diags Diagnostics

	for _, decl := range doc.Types {
		node, ok := graph[decl.Name]
		if !ok {
			continue
		}
		diags = append(diags, checkIndexUniqueness(node, decl.Name, []string{specKey, "types", decl.Name})...)
	}
	diags = append(diags, checkErrorTypeShape(doc, graph)...)
	diags = append(diags, checkFeatureDisjointness(doc)...)
	diags = append(diags, checkCallBindings(ctx, doc, graph)...)
	diags = append(diags, checkStabilityCoherence(doc)...)

	log.Ctx(ctx).Debug().
		Int("errors", len(diags)).
		Msg("schema validation completed")
	return diags
}

// checkIndexUniqueness reports every index collision among the members
// of a struct or enum, including nested inline ones.  The first member
// holding an index keeps it; each later member sharing it is reported
// against that holder.
func checkIndexUniqueness(node *types.TypeNode, subject string, path []string) Diagnostics {
	if node == nil {
		return nil
	}
	var diags Diagnostics
	switch node.Kind {
	case types.KindOptional, types.KindArray:
		diags = append(diags, checkIndexUniqueness(node.Elem, subject, shared.ExtendPath(path, "content"))...)
	case types.KindStruct, types.KindEnum:
		holders := make(map[uint32]string, len(node.Fields))
		for _, field := range node.Fields {
			if holder, taken := holders[field.Index]; taken {
				diags = append(diags, Diagnostic{
					Kind:      DiagDuplicateIndex,
					Namespace: "types",
					Subject:   subject,
					Path:      shared.ExtendPath(path, "content", field.Name, "index"),
					Message: fmt.Sprintf("type %q assigns index %d to both %q and %q",
						subject, field.Index, holder, field.Name),
				})
				continue
			}
			holders[field.Index] = field.Name
		}
		for _, field := range node.Fields {
			memberPath := shared.ExtendPath(path, "content", field.Name, "content")
			diags = append(diags, checkIndexUniqueness(field.Type, subject, memberPath)...)
		}
	}
	return diags
}

// checkErrorTypeShape enforces the error contract: the declared error
// type must resolve, through any alias chain, to a struct.
func checkErrorTypeShape(doc *types.Document, graph map[string]*types.TypeNode) Diagnostics {
	if doc.ErrorType == "" {
		return nil
	}
	node, ok := graph[doc.ErrorType]
	if !ok {
		// resolver already reported the dangling name
		return nil
	}
	canonical := node.Canonical()
	if canonical != nil && canonical.Kind == types.KindStruct {
		return nil
	}
	kind := types.TypeKind("unresolved")
	if canonical != nil {
		kind = canonical.Kind
	}
	return Diagnostics{{
		Kind:      DiagInvalidErrorType,
		Namespace: "document",
		Subject:   "errorType",
		Path:      []string{specKey, "errorType"},
		Message:   fmt.Sprintf("errorType %q must be a struct, got %s", doc.ErrorType, kind),
	}}
}

// checkFeatureDisjointness reports names used in both the stable and
// unstable feature namespaces.
func checkFeatureDisjointness(doc *types.Document) Diagnostics {
	var diags Diagnostics
	seen := make(map[string]struct{}, len(doc.Features))
	for _, feature := range doc.Features {
		if _, dup := seen[feature.Name]; dup {
			diags = append(diags, Diagnostic{
				Kind:      DiagDuplicateFeature,
				Namespace: "features",
				Subject:   feature.Name,
				Path:      []string{specKey, "unstableFeatures", feature.Name},
				Message:   fmt.Sprintf("feature %q declared in both features and unstableFeatures", feature.Name),
			})
			continue
		}
		seen[feature.Name] = struct{}{}
	}
	return diags
}

// checkCallBindings verifies every call references a declared feature
// and, re-checking the resolver's ground, declared input/output types.
func checkCallBindings(ctx context.Context, doc *types.Document, graph map[string]*types.TypeNode) Diagnostics {
	featureNames := make(map[string]struct{}, len(doc.Features))
	for _, feature := range doc.Features {
		featureNames[feature.Name] = struct{}{}
	}
	var diags Diagnostics
	calls := append(append([]types.Call(nil), doc.CallsOut...), doc.CallsIn...)
	for _, call := range calls {
		assert.NotEmpty(ctx, string(call.Direction), "call direction must be set")
		if call.Feature != "" {
			if _, ok := featureNames[call.Feature]; !ok {
				diags = append(diags, Diagnostic{
					Kind:      DiagUnboundCall,
					Namespace: string(call.Direction),
					Subject:   call.Name,
					Path:      []string{specKey, string(call.Direction), call.Name, "feature"},
					Message:   fmt.Sprintf("call %q references undeclared feature %q", call.Name, call.Feature),
				})
			}
		}
		for _, binding := range []struct{ role, name string }{
			{"input", call.Input},
			{"output", call.Output},
		} {
			role, name := binding.role, binding.name
			if name == "" {
				continue
			}
			if _, ok := graph[name]; !ok {
				diags = append(diags, Diagnostic{
					Kind:      DiagUnboundCall,
					Namespace: string(call.Direction),
					Subject:   call.Name,
					Path:      []string{specKey, string(call.Direction), call.Name, role},
					Message:   fmt.Sprintf("call %q %s references undeclared type %q", call.Name, role, name),
				})
			}
		}
	}
	return diags
}

// checkStabilityCoherence rejects features claiming to have stabilized
// at a revision later than the document snapshot itself.
func checkStabilityCoherence(doc *types.Document) Diagnostics {
	var diags Diagnostics
	for _, feature := range doc.Features {
		if feature.Stability != types.Stable {
			continue
		}
		if feature.StablizedRevision > doc.Revision {
			diags = append(diags, Diagnostic{
				Kind:      DiagFutureStabilization,
				Namespace: "features",
				Subject:   feature.Name,
				Path:      []string{specKey, "features", feature.Name, "stablizedRevision"},
				Message: fmt.Sprintf("feature %q stabilized at revision %d, later than document revision %d",
					feature.Name, feature.StablizedRevision, doc.Revision),
			})
		}
	}
	return diags
}
