package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"inversion-spec/internal/types"
)

// Engine runs the full pipeline over one raw document: decode, build
// the type graph, resolve references, validate.  Each run allocates its
// own graph and diagnostic list, so independent documents can be
// compiled concurrently without coordination.
type Engine struct {
	builder   GraphBuilder
	resolver  ReferenceResolver
	validator SchemaValidator
}

func NewEngine() Engine {
	return Engine{
		builder:   NewGraphBuilder(),
		resolver:  NewReferenceResolver(),
		validator: NewSchemaValidator(),
	}
}

// Compile produces either a usable model and no diagnostics, or a
// non-empty sorted diagnostic list and no model — never both, never a
// partial model.
//
// Stage gating: unknown type kinds abort before resolution (such a type
// cannot be modeled at all), and the validator only runs over a fully
// resolved graph.  Within each stage the sweep always completes, so one
// run reports every error that stage can see.
func (e Engine) Compile(ctx context.Context, root *types.RawNode) (*Model, Diagnostics) {
	doc, diags := DecodeDocument(root)
	if doc == nil {
		diags.Sort()
		return nil, diags
	}

	graph, buildDiags := e.builder.Build(ctx, doc.Types)
	diags = append(diags, buildDiags...)
	if diags.HasKind(DiagUnknownKind) {
		diags.Sort()
		return nil, diags
	}

	resolveDiags := e.resolver.Resolve(ctx, doc, graph)
	diags = append(diags, resolveDiags...)
	if len(resolveDiags) == 0 {
		diags = append(diags, e.validator.Validate(ctx, doc, graph)...)
	}

	if len(diags) > 0 {
		diags.Sort()
		return nil, diags
	}

	log.Ctx(ctx).Debug().
		Str("document", doc.ID).
		Str("title", doc.Title).
		Uint32("revision", doc.Revision).
		Msg("document compiled")
	return newModel(doc, graph), nil
}
