package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Inspect compiles a document and returns the flat model summary for
// rendering.  Inspection requires a valid document; diagnostics surface
// through the same failed-precondition path as Validate.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	docPath := strings.TrimSpace(req.DocPath)
	if docPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document path is required")
	}
	raw, err := s.Documents.LoadDocument(docPath)
	if err != nil {
		return InspectResult{}, err
	}
	model, diags := s.Engine.Compile(ctx, raw)
	if model == nil {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("document failed validation").
			WithCause(diags)
	}
	return InspectResult{Summary: model.Summarize()}, nil
}
