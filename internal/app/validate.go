package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Validate runs the full engine pipeline over one document.  An invalid
// document returns the diagnostic list in the result alongside a
// failed-precondition error, so callers can render the diagnostics and
// still map the failure to an exit code.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	docPath := strings.TrimSpace(req.DocPath)
	if docPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document path is required")
	}
	raw, err := s.Documents.LoadDocument(docPath)
	if err != nil {
		return ValidateResult{}, err
	}
	model, diags := s.Engine.Compile(ctx, raw)
	if model == nil {
		log.Ctx(ctx).Debug().
			Str("doc", docPath).
			Int("diagnostics", len(diags)).
			Msg("document rejected")
		return ValidateResult{Diagnostics: diags}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("document failed validation")
	}
	return ValidateResult{Title: model.Title()}, nil
}
