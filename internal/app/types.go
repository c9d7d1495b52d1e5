package app

import "inversion-spec/internal/core"

type ValidateRequest struct {
	DocPath string
}

type ValidateResult struct {
	Title       string
	Diagnostics core.Diagnostics
}

type InspectRequest struct {
	DocPath string
}

type InspectResult struct {
	Summary core.Summary
}
