package core

import (
	"fmt"
	"sort"
	"strings"

	"inversion-spec/internal/shared"
)

// DiagKind identifies one entry of the engine's error taxonomy.
type DiagKind string

const (
	DiagUnknownKind         DiagKind = "UnknownKindError"
	DiagCyclicAlias         DiagKind = "CyclicAliasError"
	DiagUnresolvedReference DiagKind = "UnresolvedReferenceError"
	DiagDuplicateIndex      DiagKind = "DuplicateIndexError"
	DiagInvalidErrorType    DiagKind = "InvalidErrorTypeError"
	DiagDuplicateFeature    DiagKind = "DuplicateFeatureError"
	DiagUnboundCall         DiagKind = "UnboundCallError"
	DiagFutureStabilization DiagKind = "FutureStabilizationError"
	DiagMalformedField      DiagKind = "MalformedFieldError"
)

// Diagnostic is one problem found in a document.  Namespace and Subject
// exist for deterministic ordering: Namespace is the document section
// ("types", "features", "callsIn", ...), Subject the offending entry
// name within it.
type Diagnostic struct {
	Kind      DiagKind
	Namespace string
	Subject   string
	Path      []string
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %s: %s", d.Kind, shared.JoinPath(d.Path), d.Message)
}

// Diagnostics is an ordered list of document problems.  It implements
// error so invalid documents can flow through ordinary error returns.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "; ")
}

// Sort orders diagnostics by namespace, then subject name, then kind.
// Every pass sorts before returning so output is reproducible no matter
// which traversal found an error first.
func (ds Diagnostics) Sort() {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Namespace != ds[j].Namespace {
			return ds[i].Namespace < ds[j].Namespace
		}
		if ds[i].Subject != ds[j].Subject {
			return ds[i].Subject < ds[j].Subject
		}
		return ds[i].Kind < ds[j].Kind
	})
}

// HasKind reports whether any diagnostic carries the given kind.
func (ds Diagnostics) HasKind(kind DiagKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
