package core

import "inversion-spec/internal/types"

// Model is the canonical, queryable view of one validated document.
// Construction goes through Engine.Compile only; a Model is never
// partial and never mutated after construction.
type Model struct {
	id        string
	title     string
	revision  uint32
	unique    *bool
	errorType *types.TypeNode
	graph     map[string]*types.TypeNode
	typeNames []string
	features  []types.Feature
	calls     []CallBinding
}

// CallBinding is a resolved call-graph entry: every reference is a
// direct edge.
type CallBinding struct {
	Name      string
	Direction types.CallDirection
	Feature   types.Feature
	Input     *types.TypeNode
	Output    *types.TypeNode
}

// ResultType is the effective result of a call: a tagged union of the
// declared output and the document's error type, since every call may
// fail with an error value instead of returning.
type ResultType struct {
	Output *types.TypeNode
	Error  *types.TypeNode
}

func newModel(doc *types.Document, graph map[string]*types.TypeNode) *Model {
	model := &Model{
		id:       doc.ID,
		title:    doc.Title,
		revision: doc.Revision,
		graph:    graph,
		features: append([]types.Feature(nil), doc.Features...),
	}
	if doc.Unique != nil {
		unique := *doc.Unique
		model.unique = &unique
	}
	if doc.ErrorType != "" {
		model.errorType = graph[doc.ErrorType]
	}
	model.typeNames = make([]string, 0, len(doc.Types))
	for _, decl := range doc.Types {
		model.typeNames = append(model.typeNames, decl.Name)
	}

	featuresByName := make(map[string]types.Feature, len(doc.Features))
	for _, feature := range doc.Features {
		featuresByName[feature.Name] = feature
	}
	for _, call := range append(append([]types.Call(nil), doc.CallsOut...), doc.CallsIn...) {
		model.calls = append(model.calls, CallBinding{
			Name:      call.Name,
			Direction: call.Direction,
			Feature:   featuresByName[call.Feature],
			Input:     graph[call.Input],
			Output:    graph[call.Output],
		})
	}
	return model
}

// ID returns the opaque document identifier.
func (m *Model) ID() string { return m.id }

// Title returns the document title.
func (m *Model) Title() string { return m.title }

// Revision returns the document revision snapshot.
func (m *Model) Revision() uint32 { return m.revision }

// Unique passes through the document's unique flag.  Its consumer-side
// meaning belongs to downstream tooling; nil means the document did not
// set it.
func (m *Model) Unique() *bool {
	if m.unique == nil {
		return nil
	}
	unique := *m.unique
	return &unique
}

// ErrorType returns the resolved error type node, nil when the document
// declares none.
func (m *Model) ErrorType() *types.TypeNode { return m.errorType }

// Type looks up a declared type by name.
func (m *Model) Type(name string) (*types.TypeNode, bool) {
	node, ok := m.graph[name]
	return node, ok
}

// TypeNames lists declared type names in document order.
func (m *Model) TypeNames() []string {
	return append([]string(nil), m.typeNames...)
}

// Features lists all features, stable and unstable, in document order.
func (m *Model) Features() []types.Feature {
	return append([]types.Feature(nil), m.features...)
}

// Calls lists the resolved call bindings, callsOut first, in document
// order.
func (m *Model) Calls() []CallBinding {
	return append([]CallBinding(nil), m.calls...)
}

// ResultType returns the effective result union for a call.
func (m *Model) ResultType(call CallBinding) ResultType {
	return ResultType{Output: call.Output, Error: m.errorType}
}

// Summary is a flat, pointer-free projection of the model for rendering
// and comparison.  Two compiles of the same document produce equal
// summaries.
type Summary struct {
	ID        string
	Title     string
	Revision  uint32
	Unique    *bool
	ErrorType string
	Types     []TypeSummary
	Features  []FeatureSummary
	Calls     []CallSummary
}

type TypeSummary struct {
	Name      string
	Kind      types.TypeKind
	Canonical types.TypeKind
}

type FeatureSummary struct {
	Name              string
	Doc               string
	Stable            bool
	StablizedRevision uint32
	Deprecated        bool
}

type CallSummary struct {
	Name      string
	Direction types.CallDirection
	Feature   string
	Input     string
	Output    string
	Error     string
}

// Summarize projects the model into its flat form.
func (m *Model) Summarize() Summary {
	summary := Summary{
		ID:       m.id,
		Title:    m.title,
		Revision: m.revision,
		Unique:   m.Unique(),
	}
	if m.errorType != nil {
		summary.ErrorType = m.errorType.Name
	}
	for _, name := range m.typeNames {
		node := m.graph[name]
		entry := TypeSummary{Name: name, Kind: node.Kind}
		if canonical := node.Canonical(); canonical != nil {
			entry.Canonical = canonical.Kind
		}
		summary.Types = append(summary.Types, entry)
	}
	for _, feature := range m.features {
		summary.Features = append(summary.Features, FeatureSummary{
			Name:              feature.Name,
			Doc:               feature.Doc,
			Stable:            feature.Stability == types.Stable,
			StablizedRevision: feature.StablizedRevision,
			Deprecated:        feature.Deprecated,
		})
	}
	for _, call := range m.calls {
		entry := CallSummary{
			Name:      call.Name,
			Direction: call.Direction,
			Feature:   call.Feature.Name,
			Error:     summary.ErrorType,
		}
		if call.Input != nil {
			entry.Input = call.Input.Name
		}
		if call.Output != nil {
			entry.Output = call.Output.Name
		}
		summary.Calls = append(summary.Calls, entry)
	}
	return summary
}
