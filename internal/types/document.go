package types

// Document is the decoded form of one inversion-api spec document.
// References between namespaces are still plain names at this stage;
// the core engine resolves them into a type graph.
//
// The document is constructed once by the decoder and never mutated.
type Document struct {
	// ID is an opaque identifier, unique within whatever catalog holds
	// documents (a nanoid in practice).
	ID string

	// Title is the human-readable document title.
	Title string

	// Revision increases monotonically across successive edits of the
	// same ID.  Only the snapshot value is known here.
	Revision uint32

	// ErrorType names the declared type returned when any call fails.
	ErrorType string

	// Unique is set when a broker should only allow one implementation
	// of this spec.  Tri-state: nil means the document did not say.
	// Pass-through for downstream tooling; not validated further.
	Unique *bool

	// Features holds stable and unstable features as one table, in
	// document order (stable namespace first).  Name collisions across
	// the two source namespaces survive decoding so the validator can
	// report them.
	Features []Feature

	// Types holds the declared types in document order, each still in
	// raw tree form.  The graph builder parses them.
	Types []TypeDecl

	// CallsOut and CallsIn bind feature names to input/output type
	// names, in document order.
	CallsOut []Call
	CallsIn  []Call
}

// TypeDecl is one named entry of the types namespace, body still
// undecoded.
type TypeDecl struct {
	Name string
	Body *RawNode
}

// Stability tags a feature as part of the guaranteed contract or as
// experimental.
type Stability int

const (
	Unstable Stability = iota
	Stable
)

// Feature is a named operation of the API surface.
type Feature struct {
	Name string
	Doc  string

	// Stability is Stable for entries of the features namespace,
	// Unstable for entries of unstableFeatures.
	Stability Stability

	// StablizedRevision is the document revision at which a stable
	// feature joined the guaranteed contract.  Meaningless when
	// Stability is Unstable.  Field name follows the document format.
	StablizedRevision uint32

	// Deprecated marks a stable feature that implementors may no
	// longer support.
	Deprecated bool
}

// Call binds a feature to its input and output types by name.
type Call struct {
	Name      string
	Direction CallDirection
	Feature   string
	Input     string
	Output    string
}
