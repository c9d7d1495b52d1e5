package types

// RawNodeKind discriminates the three shapes a decoded document node
// can take.
type RawNodeKind int

const (
	RawMapping RawNodeKind = iota
	RawSequence
	RawScalar
)

// ScalarKind discriminates the scalar payloads the engine needs to read.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBool
	ScalarNull
)

// RawEntry is a single key/value pair of a mapping node.  Entries keep
// the order they appeared in the source document.
type RawEntry struct {
	Key   string
	Value *RawNode
}

// RawNode is a generic structured-document tree produced by the JSON and
// YAML adapters and consumed by the core engine.  The engine only ever
// reads named fields, iterates mapping entries in insertion order, and
// reads scalars as string/integer/boolean, so the node carries nothing
// else.
type RawNode struct {
	Kind RawNodeKind

	// Entries holds mapping pairs in document order (Kind == RawMapping).
	Entries []RawEntry

	// Items holds sequence elements (Kind == RawSequence).
	Items []*RawNode

	// Scalar payload (Kind == RawScalar).  Exactly one of the value
	// fields is meaningful, selected by Scalar.
	Scalar ScalarKind
	Str    string
	Int    int64
	Float  float64
	Bool   bool
}

// Get returns the value for key in a mapping node.
func (n *RawNode) Get(key string) (*RawNode, bool) {
	if n == nil || n.Kind != RawMapping {
		return nil, false
	}
	for _, entry := range n.Entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// AsString reads the node as a string scalar.
func (n *RawNode) AsString() (string, bool) {
	if n == nil || n.Kind != RawScalar || n.Scalar != ScalarString {
		return "", false
	}
	return n.Str, true
}

// AsInt reads the node as an integer scalar.
func (n *RawNode) AsInt() (int64, bool) {
	if n == nil || n.Kind != RawScalar || n.Scalar != ScalarInt {
		return 0, false
	}
	return n.Int, true
}

// AsBool reads the node as a boolean scalar.
func (n *RawNode) AsBool() (bool, bool) {
	if n == nil || n.Kind != RawScalar || n.Scalar != ScalarBool {
		return false, false
	}
	return n.Bool, true
}

// StringScalar creates a string scalar node.  Handy for tests and for
// adapters that synthesize nodes.
func StringScalar(value string) *RawNode {
	return &RawNode{Kind: RawScalar, Scalar: ScalarString, Str: value}
}

// IntScalar creates an integer scalar node.
func IntScalar(value int64) *RawNode {
	return &RawNode{Kind: RawScalar, Scalar: ScalarInt, Int: value}
}

// BoolScalar creates a boolean scalar node.
func BoolScalar(value bool) *RawNode {
	return &RawNode{Kind: RawScalar, Scalar: ScalarBool, Bool: value}
}
