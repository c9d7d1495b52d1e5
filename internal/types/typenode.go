package types

// TypeNode is one node of the built type graph.  Declared types carry
// their namespace name; inline content types are anonymous nodes.
//
// After the builder runs, alias and inline references are still
// name-only (Ref set, Target nil).  The resolver fills Target so that
// traversal never needs a name lookup again.
type TypeNode struct {
	// Name is the declared name, empty for inline nodes.
	Name string

	Kind TypeKind
	Doc  string

	// Elem is the wrapped child for optional/array kinds.
	Elem *TypeNode

	// Fields holds struct/enum members in document order.
	Fields []Field

	// Ref is the referenced type name for the named kind.
	Ref string

	// Target is the node Ref resolves to, set by the resolver.
	Target *TypeNode
}

// Field is one named, indexed member of a struct or enum.  Indices are
// sparse and never reused once assigned, so uniqueness among siblings
// is the only constraint.
type Field struct {
	Name  string
	Index uint32
	Type  *TypeNode
}

// Canonical follows alias edges until it reaches a non-alias node.  On
// a resolved graph the chain is guaranteed acyclic and grounded, so
// this always terminates.  Returns the node itself for non-alias kinds.
func (n *TypeNode) Canonical() *TypeNode {
	node := n
	for node != nil && node.Kind == KindNamed {
		node = node.Target
	}
	return node
}
