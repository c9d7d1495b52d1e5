package ports

import "inversion-spec/internal/types"

// DocumentSourcePort loads a raw inversion-api document from some
// storage into the generic tree form the engine consumes.  The textual
// parser behind it (JSON or YAML) is an adapter concern; core never
// sees bytes.
type DocumentSourcePort interface {
	LoadDocument(path string) (*types.RawNode, error)
}
