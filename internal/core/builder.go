package core

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"inversion-spec/internal/shared"
	"inversion-spec/internal/types"
)

// GraphBuilder turns the raw types namespace into a graph of TypeNodes.
// Children of container kinds are parsed recursively; named references
// stay name-only until the resolver runs.  Member indices are captured
// verbatim so the validator can report every collision in one sweep
// instead of failing on the first.
type GraphBuilder struct{}

func NewGraphBuilder() GraphBuilder {
	return GraphBuilder{}
}

// Build produces one node per declared type, keyed by name.  Unknown
// kind strings are fatal to the whole document: the engine stops before
// resolution when any UnknownKindError is present.  Build still
// completes its sweep so every unknown kind is reported together.
func (b GraphBuilder) Build(ctx context.Context, decls []types.TypeDecl) (map[string]*types.TypeNode, Diagnostics) {
	builder := &nodeBuilder{}
	graph := make(map[string]*types.TypeNode, len(decls))
	for _, decl := range decls {
		path := []string{specKey, "types", decl.Name}
		node := builder.parse(path, decl.Name, decl.Body)
		if node == nil {
			continue
		}
		node.Name = decl.Name
		graph[decl.Name] = node
	}
	log.Ctx(ctx).Debug().
		Int("declared", len(decls)).
		Int("built", len(graph)).
		Msg("type graph built")
	return graph, builder.diags
}

type nodeBuilder struct {
	diags Diagnostics
}

func (b *nodeBuilder) parse(path []string, subject string, body *types.RawNode) *types.TypeNode {
	if body == nil || body.Kind != types.RawMapping {
		b.malformed(path, subject, "expected a type mapping")
		return nil
	}
	kindField, ok := body.Get("type")
	if !ok {
		b.malformed(shared.ExtendPath(path, "type"), subject, "type declaration requires a kind")
		return nil
	}
	kindStr, ok := kindField.AsString()
	if !ok {
		b.malformed(shared.ExtendPath(path, "type"), subject, "expected type kind to be a string")
		return nil
	}
	kind, ok := types.KindFromString(kindStr)
	if !ok {
		b.diags = append(b.diags, Diagnostic{
			Kind:      DiagUnknownKind,
			Namespace: "types",
			Subject:   subject,
			Path:      shared.ExtendPath(path, "type"),
			Message:   fmt.Sprintf("unknown type kind %q", kindStr),
		})
		return nil
	}

	node := &types.TypeNode{Kind: kind}
	if doc, ok := body.Get("doc"); ok {
		if text, ok := doc.AsString(); ok {
			node.Doc = text
		} else {
			b.malformed(shared.ExtendPath(path, "doc"), subject, "expected doc to be a string")
		}
	}

	switch {
	case kind.IsPrimitive():
		return node
	case kind == types.KindOptional || kind == types.KindArray:
		node.Elem = b.parseContent(path, subject, body)
		return node
	case kind == types.KindStruct || kind == types.KindEnum:
		node.Fields = b.parseMembers(path, subject, body)
		return node
	default: // named
		node.Ref = b.parseRef(path, subject, body)
		return node
	}
}

func (b *nodeBuilder) parseContent(path []string, subject string, body *types.RawNode) *types.TypeNode {
	content, ok := body.Get("content")
	if !ok {
		b.malformed(shared.ExtendPath(path, "content"), subject, "wrapper type requires content")
		return nil
	}
	return b.parse(shared.ExtendPath(path, "content"), subject, content)
}

func (b *nodeBuilder) parseMembers(path []string, subject string, body *types.RawNode) []types.Field {
	content, ok := body.Get("content")
	if !ok {
		b.malformed(shared.ExtendPath(path, "content"), subject, "struct/enum requires content members")
		return nil
	}
	if content.Kind != types.RawMapping {
		b.malformed(shared.ExtendPath(path, "content"), subject, "expected content to be a mapping")
		return nil
	}
	fields := make([]types.Field, 0, len(content.Entries))
	for _, entry := range content.Entries {
		memberPath := shared.ExtendPath(path, "content", entry.Key)
		field, ok := b.parseMember(memberPath, subject, entry)
		if !ok {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

func (b *nodeBuilder) parseMember(path []string, subject string, entry types.RawEntry) (types.Field, bool) {
	if entry.Value == nil || entry.Value.Kind != types.RawMapping {
		b.malformed(path, subject, "expected a member mapping")
		return types.Field{}, false
	}
	indexField, ok := entry.Value.Get("index")
	if !ok {
		b.malformed(shared.ExtendPath(path, "index"), subject, "member requires an index")
		return types.Field{}, false
	}
	index, ok := indexField.AsInt()
	if !ok || index < 0 || index > math.MaxUint32 {
		b.malformed(shared.ExtendPath(path, "index"), subject,
			"expected index to be a non-negative integer")
		return types.Field{}, false
	}
	content, ok := entry.Value.Get("content")
	if !ok {
		b.malformed(shared.ExtendPath(path, "content"), subject, "member requires a content type")
		return types.Field{}, false
	}
	node := b.parse(shared.ExtendPath(path, "content"), subject, content)
	if node == nil {
		return types.Field{}, false
	}
	return types.Field{Name: entry.Key, Index: uint32(index), Type: node}, true
}

func (b *nodeBuilder) parseRef(path []string, subject string, body *types.RawNode) string {
	content, ok := body.Get("content")
	if !ok {
		b.malformed(shared.ExtendPath(path, "content"), subject, "namedType requires a referenced name")
		return ""
	}
	ref, ok := content.AsString()
	if !ok {
		b.malformed(shared.ExtendPath(path, "content"), subject,
			"expected namedType content to be a type name")
		return ""
	}
	return ref
}

func (b *nodeBuilder) malformed(path []string, subject string, message string) {
	b.diags = append(b.diags, Diagnostic{
		Kind:      DiagMalformedField,
		Namespace: "types",
		Subject:   subject,
		Path:      path,
		Message:   message,
	})
}
