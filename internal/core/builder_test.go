package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inversion-spec/internal/types"
)

func declsFromJSON(t *testing.T, typesDoc string) []types.TypeDecl {
	t.Helper()
	doc, diags := DecodeDocument(mustDecodeJSON(t, `{"inversionApiSpec": {"types": `+typesDoc+`}}`))
	require.Empty(t, diags)
	return doc.Types
}

func TestBuildAllKinds(t *testing.T) {
	decls := declsFromJSON(t, `{
	  "nothing": {"type": "null"},
	  "flag": {"type": "bool"},
	  "count": {"type": "u64", "doc": "A counter."},
	  "blob": {"type": "bytes"},
	  "maybe": {"type": "optional", "content": {"type": "string"}},
	  "list": {"type": "array", "content": {"type": "i32"}},
	  "pair": {"type": "struct", "content": {
	    "left": {"index": 0, "content": {"type": "i32"}},
	    "right": {"index": 5, "content": {"type": "string"}}
	  }},
	  "choice": {"type": "enum", "content": {
	    "a": {"index": 0, "content": {"type": "bool"}}
	  }},
	  "alias": {"type": "namedType", "content": "pair"}
	}`)

	graph, diags := NewGraphBuilder().Build(t.Context(), decls)
	require.Empty(t, diags)
	require.Len(t, graph, 9)

	assert.Equal(t, types.KindNull, graph["nothing"].Kind)
	assert.Equal(t, "A counter.", graph["count"].Doc)

	maybe := graph["maybe"]
	require.NotNil(t, maybe.Elem)
	assert.Equal(t, types.KindString, maybe.Elem.Kind)

	pair := graph["pair"]
	require.Len(t, pair.Fields, 2)
	assert.Equal(t, "left", pair.Fields[0].Name)
	assert.Equal(t, uint32(0), pair.Fields[0].Index)
	assert.Equal(t, uint32(5), pair.Fields[1].Index)

	alias := graph["alias"]
	assert.Equal(t, types.KindNamed, alias.Kind)
	assert.Equal(t, "pair", alias.Ref)
	assert.Nil(t, alias.Target)
}

func TestBuildUnknownKind(t *testing.T) {
	decls := declsFromJSON(t, `{
	  "good": {"type": "string"},
	  "bad": {"type": "decimal128"},
	  "worse": {"type": "tuple"}
	}`)

	graph, diags := NewGraphBuilder().Build(t.Context(), decls)
	require.Len(t, diags, 2)
	for _, diag := range diags {
		assert.Equal(t, DiagUnknownKind, diag.Kind)
	}
	// the sweep still completes: buildable declarations are built
	assert.Contains(t, graph, "good")
	assert.NotContains(t, graph, "bad")
}

func TestBuildCapturesDuplicateIndicesVerbatim(t *testing.T) {
	decls := declsFromJSON(t, `{
	  "dup": {"type": "struct", "content": {
	    "a": {"index": 0, "content": {"type": "i32"}},
	    "b": {"index": 0, "content": {"type": "string"}}
	  }}
	}`)

	graph, diags := NewGraphBuilder().Build(t.Context(), decls)
	require.Empty(t, diags, "index collisions are the validator's to report")
	require.Len(t, graph["dup"].Fields, 2)
	assert.Equal(t, graph["dup"].Fields[0].Index, graph["dup"].Fields[1].Index)
}

func TestBuildMalformedDeclarations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing kind", doc: `{"t": {"doc": "no type"}}`},
		{name: "kind not a string", doc: `{"t": {"type": 7}}`},
		{name: "wrapper without content", doc: `{"t": {"type": "array"}}`},
		{name: "member without index", doc: `{"t": {"type": "struct", "content": {"a": {"content": {"type": "i32"}}}}}`},
		{name: "member index negative", doc: `{"t": {"type": "struct", "content": {"a": {"index": -1, "content": {"type": "i32"}}}}}`},
		{name: "named without target", doc: `{"t": {"type": "namedType"}}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, diags := NewGraphBuilder().Build(t.Context(), declsFromJSON(t, tt.doc))
			require.NotEmpty(t, diags)
			assert.Equal(t, DiagMalformedField, diags[0].Kind)
		})
	}
}

func TestBuildEmptyNamespace(t *testing.T) {
	graph, diags := NewGraphBuilder().Build(t.Context(), nil)
	assert.Empty(t, graph)
	assert.Empty(t, diags)
}
