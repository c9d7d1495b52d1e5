package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inversion-spec/internal/types"
)

func TestDecodeJSONPreservesMappingOrder(t *testing.T) {
	doc := []byte(`{"zeta": 1, "alpha": 2, "mid": {"b": true, "a": false}}`)

	node, err := DecodeJSON(doc)
	require.NoError(t, err)
	require.Equal(t, types.RawMapping, node.Kind)

	keys := make([]string, 0, len(node.Entries))
	for _, entry := range node.Entries {
		keys = append(keys, entry.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)

	mid, ok := node.Get("mid")
	require.True(t, ok)
	assert.Equal(t, "b", mid.Entries[0].Key)
	assert.Equal(t, "a", mid.Entries[1].Key)
}

func TestDecodeJSONScalars(t *testing.T) {
	doc := []byte(`{"s": "text", "i": 42, "neg": -7, "f": 1.5, "b": true, "n": null, "arr": [1, "two"]}`)

	node, err := DecodeJSON(doc)
	require.NoError(t, err)

	s, ok := node.Entries[0].Value.AsString()
	require.True(t, ok)
	assert.Equal(t, "text", s)

	i, ok := node.Entries[1].Value.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	neg, ok := node.Entries[2].Value.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(-7), neg)

	f := node.Entries[3].Value
	assert.Equal(t, types.ScalarFloat, f.Scalar)
	assert.Equal(t, 1.5, f.Float)

	b, ok := node.Entries[4].Value.AsBool()
	require.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, types.ScalarNull, node.Entries[5].Value.Scalar)

	arr := node.Entries[6].Value
	require.Equal(t, types.RawSequence, arr.Kind)
	require.Len(t, arr.Items, 2)
	item, ok := arr.Items[0].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(1), item)
}

func TestDecodeJSONRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "truncated", doc: `{"a":`},
		{name: "trailing data", doc: `{} {}`},
		{name: "not json", doc: `types: {}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}
