package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateSpecJSON(t *testing.T, specDoc string) Diagnostics {
	t.Helper()
	doc, graph, resolveDiags := resolveSpecJSON(t, specDoc)
	require.Empty(t, resolveDiags)
	return NewSchemaValidator().Validate(t.Context(), doc, graph)
}

func TestValidateDuplicateIndex(t *testing.T) {
	diags := validateSpecJSON(t, `{"types": {
	  "clean": {"type": "struct", "content": {
	    "a": {"index": 0, "content": {"type": "i32"}},
	    "b": {"index": 1, "content": {"type": "i32"}}
	  }},
	  "dirty": {"type": "struct", "content": {
	    "first": {"index": 0, "content": {"type": "i32"}},
	    "second": {"index": 0, "content": {"type": "string"}}
	  }}
	}}`)

	require.Len(t, diags, 1)
	assert.Equal(t, DiagDuplicateIndex, diags[0].Kind)
	assert.Equal(t, "dirty", diags[0].Subject)
	assert.Contains(t, diags[0].Message, "first")
	assert.Contains(t, diags[0].Message, "second")
	assert.Contains(t, diags[0].Message, "index 0")
}

func TestValidateDuplicateIndexInNestedEnum(t *testing.T) {
	diags := validateSpecJSON(t, `{"types": {
	  "outer": {"type": "array", "content": {
	    "type": "enum", "content": {
	      "x": {"index": 2, "content": {"type": "i32"}},
	      "y": {"index": 2, "content": {"type": "string"}}
	    }
	  }}
	}}`)

	require.Len(t, diags, 1)
	assert.Equal(t, DiagDuplicateIndex, diags[0].Kind)
	assert.Equal(t, "outer", diags[0].Subject)
}

func TestValidateErrorTypeShape(t *testing.T) {
	tests := []struct {
		name      string
		errorType string
		wantDiags int
	}{
		{name: "struct is accepted", errorType: "structItem", wantDiags: 0},
		{name: "alias to struct is accepted", errorType: "aliasItem", wantDiags: 0},
		{name: "enum is rejected", errorType: "enumItem", wantDiags: 1},
		{name: "primitive is rejected", errorType: "intItem", wantDiags: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			diags := validateSpecJSON(t, `{
			  "errorType": "`+tt.errorType+`",
			  "types": {
			    "intItem": {"type": "i32"},
			    "structItem": {"type": "struct", "content": {
			      "v": {"index": 0, "content": {"type": "i32"}}
			    }},
			    "enumItem": {"type": "enum", "content": {
			      "v": {"index": 0, "content": {"type": "i32"}}
			    }},
			    "aliasItem": {"type": "namedType", "content": "structItem"}
			  }
			}`)
			require.Len(t, diags, tt.wantDiags)
			if tt.wantDiags > 0 {
				assert.Equal(t, DiagInvalidErrorType, diags[0].Kind)
			}
		})
	}
}

func TestValidateFeatureNamespaceDisjointness(t *testing.T) {
	diags := validateSpecJSON(t, `{
	  "revision": 1,
	  "features": {"get": {"stablizedRevision": 0}},
	  "unstableFeatures": {"get": {}, "list": {}}
	}`)

	require.Len(t, diags, 1)
	assert.Equal(t, DiagDuplicateFeature, diags[0].Kind)
	assert.Equal(t, "get", diags[0].Subject)
}

func TestValidateUnboundCall(t *testing.T) {
	diags := validateSpecJSON(t, `{
	  "features": {"known": {"stablizedRevision": 0}},
	  "types": {"unit": {"type": "null"}},
	  "callsOut": {
	    "c": {"feature": "phantom", "input": "unit", "output": "unit"}
	  }
	}`)

	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnboundCall, diags[0].Kind)
	assert.Equal(t, "callsOut", diags[0].Namespace)
	assert.Equal(t, "c", diags[0].Subject)
}

func TestValidateFutureStabilization(t *testing.T) {
	diags := validateSpecJSON(t, `{
	  "revision": 2,
	  "features": {
	    "ok": {"stablizedRevision": 2},
	    "early": {"stablizedRevision": 0},
	    "fromTheFuture": {"stablizedRevision": 7}
	  }
	}`)

	require.Len(t, diags, 1)
	assert.Equal(t, DiagFutureStabilization, diags[0].Kind)
	assert.Equal(t, "fromTheFuture", diags[0].Subject)
}

func TestValidateChecksAccumulate(t *testing.T) {
	diags := validateSpecJSON(t, `{
	  "revision": 0,
	  "errorType": "enumItem",
	  "features": {"f": {"stablizedRevision": 3}},
	  "unstableFeatures": {"f": {}},
	  "types": {
	    "enumItem": {"type": "enum", "content": {
	      "a": {"index": 0, "content": {"type": "i32"}},
	      "b": {"index": 0, "content": {"type": "i32"}}
	    }}
	  }
	}`)

	kinds := make(map[DiagKind]int)
	for _, diag := range diags {
		kinds[diag.Kind]++
	}
	assert.Equal(t, 1, kinds[DiagDuplicateIndex])
	assert.Equal(t, 1, kinds[DiagInvalidErrorType])
	assert.Equal(t, 1, kinds[DiagDuplicateFeature])
	assert.Equal(t, 1, kinds[DiagFutureStabilization])
	assert.Len(t, diags, 4)
}
