package integration

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inversion-spec/internal/app"
	"inversion-spec/tests/testutil"
)

func TestValidateKeyValueFixtureEndToEnd(t *testing.T) {
	service := app.NewService()

	for _, name := range []string{"kv_store.json", "kv_store.yaml"} {
		name := name
		t.Run(name, func(t *testing.T) {
			result, err := service.Validate(t.Context(), app.ValidateRequest{
				DocPath: filepath.Join("testdata", name),
			})
			require.NoError(t, err)
			assert.Equal(t, "Key Value Persistence", result.Title)
			assert.Empty(t, result.Diagnostics)
		})
	}
}

// The engine must not care which encoding carried the document: the
// JSON and YAML renditions of the same fixture produce identical
// resolved summaries.
func TestEncodingsProduceIdenticalModels(t *testing.T) {
	service := app.NewService()

	fromJSON, err := service.Inspect(t.Context(), app.InspectRequest{
		DocPath: filepath.Join("testdata", "kv_store.json"),
	})
	require.NoError(t, err)
	fromYAML, err := service.Inspect(t.Context(), app.InspectRequest{
		DocPath: filepath.Join("testdata", "kv_store.yaml"),
	})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(fromJSON.Summary, fromYAML.Summary))
}

func TestValidateRejectsTamperedFixture(t *testing.T) {
	service := app.NewService()

	doc := testutil.WriteDocument(t, "tampered.yaml", `
inversionApiSpec:
  id: tampered
  title: Tampered
  revision: 0
  errorType: enumItem
  types:
    enumItem:
      type: enum
      content:
        only:
          index: 0
          content:
            type: i32
`)
	result, err := service.Validate(t.Context(), app.ValidateRequest{DocPath: doc})
	require.Error(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "InvalidErrorTypeError", string(result.Diagnostics[0].Kind))
}
