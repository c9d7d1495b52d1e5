package core

import (
	"fmt"
	"math"

	"inversion-spec/internal/shared"
	"inversion-spec/internal/types"
)

// specKey is the wrapper key identifying a document as an inversion-api
// spec.
const specKey = "inversionApiSpec"

// decoder turns the generic raw tree into the document model, reporting
// every wrong-shaped field with its path.  Missing fields decode to
// zero values; only fields of the wrong shape produce diagnostics, so a
// minimal document stays valid.
type decoder struct {
	diags Diagnostics
}

// DecodeDocument converts a raw tree into a Document.  The tree must be
// a mapping wrapped under the inversionApiSpec key (the wrapper is the
// heuristic identifying the document type).  A nil document is returned
// when the wrapper itself is unusable; otherwise decoding completes a
// full sweep and returns the document together with every field-shape
// diagnostic found.
func DecodeDocument(root *types.RawNode) (*types.Document, Diagnostics) {
	d := &decoder{}

	if root == nil || root.Kind != types.RawMapping {
		d.malformed(nil, "document", "", "expected a mapping at document root")
		return nil, d.diags
	}
	spec, ok := root.Get(specKey)
	if !ok || spec.Kind != types.RawMapping {
		d.malformed([]string{specKey}, "document", "", "expected an inversionApiSpec mapping")
		return nil, d.diags
	}

	doc := &types.Document{}
	base := []string{specKey}

	doc.ID = d.stringField(spec, base, "id", "document", "id")
	doc.Title = d.stringField(spec, base, "title", "document", "title")
	doc.Revision = d.revisionField(spec, base, "revision")
	doc.ErrorType = d.stringField(spec, base, "errorType", "document", "errorType")
	doc.Unique = d.boolField(spec, base, "unique", "document", "unique")
	doc.Features = d.decodeFeatures(spec, base)
	doc.Types = d.decodeTypes(spec, base)
	doc.CallsOut = d.decodeCalls(spec, base, types.CallOut)
	doc.CallsIn = d.decodeCalls(spec, base, types.CallIn)

	return doc, d.diags
}

func (d *decoder) malformed(path []string, namespace string, subject string, message string) {
	d.diags = append(d.diags, Diagnostic{
		Kind:      DiagMalformedField,
		Namespace: namespace,
		Subject:   subject,
		Path:      path,
		Message:   message,
	})
}

func (d *decoder) stringField(node *types.RawNode, base []string, key string, namespace string, subject string) string {
	field, ok := node.Get(key)
	if !ok {
		return ""
	}
	value, ok := field.AsString()
	if !ok {
		d.malformed(shared.ExtendPath(base, key), namespace, subject,
			fmt.Sprintf("expected %s to be a string", key))
		return ""
	}
	return value
}

func (d *decoder) boolField(node *types.RawNode, base []string, key string, namespace string, subject string) *bool {
	field, ok := node.Get(key)
	if !ok {
		return nil
	}
	value, ok := field.AsBool()
	if !ok {
		d.malformed(shared.ExtendPath(base, key), namespace, subject,
			fmt.Sprintf("expected %s to be a boolean", key))
		return nil
	}
	return &value
}

func (d *decoder) revisionField(node *types.RawNode, base []string, key string) uint32 {
	field, ok := node.Get(key)
	if !ok {
		return 0
	}
	value, ok := field.AsInt()
	if !ok || value < 0 || value > math.MaxUint32 {
		d.malformed(shared.ExtendPath(base, key), "document", key,
			fmt.Sprintf("expected %s to be a non-negative integer", key))
		return 0
	}
	return uint32(value)
}

// decodeFeatures flattens the stable and unstable feature namespaces
// into one table with a stability tag.  Entries keep document order,
// stable namespace first; cross-namespace name collisions survive so
// the validator can report them.
func (d *decoder) decodeFeatures(spec *types.RawNode, base []string) []types.Feature {
	var features []types.Feature

	stable := d.namespaceMapping(spec, base, "features")
	for _, entry := range stable {
		path := shared.ExtendPath(base, "features", entry.Key)
		if entry.Value == nil || entry.Value.Kind != types.RawMapping {
			d.malformed(path, "features", entry.Key, "expected a feature mapping")
			continue
		}
		feature := types.Feature{
			Name:      entry.Key,
			Stability: types.Stable,
		}
		feature.Doc = d.stringField(entry.Value, path, "doc", "features", entry.Key)
		feature.StablizedRevision = d.stablizedRevision(entry.Value, path, entry.Key)
		if deprecated := d.boolField(entry.Value, path, "deprecated", "features", entry.Key); deprecated != nil {
			feature.Deprecated = *deprecated
		}
		features = append(features, feature)
	}

	unstable := d.namespaceMapping(spec, base, "unstableFeatures")
	for _, entry := range unstable {
		path := shared.ExtendPath(base, "unstableFeatures", entry.Key)
		if entry.Value == nil || entry.Value.Kind != types.RawMapping {
			d.malformed(path, "unstableFeatures", entry.Key, "expected a feature mapping")
			continue
		}
		feature := types.Feature{
			Name:      entry.Key,
			Stability: types.Unstable,
		}
		feature.Doc = d.stringField(entry.Value, path, "doc", "unstableFeatures", entry.Key)
		features = append(features, feature)
	}

	return features
}

func (d *decoder) stablizedRevision(node *types.RawNode, base []string, name string) uint32 {
	field, ok := node.Get("stablizedRevision")
	if !ok {
		d.malformed(shared.ExtendPath(base, "stablizedRevision"), "features", name,
			"stable feature requires stablizedRevision")
		return 0
	}
	value, ok := field.AsInt()
	if !ok || value < 0 || value > math.MaxUint32 {
		d.malformed(shared.ExtendPath(base, "stablizedRevision"), "features", name,
			"expected stablizedRevision to be a non-negative integer")
		return 0
	}
	return uint32(value)
}

func (d *decoder) decodeTypes(spec *types.RawNode, base []string) []types.TypeDecl {
	entries := d.namespaceMapping(spec, base, "types")
	decls := make([]types.TypeDecl, 0, len(entries))
	for _, entry := range entries {
		decls = append(decls, types.TypeDecl{Name: entry.Key, Body: entry.Value})
	}
	return decls
}

func (d *decoder) decodeCalls(spec *types.RawNode, base []string, direction types.CallDirection) []types.Call {
	entries := d.namespaceMapping(spec, base, string(direction))
	var calls []types.Call
	for _, entry := range entries {
		path := shared.ExtendPath(base, string(direction), entry.Key)
		if entry.Value == nil || entry.Value.Kind != types.RawMapping {
			d.malformed(path, string(direction), entry.Key, "expected a call mapping")
			continue
		}
		call := types.Call{
			Name:      entry.Key,
			Direction: direction,
		}
		call.Feature = d.callField(entry.Value, path, string(direction), entry.Key, "feature")
		call.Input = d.callField(entry.Value, path, string(direction), entry.Key, "input")
		call.Output = d.callField(entry.Value, path, string(direction), entry.Key, "output")
		calls = append(calls, call)
	}
	return calls
}

func (d *decoder) callField(node *types.RawNode, base []string, namespace string, subject string, key string) string {
	field, ok := node.Get(key)
	if !ok {
		d.malformed(shared.ExtendPath(base, key), namespace, subject,
			fmt.Sprintf("call requires %s", key))
		return ""
	}
	value, ok := field.AsString()
	if !ok {
		d.malformed(shared.ExtendPath(base, key), namespace, subject,
			fmt.Sprintf("expected %s to be a string", key))
		return ""
	}
	return value
}

// namespaceMapping reads one of the top-level namespace mappings.  A
// missing namespace is an empty one; a namespace of the wrong shape is
// a malformed field.
func (d *decoder) namespaceMapping(spec *types.RawNode, base []string, key string) []types.RawEntry {
	field, ok := spec.Get(key)
	if !ok {
		return nil
	}
	if field.Kind != types.RawMapping {
		d.malformed(shared.ExtendPath(base, key), key, "",
			fmt.Sprintf("expected %s to be a mapping", key))
		return nil
	}
	return field.Entries
}
