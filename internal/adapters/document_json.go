package adapters

import (
	"bytes"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/goccy/go-json"

	"inversion-spec/internal/types"
)

// DecodeJSON parses JSON bytes into the generic raw tree.  The token
// stream of go-json is used instead of unmarshalling into maps because
// Go maps discard key order, and the engine contract requires mapping
// entries in document insertion order.
func DecodeJSON(data []byte) (*types.RawNode, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeJSONValue(dec)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse document json").
			WithCause(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("trailing data after document json")
	}
	return node, nil
}

func decodeJSONValue(dec *json.Decoder) (*types.RawNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*types.RawNode, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeJSONMapping(dec)
		case '[':
			return decodeJSONSequence(dec)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unexpected json delimiter")
	case string:
		return types.StringScalar(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return types.IntScalar(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return &types.RawNode{Kind: types.RawScalar, Scalar: types.ScalarFloat, Float: f}, nil
	case bool:
		return types.BoolScalar(v), nil
	case nil:
		return &types.RawNode{Kind: types.RawScalar, Scalar: types.ScalarNull}, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unexpected json token")
	}
}

func decodeJSONMapping(dec *json.Decoder) (*types.RawNode, error) {
	node := &types.RawNode{Kind: types.RawMapping}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("json object key is not a string")
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		node.Entries = append(node.Entries, types.RawEntry{Key: key, Value: value})
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func decodeJSONSequence(dec *json.Decoder) (*types.RawNode, error) {
	node := &types.RawNode{Kind: types.RawSequence}
	for dec.More() {
		item, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}
