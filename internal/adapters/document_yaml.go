package adapters

import (
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"inversion-spec/internal/types"
)

// DecodeYAML parses YAML bytes into the generic raw tree.  The yaml.Node
// representation is used rather than map unmarshalling so mapping keys
// keep their document order.
func DecodeYAML(data []byte) (*types.RawNode, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse document yaml").
			WithCause(err)
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("empty yaml document")
		}
		return convertYAMLNode(root.Content[0])
	}
	return convertYAMLNode(&root)
}

func convertYAMLNode(node *yaml.Node) (*types.RawNode, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return convertYAMLNode(node.Alias)
	case yaml.MappingNode:
		out := &types.RawNode{Kind: types.RawMapping}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("yaml mapping key is not a scalar")
			}
			value, err := convertYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Entries = append(out.Entries, types.RawEntry{Key: key.Value, Value: value})
		}
		return out, nil
	case yaml.SequenceNode:
		out := &types.RawNode{Kind: types.RawSequence}
		for _, item := range node.Content {
			converted, err := convertYAMLNode(item)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, converted)
		}
		return out, nil
	case yaml.ScalarNode:
		return convertYAMLScalar(node)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported yaml node kind")
	}
}

func convertYAMLScalar(node *yaml.Node) (*types.RawNode, error) {
	switch node.Tag {
	case "!!int":
		value, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid yaml integer").
				WithCause(err)
		}
		return types.IntScalar(value), nil
	case "!!bool":
		value, err := strconv.ParseBool(node.Value)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid yaml boolean").
				WithCause(err)
		}
		return types.BoolScalar(value), nil
	case "!!float":
		value, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid yaml float").
				WithCause(err)
		}
		return &types.RawNode{Kind: types.RawScalar, Scalar: types.ScalarFloat, Float: value}, nil
	case "!!null":
		return &types.RawNode{Kind: types.RawScalar, Scalar: types.ScalarNull}, nil
	default:
		return types.StringScalar(node.Value), nil
	}
}
