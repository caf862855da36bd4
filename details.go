package addrcheck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Detail is one diagnostic fact about a valid address, e.g. encoding=bech32.
type Detail struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Details is an ordered set of diagnostic facts. It serializes to a JSON/YAML object
// with keys in insertion order.
type Details []Detail

// NewDetails builds details from alternating keys and values.
func NewDetails(keyValues ...string) Details {
	if len(keyValues)%2 != 0 {
		panic(fmt.Sprintf("details require key/value pairs, got %d items", len(keyValues)))
	}
	details := make(Details, 0, len(keyValues)/2)
	for i := 0; i < len(keyValues); i += 2 {
		details = details.With(keyValues[i], keyValues[i+1])
	}
	return details
}

// With returns a copy of details with key set to value. An existing key keeps its position.
func (details Details) With(key string, value string) Details {
	out := make(Details, len(details), len(details)+1)
	copy(out, details)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Detail{Key: key, Value: value})
}

func (details Details) Get(key string) (string, bool) {
	for _, d := range details {
		if d.Key == key {
			return d.Value, true
		}
	}
	return "", false
}

func (details Details) Keys() []string {
	keys := make([]string, len(details))
	for i, d := range details {
		keys[i] = d.Key
	}
	return keys
}

var _ json.Marshaler = Details{}
var _ json.Unmarshaler = &Details{}
var _ yaml.Marshaler = Details{}
var _ yaml.Unmarshaler = &Details{}

func (details Details) MarshalJSON() ([]byte, error) {
	if details == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range details {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(d.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (details *Details) UnmarshalJSON(p []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(p))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if token == nil {
		*details = nil
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("details must be a json object, got %v", token)
	}
	out := Details{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("invalid details key: %v", keyToken)
		}
		var value string
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("invalid value for details key %s: %v", key, err)
		}
		out = out.With(key, value)
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	*details = out
	return nil
}

func (details Details) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, d := range details {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d.Value},
		)
	}
	return node, nil
}

func (details *Details) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("details must be a yaml mapping, line %d", node.Line)
	}
	out := Details{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = out.With(node.Content[i].Value, node.Content[i+1].Value)
	}
	*details = out
	return nil
}
