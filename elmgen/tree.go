package elmgen

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Value is either a leaf string or a nested group.
type Value struct {
	Text  string
	Group *Group
}

// IsLeaf reports whether v holds a translation string.
func (v Value) IsLeaf() bool { return v.Group == nil }

// Entry is one key of a group.
type Entry struct {
	Key   string
	Value Value
}

// Leaf returns an entry holding a translation string.
func Leaf(key, text string) Entry {
	return Entry{Key: key, Value: Value{Text: text}}
}

// Nested returns an entry holding a nested group.
func Nested(key string, entries ...Entry) Entry {
	return Entry{Key: key, Value: Value{Group: NewGroup(entries...)}}
}

// Group is a mapping of translation keys in input order.
type Group struct {
	Entries []Entry
}

// NewGroup returns a group of entries.
func NewGroup(entries ...Entry) *Group {
	return &Group{Entries: entries}
}

// Get returns the value stored under key.
func (g *Group) Get(key string) (Value, bool) {
	for _, e := range g.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Lookup selects the group at a dot separated path. The empty path selects g.
func (g *Group) Lookup(path string) (*Group, error) {
	if path == "" {
		return g, nil
	}
	cur := g
	for _, key := range strings.Split(path, ".") {
		v, ok := cur.Get(key)
		if !ok || v.IsLeaf() {
			return nil, shapeError(path, "is not an object")
		}
		cur = v.Group
	}
	return cur, nil
}

// DecodeJSON reads a JSON object from r.
func DecodeJSON(r io.Reader) (*Group, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, shapeError("", "translations must be an object, got an empty document")
		}
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, shapeError("", "translations must be an object")
	}
	g := new(Group)
	if err := g.readJSON(dec, ""); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "invalid JSON")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after the top-level object")
	}
	return g, nil
}

func (g *Group) readJSON(dec *json.Decoder, path string) error {
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		at := join(path, key)
		if seen[key] {
			return shapeError(at, "is defined more than once")
		}
		seen[key] = true

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case string:
			g.Entries = append(g.Entries, Leaf(key, v))
		case json.Delim:
			if v != '{' {
				return shapeError(at, "is neither a string nor an object")
			}
			sub := new(Group)
			if err := sub.readJSON(dec, at); err != nil {
				return err
			}
			g.Entries = append(g.Entries, Entry{Key: key, Value: Value{Group: sub}})
		default:
			return shapeError(at, "is neither a string nor an object")
		}
	}
	// closing brace
	_, err := dec.Token()
	return err
}

// ParseJSON is DecodeJSON over a byte slice.
func ParseJSON(data []byte) (*Group, error) {
	return DecodeJSON(bytes.NewReader(data))
}

// DecodeYAML reads one YAML document from r.
func DecodeYAML(r io.Reader) (*Group, error) {
	g := new(Group)
	if err := yaml.NewDecoder(r).Decode(g); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, shapeError("", "translations must be an object, got an empty document")
		}
		return nil, err
	}
	return g, nil
}

// ParseYAML is DecodeYAML over a byte slice.
func ParseYAML(data []byte) (*Group, error) {
	return DecodeYAML(bytes.NewReader(data))
}

// UnmarshalYAML implements yaml.Unmarshaler keeping mapping key order.
func (g *Group) UnmarshalYAML(node *yaml.Node) error {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return shapeError("", "translations must be an object")
	}
	return g.fill(node, "")
}

func (g *Group) fill(node *yaml.Node, path string) error {
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		at := join(path, key)
		if seen[key] {
			return shapeError(at, "is defined more than once")
		}
		seen[key] = true

		child := resolve(node.Content[i+1])
		switch {
		case child.Kind == yaml.MappingNode:
			sub := new(Group)
			if err := sub.fill(child, at); err != nil {
				return err
			}
			g.Entries = append(g.Entries, Entry{Key: key, Value: Value{Group: sub}})
		case child.Kind == yaml.ScalarNode && child.ShortTag() == "!!str":
			g.Entries = append(g.Entries, Leaf(key, child.Value))
		default:
			return shapeError(at, "is neither a string nor an object")
		}
	}
	return nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return resolve(node.Content[0])
	}
	return node
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
