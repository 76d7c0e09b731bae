package elmgen

import (
	"bytes"
	"embed"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

var funcs = map[string]any{
	"quote":  strconv.Quote,
	"token":  Token,
	"record": record,
}

func execute(name string, data any) (string, error) {
	buf := new(bytes.Buffer)
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Field is one row of a generated record type.
type Field struct {
	Key  string
	Type string
}

// TypeDef is a generated `type alias` declaration.
type TypeDef struct {
	Name   string
	Fields []Field
}

// Source renders the declaration.
func (d *TypeDef) Source() (string, error) {
	return execute("type", d)
}

// record formats record fields the way elm-format lays them out.
func record(fields []Field) string {
	if len(fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	for i, f := range fields {
		if i == 0 {
			b.WriteString("{ ")
		} else {
			b.WriteString("\n    , ")
		}
		b.WriteString(f.Key + " : " + f.Type)
	}
	b.WriteString("\n    }")
	return b.String()
}

// EmitType builds the type alias of the group at prefix. root is the name
// of the root type, prefix is empty for the root group.
func EmitType(root string, g *Group, prefix string) (*TypeDef, error) {
	def := &TypeDef{Name: typeName(root, prefix)}
	for _, e := range g.Entries {
		if err := checkEntry(e); err != nil {
			return nil, err
		}
		def.Fields = append(def.Fields, Field{Key: e.Key, Type: fieldType(root, prefix, e)})
	}
	return def, nil
}

func fieldType(root, prefix string, e Entry) string {
	if !e.Value.IsLeaf() {
		return typeName(root, childPrefix(prefix, e.Key))
	}
	params := Params(e.Value.Text)
	if len(params) == 0 {
		return "String"
	}
	args := make([]string, len(params))
	for i, p := range params {
		args[i] = p + " : String"
	}
	return "{ " + strings.Join(args, ", ") + " } -> String"
}

// Substitute is a local helper that fills the placeholders of one
// parameterized leaf.
type Substitute struct {
	Key    string
	Params []string
}

// FieldDecoder pairs a required key with the decoder expression for it.
type FieldDecoder struct {
	Key     string
	Decoder string
}

// DecoderDef is a generated decoder declaration.
type DecoderDef struct {
	Name        string
	Substitutes []Substitute
	Fields      []FieldDecoder
}

// Source renders the declaration.
func (d *DecoderDef) Source() (string, error) {
	return execute("decoder", d)
}

// EmitDecoder builds the decoder of the group at prefix. Fields are required
// in the same order as the fields of the group's type.
func EmitDecoder(root string, g *Group, prefix string) (*DecoderDef, error) {
	def := &DecoderDef{Name: typeName(root, prefix)}
	for _, e := range g.Entries {
		if err := checkEntry(e); err != nil {
			return nil, err
		}
		var decoder string
		switch {
		case !e.Value.IsLeaf():
			decoder = "decode" + typeName(root, childPrefix(prefix, e.Key))
		case HasPlaceholders(e.Value.Text):
			def.Substitutes = append(def.Substitutes, Substitute{Key: e.Key, Params: Params(e.Value.Text)})
			decoder = "(map substitute_" + e.Key + " string)"
		default:
			decoder = "string"
		}
		def.Fields = append(def.Fields, FieldDecoder{Key: e.Key, Decoder: decoder})
	}
	return def, nil
}
