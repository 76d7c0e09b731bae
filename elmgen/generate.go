// Package elmgen generates an Elm module from a tree of translation strings.
//
// The module exposes a record type alias describing every key and a decoder
// that turns a JSON value with the same shape into that record. Strings with
// {{placeholder}} tokens become functions taking a record of arguments.
package elmgen

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultMaxDepth is the deepest group nesting Generate accepts unless
// WithMaxDepth says otherwise.
const DefaultMaxDepth = 64

type options struct {
	logger   *zap.Logger
	maxDepth int
}

// Option configures Build and Generate.
type Option func(*options)

// WithLogger sets the logger receiving one debug entry per emitted group.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxDepth bounds how deeply groups may nest below the root.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Definition is the type and decoder generated for one group.
type Definition struct {
	Prefix  string
	Type    *TypeDef
	Decoder *DecoderDef
}

// Module is the complete generated module before rendering.
type Module struct {
	Name        string
	Root        string
	Definitions []Definition // nested groups first, root last
}

// Source renders the module as Elm source text.
func (m *Module) Source() (string, error) {
	s, err := execute("module.tmpl", m)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Generate renders the Elm module named module for the translations in g.
// Nothing is returned unless every name in the tree is valid.
func Generate(g *Group, module string, opts ...Option) (string, error) {
	m, err := Build(g, module, opts...)
	if err != nil {
		return "", err
	}
	return m.Source()
}

type frame struct {
	group    *Group
	prefix   string
	depth    int
	expanded bool
}

// Build validates module and g, and collects one Definition per group in
// post-order: every group comes after the groups nested in it.
func Build(g *Group, module string, opts ...Option) (*Module, error) {
	o := options{logger: zap.NewNop(), maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ValidateModule(module); err != nil {
		return nil, err
	}
	if g == nil {
		g = new(Group)
	}
	m := &Module{Name: module, Root: RootName(module)}

	stack := []frame{{group: g}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			def, err := define(m.Root, f.group, f.prefix)
			if err != nil {
				return nil, err
			}
			o.logger.Debug("emitted group",
				zap.String("group", def.Type.Name),
				zap.Int("fields", len(def.Type.Fields)),
				zap.Int("depth", f.depth),
			)
			m.Definitions = append(m.Definitions, def)
			continue
		}

		if f.depth > o.maxDepth {
			return nil, errors.Wrapf(ErrTooDeep, "group %s is %d levels deep, limit is %d",
				typeName(m.Root, f.prefix), f.depth, o.maxDepth)
		}
		for _, e := range f.group.Entries {
			if err := checkEntry(e); err != nil {
				return nil, err
			}
		}
		f.expanded = true
		stack = append(stack, f)
		// pushed in reverse so the first key is emitted first
		for i := len(f.group.Entries) - 1; i >= 0; i-- {
			e := f.group.Entries[i]
			if e.Value.IsLeaf() {
				continue
			}
			stack = append(stack, frame{
				group:  e.Value.Group,
				prefix: childPrefix(f.prefix, e.Key),
				depth:  f.depth + 1,
			})
		}
	}
	return m, nil
}

func define(root string, g *Group, prefix string) (Definition, error) {
	t, err := EmitType(root, g, prefix)
	if err != nil {
		return Definition{}, err
	}
	d, err := EmitDecoder(root, g, prefix)
	if err != nil {
		return Definition{}, err
	}
	return Definition{Prefix: prefix, Type: t, Decoder: d}, nil
}
