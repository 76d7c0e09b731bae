package elmgen

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrTooDeep is returned when the input nests groups deeper than the
// configured maximum depth.
var ErrTooDeep = errors.New("translations nested too deep")

// Class names a lexical class an identifier must belong to.
type Class string

const (
	UpperCamel Class = "upper camel case"
	LowerCamel Class = "lower camel case"
	NonKeyword Class = "non-keyword name"
	NonImport  Class = "root type name other than Decoder, Error, Value, String or Result"
)

// NamingError reports a module name or key outside its lexical class.
type NamingError struct {
	Kind  string // "Module name", "Key" or "Placeholder"
	Name  string
	Class Class
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("%s invalid: %s (%s required)", e.Kind, e.Name, e.Class)
}

func moduleNameError(name string) error {
	return errors.WithHint(
		errors.WithStack(&NamingError{Kind: "Module name", Name: name, Class: UpperCamel}),
		"module names look like Translations or I18n.Translations",
	)
}

func keyError(name string) error {
	return errors.WithHint(
		errors.WithStack(&NamingError{Kind: "Key", Name: name, Class: LowerCamel}),
		"keys must start with a lowercase letter and contain only letters and digits",
	)
}

func reservedError(kind, name string) error {
	return errors.WithHintf(
		errors.WithStack(&NamingError{Kind: kind, Name: name, Class: NonKeyword}),
		"%s is an Elm keyword and cannot be a record field, rename it", name,
	)
}

func shadowError(module string) error {
	return errors.WithHintf(
		errors.WithStack(&NamingError{Kind: "Module name", Name: module, Class: NonImport}),
		"the root type is named after the last module segment and %s would shadow the type of the same name the module uses",
		RootName(module),
	)
}

// ShapeError reports an input value that is neither a string nor a mapping,
// or a root path that does not select a mapping.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("value of key '%s' %s", e.Path, e.Reason)
}

func shapeError(path, reason string) error {
	return errors.WithStack(&ShapeError{Path: path, Reason: reason})
}
