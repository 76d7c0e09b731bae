package elmgen

import (
	"regexp"
	"strings"
)

var (
	reModuleName = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	reKey        = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
)

// IsValidModuleName reports whether s is an upper camel case identifier.
func IsValidModuleName(s string) bool {
	return reModuleName.MatchString(s)
}

// IsValidKey reports whether s is a lower camel case identifier.
func IsValidKey(s string) bool {
	return reKey.MatchString(s)
}

// reserved holds the Elm keywords; none of them can name a record field.
var reserved = map[string]bool{
	"if": true, "then": true, "else": true, "case": true, "of": true,
	"let": true, "in": true, "type": true, "alias": true, "module": true,
	"where": true, "import": true, "exposing": true, "as": true,
	"port": true, "infix": true, "effect": true,
}

// IsReserved reports whether s is an Elm keyword.
func IsReserved(s string) bool {
	return reserved[s]
}

// importedTypes are the names the generated module imports unqualified.
// The root type may not shadow them.
var importedTypes = map[string]bool{
	"Decoder": true, "Error": true, "Value": true,
	"String": true, "Result": true,
}

// ValidateModule checks a possibly dotted module name. Every segment must be
// a valid module name, and the last one, which names the root type, must
// not clash with a type the module uses.
func ValidateModule(module string) error {
	for _, seg := range strings.Split(module, ".") {
		if !IsValidModuleName(seg) {
			return moduleNameError(module)
		}
	}
	if importedTypes[RootName(module)] {
		return shadowError(module)
	}
	return nil
}

// checkEntry validates the key of e and, for a leaf, its placeholder names.
func checkEntry(e Entry) error {
	if !IsValidKey(e.Key) {
		return keyError(e.Key)
	}
	if IsReserved(e.Key) {
		return reservedError("Key", e.Key)
	}
	if e.Value.IsLeaf() {
		for _, p := range ScanPlaceholders(e.Value.Text) {
			if IsReserved(p) {
				return reservedError("Placeholder", p)
			}
		}
	}
	return nil
}

// RootName returns the name of the generated root type, the last segment of
// the module name.
func RootName(module string) string {
	if i := strings.LastIndexByte(module, '.'); i >= 0 {
		return module[i+1:]
	}
	return module
}

// ModulePath returns the slash separated path of the module's source file
// relative to a source directory, e.g. "I18n/Translations.elm".
func ModulePath(module string) string {
	return strings.ReplaceAll(module, ".", "/") + ".elm"
}

func typeName(root, prefix string) string {
	if prefix == "" {
		return root
	}
	return root + "_" + prefix
}

func childPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "_" + key
}
