package elmgen

import "regexp"

var rePlaceholder = regexp.MustCompile(`\{\{([a-z][a-zA-Z0-9]*)\}\}`)

// ScanPlaceholders returns the placeholder names in s in scan order,
// duplicates included.
func ScanPlaceholders(s string) []string {
	return scan(rePlaceholder, s)
}

func scan(re *regexp.Regexp, s string) []string {
	var names []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		names = append(names, m[1])
	}
	return names
}

// HasPlaceholders reports whether s contains at least one placeholder.
func HasPlaceholders(s string) bool {
	return rePlaceholder.MatchString(s)
}

// Params returns the distinct placeholder names of s, in order of first
// occurrence. These become the fields of the leaf's argument record.
func Params(s string) []string {
	names := ScanPlaceholders(s)
	seen := make(map[string]bool, len(names))
	params := names[:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			params = append(params, name)
		}
	}
	return params
}

// Token returns the literal placeholder token for name.
func Token(name string) string {
	return "{{" + name + "}}"
}
