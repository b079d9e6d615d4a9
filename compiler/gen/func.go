package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules      = ruleset()
	acronyms   = make(map[string]struct{})
	titleCaser = cases.Title(language.English)
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "CPU", "DNS", "EOF", "GUID", "HTML", "HTTP",
		"HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC",
		"SLA", "SMTP", "SQL", "SSH", "TCP", "TLS", "TTL", "UDP", "UI",
		"UID", "UUID", "URI", "URL", "UTF8", "VM", "XML",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// pascal converts the given name into a PascalCase identifier.
func pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		if upper := strings.ToUpper(w); isAcronym(upper) {
			words[i] = upper
			continue
		}
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, "")
}

// camel converts the given name into a camelCase identifier.
func camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return s
	}
	words[0] = strings.ToLower(words[0])
	for i := 1; i < len(words); i++ {
		if upper := strings.ToUpper(words[i]); isAcronym(upper) {
			words[i] = upper
			continue
		}
		words[i] = titleCaser.String(words[i])
	}
	return strings.Join(words, "")
}

// snake converts the given identifier into a snake_case name.
func snake(s string) string {
	return rules.Underscore(s)
}

// receiver returns the short receiver name for the given record name.
func receiver(s string) string {
	parts := strings.Split(snake(s), "_")
	name := make([]byte, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			name = append(name, p[0])
		}
	}
	r := string(name)
	if r == "" || token.Lookup(r).IsKeyword() {
		r = "_" + r
	}
	return r
}

// privateField returns an unexported, keyword-safe identifier for the given
// field name. It is used for frozen struct members and constructor
// parameters.
func privateField(name string) string {
	s := camel(name)
	if s == "" || token.Lookup(s).IsKeyword() || !token.IsIdentifier(s) {
		return "_" + s
	}
	return s
}

func isAcronym(w string) bool {
	_, ok := acronyms[w]
	return ok
}
