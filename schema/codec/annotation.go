// Package codec carries per-field serialization directives for an external
// encoding framework (JSON, msgpack, and friends).
//
// recordgen itself never serializes anything and never inspects these
// directives: they are rendered verbatim as struct tags on the generated
// record fields so the external framework can consume them independently.
package codec

import (
	"fmt"
	"strings"
)

// DefaultKey is the struct tag key used when an annotation doesn't name one.
const DefaultKey = "json"

// HookKey is the struct tag key carrying custom encode/decode hook names.
const HookKey = "codec"

// Annotation describes how an external serialization framework should treat
// one record field. The zero value means "use the framework defaults".
type Annotation struct {
	// Key is the struct tag key of the target framework, e.g. "json" or
	// "msgpack". Empty means DefaultKey.
	Key string `yaml:"key,omitempty" json:"key,omitempty"`

	// Rename overrides the serialized name of the field.
	Rename string `yaml:"rename,omitempty" json:"rename,omitempty"`

	// Skip excludes the field from serialization entirely.
	Skip bool `yaml:"skip,omitempty" json:"skip,omitempty"`

	// OmitEmpty skips the field when it holds its zero value.
	OmitEmpty bool `yaml:"omitempty,omitempty" json:"omitempty,omitempty"`

	// Encoder and Decoder name custom conversion hooks. They are emitted
	// under the HookKey tag and have no meaning to recordgen.
	Encoder string `yaml:"encoder,omitempty" json:"encoder,omitempty"`
	Decoder string `yaml:"decoder,omitempty" json:"decoder,omitempty"`
}

// IsZero reports if the annotation carries no directives at all.
func (a Annotation) IsZero() bool {
	return a == Annotation{}
}

// Tags returns the struct tags to attach to the field named fieldName,
// keyed by tag key, in the form jennifer expects.
func (a Annotation) Tags(fieldName string) map[string]string {
	tags := make(map[string]string, 2)
	name := fieldName
	if a.Rename != "" {
		name = a.Rename
	}
	switch {
	case a.Skip:
		tags[a.key()] = "-"
	case a.OmitEmpty:
		tags[a.key()] = name + ",omitempty"
	default:
		tags[a.key()] = name
	}
	if hooks := a.hooks(); hooks != "" {
		tags[HookKey] = hooks
	}
	return tags
}

// StructTag returns the full struct tag text for the field named fieldName.
func (a Annotation) StructTag(fieldName string) string {
	tags := a.Tags(fieldName)
	parts := make([]string, 0, len(tags))
	if v, ok := tags[a.key()]; ok {
		parts = append(parts, fmt.Sprintf("%s:%q", a.key(), v))
	}
	if v, ok := tags[HookKey]; ok {
		parts = append(parts, fmt.Sprintf("%s:%q", HookKey, v))
	}
	return strings.Join(parts, " ")
}

func (a Annotation) key() string {
	if a.Key != "" {
		return a.Key
	}
	return DefaultKey
}

func (a Annotation) hooks() string {
	switch {
	case a.Encoder != "" && a.Decoder != "":
		return "encode=" + a.Encoder + ",decode=" + a.Decoder
	case a.Encoder != "":
		return "encode=" + a.Encoder
	case a.Decoder != "":
		return "decode=" + a.Decoder
	}
	return ""
}
