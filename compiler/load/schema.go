// Package load bridges user-facing schema definitions and the generator's
// field model. It accepts records defined with the schema/field builders as
// well as YAML schema documents, and normalizes both into the one Schema
// form consumed by compiler/gen.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/syssam/recordgen/schema"
	"github.com/syssam/recordgen/schema/codec"
	"github.com/syssam/recordgen/schema/field"
)

// Schema represents a record schema as loaded from a user definition.
type Schema struct {
	Name    string         `json:"name,omitempty"`
	Options map[string]any `json:"options,omitempty"`
	Fields  []*Field       `json:"fields,omitempty"`
}

// Field represents one record field as loaded from a user definition.
// Slice order in Schema.Fields is declaration order.
type Field struct {
	Name    string            `json:"name,omitempty"`
	Info    *field.TypeInfo   `json:"type,omitempty"`
	Enums   []string          `json:"enums,omitempty"`
	Comment string            `json:"comment,omitempty"`
	Codec   *codec.Annotation `json:"codec,omitempty"`
}

// NewField creates a loaded field from a field descriptor.
// It returns an error if the descriptor contains an error.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("field %q: %w", fd.Name, fd.Err)
	}
	if fd.Name == "" {
		return nil, errors.New("field name cannot be empty")
	}
	if fd.Info == nil || !fd.Info.Valid() {
		return nil, fmt.Errorf("invalid type for field %q", fd.Name)
	}
	return &Field{
		Name:    fd.Name,
		Info:    fd.Info,
		Enums:   fd.Enums,
		Comment: fd.Comment,
		Codec:   fd.Codec,
	}, nil
}

// NewSchema creates a loaded schema from a name, raw options and field
// descriptors. Field order is preserved verbatim.
func NewSchema(name string, options map[string]any, fds ...*field.Descriptor) (*Schema, error) {
	s := &Schema{Name: name, Options: options, Fields: make([]*Field, 0, len(fds))}
	for _, fd := range fds {
		f, err := NewField(fd)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", name, err)
		}
		s.Fields = append(s.Fields, f)
	}
	return s, nil
}

// FromRecord creates a loaded schema from a schema.Record definition.
// The record name is taken from the implementing struct type.
func FromRecord(r schema.Record) (*Schema, error) {
	t := reflect.TypeOf(r)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, errors.New("record must be a named struct type")
	}
	return NewSchema(t.Name(), r.Options(), r.Fields()...)
}

// yamlField is the schema-file form of a field.
type yamlField struct {
	Name    string            `yaml:"name"`
	Type    string            `yaml:"type"`
	Values  []string          `yaml:"values,omitempty"`
	Comment string            `yaml:"comment,omitempty"`
	Codec   *codec.Annotation `yaml:"codec,omitempty"`
}

// yamlSchema is the schema-file form of a record. One YAML document holds
// one record; files may contain multiple documents.
type yamlSchema struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
	Fields  []yamlField    `yaml:"fields,omitempty"`
}

// FromFile loads all record schemas from a YAML schema file.
func FromFile(path string) ([]*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file: %w", err)
	}
	defer f.Close()
	schemas, err := readSchemas(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return schemas, nil
}

// FromBytes loads all record schemas from YAML data.
func FromBytes(data []byte) ([]*Schema, error) {
	return readSchemas(bytes.NewReader(data))
}

func readSchemas(r io.Reader) ([]*Schema, error) {
	var schemas []*Schema
	dec := yaml.NewDecoder(r)
	for {
		var ys yamlSchema
		if err := dec.Decode(&ys); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode schema document: %w", err)
		}
		s, err := ys.schema()
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	if len(schemas) == 0 {
		return nil, errors.New("no schema documents found")
	}
	return schemas, nil
}

func (ys yamlSchema) schema() (*Schema, error) {
	if ys.Name == "" {
		return nil, errors.New("schema document is missing a name")
	}
	s := &Schema{Name: ys.Name, Options: ys.Options, Fields: make([]*Field, 0, len(ys.Fields))}
	for _, yf := range ys.Fields {
		typ, ok := field.ParseType(yf.Type)
		if !ok {
			return nil, fmt.Errorf("schema %q: unknown type %q for field %q", ys.Name, yf.Type, yf.Name)
		}
		if yf.Name == "" {
			return nil, fmt.Errorf("schema %q: field with type %q is missing a name", ys.Name, yf.Type)
		}
		s.Fields = append(s.Fields, &Field{
			Name:    yf.Name,
			Info:    &field.TypeInfo{Type: typ},
			Enums:   yf.Values,
			Comment: yf.Comment,
			Codec:   yf.Codec,
		})
	}
	return s, nil
}
