package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure cases detected before emission. Every
// failure is deterministic and fatal to its invocation: nothing is written
// when any of these is returned.
var (
	// ErrUnknownOption indicates an unrecognized option name.
	ErrUnknownOption = errors.New("recordgen: unknown option")
	// ErrInvalidOptionValue indicates an option with a wrongly-typed value.
	ErrInvalidOptionValue = errors.New("recordgen: invalid option value")
	// ErrDuplicateFieldName indicates two fields sharing one name.
	ErrDuplicateFieldName = errors.New("recordgen: duplicate field name")
	// ErrOrderRequiresEq indicates order=true without eq=true.
	ErrOrderRequiresEq = errors.New("recordgen: order requires eq")
	// ErrHashRequiresEq indicates unsafe_hash=true without eq=true.
	ErrHashRequiresEq = errors.New("recordgen: unsafe_hash requires eq")
	// ErrInvalidSchema indicates a record or field definition error.
	ErrInvalidSchema = errors.New("recordgen: invalid schema")
	// ErrMissingConfig indicates a generator configuration error.
	ErrMissingConfig = errors.New("recordgen: missing configuration")
)

// UnknownOptionError is returned when the raw configuration names an option
// the resolver does not recognize.
type UnknownOptionError struct {
	Option string
}

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("recordgen: unknown option %q", e.Option)
}

// Is reports whether the target matches the sentinel error for UnknownOptionError.
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// NewUnknownOptionError creates a new UnknownOptionError.
func NewUnknownOptionError(option string) *UnknownOptionError {
	return &UnknownOptionError{Option: option}
}

// InvalidOptionValueError is returned when a recognized option carries a
// value of the wrong type (e.g. a string where a boolean is expected).
type InvalidOptionValueError struct {
	Option string
	Value  any
}

// Error implements the error interface.
func (e *InvalidOptionValueError) Error() string {
	return fmt.Sprintf("recordgen: invalid value %v (%T) for option %q: expected bool", e.Value, e.Value, e.Option)
}

// Is reports whether the target matches the sentinel error for InvalidOptionValueError.
func (e *InvalidOptionValueError) Is(target error) bool {
	return target == ErrInvalidOptionValue
}

// NewInvalidOptionValueError creates a new InvalidOptionValueError.
func NewInvalidOptionValueError(option string, value any) *InvalidOptionValueError {
	return &InvalidOptionValueError{Option: option, Value: value}
}

// DuplicateFieldNameError is returned when two fields of one record share a
// name.
type DuplicateFieldNameError struct {
	Type  string // record name
	Field string // duplicated field name
}

// Error implements the error interface.
func (e *DuplicateFieldNameError) Error() string {
	return fmt.Sprintf("recordgen: duplicate field name %q on record %s", e.Field, e.Type)
}

// Is reports whether the target matches the sentinel error for DuplicateFieldNameError.
func (e *DuplicateFieldNameError) Is(target error) bool {
	return target == ErrDuplicateFieldName
}

// NewDuplicateFieldNameError creates a new DuplicateFieldNameError.
func NewDuplicateFieldNameError(typeName, fieldName string) *DuplicateFieldNameError {
	return &DuplicateFieldNameError{Type: typeName, Field: fieldName}
}

// OrderRequiresEqError is returned when a record enables ordering without
// equality. Ordering without a defined equality is inconsistent, and the
// resolver never enables eq silently.
type OrderRequiresEqError struct {
	Type string
}

// Error implements the error interface.
func (e *OrderRequiresEqError) Error() string {
	return fmt.Sprintf("recordgen: record %s sets order=true with eq=false", e.Type)
}

// Is reports whether the target matches the sentinel error for OrderRequiresEqError.
func (e *OrderRequiresEqError) Is(target error) bool {
	return target == ErrOrderRequiresEq
}

// NewOrderRequiresEqError creates a new OrderRequiresEqError.
func NewOrderRequiresEqError(typeName string) *OrderRequiresEqError {
	return &OrderRequiresEqError{Type: typeName}
}

// HashRequiresEqError is returned when a record enables hashing without
// equality. Equal values must hash equally; that contract cannot be upheld
// without a defined equality.
type HashRequiresEqError struct {
	Type string
}

// Error implements the error interface.
func (e *HashRequiresEqError) Error() string {
	return fmt.Sprintf("recordgen: record %s sets unsafe_hash=true with eq=false", e.Type)
}

// Is reports whether the target matches the sentinel error for HashRequiresEqError.
func (e *HashRequiresEqError) Is(target error) bool {
	return target == ErrHashRequiresEq
}

// NewHashRequiresEqError creates a new HashRequiresEqError.
func NewHashRequiresEqError(typeName string) *HashRequiresEqError {
	return &HashRequiresEqError{Type: typeName}
}

// SchemaError represents a record or field definition error.
type SchemaError struct {
	Type    string // record name
	Field   string // field name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("recordgen: schema error")
	if e.Type != "" {
		b.WriteString(" on record ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a generator configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("recordgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("recordgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsUnknownOptionError reports whether the error is an UnknownOptionError.
func IsUnknownOptionError(err error) bool {
	var optErr *UnknownOptionError
	return errors.As(err, &optErr)
}

// IsInvalidOptionValueError reports whether the error is an InvalidOptionValueError.
func IsInvalidOptionValueError(err error) bool {
	var valErr *InvalidOptionValueError
	return errors.As(err, &valErr)
}

// IsDuplicateFieldNameError reports whether the error is a DuplicateFieldNameError.
func IsDuplicateFieldNameError(err error) bool {
	var dupErr *DuplicateFieldNameError
	return errors.As(err, &dupErr)
}

// IsOrderRequiresEqError reports whether the error is an OrderRequiresEqError.
func IsOrderRequiresEqError(err error) bool {
	var ordErr *OrderRequiresEqError
	return errors.As(err, &ordErr)
}

// IsHashRequiresEqError reports whether the error is a HashRequiresEqError.
func IsHashRequiresEqError(err error) bool {
	var hashErr *HashRequiresEqError
	return errors.As(err, &hashErr)
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
