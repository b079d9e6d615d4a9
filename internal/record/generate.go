// Package record holds generated records used by the recordgen test suite.
// The .go files beside records.yaml are committed generator output.
package record

//go:generate go run github.com/syssam/recordgen/cmd/recordgen -schema records.yaml -target . -pkg github.com/syssam/recordgen/internal/record
