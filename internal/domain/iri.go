package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// iriForbidden lists characters that are never legal in an IRI, whatever
// the scheme. They are checked explicitly because url.Parse tolerates
// some of them inside path segments.
const iriForbidden = " \t\n\r<>\"{}|\\^`"

// IRI is the identifier value object used as the unique key for every
// ontology entity. It is validated at construction time and immutable
// afterwards; equality and ordering are lexical over the exact string,
// with no normalization.
type IRI struct {
	value string
}

// NewIRI validates the supplied text and wraps it in an IRI.
// The text must parse as an absolute identifier; the returned error
// carries the offending string.
func NewIRI(value string) (IRI, error) {
	if value == "" {
		return IRI{}, &InvalidIRIError{Value: value}
	}
	if strings.ContainsAny(value, iriForbidden) {
		return IRI{}, &InvalidIRIError{Value: value}
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() {
		return IRI{}, &InvalidIRIError{Value: value}
	}
	return IRI{value: value}, nil
}

// MustIRI wraps NewIRI and panics on invalid input. It is intended for
// statically known identifiers, typically in tests.
func MustIRI(value string) IRI {
	iri, err := NewIRI(value)
	if err != nil {
		panic(err)
	}
	return iri
}

// String returns the canonical textual form of the IRI.
func (i IRI) String() string {
	return i.value
}

// IsZero reports whether the IRI is the unvalidated zero value.
func (i IRI) IsZero() bool {
	return i.value == ""
}

// MarshalText implements encoding.TextMarshaler so IRIs serialize as
// their canonical strings.
func (i IRI) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting text
// that does not validate as an IRI.
func (i *IRI) UnmarshalText(text []byte) error {
	parsed, err := NewIRI(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// CompareIRIs orders two IRIs lexically over their canonical strings.
func CompareIRIs(a, b IRI) int {
	return strings.Compare(a.value, b.value)
}

// InvalidIRIError reports text that could not be parsed as an absolute IRI.
type InvalidIRIError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidIRIError) Error() string {
	return fmt.Sprintf("invalid IRI: %q", e.Value)
}
