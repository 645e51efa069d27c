package bencode

import "fmt"

// ErrKind classifies a parse failure.
type ErrKind int

const (
	// ErrUnexpectedByte means the leading byte matches no production.
	ErrUnexpectedByte ErrKind = iota
	// ErrTruncated means the input ended before the value did.
	ErrTruncated
	// ErrMalformedNumber means an integer or length field is non-numeric
	// or does not fit in 64 bits.
	ErrMalformedNumber
	// ErrTooDeep means the value nests deeper than Decoder.MaxDepth.
	ErrTooDeep
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnexpectedByte:
		return "unexpected byte"
	case ErrTruncated:
		return "truncated input"
	case ErrMalformedNumber:
		return "malformed number"
	case ErrTooDeep:
		return "nesting too deep"
	}
	return "unknown error"
}

// ParseError is the failure result of a decode. Offset is the byte position
// in the original input where the failure was detected.
type ParseError struct {
	Kind   ErrKind
	Offset int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("bencode: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("bencode: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}
