package bencode

import (
	"fmt"
	"strconv"
	"unicode"
)

// Decoder reads consecutive Bencode values out of a byte buffer. The zero
// position is the start of the buffer; Pos reports how far decoding has
// advanced, so the remainder of a partially consumed buffer is data[Pos():].
type Decoder struct {
	data []byte
	pos  int

	// MaxDepth bounds list/dictionary nesting; zero means unlimited.
	// Callers decoding untrusted input should set it to bound stack usage.
	MaxDepth int
	depth    int
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

func (d *Decoder) Pos() int {
	return d.pos
}

// Decode parses a single value from data and returns it together with the
// unconsumed remainder of the input. Trailing bytes are not an error;
// callers requiring full consumption must check the remainder is empty.
// On failure the returned error is a *ParseError and no value escapes.
func Decode(data []byte) (Bvalue, []byte, error) {
	d := NewDecoder(data)
	val, err := d.Decode()
	if err != nil {
		return nil, nil, err
	}
	return val, data[d.pos:], nil
}

// Decode parses the next value at the cursor. The leading byte selects the
// production: 'i' an integer, 'l' a list, 'd' a dictionary, a digit a byte
// string. After a failure the cursor position is unspecified.
func (d *Decoder) Decode() (Bvalue, error) {

	if d.pos >= len(d.data) {
		return nil, d.truncated("expected a value")
	}

	b := d.data[d.pos]

	switch {
	case b == 'i':
		return d.decodeInt()
	case b == 'l':
		return d.decodeList()
	case b == 'd':
		return d.decodeDict()
	case unicode.IsDigit(rune(b)):
		return d.decodeString()
	default:
		return nil, &ParseError{
			Kind:   ErrUnexpectedByte,
			Offset: d.pos,
			Detail: fmt.Sprintf("%q matches no production", b),
		}
	}
}

// DecodeSpan parses the next value and also returns the exact bytes it
// occupied in the input. The span is a view into the original buffer, so
// for instance hashing it reproduces the value's original encoding.
func (d *Decoder) DecodeSpan() (Bvalue, []byte, error) {
	start := d.pos

	val, err := d.Decode()
	if err != nil {
		return nil, nil, err
	}

	return val, d.data[start:d.pos], nil
}

func (d *Decoder) decodeInt() (Bvalue, error) {

	d.pos++

	start := d.pos
	if d.pos < len(d.data) && d.data[d.pos] == '-' {
		d.pos++
	}

	digits := 0
	for d.pos < len(d.data) && d.data[d.pos] != 'e' {
		if !unicode.IsDigit(rune(d.data[d.pos])) {
			return nil, &ParseError{Kind: ErrMalformedNumber, Offset: d.pos, Detail: "non-digit in integer"}
		}
		d.pos++
		digits++
	}

	if d.pos >= len(d.data) {
		return nil, d.truncated("unterminated integer")
	}
	if digits == 0 {
		return nil, &ParseError{Kind: ErrMalformedNumber, Offset: start, Detail: "empty digit run"}
	}

	n, err := strconv.ParseInt(string(d.data[start:d.pos]), 10, 64)
	if err != nil {
		return nil, &ParseError{Kind: ErrMalformedNumber, Offset: start, Detail: err.Error()}
	}

	d.pos++
	return BInt(n), nil
}

func (d *Decoder) decodeString() (Bvalue, error) {

	start := d.pos
	for d.pos < len(d.data) && d.data[d.pos] != ':' {
		if !unicode.IsDigit(rune(d.data[d.pos])) {
			return nil, &ParseError{Kind: ErrMalformedNumber, Offset: d.pos, Detail: "non-digit in length prefix"}
		}
		d.pos++
	}

	if d.pos >= len(d.data) {
		return nil, d.truncated("length prefix without ':'")
	}

	length, err := strconv.Atoi(string(d.data[start:d.pos]))
	if err != nil {
		return nil, &ParseError{Kind: ErrMalformedNumber, Offset: start, Detail: err.Error()}
	}

	d.pos++

	if length > len(d.data)-d.pos {
		return nil, &ParseError{
			Kind:   ErrTruncated,
			Offset: d.pos,
			Detail: fmt.Sprintf("declared length %d exceeds %d available bytes", length, len(d.data)-d.pos),
		}
	}

	str := d.data[d.pos : d.pos+length]
	d.pos += length

	return BString(str), nil
}

func (d *Decoder) decodeList() (Bvalue, error) {

	if err := d.push(); err != nil {
		return nil, err
	}
	defer d.pop()

	d.pos++

	list := BList{}
	for {
		if d.pos >= len(d.data) {
			return nil, d.truncated("unterminated list")
		}
		if d.data[d.pos] == 'e' {
			break
		}

		val, err := d.Decode()
		if err != nil {
			return nil, err
		}
		list = append(list, val)
	}

	d.pos++
	return list, nil
}

func (d *Decoder) decodeDict() (Bvalue, error) {

	if err := d.push(); err != nil {
		return nil, err
	}
	defer d.pop()

	d.pos++

	dict := make(BDict)
	for {
		if d.pos >= len(d.data) {
			return nil, d.truncated("unterminated dictionary")
		}
		if d.data[d.pos] == 'e' {
			break
		}
		if !unicode.IsDigit(rune(d.data[d.pos])) {
			return nil, &ParseError{Kind: ErrUnexpectedByte, Offset: d.pos, Detail: "dictionary key must be a byte string"}
		}

		keyVal, err := d.decodeString()
		if err != nil {
			return nil, err
		}
		key := string(keyVal.(BString))

		val, err := d.Decode()
		if err != nil {
			return nil, err
		}

		// A duplicate key overwrites the earlier entry.
		dict[key] = val
	}

	d.pos++
	return dict, nil
}

func (d *Decoder) push() error {
	d.depth++
	if d.MaxDepth > 0 && d.depth > d.MaxDepth {
		return &ParseError{
			Kind:   ErrTooDeep,
			Offset: d.pos,
			Detail: fmt.Sprintf("nesting exceeds %d levels", d.MaxDepth),
		}
	}
	return nil
}

func (d *Decoder) pop() {
	d.depth--
}

func (d *Decoder) truncated(detail string) error {
	return &ParseError{Kind: ErrTruncated, Offset: d.pos, Detail: detail}
}
