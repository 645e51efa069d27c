// Package bencode decodes the Bencode serialization format used by the
// BitTorrent protocol into an in-memory value tree.
package bencode

import (
	"errors"
	"unicode/utf8"
)

// Bvalue is a decoded Bencode value: a BInt, BString, BList or BDict.
type Bvalue interface{}

type BInt int64
type BString []byte
type BList []Bvalue
type BDict map[string]Bvalue

// ErrInvalidUTF8 is returned by AsString when the underlying bytes are not
// valid UTF-8. Byte strings themselves carry arbitrary bytes; only the text
// view requires validity.
var ErrInvalidUTF8 = errors.New("bencode: byte string is not valid UTF-8")

var errNotByteString = errors.New("bencode: value is not a byte string")

// AsInt returns the integer payload, or false if v is not a BInt.
func AsInt(v Bvalue) (int64, bool) {
	n, ok := v.(BInt)
	return int64(n), ok
}

// AsBytes returns the raw byte payload, or false if v is not a BString.
func AsBytes(v Bvalue) ([]byte, bool) {
	b, ok := v.(BString)
	return []byte(b), ok
}

// AsList returns the list payload, or false if v is not a BList.
func AsList(v Bvalue) (BList, bool) {
	l, ok := v.(BList)
	return l, ok
}

// AsDict returns the dictionary payload, or false if v is not a BDict.
func AsDict(v Bvalue) (BDict, bool) {
	d, ok := v.(BDict)
	return d, ok
}

// AsString returns a BString's bytes as text. It fails if v is not a
// byte string or the bytes are not valid UTF-8; callers that want the raw
// bytes should use AsBytes.
func AsString(v Bvalue) (string, error) {
	b, ok := v.(BString)
	if !ok {
		return "", errNotByteString
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
