package types

// Type is the codec contract for a single scalar column type: fixed-width
// encode/decode to and from a byte buffer, a validity predicate, a NULL
// sentinel, and an ordering usable for index keys.
//
// Decode of the buffer matching Encode(NullValue()) returns a nil any,
// representing the absent value. Encode of a nil any encodes NullValue().
type Type interface {
	// Size is the fixed number of bytes Encode produces and Decode expects.
	Size() int

	// Encode serializes v, or NullValue() when v is nil. Fails with
	// ErrInvalidValue if v does not satisfy IsValid.
	Encode(v any) ([]byte, error)

	// Decode deserializes exactly Size() bytes. Fails with ErrInvalidBuffer
	// if len(buf) != Size(). Returns nil for the NULL sentinel encoding.
	Decode(buf []byte) (any, error)

	// IsValid reports whether v (nil meaning absent) can be encoded.
	IsValid(v any) bool

	// NullValue is the sentinel value substituted for a nil v on Encode.
	NullValue() any

	// Indexable reports whether this type may key a B+ tree.
	Indexable() bool

	// Less defines the ordering used for index keys of this type.
	Less(a, b any) bool

	// String names the type, e.g. "Int4" or "Char16".
	String() string
}
