package jsonlens

// Rep describes how a host representation H materializes the JSON value
// tree. Decode is total: malformed input reports ok=false rather than an
// error. Encode always succeeds for any well-formed Value and fully
// replaces the host's previous content.
//
// Every generic accessor in this package is defined over Rep, so a new
// host type joins the whole accessor surface by implementing these two
// methods; there is no registry.
type Rep[H any] interface {
	Decode(h H) (Value, bool)
	Encode(v Value) H
}

// Tree is the identity representation: the host already is the value tree.
type Tree struct{}

func (Tree) Decode(v Value) (Value, bool) { return v, true }
func (Tree) Encode(v Value) Value         { return v }

// Bytes hosts a JSON document as a UTF-8 byte slice.
type Bytes struct{}

func (Bytes) Decode(b []byte) (Value, bool) { return parseValue(b) }
func (Bytes) Encode(v Value) []byte         { return appendValue(nil, v) }

// Text hosts a JSON document as a string.
type Text struct{}

func (Text) Decode(s string) (Value, bool) { return parseValue([]byte(s)) }
func (Text) Encode(v Value) string         { return string(appendValue(nil, v)) }
