package jsonlens_test

import (
	"testing"

	"github.com/reoring/jsonlens"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestEncoded_ReadTypedValue(t *testing.T) {
	o := jsonlens.Encoded[point](jsonlens.Bytes{})
	p, ok := o.Get([]byte(`{"x":1,"y":2}`))
	if !ok || p != (point{X: 1, Y: 2}) {
		t.Fatalf("got %+v, %v", p, ok)
	}
}

func TestEncoded_WriteReplacesWholeHost(t *testing.T) {
	o := jsonlens.Encoded[point](jsonlens.Bytes{})
	out := o.Modify([]byte(`{"x":1,"y":2}`), func(p point) point {
		p.X *= 10
		return p
	})
	if string(out) != `{"x":10,"y":2}` {
		t.Fatalf("got %s", out)
	}
}

func TestEncoded_ParseFailureIsMiss(t *testing.T) {
	o := jsonlens.Encoded[point](jsonlens.Bytes{})
	if _, ok := o.Get([]byte(`{"x":`)); ok {
		t.Fatalf("malformed host must read empty")
	}
	out := o.Set([]byte(`{"x":`), point{X: 1})
	if string(out) != `{"x":` {
		t.Fatalf("write over a defective host must be identity, got %s", out)
	}
}

func TestEncoded_DecodeFailureIsMiss(t *testing.T) {
	o := jsonlens.Encoded[point](jsonlens.Bytes{})
	doc := []byte(`{"x":"not a number"}`)
	if _, ok := o.Get(doc); ok {
		t.Fatalf("shape mismatch must read empty, not error")
	}
	if out := o.Set(doc, point{X: 1}); string(out) != string(doc) {
		t.Fatalf("write over an undecodable host must be identity, got %s", out)
	}
}

func TestEncoded_TreeHost(t *testing.T) {
	// For a tree host the parse step is the identity; the typed decode
	// runs directly against the already-parsed value.
	o := jsonlens.Encoded[point](jsonlens.Tree{})
	v, _ := jsonlens.Bytes{}.Decode([]byte(`{"x":3,"y":4}`))
	p, ok := o.Get(v)
	if !ok || p != (point{X: 3, Y: 4}) {
		t.Fatalf("got %+v, %v", p, ok)
	}
	nv := o.Set(v, point{X: 5, Y: 6})
	want, _ := jsonlens.Bytes{}.Decode([]byte(`{"x":5,"y":6}`))
	if !jsonlens.Equal(nv, want) {
		t.Fatalf("got %v, want %v", nv, want)
	}
}

func TestEncoded_MapTarget(t *testing.T) {
	o := jsonlens.Encoded[map[string]int](jsonlens.Text{})
	m, ok := o.Get(`{"a":4,"b":7}`)
	if !ok || m["a"] != 4 || m["b"] != 7 {
		t.Fatalf("got %v, %v", m, ok)
	}
}

func TestEncoded_ComposesWithIndexing(t *testing.T) {
	// Decode a typed struct out of one array slot.
	o := jsonlens.Compose(
		jsonlens.Nth(jsonlens.Text{}, 1),
		jsonlens.Encoded[point](jsonlens.Tree{}),
	)
	doc := `[null,{"x":1,"y":2},null]`
	p, ok := o.Get(doc)
	if !ok || p != (point{X: 1, Y: 2}) {
		t.Fatalf("got %+v, %v", p, ok)
	}
	out := o.Set(doc, point{X: 9, Y: 9})
	if out != `[null,{"x":9,"y":9},null]` {
		t.Fatalf("got %s", out)
	}
}
