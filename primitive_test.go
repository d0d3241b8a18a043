package jsonlens_test

import (
	"strings"
	"testing"

	"github.com/reoring/jsonlens"
)

func TestPrimitive_LeafRoundTrip(t *testing.T) {
	leaves := []jsonlens.Value{
		jsonlens.NullValue(),
		jsonlens.BoolValue(true),
		jsonlens.BoolValue(false),
		mustNumber(t, "-10.25"),
		jsonlens.StringValue("hello"),
		jsonlens.StringValue(""),
	}
	o := jsonlens.AsPrimitive(jsonlens.Tree{})
	for _, v := range leaves {
		p, ok := o.Get(v)
		if !ok {
			t.Fatalf("leaf %v must project onto Primitive", v)
		}
		if got := jsonlens.FromPrimitive(p); !jsonlens.Equal(got, v) {
			t.Fatalf("round trip changed %v into %v", v, got)
		}
	}
}

func TestAsPrimitive_ContainersInvisible(t *testing.T) {
	o := jsonlens.AsPrimitive(jsonlens.Text{})
	for _, doc := range []string{`[1,2]`, `{"a":1}`} {
		if _, ok := o.Get(doc); ok {
			t.Fatalf("container %s must read empty", doc)
		}
		out := o.Modify(doc, func(p jsonlens.Primitive) jsonlens.Primitive {
			return jsonlens.NullPrim()
		})
		if out != doc {
			t.Fatalf("container write must be identity: %s -> %s", doc, out)
		}
	}
}

func TestAsString_NarrowsAndWrites(t *testing.T) {
	o := jsonlens.AsString(jsonlens.Text{})
	if s, ok := o.Get(`"abc"`); !ok || s != "abc" {
		t.Fatalf("got %q, %v", s, ok)
	}
	if out := o.Modify(`"abc"`, strings.ToUpper); out != `"ABC"` {
		t.Fatalf("got %s", out)
	}
	// Other leaf tags are a no-op, not an error.
	if out := o.Set(`true`, "x"); out != `true` {
		t.Fatalf("string write onto a bool must be identity, got %s", out)
	}
	if _, ok := o.Get(`42`); ok {
		t.Fatalf("number must not read as string")
	}
}

func TestAsBool_NarrowsAndWrites(t *testing.T) {
	o := jsonlens.AsBool(jsonlens.Text{})
	if b, ok := o.Get(`true`); !ok || !b {
		t.Fatalf("got %v, %v", b, ok)
	}
	if out := o.Modify(`false`, func(b bool) bool { return !b }); out != `true` {
		t.Fatalf("got %s", out)
	}
	if out := o.Set(`"true"`, false); out != `"true"` {
		t.Fatalf("bool write onto a string must be identity, got %s", out)
	}
}

func TestAsNull_UnitTarget(t *testing.T) {
	o := jsonlens.AsNull(jsonlens.Text{})
	if !o.Exists(`null`) {
		t.Fatalf("null must be present to AsNull")
	}
	for _, doc := range []string{`0`, `false`, `""`} {
		if o.Exists(doc) {
			t.Fatalf("%s must not read as null", doc)
		}
	}
	// Writing the unit back keeps the document null.
	if out := o.Set(`null`, struct{}{}); out != `null` {
		t.Fatalf("got %s", out)
	}
}

func TestPrimitive_Observers(t *testing.T) {
	if got := jsonlens.StringPrim("s").Kind(); got != jsonlens.KindString {
		t.Fatalf("kind = %v", got)
	}
	if got := jsonlens.BoolPrim(true); !got.Boolean() {
		t.Fatalf("bool payload lost")
	}
	p := jsonlens.NumberPrim(nil)
	if p.Decimal().Sign() != 0 {
		t.Fatalf("nil decimal must read as zero")
	}
	if jsonlens.NullPrim().Kind() != jsonlens.KindNull {
		t.Fatalf("zero primitive must be null")
	}
}
