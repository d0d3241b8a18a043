package jsonlens_test

import (
	"testing"

	"github.com/cockroachdb/apd/v2"

	"github.com/reoring/jsonlens"
)

func TestKey_ReadPresentAndAbsent(t *testing.T) {
	doc := `{"a":4,"b":7}`
	if v, ok := jsonlens.Key(jsonlens.Text{}, "a").Get(doc); !ok || !jsonlens.Equal(v, mustNumber(t, "4")) {
		t.Fatalf("present key read = %v, %v", v, ok)
	}
	if _, ok := jsonlens.Key(jsonlens.Text{}, "c").Get(doc); ok {
		t.Fatalf("absent key must read empty, not error")
	}
}

func TestKey_NoInsertLaw(t *testing.T) {
	doc := `{"a":4,"b":7}`
	out := jsonlens.Key(jsonlens.Text{}, "c").Set(doc, mustNumber(t, "9"))
	if out != doc {
		t.Fatalf("write to an absent key must never grow the key set, got %s", out)
	}
}

func TestKey_ReplacePreservesOrder(t *testing.T) {
	doc := `{"b":1,"a":2}`
	out := jsonlens.Key(jsonlens.Text{}, "a").Set(doc, mustNumber(t, "20"))
	if out != `{"b":1,"a":20}` {
		t.Fatalf("replace must keep member order, got %s", out)
	}
}

func TestKey_NonObjectHost(t *testing.T) {
	o := jsonlens.Key(jsonlens.Text{}, "a")
	for _, doc := range []string{`[1]`, `"a"`, `null`} {
		if _, ok := o.Get(doc); ok {
			t.Fatalf("key read on %s must be empty", doc)
		}
		if out := o.Set(doc, jsonlens.NullValue()); out != doc {
			t.Fatalf("key write on %s must be identity, got %s", doc, out)
		}
	}
}

func TestNth_BoundsChecked(t *testing.T) {
	doc := `[1,2,3]`
	if v, ok := jsonlens.Nth(jsonlens.Text{}, 0).Get(doc); !ok || !jsonlens.Equal(v, mustNumber(t, "1")) {
		t.Fatalf("nth(0) = %v, %v", v, ok)
	}
	for _, i := range []int{-1, 3, 5} {
		if _, ok := jsonlens.Nth(jsonlens.Text{}, i).Get(doc); ok {
			t.Fatalf("nth(%d) on a 3-element array must read empty", i)
		}
		if out := jsonlens.Nth(jsonlens.Text{}, i).Set(doc, mustNumber(t, "20")); out != doc {
			t.Fatalf("nth(%d) write must be a no-op, got %s", i, out)
		}
	}
}

func TestNth_WriteReplacesExactlyOne(t *testing.T) {
	doc := `[1,2,3]`
	out := jsonlens.Nth(jsonlens.Text{}, 1).Set(doc, mustNumber(t, "20"))
	if out != `[1,20,3]` {
		t.Fatalf("got %s, want [1,20,3]", out)
	}
	// Out-of-bounds write never resizes.
	if out := jsonlens.Nth(jsonlens.Text{}, 5).Set(doc, mustNumber(t, "20")); out != `[1,2,3]` {
		t.Fatalf("got %s, want [1,2,3]", out)
	}
}

func TestEachMember_MultiplyByTen(t *testing.T) {
	tr := jsonlens.ComposeTO(
		jsonlens.EachMember(jsonlens.Text{}),
		jsonlens.AsNumber(jsonlens.Tree{}),
	)
	out := tr.Modify(`{"a":4,"b":7}`, func(d *apd.Decimal) *apd.Decimal {
		d.Exponent++ // exact *10
		return d
	})
	if out != `{"a":40,"b":70}` {
		t.Fatalf("got %s, want {\"a\":40,\"b\":70}", out)
	}
}

func TestEachMember_ReadOrderFollowsDocument(t *testing.T) {
	tr := jsonlens.EachMember(jsonlens.Text{})
	got := tr.Collect(`{"z":1,"a":2}`)
	if len(got) != 2 || !jsonlens.Equal(got[0], mustNumber(t, "1")) || !jsonlens.Equal(got[1], mustNumber(t, "2")) {
		t.Fatalf("member traversal must follow insertion order, got %v", got)
	}
}

func TestEachElem_ModifyAll(t *testing.T) {
	tr := jsonlens.ComposeTO(
		jsonlens.EachElem(jsonlens.Text{}),
		jsonlens.AsBool(jsonlens.Tree{}),
	)
	out := tr.Modify(`[true,false,1]`, func(b bool) bool { return !b })
	if out != `[false,true,1]` {
		t.Fatalf("got %s", out)
	}
}

func TestDeepComposition_MixedHosts(t *testing.T) {
	// Through the encoded form, into the array, to element 2, into the
	// number.
	o := jsonlens.Compose(
		jsonlens.Nth(jsonlens.Bytes{}, 2),
		jsonlens.AsIntegral[int](jsonlens.Tree{}),
	)
	doc := []byte(`[0,1,10.5]`)
	n, ok := o.Get(doc)
	if !ok || n != 10 {
		t.Fatalf("got %d, %v", n, ok)
	}
	out := o.Set(doc, 99)
	if string(out) != `[0,1,99]` {
		t.Fatalf("got %s", out)
	}
	if string(doc) != `[0,1,10.5]` {
		t.Fatalf("input bytes must stay untouched, got %s", doc)
	}
}
