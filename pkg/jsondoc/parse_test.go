package jsondoc

import (
	"testing"

	"github.com/matzehuels/mffmt/pkg/errors"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantText string
	}{
		{"null", `null`, Null, ""},
		{"true", `true`, Bool, "true"},
		{"false", `false`, Bool, "false"},
		{"integer", `42`, Number, "42"},
		{"float keeps trailing zero", `3.0`, Number, "3.0"},
		{"exponent kept verbatim", `1e5`, Number, "1e5"},
		{"negative zero", `-0`, Number, "-0"},
		{"string", `"hello"`, String, "hello"},
		{"escaped string decoded", `"caf\u00e9"`, String, "café"},
		{"literal unicode", `"café"`, String, "café"},
		{"surrounding whitespace", " \n\t7 \n", Number, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if v.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.wantKind)
			}
			if v.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", v.Text(), tt.wantText)
			}
		})
	}
}

func TestParsePreservesMemberOrder(t *testing.T) {
	v, err := Parse([]byte(`{"zeta": 1, "alpha": 2, "mid": {"b": 1, "a": 2}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !v.IsObject() {
		t.Fatalf("Kind() = %v, want object", v.Kind())
	}

	var names []string
	for _, m := range v.Members() {
		names = append(names, m.Name)
	}
	want := []string{"zeta", "alpha", "mid"}
	if len(names) != len(want) {
		t.Fatalf("members = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("member[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	mid, ok := v.Lookup("mid")
	if !ok {
		t.Fatal("Lookup(mid) not found")
	}
	if got := mid.Members()[0].Name; got != "b" {
		t.Errorf("nested first member = %q, want b", got)
	}
}

func TestParseMemberNamesAfterContainers(t *testing.T) {
	v, err := Parse([]byte(`{"a": {"b": [1]}, "c": "x", "d": [{"e": "y"}, []], "f": {}, "g": "z"}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	tests := []struct {
		name string
		kind Kind
		text string
	}{
		{"a", Object, ""},
		{"c", String, "x"},
		{"d", Array, ""},
		{"f", Object, ""},
		{"g", String, "z"},
	}
	members := v.Members()
	if len(members) != len(tests) {
		t.Fatalf("got %d members, want %d", len(members), len(tests))
	}
	for i, tt := range tests {
		m := members[i]
		if m.Name != tt.name || m.Value.Kind() != tt.kind || m.Value.Text() != tt.text {
			t.Errorf("member[%d] = %s (%v %q), want %s (%v %q)", i, m.Name, m.Value.Kind(), m.Value.Text(), tt.name, tt.kind, tt.text)
		}
	}

	a, _ := v.Lookup("a")
	b, ok := a.Lookup("b")
	if !ok || b.Len() != 1 || b.Elements()[0].Text() != "1" {
		t.Errorf("a.b = %+v, want [1]", b)
	}
	d, _ := v.Lookup("d")
	e, ok := d.Elements()[0].Lookup("e")
	if !ok || e.Text() != "y" {
		t.Errorf("d[0].e = %+v, want y", e)
	}
}

func TestParseDuplicateNames(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	first := v.Members()[0]
	if first.Name != "a" || first.Value.Text() != "3" {
		t.Errorf("first member = %s:%s, want a:3", first.Name, first.Value.Text())
	}
}

func TestParseArrays(t *testing.T) {
	v, err := Parse([]byte(`[1, [], {}, [true, null]]`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if v.Kind() != Array || v.Len() != 4 {
		t.Fatalf("got %v of len %d, want array of len 4", v.Kind(), v.Len())
	}
	elems := v.Elements()
	if elems[1].Kind() != Array || elems[1].Len() != 0 {
		t.Error("elems[1] should be an empty array")
	}
	if elems[2].Kind() != Object || elems[2].Len() != 0 {
		t.Error("elems[2] should be an empty object")
	}
	if elems[3].Elements()[1].Kind() != Null {
		t.Error("elems[3][1] should be null")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"whitespace only", "  \n"},
		{"truncated object", `{"a": 1`},
		{"truncated array", `[1, 2`},
		{"trailing comma", `{"a": 1,}`},
		{"bare word", `nope`},
		{"trailing data", `{} {}`},
		{"trailing garbage", `{"a": 1} x`},
		{"single quotes", `{'a': 1}`},
		{"NaN literal", `{"a": NaN}`},
		{"invalid utf8", "\"\xff\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, errors.ErrCodeInvalidJSON) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidJSON)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if Object.String() != "object" {
		t.Errorf("Object.String() = %q", Object.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
}

func TestNewObjectCollapsesDuplicates(t *testing.T) {
	v := NewObject(
		Member{Name: "x", Value: NewNumber("1")},
		Member{Name: "y", Value: NewNull()},
		Member{Name: "x", Value: NewNumber("2")},
	)
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	x, _ := v.Lookup("x")
	if x.Text() != "2" {
		t.Errorf("x = %s, want 2", x.Text())
	}
}
