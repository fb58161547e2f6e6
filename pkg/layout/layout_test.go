package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/mffmt/pkg/errors"
	"github.com/matzehuels/mffmt/pkg/jsondoc"
)

func TestFormatGolden(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "graph",
			input: `{"version": 2, "nodes": [{"id": 1, "x": 2.5}, {"id": 2, "x": 3.0}], "links": []}`,
			want: `{
    "version": 2,
    "nodes": [
        { "id": 1, "x": 2.5 },
        { "id": 2, "x": 3.0 }
    ],
    "links": [
    ]
}
`,
		},
		{
			name:  "mixed elements and fallthrough",
			input: `{"nodes": [1, [2, 3], "x", {}, null], "links": {"not": "array"}, "meta": {"name": "café", "tags": ["a", "b"], "empty": {}, "list": [], "deep": {"nodes": [{"id": 1}]}}}`,
			want: `{
    "nodes": [
        1,
        [2, 3],
        "x",
        {  },
        null
    ],
    "links": {
        "not": "array"
    },
    "meta": {
        "name": "café",
        "tags": [
            "a",
            "b"
        ],
        "empty": {},
        "list": [],
        "deep": {
            "nodes": [
                {
                    "id": 1
                }
            ]
        }
    }
}
`,
		},
		{
			name:  "app manifest",
			input: `{"runtime": {"entry": "main.json", "threads": 4}, "window": {"title": "Demo <1> & \"two\"", "size": [800, 600], "vsync": true}, "pipeline": {"kernels": [{"id": "k0", "entry": "k0.json", "bindings": [{"port": "out", "resource": "buf"}]}]}}`,
			want: `{
    "runtime": {
        "entry": "main.json",
        "threads": 4
    },
    "window": {
        "title": "Demo <1> & \"two\"",
        "size": [
            800,
            600
        ],
        "vsync": true
    },
    "pipeline": {
        "kernels": [
            {
                "id": "k0",
                "entry": "k0.json",
                "bindings": [
                    {
                        "port": "out",
                        "resource": "buf"
                    }
                ]
            }
        ]
    }
}
`,
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  "{\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format([]byte(tt.input))
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Format() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFormatNodesBlock(t *testing.T) {
	got, err := Format([]byte(`{"nodes": [{"id": 1, "x": 2.5}, {"id": 2, "x": 3.0}], "version": 2}`))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	want := "    \"nodes\": [\n" +
		"        { \"id\": 1, \"x\": 2.5 },\n" +
		"        { \"id\": 2, \"x\": 3.0 }\n" +
		"    ],\n"
	if !strings.Contains(string(got), want) {
		t.Errorf("output missing nodes block:\n%s", got)
	}
	if !strings.Contains(string(got), "    \"version\": 2\n") {
		t.Errorf("last member should have no trailing comma:\n%s", got)
	}
}

func TestFormatEmptyLinks(t *testing.T) {
	got, err := Format([]byte(`{"links": []}`))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(string(got), "    \"links\": [\n    ]") {
		t.Errorf("empty links rendered as:\n%s", got)
	}
}

func TestFormatUnicodeLiteral(t *testing.T) {
	got, err := Format([]byte(`{"name": "caf\u00e9", "nodes": [{"label": "π ≈ 3.14"}]}`))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(string(got), `"name": "café"`) {
		t.Errorf("unicode escaped in generic branch:\n%s", got)
	}
	if !strings.Contains(string(got), `{ "label": "π ≈ 3.14" }`) {
		t.Errorf("unicode escaped in element branch:\n%s", got)
	}
	if bytes.Contains(got, []byte(`\u`)) {
		t.Errorf("output contains \\u escapes:\n%s", got)
	}
}

func TestFormatEscapes(t *testing.T) {
	got, err := Format([]byte(`{"s": "a\"b\\c\nd\te"}`))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	want := "{\n    \"s\": \"a\\\"b\\\\c\\nd\\te\"\n}\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatKeepsNumberLiterals(t *testing.T) {
	got, err := Format([]byte(`{"a": 1e5, "b": -0.50, "nodes": [{"w": 10E-2}]}`))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	for _, lit := range []string{`"a": 1e5`, `"b": -0.50`, `{ "w": 10E-2 }`} {
		if !strings.Contains(string(got), lit) {
			t.Errorf("output missing %s:\n%s", lit, got)
		}
	}
}

func TestFormatFloatLiteralsGolden(t *testing.T) {
	input := `{"scale": 1e5, "offset": -0.0, "nodes": [{"id": 1, "w": 2.50}], "meta": {"eps": 1E-7, "list": [1.0, 0.1]}}`
	want := `{
    "scale": 1e5,
    "offset": -0.0,
    "nodes": [
        { "id": 1, "w": 2.50 }
    ],
    "meta": {
        "eps": 1E-7,
        "list": [
            1.0,
            0.1
        ]
    }
}
`
	got, err := Format([]byte(input))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if string(got) != want {
		t.Errorf("Format() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		`{"version": 2, "name": "demo", "window": {"w": 800, "h": [1, 2, {"x": null}]}}`,
		`{"nodes": [{"id": 1}, {"id": 2, "in": [1, 2]}], "links": [{"src": 1, "dst": 2}], "empty": {}}`,
		`{}`,
	}

	for _, in := range inputs {
		first, err := Format([]byte(in))
		if err != nil {
			t.Fatalf("Format(%s) error: %v", in, err)
		}
		second, err := Format(first)
		if err != nil {
			t.Fatalf("Format(formatted) error: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
		}
	}
}

func TestFormatTrailingNewline(t *testing.T) {
	got, err := Format([]byte("{\"a\": 1}\n\n\n"))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !bytes.HasSuffix(got, []byte("}\n")) || bytes.HasSuffix(got, []byte("\n\n")) {
		t.Errorf("output should end with exactly one newline: %q", got)
	}
}

func TestFormatNotObject(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`[1, 2]`, "an array"},
		{`"text"`, "a string"},
		{`42`, "a number"},
		{`null`, "null"},
		{`true`, "a boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Format([]byte(tt.input))
			if !errors.Is(err, errors.ErrCodeNotObject) {
				t.Fatalf("Format(%s) error = %v, want %s", tt.input, err, errors.ErrCodeNotObject)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestFormatInvalidJSON(t *testing.T) {
	_, err := Format([]byte(`{"a": `))
	if !errors.Is(err, errors.ErrCodeInvalidJSON) {
		t.Fatalf("error = %v, want %s", err, errors.ErrCodeInvalidJSON)
	}
}

func TestCompact(t *testing.T) {
	v := jsondoc.NewObject(
		jsondoc.Member{Name: "id", Value: jsondoc.NewNumber("1")},
		jsondoc.Member{Name: "in", Value: jsondoc.NewArray(jsondoc.NewString("a"), jsondoc.NewBool(false))},
		jsondoc.Member{Name: "meta", Value: jsondoc.NewObject()},
	)
	got, err := Compact(v)
	if err != nil {
		t.Fatalf("Compact error: %v", err)
	}
	want := `{"id": 1, "in": ["a", false], "meta": {}}`
	if string(got) != want {
		t.Errorf("Compact() = %s, want %s", got, want)
	}
}

func TestPretty(t *testing.T) {
	v := jsondoc.NewArray(jsondoc.NewNumber("1"), jsondoc.NewObject(jsondoc.Member{Name: "k", Value: jsondoc.NewNull()}))
	got, err := Pretty(v)
	if err != nil {
		t.Fatalf("Pretty error: %v", err)
	}
	want := "[\n    1,\n    {\n        \"k\": null\n    }\n]"
	if string(got) != want {
		t.Errorf("Pretty() = %q, want %q", got, want)
	}
}

func TestPadBraces(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a": 1}`, `{ "a": 1 }`},
		{`{}`, `{  }`},
		{`[1, 2]`, `[1, 2]`},
		{`"{x}"`, `"{x}"`},
		{`7`, `7`},
	}
	for _, tt := range tests {
		if got := string(padBraces([]byte(tt.in))); got != tt.want {
			t.Errorf("padBraces(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestIsCompactKey(t *testing.T) {
	for _, k := range []string{"nodes", "links"} {
		if !IsCompactKey(k) {
			t.Errorf("IsCompactKey(%q) = false", k)
		}
	}
	for _, k := range []string{"Nodes", "edges", "node", ""} {
		if IsCompactKey(k) {
			t.Errorf("IsCompactKey(%q) = true", k)
		}
	}
}
