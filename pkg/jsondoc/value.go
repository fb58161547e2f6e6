package jsondoc

// Kind identifies the JSON type of a [Value].
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "boolean",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

// String returns the JSON name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node in a parsed JSON document.
type Value struct {
	kind    Kind
	text    string // string contents, number literal, or "true"/"false"
	elems   []*Value
	members []Member
}

// Member is a named object entry.
type Member struct {
	Name  string
	Value *Value
}

// NewNull returns a JSON null.
func NewNull() *Value { return &Value{kind: Null} }

// NewBool returns a JSON boolean.
func NewBool(b bool) *Value {
	if b {
		return &Value{kind: Bool, text: "true"}
	}
	return &Value{kind: Bool, text: "false"}
}

// NewNumber returns a JSON number with the given literal text.
// The literal is emitted as-is; callers are responsible for its validity.
func NewNumber(literal string) *Value { return &Value{kind: Number, text: literal} }

// NewString returns a JSON string.
func NewString(s string) *Value { return &Value{kind: String, text: s} }

// NewArray returns a JSON array of the given elements.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: Array, elems: elems}
}

// NewObject returns a JSON object with members in the given order.
// Duplicate names are collapsed the same way [Parse] collapses them.
func NewObject(members ...Member) *Value {
	v := &Value{kind: Object}
	idx := make(map[string]int, len(members))
	for _, m := range members {
		v.set(idx, m.Name, m.Value)
	}
	return v
}

func (v *Value) set(idx map[string]int, name string, val *Value) {
	if i, ok := idx[name]; ok {
		v.members[i].Value = val
		return
	}
	idx[name] = len(v.members)
	v.members = append(v.members, Member{Name: name, Value: val})
}

// Kind returns the JSON type of v.
func (v *Value) Kind() Kind { return v.kind }

// IsObject reports whether v is a JSON object.
func (v *Value) IsObject() bool { return v.kind == Object }

// Text returns the string contents for strings, the source literal for
// numbers, "true" or "false" for booleans, and "" otherwise.
func (v *Value) Text() string { return v.text }

// Elements returns the elements of an array, or nil for other kinds.
func (v *Value) Elements() []*Value { return v.elems }

// Members returns the members of an object in source order, or nil for
// other kinds.
func (v *Value) Members() []Member { return v.members }

// Len returns the number of elements or members. Scalars have length 0.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.elems)
	case Object:
		return len(v.members)
	}
	return 0
}

// Lookup returns the value of the named member of an object.
func (v *Value) Lookup(name string) (*Value, bool) {
	for _, m := range v.members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}
