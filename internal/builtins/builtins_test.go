package builtins

import (
	"testing"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// lookup finds a registered builtin's function by name across every tool
// file, mirroring how RegisterAll assembles the full set.
func lookup(t *testing.T, name string) interp.BuiltinFunc {
	t.Helper()
	var all []registration
	all = append(all, mathTools()...)
	all = append(all, stringTools()...)
	all = append(all, listTools()...)
	all = append(all, mapTools()...)
	all = append(all, fileTools()...)
	all = append(all, dateTools()...)
	all = append(all, randomTools()...)
	all = append(all, jsonTools()...)
	all = append(all, cryptoTools()...)
	all = append(all, patternTools()...)
	all = append(all, networkTools()...)

	for _, r := range all {
		if r.name == name {
			return r.fn
		}
	}
	t.Fatalf("no builtin registered under %q", name)
	return nil
}

func num(v float64) *interp.Number { return &interp.Number{Value: v} }
func str(v string) *interp.String  { return &interp.String{Value: v} }

func TestRegisterAllDefinesEveryBuiltin(t *testing.T) {
	env := interp.NewEnvironment()
	RegisterAll(env)

	for _, name := range []string{
		"sqrt", "to_uppercase", "list_append", "map_get", "read_file",
		"current_date", "random_number", "parse_json", "md5_hash",
		"matches_pattern", "url_encode",
	} {
		if _, ok := env.Get(name); !ok {
			t.Errorf("RegisterAll did not define %q", name)
		}
	}
}

func TestMathSqrt(t *testing.T) {
	fn := lookup(t, "sqrt")
	result, err := fn([]interp.Value{num(16)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*interp.Number).Value != 4 {
		t.Errorf("sqrt(16) = %v, want 4", result)
	}
}

func TestMathSqrtNegativeIsError(t *testing.T) {
	fn := lookup(t, "sqrt")
	if _, err := fn([]interp.Value{num(-1)}); err == nil {
		t.Error("expected an error for sqrt of a negative number")
	}
}

func TestMathPow(t *testing.T) {
	fn := lookup(t, "pow")
	result, err := fn([]interp.Value{num(2), num(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*interp.Number).Value != 1024 {
		t.Errorf("pow(2, 10) = %v, want 1024", result)
	}
}

func TestStringToUppercase(t *testing.T) {
	fn := lookup(t, "to_uppercase")
	result, err := fn([]interp.Value{str("hello")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*interp.String).Value != "HELLO" {
		t.Errorf("to_uppercase(hello) = %v, want HELLO", result)
	}
}

func TestStringTitlecaseUnicode(t *testing.T) {
	fn := lookup(t, "to_titlecase")
	result, err := fn([]interp.Value{str("café noir")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*interp.String).Value != "Café Noir" {
		t.Errorf("to_titlecase(café noir) = %v, want Café Noir", result)
	}
}

func TestListAppendAndLength(t *testing.T) {
	appendFn := lookup(t, "list_append")
	lengthFn := lookup(t, "list_length")

	list := interp.NewList([]interp.Value{num(1), num(2)})
	result, err := appendFn([]interp.Value{list, num(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lengthResult, err := lengthFn([]interp.Value{result})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lengthResult.(*interp.Number).Value != 3 {
		t.Errorf("list_length after append = %v, want 3", lengthResult)
	}
}

func TestListSortMixedNumeric(t *testing.T) {
	fn := lookup(t, "list_sort")
	list := interp.NewList([]interp.Value{num(3), num(1), num(2)})
	result, err := fn([]interp.Value{list})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sorted := result.(*interp.List)
	want := []float64{1, 2, 3}
	for i, w := range want {
		if sorted.Elements[i].(*interp.Number).Value != w {
			t.Errorf("list_sort[%d] = %v, want %v", i, sorted.Elements[i], w)
		}
	}
}

func TestMapSetAndGet(t *testing.T) {
	setFn := lookup(t, "map_set")
	getFn := lookup(t, "map_get")

	m := interp.NewMap()
	result, err := setFn([]interp.Value{m, str("name"), str("Kaynat")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := getFn([]interp.Value{result, str("name")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(*interp.String).Value != "Kaynat" {
		t.Errorf("map_get(name) = %v, want Kaynat", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	toJSON := lookup(t, "to_json")
	parseJSON := lookup(t, "parse_json")

	m := interp.NewMap()
	m.Set("active", &interp.Boolean{Value: true})
	m.Set("count", num(2))

	jsonStr, err := toJSON([]interp.Value{m})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := parseJSON([]interp.Value{jsonStr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resultMap := parsed.(*interp.Map)
	active, _ := resultMap.Get("active")
	if !active.(*interp.Boolean).Value {
		t.Errorf("round-tripped active = %v, want true", active)
	}
}

func TestJSONGetSetPath(t *testing.T) {
	jsonSet := lookup(t, "json_set")
	jsonGet := lookup(t, "json_get")

	updated, err := jsonSet([]interp.Value{str(`{"a":1}`), str("b"), num(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := jsonGet([]interp.Value{updated, str("b")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(*interp.Number).Value != 2 {
		t.Errorf("json_get(b) = %v, want 2", got)
	}
}

func TestCryptoMD5Hash(t *testing.T) {
	fn := lookup(t, "md5_hash")
	result, err := fn([]interp.Value{str("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "d41d8cd98f00b204e9800998ecf8427e"
	if result.(*interp.String).Value != want {
		t.Errorf("md5_hash(\"\") = %v, want %v", result, want)
	}
}

func TestCryptoBase64RoundTrip(t *testing.T) {
	encode := lookup(t, "base64_encode")
	decode := lookup(t, "base64_decode")

	encoded, err := encode([]interp.Value{str("kaynat")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := decode([]interp.Value{encoded})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.(*interp.String).Value != "kaynat" {
		t.Errorf("base64 round trip = %v, want kaynat", decoded)
	}
}

func TestPatternMatchesEmail(t *testing.T) {
	fn := lookup(t, "is_valid_email")

	valid, err := fn([]interp.Value{str("user@example.com")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid.(*interp.Boolean).Value {
		t.Error("expected user@example.com to be a valid email")
	}

	invalid, err := fn([]interp.Value{str("not-an-email")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invalid.(*interp.Boolean).Value {
		t.Error("expected not-an-email to be invalid")
	}
}

func TestRandomNumberWithinBounds(t *testing.T) {
	fn := lookup(t, "random_number")
	for i := 0; i < 20; i++ {
		result, err := fn([]interp.Value{num(1), num(6)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v := result.(*interp.Number).Value
		if v < 1 || v > 6 {
			t.Fatalf("random_number(1, 6) = %v, out of bounds", v)
		}
	}
}

func TestURLEncodeDecodeRoundTrip(t *testing.T) {
	encode := lookup(t, "url_encode")
	decode := lookup(t, "url_decode")

	encoded, err := encode([]interp.Value{str("hello world")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := decode([]interp.Value{encoded})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.(*interp.String).Value != "hello world" {
		t.Errorf("url encode/decode round trip = %v, want %q", decoded, "hello world")
	}
}
