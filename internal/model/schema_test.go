// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type part struct {
	Name Value[string]
	Size Value[int64]
}

var partSchema = NewSchema("Part",
	Scalar("name", "name", AsString, func(p *part) *Value[string] { return &p.Name }),
	Scalar("sizeInGBs", "size_in_gbs", AsInt64, func(p *part) *Value[int64] { return &p.Size }),
)

func (p *part) TypeName() string { return "Part" }
func (p *part) ToMap() *Map      { return partSchema.ToMap(p) }
func (p *part) Hash() uint64     { return partSchema.Hash(p) }
func (p *part) Equal(other any) bool {
	o, ok := other.(*part)
	return ok && partSchema.Equal(p, o)
}

type shape string

var (
	shapeEnum = NewEnum("Shape", Lenient, "ROUND", "SQUARE")
	sizeEnum  = NewEnum("Size", Strict, "SMALL", "LARGE")
)

type widget struct {
	ID      Value[string]
	Count   Value[int]
	Shape   Value[shape]
	Size    Value[shape]
	Tags    Value[[]string]
	Shapes  Value[[]shape]
	Parts   Value[[]*part]
	Main    Value[*part]
	Labels  Value[map[string]string]
	Created Value[time.Time]
}

var widgetSchema = NewSchema("Widget",
	Scalar("id", "id", AsString, func(w *widget) *Value[string] { return &w.ID }),
	Scalar("itemCount", "item_count", AsInt, func(w *widget) *Value[int] { return &w.Count }, Default(10)),
	Enum("shape", "shape", shapeEnum, func(w *widget) *Value[shape] { return &w.Shape }),
	Enum("sizeName", "size_name", sizeEnum, func(w *widget) *Value[shape] { return &w.Size }),
	List("tags", "tags", AsString, func(w *widget) *Value[[]string] { return &w.Tags }),
	EnumList("otherShapes", "other_shapes", shapeEnum, func(w *widget) *Value[[]shape] { return &w.Shapes }),
	ObjectList("parts", "parts", partSchema, func(w *widget) *Value[[]*part] { return &w.Parts }),
	Object("mainPart", "main_part", partSchema, func(w *widget) *Value[*part] { return &w.Main }),
	Dict("labels", "labels", AsString, func(w *widget) *Value[map[string]string] { return &w.Labels }),
	Scalar("timeCreated", "time_created", AsTime, func(w *widget) *Value[time.Time] { return &w.Created }),
)

func (w *widget) TypeName() string { return "Widget" }
func (w *widget) ToMap() *Map      { return widgetSchema.ToMap(w) }
func (w *widget) Hash() uint64     { return widgetSchema.Hash(w) }
func (w *widget) Equal(other any) bool {
	o, ok := other.(*widget)
	return ok && widgetSchema.Equal(w, o)
}

func mustJSON(t *testing.T, m Model) string {
	t.Helper()
	b, err := m.ToMap().MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestFromMap_KeySpellings(t *testing.T) {
	want := &widget{
		ID:    Of("w1"),
		Count: Of(3),
		Main:  Of(&part{Name: Of("m"), Size: Of[int64](2)}),
	}
	for _, test := range []struct {
		name string
		in   map[string]any
	}{
		{
			name: "wire names",
			in: map[string]any{
				"id":        "w1",
				"itemCount": 3.0,
				"mainPart":  map[string]any{"name": "m", "sizeInGBs": 2.0},
			},
		},
		{
			name: "local names",
			in: map[string]any{
				"id":         "w1",
				"item_count": 3.0,
				"main_part":  map[string]any{"name": "m", "size_in_gbs": 2.0},
			},
		},
		{
			name: "mixed spellings across attributes",
			in: map[string]any{
				"id":         "w1",
				"item_count": 3.0,
				"mainPart":   map[string]any{"name": "m", "size_in_gbs": 2.0},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := widgetSchema.FromMap(nil, test.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMap_DuplicateField(t *testing.T) {
	for _, test := range []struct {
		name string
		in   map[string]any
		want *DuplicateFieldError
	}{
		{
			name: "different values",
			in:   map[string]any{"itemCount": 1.0, "item_count": 2.0},
			want: &DuplicateFieldError{Model: "Widget", Wire: "itemCount", Local: "item_count"},
		},
		{
			name: "same values",
			in:   map[string]any{"sizeName": "SMALL", "size_name": "SMALL"},
			want: &DuplicateFieldError{Model: "Widget", Wire: "sizeName", Local: "size_name"},
		},
		{
			name: "one spelling null",
			in:   map[string]any{"mainPart": nil, "main_part": map[string]any{}},
			want: &DuplicateFieldError{Model: "Widget", Wire: "mainPart", Local: "main_part"},
		},
		{
			name: "nested model",
			in:   map[string]any{"mainPart": map[string]any{"sizeInGBs": 1.0, "size_in_gbs": 1.0}},
			want: &DuplicateFieldError{Model: "Part", Wire: "sizeInGBs", Local: "size_in_gbs"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := widgetSchema.FromMap(nil, test.in)
			var got *DuplicateFieldError
			if !errors.As(err, &got) {
				t.Fatalf("FromMap() error = %v, want DuplicateFieldError", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMap_Default(t *testing.T) {
	for _, test := range []struct {
		name string
		in   map[string]any
		want Value[int]
	}{
		{
			name: "absent under both spellings",
			in:   map[string]any{},
			want: Of(10),
		},
		{
			name: "explicit null",
			in:   map[string]any{"itemCount": nil},
			want: Null[int](),
		},
		{
			name: "explicit null under local name",
			in:   map[string]any{"item_count": nil},
			want: Null[int](),
		},
		{
			name: "explicit value",
			in:   map[string]any{"item_count": 0.0},
			want: Of(0),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := widgetSchema.FromMap(nil, test.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got.Count); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMap_Enums(t *testing.T) {
	got, err := widgetSchema.FromMap(NewDecoder(nil), map[string]any{
		"shape":       "TRIANGLE",
		"otherShapes": []any{"ROUND", "HEXAGON", nil},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Of[shape](UnknownEnumValue), got.Shape); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Of([]shape{"ROUND", UnknownEnumValue}), got.Shapes); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	_, err = widgetSchema.FromMap(nil, map[string]any{"sizeName": "MEDIUM"})
	var enumErr *InvalidEnumValueError
	if !errors.As(err, &enumErr) {
		t.Fatalf("FromMap() error = %v, want InvalidEnumValueError", err)
	}
	if enumErr.Value != "MEDIUM" || enumErr.Enum != "Size" {
		t.Errorf("unexpected error fields: %+v", enumErr)
	}
}

func TestSetEnum(t *testing.T) {
	var v Value[shape]
	for range 2 {
		if err := SetEnum(&v, shapeEnum, "OVAL"); err != nil {
			t.Fatalf("SetEnum() on lenient enum: %v", err)
		}
		if diff := cmp.Diff(Of[shape](UnknownEnumValue), v); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}

	strict := Of[shape]("SMALL")
	err := SetEnum(&strict, sizeEnum, "HUGE")
	var enumErr *InvalidEnumValueError
	if !errors.As(err, &enumErr) {
		t.Fatalf("SetEnum() error = %v, want InvalidEnumValueError", err)
	}
	if diff := cmp.Diff(Of[shape]("SMALL"), strict); diff != "" {
		t.Errorf("strict enum mutated on error (-want +got):\n%s", diff)
	}
	if err := SetEnum(&strict, sizeEnum, "LARGE"); err != nil {
		t.Fatal(err)
	}
	if got, _ := strict.Get(); got != "LARGE" {
		t.Errorf("SetEnum() stored %q, want LARGE", got)
	}
}

func TestFromMap_Lists(t *testing.T) {
	for _, test := range []struct {
		name string
		in   map[string]any
		want *widget
	}{
		{
			name: "not a sequence",
			in:   map[string]any{"tags": "a,b", "parts": map[string]any{"name": "p"}},
			want: &widget{Count: Of(10)},
		},
		{
			name: "nil elements dropped",
			in:   map[string]any{"tags": []any{"a", nil, "b"}, "parts": []any{nil, map[string]any{"name": "p"}}},
			want: &widget{
				Count: Of(10),
				Tags:  Of([]string{"a", "b"}),
				Parts: Of([]*part{{Name: Of("p")}}),
			},
		},
		{
			name: "null list",
			in:   map[string]any{"tags": nil},
			want: &widget{Count: Of(10), Tags: Null[[]string]()},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := widgetSchema.FromMap(nil, test.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMap_TypeMismatch(t *testing.T) {
	for _, test := range []struct {
		name string
		in   map[string]any
		want *TypeMismatchError
	}{
		{
			name: "string attribute",
			in:   map[string]any{"id": 7.0},
			want: &TypeMismatchError{Model: "Widget", Field: "id", Want: "string", Got: "float64"},
		},
		{
			name: "object list element",
			in:   map[string]any{"parts": []any{"p"}},
			want: &TypeMismatchError{Model: "Part", Want: "object", Got: "string"},
		},
		{
			name: "time",
			in:   map[string]any{"timeCreated": "yesterday"},
			want: &TypeMismatchError{Model: "Widget", Field: "timeCreated", Want: "RFC 3339 date-time", Got: "string"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := widgetSchema.FromMap(nil, test.in)
			var got *TypeMismatchError
			if !errors.As(err, &got) {
				t.Fatalf("FromMap() error = %v, want TypeMismatchError", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_NotAMap(t *testing.T) {
	for _, raw := range []any{nil, "x", []any{}, 1.0} {
		_, err := widgetSchema.Decode(nil, raw)
		var got *TypeMismatchError
		if !errors.As(err, &got) {
			t.Errorf("Decode(%v) error = %v, want TypeMismatchError", raw, err)
		}
	}
}

func TestToMap(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, test := range []struct {
		name string
		in   *widget
		want string
	}{
		{
			name: "empty",
			in:   &widget{},
			want: `{}`,
		},
		{
			name: "explicit null kept",
			in:   &widget{ID: Of("w1"), Count: Null[int]()},
			want: `{"id":"w1","itemCount":null}`,
		},
		{
			name: "declaration order",
			in: &widget{
				Created: Of(created),
				Labels:  Of(map[string]string{"env": "prod"}),
				Main:    Of(&part{Size: Of[int64](5)}),
				Parts:   Of([]*part{{Name: Of("a")}, nil}),
				Tags:    Of([]string{"x"}),
				Shape:   Of[shape]("ROUND"),
				ID:      Of("w1"),
			},
			want: `{"id":"w1","shape":"ROUND","tags":["x"],"parts":[{"name":"a"}],"mainPart":{"sizeInGBs":5},"labels":{"env":"prod"},"timeCreated":"2026-01-02T03:04:05Z"}`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := mustJSON(t, test.in)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToMap_NestedMapsAreOrdered(t *testing.T) {
	m := (&widget{Main: Of(&part{Name: Of("n")})}).ToMap()
	v, ok := m.Get("mainPart")
	if !ok {
		t.Fatal("mainPart missing")
	}
	if _, ok := v.(*Map); !ok {
		t.Errorf("mainPart encoded as %T, want *Map", v)
	}
}

func TestRoundTrip(t *testing.T) {
	created := time.Date(2026, 5, 6, 7, 8, 9, 10, time.UTC)
	for _, test := range []struct {
		name string
		in   *widget
		want *widget
	}{
		{
			name: "all attributes",
			in: &widget{
				ID:      Of("w1"),
				Count:   Of(4),
				Shape:   Of[shape]("SQUARE"),
				Size:    Of[shape]("LARGE"),
				Tags:    Of([]string{"a", "b"}),
				Shapes:  Of([]shape{"ROUND"}),
				Parts:   Of([]*part{{Name: Of("p1"), Size: Of[int64](1)}}),
				Main:    Of(&part{Name: Of("main")}),
				Labels:  Of(map[string]string{"k": "v"}),
				Created: Of(created),
			},
		},
		{
			name: "nulls preserved",
			in:   &widget{Count: Null[int](), Main: Null[*part]()},
		},
		{
			name: "unknown lenient value",
			in:   &widget{Count: Of(1), Shape: Of[shape]("PENTAGON")},
			want: &widget{Count: Of(1), Shape: Of[shape](UnknownEnumValue)},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			want := test.want
			if want == nil {
				want = test.in
			}
			direct, err := widgetSchema.Decode(nil, test.in.ToMap())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, direct); diff != "" {
				t.Errorf("direct mismatch (-want +got):\n%s", diff)
			}

			data := mustJSON(t, test.in)
			var viaJSON widget
			if err := widgetSchema.UnmarshalJSON(nil, &viaJSON, []byte(data)); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, &viaJSON); diff != "" {
				t.Errorf("JSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := &widget{ID: Of("w"), Main: Of(&part{Name: Of("p")})}
	b := &widget{ID: Of("w"), Main: Of(&part{Name: Of("p")})}
	if !a.Equal(b) {
		t.Error("structurally identical widgets are not equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal widgets hash differently")
	}

	c := &widget{ID: Of("w"), Main: Of(&part{Name: Of("q")})}
	if a.Equal(c) {
		t.Error("widgets with different nested parts are equal")
	}

	nulled := &widget{ID: Of("w"), Main: Null[*part]()}
	unset := &widget{ID: Of("w")}
	if nulled.Equal(unset) {
		t.Error("null and unset attributes compare equal")
	}
	if nulled.Hash() == unset.Hash() {
		t.Error("null and unset attributes hash equal")
	}

	p := &part{Name: Of("w")}
	if p.Equal(&widget{ID: Of("w")}) {
		t.Error("models of different types compare equal")
	}

	local := time.Date(2026, 1, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	t1 := &widget{Created: Of(local)}
	t2 := &widget{Created: Of(local.UTC())}
	if !t1.Equal(t2) || t1.Hash() != t2.Hash() {
		t.Error("same instant in different zones is not equal")
	}
}

func TestValue(t *testing.T) {
	var v Value[string]
	if v.IsAssigned() || v.IsNull() || v.IsSet() {
		t.Errorf("zero Value = %+v, want unset", v)
	}
	v.SetNull()
	if !v.IsAssigned() || !v.IsNull() {
		t.Errorf("after SetNull: %+v", v)
	}
	v.Set("x")
	if got, ok := v.Get(); !ok || got != "x" {
		t.Errorf("Get() = %q, %v", got, ok)
	}
	v.Clear()
	if v.IsAssigned() || v.OrZero() != "" {
		t.Errorf("after Clear: %+v", v)
	}
}

func TestDiscriminator(t *testing.T) {
	for _, test := range []struct {
		name   string
		in     map[string]any
		want   string
		wantOK bool
	}{
		{"wire", map[string]any{"configType": "A"}, "A", true},
		{"local", map[string]any{"config_type": "B"}, "B", true},
		{"missing", map[string]any{}, "", false},
		{"null", map[string]any{"configType": nil}, "", false},
		{"not a string", map[string]any{"configType": 1.0}, "", false},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, ok := Discriminator(test.in, "configType", "config_type")
			if got != test.want || ok != test.wantOK {
				t.Errorf("Discriminator() = %q, %v, want %q, %v", got, ok, test.want, test.wantOK)
			}
		})
	}
}

func TestToMap_EnumsArePlainStrings(t *testing.T) {
	w := &widget{Shape: Of[shape]("ROUND"), Shapes: Of([]shape{"SQUARE"})}
	want := map[string]any{"shape": "ROUND", "otherShapes": []any{"SQUARE"}}
	if diff := cmp.Diff(want, Plain(w.ToMap())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestInit(t *testing.T) {
	var w widget
	widgetSchema.Init(&w)
	if diff := cmp.Diff(Of(10), w.Count); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got, err := widgetSchema.Decode(nil, w.ToMap())
	if err != nil {
		t.Fatal(err)
	}
	if !w.Equal(got) {
		t.Errorf("FromMap(ToMap()) = %s, want %s", mustJSON(t, got), mustJSON(t, &w))
	}

	kept := widget{Count: Null[int]()}
	widgetSchema.Init(&kept)
	if diff := cmp.Diff(Null[int](), kept.Count); diff != "" {
		t.Errorf("Init() replaced an assigned value (-want +got):\n%s", diff)
	}
}

func TestToMap_NullEnum(t *testing.T) {
	w := &widget{ID: Of("w1")}
	w.Shape.SetNull()
	w.Size.Clear()
	want := `{"id":"w1","shape":null}`
	if got := mustJSON(t, w); got != want {
		t.Errorf("ToMap() = %s, want %s", got, want)
	}
}
