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

type attrMeta struct {
	model string
	wire  string
	local string
}

// Attr describes one attribute of the model type M. Attrs are built with
// Scalar, Enum, Object, List, EnumList, ObjectList, Dict, Poly and
// Discriminant.
type Attr[M any] struct {
	meta   *attrMeta
	decode func(d *Decoder, m *M, raw any) error
	fill   func(m *M)
	encode func(m *M) (any, bool)
	equal  func(a, b *M) bool
	hash   func(m *M) any
}

// Wire returns the attribute's wire name.
func (a Attr[M]) Wire() string { return a.meta.wire }

// Local returns the attribute's local name.
func (a Attr[M]) Local() string { return a.meta.local }

func (a Attr[M]) lookup(in map[string]any) (any, bool, error) {
	w, hasWire := in[a.meta.wire]
	if a.meta.local == a.meta.wire {
		return w, hasWire, nil
	}
	l, hasLocal := in[a.meta.local]
	switch {
	case hasWire && hasLocal:
		return nil, false, &DuplicateFieldError{Model: a.meta.model, Wire: a.meta.wire, Local: a.meta.local}
	case hasLocal:
		return l, true, nil
	}
	return w, hasWire, nil
}

// Option configures an attribute holding a T.
type Option[T any] func(*options[T])

type options[T any] struct {
	def *T
}

// Default sets the value assigned when the attribute is absent under both of
// its spellings. An explicit null does not trigger the default.
func Default[T any](v T) Option[T] {
	return func(o *options[T]) { o.def = &v }
}

// codec holds the per-type behavior of a Value attribute. keep reports
// whether a decoded value should be stored; false leaves the attribute unset.
type codec[T any] struct {
	decode func(d *Decoder, meta *attrMeta, raw any) (v T, keep bool, err error)
	encode func(T) any
	equal  func(a, b T) bool
	hash   func(T) any
}

func valueAttr[M, T any](wire, local string, get func(*M) *Value[T], c codec[T], opts []Option[T]) Attr[M] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	if c.encode == nil {
		c.encode = func(v T) any { return encodeValue(v) }
	}
	if c.equal == nil {
		c.equal = func(a, b T) bool { return valuesEqual(a, b) }
	}
	if c.hash == nil {
		c.hash = func(v T) any { return hashValue(v) }
	}
	meta := &attrMeta{wire: wire, local: local}
	a := Attr[M]{
		meta: meta,
		decode: func(d *Decoder, m *M, raw any) error {
			dst := get(m)
			if raw == nil {
				dst.SetNull()
				return nil
			}
			v, keep, err := c.decode(d, meta, raw)
			if err != nil {
				return err
			}
			if keep {
				dst.Set(v)
			}
			return nil
		},
		encode: func(m *M) (any, bool) {
			v := get(m)
			switch v.state {
			case unset:
				return nil, false
			case null:
				return nil, true
			}
			return c.encode(v.v), true
		},
		equal: func(a, b *M) bool {
			va, vb := get(a), get(b)
			if va.state != vb.state {
				return false
			}
			return va.state != set || c.equal(va.v, vb.v)
		},
		hash: func(m *M) any {
			v := get(m)
			if v.state != set {
				return []any{uint8(v.state)}
			}
			return []any{uint8(v.state), c.hash(v.v)}
		},
	}
	if o.def != nil {
		def := *o.def
		a.fill = func(m *M) {
			if v := get(m); v.state == unset {
				v.Set(def)
			}
		}
	}
	return a
}

// Scalar declares a primitive, time, or free-form attribute converted by conv.
func Scalar[M, T any](wire, local string, conv Converter[T], get func(*M) *Value[T], opts ...Option[T]) Attr[M] {
	return valueAttr(wire, local, get, codec[T]{
		decode: func(d *Decoder, _ *attrMeta, raw any) (T, bool, error) {
			v, err := conv(d, raw)
			return v, err == nil, err
		},
	}, opts)
}

// Dict declares a map attribute whose values are converted by elem.
func Dict[M, T any](wire, local string, elem Converter[T], get func(*M) *Value[map[string]T], opts ...Option[map[string]T]) Attr[M] {
	return Scalar(wire, local, DictOf(elem), get, opts...)
}

// List declares a sequence attribute. Input that is not a sequence leaves the
// attribute unset; nil elements are dropped.
func List[M, T any](wire, local string, elem Converter[T], get func(*M) *Value[[]T], opts ...Option[[]T]) Attr[M] {
	conv := ListOf(elem)
	return valueAttr(wire, local, get, codec[[]T]{
		decode: func(d *Decoder, _ *attrMeta, raw any) ([]T, bool, error) {
			if _, ok := raw.([]any); !ok {
				return nil, false, nil
			}
			v, err := conv(d, raw)
			return v, err == nil, err
		},
	}, opts)
}

// Enum declares a string enum attribute governed by spec.
func Enum[M any, T ~string](wire, local string, spec *EnumSpec, get func(*M) *Value[T], opts ...Option[T]) Attr[M] {
	return valueAttr(wire, local, get, codec[T]{
		decode: func(d *Decoder, meta *attrMeta, raw any) (T, bool, error) {
			s, err := AsString(d, raw)
			if err != nil {
				return "", false, err
			}
			n, err := normalize(d, meta, spec, s)
			return T(n), err == nil, err
		},
		encode: func(v T) any { return string(v) },
	}, opts)
}

// EnumList declares a sequence of enum values governed by spec.
func EnumList[M any, T ~string](wire, local string, spec *EnumSpec, get func(*M) *Value[[]T], opts ...Option[[]T]) Attr[M] {
	return valueAttr(wire, local, get, codec[[]T]{
		decode: func(d *Decoder, meta *attrMeta, raw any) ([]T, bool, error) {
			in, ok := raw.([]any)
			if !ok {
				return nil, false, nil
			}
			out := make([]T, 0, len(in))
			for _, e := range in {
				if e == nil {
					continue
				}
				s, err := AsString(d, e)
				if err != nil {
					return nil, false, err
				}
				n, err := normalize(d, meta, spec, s)
				if err != nil {
					return nil, false, err
				}
				out = append(out, T(n))
			}
			return out, true, nil
		},
		encode: func(vs []T) any {
			out := make([]any, len(vs))
			for i, v := range vs {
				out[i] = string(v)
			}
			return out
		},
	}, opts)
}

func normalize(d *Decoder, meta *attrMeta, spec *EnumSpec, s string) (string, error) {
	n, ok, err := spec.check(s)
	if err != nil {
		return "", err
	}
	if !ok {
		d.unknownEnum(meta.model, meta.wire, spec.Name, s)
	}
	return n, nil
}

// Object declares a nested model attribute described by schema.
func Object[M, N any](wire, local string, schema *Schema[N], get func(*M) *Value[*N]) Attr[M] {
	return valueAttr(wire, local, get, codec[*N]{
		decode: func(d *Decoder, _ *attrMeta, raw any) (*N, bool, error) {
			n, err := schema.Decode(d, raw)
			return n, err == nil, err
		},
		encode: func(n *N) any {
			if n == nil {
				return nil
			}
			return schema.ToMap(n)
		},
		equal: schema.Equal,
		hash:  func(n *N) any { return schema.Hash(n) },
	}, nil)
}

// ObjectList declares a sequence of nested models. Input that is not a
// sequence leaves the attribute unset; nil elements are dropped.
func ObjectList[M, N any](wire, local string, schema *Schema[N], get func(*M) *Value[[]*N]) Attr[M] {
	return valueAttr(wire, local, get, codec[[]*N]{
		decode: func(d *Decoder, _ *attrMeta, raw any) ([]*N, bool, error) {
			in, ok := raw.([]any)
			if !ok {
				return nil, false, nil
			}
			out := make([]*N, 0, len(in))
			for _, e := range in {
				if e == nil {
					continue
				}
				n, err := schema.Decode(d, e)
				if err != nil {
					return nil, false, err
				}
				out = append(out, n)
			}
			return out, true, nil
		},
		encode: func(ns []*N) any {
			out := make([]any, 0, len(ns))
			for _, n := range ns {
				if n != nil {
					out = append(out, schema.ToMap(n))
				}
			}
			return out
		},
		equal: func(a, b []*N) bool {
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if !schema.Equal(a[i], b[i]) {
					return false
				}
			}
			return true
		},
		hash: func(ns []*N) any {
			out := make([]uint64, len(ns))
			for i, n := range ns {
				out[i] = schema.Hash(n)
			}
			return out
		},
	}, nil)
}

// Poly declares an attribute holding a member of a discriminated union,
// decoded by decode.
func Poly[M any, U Model](wire, local string, decode func(*Decoder, any) (U, error), get func(*M) *Value[U]) Attr[M] {
	return valueAttr(wire, local, get, codec[U]{
		decode: func(d *Decoder, _ *attrMeta, raw any) (U, bool, error) {
			u, err := decode(d, raw)
			return u, err == nil, err
		},
		encode: func(u U) any {
			if any(u) == nil {
				return nil
			}
			return u.ToMap()
		},
		equal: func(a, b U) bool {
			if any(a) == nil || any(b) == nil {
				return any(a) == nil && any(b) == nil
			}
			return a.Equal(b)
		},
		hash: func(u U) any {
			if any(u) == nil {
				return nil
			}
			return u.Hash()
		},
	}, nil)
}

// Discriminant declares the fixed discriminator of a union variant. Input
// values are ignored; the output always carries value.
func Discriminant[M any](wire, local, value string) Attr[M] {
	return Attr[M]{
		meta:   &attrMeta{wire: wire, local: local},
		decode: func(*Decoder, *M, any) error { return nil },
		encode: func(*M) (any, bool) { return value, true },
		equal:  func(_, _ *M) bool { return true },
		hash:   func(*M) any { return value },
	}
}
