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

// Package model implements the data-model protocol shared by every
// generated service type: construction from loosely typed maps, enum
// normalization, ordered conversion back to maps, equality and hashing.
//
// Declared defaults are applied by Schema.Init, by FromMap and by
// UnmarshalJSON. A model built as a zero struct literal has none.
package model

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davegardnerisme/deephash"
	orderedmap "github.com/pb33f/ordered-map/v2"
)

// Map is the serialized form of a model: wire names mapped to values, in
// attribute declaration order.
type Map = orderedmap.OrderedMap[string, any]

// NewMap returns an empty Map.
func NewMap() *Map {
	return orderedmap.New[string, any]()
}

// Model is implemented by every generated type.
type Model interface {
	// TypeName returns the name of the concrete type.
	TypeName() string
	// ToMap returns the wire form of the model.
	ToMap() *Map
	// Equal reports whether other has the same concrete type and equal
	// attributes.
	Equal(other any) bool
	// Hash returns a hash over the ordered attribute values.
	Hash() uint64
}

// Schema describes the attributes of the model type M in declaration order.
type Schema[M any] struct {
	name  string
	attrs []Attr[M]
}

// NewSchema returns the schema for the model named name.
func NewSchema[M any](name string, attrs ...Attr[M]) *Schema[M] {
	for _, a := range attrs {
		a.meta.model = name
	}
	return &Schema[M]{name: name, attrs: attrs}
}

// Name returns the model name.
func (s *Schema[M]) Name() string {
	return s.name
}

// Decode builds a model from raw, which must be a map or a *Map.
func (s *Schema[M]) Decode(d *Decoder, raw any) (*M, error) {
	in, ok := AsObject(raw)
	if !ok {
		return nil, &TypeMismatchError{Model: s.name, Want: "object", Got: fmt.Sprintf("%T", raw)}
	}
	return s.FromMap(d, in)
}

// FromMap builds a model from in. Each attribute may be supplied under its
// wire name or its local name, but not both.
func (s *Schema[M]) FromMap(d *Decoder, in map[string]any) (*M, error) {
	m := new(M)
	if err := s.Populate(d, m, in); err != nil {
		return nil, err
	}
	return m, nil
}

// Init applies the declared defaults to every unset attribute of m. Generated
// NewX constructors call it; a zero model carries no defaults.
func (s *Schema[M]) Init(m *M) {
	for _, a := range s.attrs {
		if a.fill != nil {
			a.fill(m)
		}
	}
}

// Populate assigns the attributes found in in to m. Attributes absent under
// both spellings keep their current value, or receive their default.
func (s *Schema[M]) Populate(d *Decoder, m *M, in map[string]any) error {
	for _, a := range s.attrs {
		raw, present, err := a.lookup(in)
		if err != nil {
			return err
		}
		if !present {
			if a.fill != nil {
				a.fill(m)
			}
			continue
		}
		if err := a.decode(d, m, raw); err != nil {
			var tm *TypeMismatchError
			if errors.As(err, &tm) && tm.Model == "" {
				tm.Model = s.name
				tm.Field = a.meta.wire
			}
			return err
		}
	}
	return nil
}

// ToMap returns the wire form of m. Unset attributes are omitted and null
// attributes are kept with a nil value.
func (s *Schema[M]) ToMap(m *M) *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	for _, a := range s.attrs {
		if v, ok := a.encode(m); ok {
			out.Set(a.meta.wire, v)
		}
	}
	return out
}

// Equal reports whether every attribute of a and b compares equal.
func (s *Schema[M]) Equal(a, b *M) bool {
	if a == nil || b == nil {
		return a == b
	}
	for _, attr := range s.attrs {
		if !attr.equal(a, b) {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit hash over the ordered tuple of attribute states.
func (s *Schema[M]) Hash(m *M) uint64 {
	if m == nil {
		return 0
	}
	tuple := make([]any, 0, len(s.attrs)+1)
	tuple = append(tuple, s.name)
	for _, a := range s.attrs {
		tuple = append(tuple, a.hash(m))
	}
	return binary.BigEndian.Uint64(deephash.Hash(tuple))
}

// MarshalJSON encodes m as a JSON object in declaration order.
func (s *Schema[M]) MarshalJSON(m *M) ([]byte, error) {
	return s.ToMap(m).MarshalJSON()
}

// UnmarshalJSON resets m and populates it from the JSON object in data.
func (s *Schema[M]) UnmarshalJSON(d *Decoder, m *M, data []byte) error {
	raw, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	in, ok := raw.(map[string]any)
	if !ok {
		return &TypeMismatchError{Model: s.name, Want: "object", Got: fmt.Sprintf("%T", raw)}
	}
	var zero M
	*m = zero
	return s.Populate(d, m, in)
}

// DecodeJSON parses data keeping numbers as json.Number.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
