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
	"reflect"
	"time"
)

// encodeValue converts v for ToMap output: sequences element-wise with nil
// elements dropped, string-keyed maps value-wise, models through ToMap.
func encodeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Model:
		if isNil(reflect.ValueOf(x)) {
			return nil
		}
		return x.ToMap()
	case time.Time, []byte:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := range rv.Len() {
			e := rv.Index(i)
			if isNil(e) {
				continue
			}
			out = append(out, encodeValue(e.Interface()))
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = encodeValue(iter.Value().Interface())
		}
		return out
	}
	return v
}

// hashValue returns a representation of v whose deep hash is stable: models
// contribute their own Hash and times are normalized to UTC.
func hashValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Model:
		if isNil(reflect.ValueOf(x)) {
			return nil
		}
		return x.Hash()
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case []byte:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = hashValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = hashValue(iter.Value().Interface())
		}
		return out
	}
	return v
}

// valuesEqual compares attribute values: models by their Equal method, times
// by instant, containers element-wise, everything else deeply.
func valuesEqual(a, b any) bool {
	if am, ok := a.(Model); ok {
		bm, ok := b.(Model)
		if !ok {
			return false
		}
		an, bn := isNil(reflect.ValueOf(am)), isNil(reflect.ValueOf(bm))
		if an || bn {
			return an && bn
		}
		return am.Equal(bm)
	}
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return ra.IsValid() == rb.IsValid()
	}
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		if ra.Len() != rb.Len() {
			return false
		}
		for i := range ra.Len() {
			if !valuesEqual(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Map:
		if ra.Len() != rb.Len() {
			return false
		}
		iter := ra.MapRange()
		for iter.Next() {
			bv := rb.MapIndex(iter.Key())
			if !bv.IsValid() || !valuesEqual(iter.Value().Interface(), bv.Interface()) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Discriminator returns the string value of a union discriminator supplied
// under either its wire name or its local name.
func Discriminator(in map[string]any, wire, local string) (string, bool) {
	for _, k := range []string{wire, local} {
		if s, ok := in[k].(string); ok {
			return s, true
		}
	}
	return "", false
}

// AsObject returns raw as a plain map when it is a map[string]any or a *Map.
// Values nested in a *Map are left as they are.
func AsObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case *Map:
		if v == nil {
			return nil, false
		}
		out := make(map[string]any, v.Len())
		for k, e := range v.FromOldest() {
			out[k] = e
		}
		return out, true
	}
	return nil, false
}

// Plain converts m and every *Map nested in it into map[string]any.
func Plain(m *Map) map[string]any {
	out, _ := plain(m).(map[string]any)
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case *Map:
		if x == nil {
			return nil
		}
		out := make(map[string]any, x.Len())
		for k, e := range x.FromOldest() {
			out[k] = plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = plain(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	}
	return v
}
