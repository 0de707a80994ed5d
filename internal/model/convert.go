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
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Converter turns a decoded JSON value into T. It is never called with nil.
type Converter[T any] func(d *Decoder, raw any) (T, error)

// AsString accepts JSON strings and values of named string types.
func AsString(_ *Decoder, raw any) (string, error) {
	if s, ok := raw.(string); ok {
		return s, nil
	}
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", mismatch("string", raw)
}

// AsBool accepts JSON booleans.
func AsBool(_ *Decoder, raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, mismatch("bool", raw)
	}
	return b, nil
}

// AsInt64 accepts integral JSON numbers and numeric strings.
func AsInt64(_ *Decoder, raw any) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, mismatch("integer", raw)
		}
		return floatToInt64(f, raw)
	case float64:
		return floatToInt64(v, raw)
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, mismatch("integer", raw)
		}
		return i, nil
	}
	return 0, mismatch("integer", raw)
}

// floatToInt64 converts f when it is integral and within the int64 range.
func floatToInt64(f float64, raw any) (int64, error) {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, mismatch("integer", raw)
	}
	return int64(f), nil
}

// AsInt is AsInt64 narrowed to int.
func AsInt(d *Decoder, raw any) (int, error) {
	i, err := AsInt64(d, raw)
	return int(i), err
}

// AsFloat64 accepts JSON numbers and numeric strings.
func AsFloat64(_ *Decoder, raw any) (float64, error) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, mismatch("number", raw)
		}
		return f, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, mismatch("number", raw)
		}
		return f, nil
	}
	return 0, mismatch("number", raw)
}

// AsTime accepts RFC 3339 strings and time.Time values.
func AsTime(_ *Decoder, raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, mismatch("RFC 3339 date-time", raw)
		}
		return t, nil
	}
	return time.Time{}, mismatch("RFC 3339 date-time", raw)
}

// AsAny accepts any value as is.
func AsAny(_ *Decoder, raw any) (any, error) {
	return raw, nil
}

// ListOf converts a JSON array element-wise, dropping nil elements.
func ListOf[T any](elem Converter[T]) Converter[[]T] {
	return func(d *Decoder, raw any) ([]T, error) {
		in, ok := raw.([]any)
		if !ok {
			return nil, mismatch("array", raw)
		}
		out := make([]T, 0, len(in))
		for _, e := range in {
			if e == nil {
				continue
			}
			v, err := elem(d, e)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// DictOf converts a JSON object value-wise, keeping keys as given.
func DictOf[T any](elem Converter[T]) Converter[map[string]T] {
	return func(d *Decoder, raw any) (map[string]T, error) {
		in, ok := AsObject(raw)
		if !ok {
			return nil, mismatch("object", raw)
		}
		out := make(map[string]T, len(in))
		for k, e := range in {
			if e == nil {
				var zero T
				out[k] = zero
				continue
			}
			v, err := elem(d, e)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	}
}
