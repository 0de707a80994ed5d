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

import "log/slog"

// Decoder carries the logger used while building models from input maps.
// A Decoder holds no other state and may be shared.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder returns a Decoder that reports lenient coercions to logger. A nil
// logger discards them.
func NewDecoder(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Decoder{logger: logger}
}

func (d *Decoder) log() *slog.Logger {
	if d == nil || d.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.logger
}

// unknownEnum records that an unrecognized value was replaced by the sentinel.
func (d *Decoder) unknownEnum(model, field, enum, value string) {
	d.log().Debug("unknown enum value",
		"model", model, "field", field, "enum", enum, "value", value, "stored", UnknownEnumValue)
}
