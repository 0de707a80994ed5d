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

package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	// ErrInvalid is wrapped by every validation error.
	ErrInvalid = errors.New("invalid descriptor")

	placeholder = regexp.MustCompile(`\{([^{}]+)\}`)
	identifier  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

var verbs = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead}

// Validate checks the descriptor for missing values, duplicate names and
// unresolved references, and rebuilds the lookup index. All problems are
// reported together.
func (a *API) Validate() error {
	a.reindex()
	v := &validator{api: a}
	v.header()
	names := map[string]string{}
	for _, e := range a.Enums {
		v.name(names, "enum", e.Name)
		v.enum(e)
	}
	for _, m := range a.Messages {
		v.name(names, "message", m.Name)
		v.message(m)
	}
	for _, u := range a.Unions {
		v.name(names, "union", u.Name)
		v.union(u)
	}
	methods := map[string]string{}
	for _, m := range a.Methods {
		v.name(methods, "method", m.Name)
		v.method(m)
	}
	return errors.Join(v.errs...)
}

type validator struct {
	api  *API
	errs []error
}

func (v *validator) errorf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
}

func (v *validator) header() {
	a := v.api
	if !identifier.MatchString(a.Name) || strings.ToLower(a.Name) != a.Name {
		v.errorf("name %q must be a lower case Go package name", a.Name)
	}
	if !semver.IsValid(a.Version) {
		v.errorf("version %q is not a semantic version", a.Version)
	}
	if _, err := time.Parse("20060102", a.APIVersion); err != nil {
		v.errorf("api_version %q must be a date in YYYYMMDD form", a.APIVersion)
	}
	if !strings.Contains(a.EndpointTemplate, "{region}") {
		v.errorf("endpoint_template %q has no {region} placeholder", a.EndpointTemplate)
	}
}

func (v *validator) name(seen map[string]string, kind, name string) {
	if !identifier.MatchString(name) {
		v.errorf("%s name %q is not an identifier", kind, name)
		return
	}
	if prev, ok := seen[name]; ok {
		v.errorf("%s %q is already declared as a %s", kind, name, prev)
		return
	}
	seen[name] = kind
}

func (v *validator) enum(e *Enum) {
	if len(e.Values) == 0 {
		v.errorf("enum %s has no values", e.Name)
	}
	seen := map[string]bool{}
	for _, val := range e.Values {
		if val == "" || seen[val] {
			v.errorf("enum %s: empty or duplicate value %q", e.Name, val)
		}
		seen[val] = true
	}
}

func (v *validator) message(m *Message) {
	wire := map[string]bool{}
	for _, f := range m.Fields {
		if !identifier.MatchString(f.Name) {
			v.errorf("message %s: field name %q is not an identifier", m.Name, f.Name)
		}
		if wire[f.Name] {
			v.errorf("message %s: duplicate field %q", m.Name, f.Name)
		}
		wire[f.Name] = true
		v.field(m, f)
	}
}

func (v *validator) field(m *Message, f *Field) {
	where := m.Name + "." + f.Name
	if f.Repeated && f.Map {
		v.errorf("%s: a field cannot be both repeated and a map", where)
	}
	if f.Policy != "" && f.Policy != PolicyLenient && f.Policy != PolicyStrict {
		v.errorf("%s: unknown policy %q", where, f.Policy)
	}
	_, isEnum := v.api.Enum(f.Type)
	_, isMessage := v.api.Message(f.Type)
	_, isUnion := v.api.Union(f.Type)
	switch {
	case IsScalar(f.Type):
	case isEnum:
		if f.Map {
			v.errorf("%s: enum maps are not supported", where)
		}
	case isMessage, isUnion:
		if f.Default != "" {
			v.errorf("%s: only scalar and enum fields take a default", where)
		}
		if isUnion && (f.Repeated || f.Map) {
			v.errorf("%s: union fields cannot be repeated or maps", where)
		}
		if isMessage && f.Map {
			v.errorf("%s: message maps are not supported", where)
		}
	default:
		v.errorf("%s: unknown type %q", where, f.Type)
		return
	}
	if f.Policy != "" && !isEnum {
		v.errorf("%s: policy applies to enum fields only", where)
	}
	if f.Default != "" {
		v.literal(where, f)
	}
}

func (v *validator) literal(where string, f *Field) {
	if f.Repeated || f.Map {
		v.errorf("%s: list and map fields cannot take a default", where)
		return
	}
	var err error
	switch f.Type {
	case TypeInt, TypeInt64:
		_, err = strconv.ParseInt(f.Default, 10, 64)
	case TypeFloat64:
		_, err = strconv.ParseFloat(f.Default, 64)
	case TypeBool:
		_, err = strconv.ParseBool(f.Default)
	case TypeTime, TypeAny:
		err = fmt.Errorf("%s fields cannot take a default", f.Type)
	}
	if e, ok := v.api.Enum(f.Type); ok && !slices.Contains(e.Values, f.Default) {
		err = fmt.Errorf("not a value of %s", e.Name)
	}
	if err != nil {
		v.errorf("%s: invalid default %q: %v", where, f.Default, err)
	}
}

func (v *validator) union(u *Union) {
	if u.Discriminator == "" {
		v.errorf("union %s has no discriminator", u.Name)
	}
	base, ok := v.api.Message(u.Base)
	if !ok {
		v.errorf("union %s: unknown base message %q", u.Name, u.Base)
	} else if f, ok := base.Field(u.Discriminator); !ok || f.Type != TypeString || f.Repeated || f.Map {
		v.errorf("union %s: base message %s must declare %q as a string field", u.Name, u.Base, u.Discriminator)
	}
	if len(u.Variants) == 0 {
		v.errorf("union %s has no variants", u.Name)
	}
	values := map[string]bool{}
	for _, vr := range u.Variants {
		if vr.Value == "" || values[vr.Value] {
			v.errorf("union %s: empty or duplicate discriminator value %q", u.Name, vr.Value)
		}
		values[vr.Value] = true
		m, ok := v.api.Message(vr.Message)
		if !ok {
			v.errorf("union %s: unknown variant message %q", u.Name, vr.Message)
			continue
		}
		if vr.Message == u.Base {
			v.errorf("union %s: the base message cannot be a variant", u.Name)
		}
		if _, ok := m.Field(u.Discriminator); ok {
			v.errorf("union %s: variant %s must not declare the discriminator %q", u.Name, m.Name, u.Discriminator)
		}
	}
}

func (v *validator) method(m *Method) {
	if !slices.Contains(verbs, m.Verb) {
		v.errorf("method %s: unsupported verb %q", m.Name, m.Verb)
	}
	if !strings.HasPrefix(m.Path, "/") {
		v.errorf("method %s: path %q must start with /", m.Name, m.Path)
	}
	var inPath []string
	for _, match := range placeholder.FindAllStringSubmatch(m.Path, -1) {
		inPath = append(inPath, match[1])
	}
	var declared []string
	for _, p := range m.PathParams {
		declared = append(declared, p.Name)
		if p.Type != "" && p.Type != TypeString {
			v.errorf("method %s: path parameter %s must be a string", m.Name, p.Name)
		}
	}
	slices.Sort(inPath)
	slices.Sort(declared)
	if !slices.Equal(inPath, declared) {
		v.errorf("method %s: path placeholders %v do not match path parameters %v", m.Name, inPath, declared)
	}
	seen := map[string]bool{}
	for _, p := range m.QueryParams {
		if seen[p.Name] {
			v.errorf("method %s: duplicate query parameter %s", m.Name, p.Name)
		}
		seen[p.Name] = true
		v.param(m, p)
	}
	if m.Body != nil {
		if _, ok := v.api.Message(m.Body.Message); !ok {
			v.errorf("method %s: unknown body message %q", m.Name, m.Body.Message)
		}
		if m.Body.Name == "" {
			v.errorf("method %s: body has no name", m.Name)
		}
	}
	if r := m.Response; r != nil {
		switch {
		case r.Binary && (r.Message != "" || r.List):
			v.errorf("method %s: a binary response has no message", m.Name)
		case !r.Binary:
			if _, ok := v.api.Message(r.Message); !ok {
				v.errorf("method %s: unknown response message %q", m.Name, r.Message)
			}
		}
	}
}

func (v *validator) param(m *Method, p *Param) {
	t := p.Type
	if t == "" {
		t = TypeString
	}
	_, isEnum := v.api.Enum(t)
	if !isEnum && t != TypeString && t != TypeInt && t != TypeInt64 && t != TypeBool && t != TypeTime {
		v.errorf("method %s: query parameter %s has unsupported type %q", m.Name, p.Name, p.Type)
	}
	if len(p.Values) > 0 && t != TypeString && !isEnum {
		v.errorf("method %s: query parameter %s restricts values but is not a string", m.Name, p.Name)
	}
	if p.Required && t != TypeString {
		v.errorf("method %s: required query parameter %s must be a string", m.Name, p.Name)
	}
}
