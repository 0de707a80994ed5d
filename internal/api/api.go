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

// Package api defines the service descriptors read by the code generator.
//
// A descriptor lists the enums, messages, unions and REST methods of one
// service API. Descriptors are written in YAML, see Load.
package api

import (
	"fmt"

	"github.com/cloudsdk/sdk/internal/yaml"
)

// Scalar field types.
const (
	TypeString  = "string"
	TypeInt     = "int"
	TypeInt64   = "int64"
	TypeFloat64 = "float64"
	TypeBool    = "bool"
	TypeTime    = "time"
	TypeAny     = "any"
)

// Enum policies.
const (
	PolicyLenient = "lenient"
	PolicyStrict  = "strict"
)

// API describes one service.
type API struct {
	// Name is the Go package name and the service name used in logs.
	Name string `yaml:"name"`
	// Title is the human readable name.
	Title string `yaml:"title"`
	// Version is the semantic version of the generated package, such as
	// v1.2.0.
	Version string `yaml:"version"`
	// APIVersion is the date-based version in every request path, such as
	// 20180501.
	APIVersion string `yaml:"api_version"`
	// EndpointTemplate contains {region} and {secondLevelDomain}
	// placeholders.
	EndpointTemplate string `yaml:"endpoint_template"`

	Enums    []*Enum    `yaml:"enums,omitempty"`
	Messages []*Message `yaml:"messages,omitempty"`
	Unions   []*Union   `yaml:"unions,omitempty"`
	Methods  []*Method  `yaml:"methods,omitempty"`

	state *state
}

// Enum is a closed set of string values.
type Enum struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc,omitempty"`
	Values []string `yaml:"values"`
}

// Message is a model type.
type Message struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc,omitempty"`
	Fields []*Field `yaml:"fields"`
}

// Field is one attribute of a message.
type Field struct {
	// Name is the wire name, in lowerCamel case.
	Name string `yaml:"name"`
	// Local overrides the local name, which defaults to the snake_case form
	// of Name.
	Local string `yaml:"local,omitempty"`
	Doc   string `yaml:"doc,omitempty"`
	// Type is a scalar type or the name of an enum, message or union.
	Type string `yaml:"type"`
	// Repeated fields hold a list of Type.
	Repeated bool `yaml:"repeated,omitempty"`
	// Map fields hold a map from string to Type.
	Map bool `yaml:"map,omitempty"`
	// Policy applies to enum fields; the default is lenient.
	Policy string `yaml:"policy,omitempty"`
	// Default is the literal assigned when the field is absent from the
	// input.
	Default string `yaml:"default,omitempty"`
}

// Union is a closed set of message variants selected by a discriminator.
type Union struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc,omitempty"`
	// Discriminator is the wire name of the field selecting the variant.
	Discriminator string `yaml:"discriminator"`
	// Base is the message used for missing or unrecognized discriminator
	// values. It must declare the discriminator as a string field.
	Base     string     `yaml:"base"`
	Variants []*Variant `yaml:"variants"`
}

// Variant maps a discriminator value to a message.
type Variant struct {
	Value   string `yaml:"value"`
	Message string `yaml:"message"`
}

// Method is one REST operation.
type Method struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc,omitempty"`
	Verb string `yaml:"verb"`
	// Path is relative to the API version and contains {param}
	// placeholders.
	Path        string   `yaml:"path"`
	PathParams  []*Param `yaml:"path_params,omitempty"`
	QueryParams []*Param `yaml:"query_params,omitempty"`
	Body        *Body    `yaml:"body,omitempty"`
	Response    *Result  `yaml:"response,omitempty"`
	// Mutating methods send an opc-retry-token.
	Mutating bool `yaml:"mutating,omitempty"`
	// IfMatch methods accept an if-match header.
	IfMatch bool `yaml:"if_match,omitempty"`
}

// Param is a path or query parameter.
type Param struct {
	// Name is the wire name.
	Name     string `yaml:"name"`
	Doc      string `yaml:"doc,omitempty"`
	Type     string `yaml:"type,omitempty"`
	Required bool   `yaml:"required,omitempty"`
	// Values restricts the accepted values. A sortBy parameter reports
	// violations as invalid sort fields, any other as invalid filters.
	Values []string `yaml:"values,omitempty"`
}

// Body is the request payload of a method.
type Body struct {
	Name    string `yaml:"name"`
	Message string `yaml:"message"`
}

// Result is the response payload of a method. A nil Result means the
// response has no body.
type Result struct {
	Message string `yaml:"message,omitempty"`
	List    bool   `yaml:"list,omitempty"`
	Binary  bool   `yaml:"binary,omitempty"`
}

type state struct {
	enums    map[string]*Enum
	messages map[string]*Message
	unions   map[string]*Union
	methods  map[string]*Method
}

// Load reads and validates the descriptor at path.
func Load(path string) (*API, error) {
	a, err := yaml.ReadStrict[API](path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return a, nil
}

// Enum returns the enum with the given name.
func (a *API) Enum(name string) (*Enum, bool) {
	e, ok := a.index().enums[name]
	return e, ok
}

// Message returns the message with the given name.
func (a *API) Message(name string) (*Message, bool) {
	m, ok := a.index().messages[name]
	return m, ok
}

// Union returns the union with the given name.
func (a *API) Union(name string) (*Union, bool) {
	u, ok := a.index().unions[name]
	return u, ok
}

// Method returns the method with the given name.
func (a *API) Method(name string) (*Method, bool) {
	m, ok := a.index().methods[name]
	return m, ok
}

func (a *API) index() *state {
	if a.state == nil {
		a.reindex()
	}
	return a.state
}

func (a *API) reindex() {
	s := &state{
		enums:    map[string]*Enum{},
		messages: map[string]*Message{},
		unions:   map[string]*Union{},
		methods:  map[string]*Method{},
	}
	for _, e := range a.Enums {
		s.enums[e.Name] = e
	}
	for _, m := range a.Messages {
		s.messages[m.Name] = m
	}
	for _, u := range a.Unions {
		s.unions[u.Name] = u
	}
	for _, m := range a.Methods {
		s.methods[m.Name] = m
	}
	a.state = s
}

// IsScalar reports whether t is one of the scalar field types.
func IsScalar(t string) bool {
	switch t {
	case TypeString, TypeInt, TypeInt64, TypeFloat64, TypeBool, TypeTime, TypeAny:
		return true
	}
	return false
}

// Field returns the field with the given wire name.
func (m *Message) Field(name string) (*Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Strict reports whether the field rejects unknown enum values.
func (f *Field) Strict() bool {
	return f.Policy == PolicyStrict
}
