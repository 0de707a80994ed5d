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

package generator

import (
	"fmt"
	"go/token"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudsdk/sdk/internal/api"
	"github.com/iancoleman/strcase"
)

// initialisms are written in upper case in Go names.
var initialisms = map[string]string{
	"api": "API", "http": "HTTP", "https": "HTTPS", "id": "ID", "ids": "IDs",
	"json": "JSON", "uri": "URI", "url": "URL", "dns": "DNS", "ip": "IP",
	"tcp": "TCP", "ocid": "OCID", "ssl": "SSL", "ui": "UI", "sql": "SQL",
}

// reserved are method names of generated models that fields must not use.
var reserved = map[string]bool{
	"TypeName": true, "ToMap": true, "Equal": true, "Hash": true,
	"MarshalJSON": true, "UnmarshalJSON": true,
}

var verbConsts = map[string]string{
	http.MethodGet:    "http.MethodGet",
	http.MethodPost:   "http.MethodPost",
	http.MethodPut:    "http.MethodPut",
	http.MethodPatch:  "http.MethodPatch",
	http.MethodDelete: "http.MethodDelete",
	http.MethodHead:   "http.MethodHead",
}

var converters = map[string]string{
	api.TypeString:  "model.AsString",
	api.TypeInt:     "model.AsInt",
	api.TypeInt64:   "model.AsInt64",
	api.TypeFloat64: "model.AsFloat64",
	api.TypeBool:    "model.AsBool",
	api.TypeTime:    "model.AsTime",
	api.TypeAny:     "model.AsAny",
}

var goTypes = map[string]string{
	api.TypeString:  "string",
	api.TypeInt:     "int",
	api.TypeInt64:   "int64",
	api.TypeFloat64: "float64",
	api.TypeBool:    "bool",
	api.TypeTime:    "time.Time",
	api.TypeAny:     "any",
}

// goName converts a wire name to an exported Go identifier.
func goName(wire string) string {
	var b strings.Builder
	for _, word := range strings.Split(strcase.ToSnake(wire), "_") {
		if word == "" {
			continue
		}
		if up, ok := initialisms[word]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]) + word[1:])
	}
	return b.String()
}

// varName converts a Go type name to an unexported identifier.
func varName(name string) string {
	n := strcase.ToLowerCamel(name)
	if token.IsKeyword(n) {
		n += "Value"
	}
	return n
}

// comment formats the Markdown doc as Go comment lines, using fallback when
// doc is empty.
func comment(doc, fallback string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		doc = fallback
	}
	lines := docLines(doc)
	for i, l := range lines {
		if strings.HasPrefix(l, "\t") {
			lines[i] = "//" + l
			continue
		}
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}

func quoteList(values []string) string {
	q := make([]string, len(values))
	for i, v := range values {
		q[i] = strconv.Quote(v)
	}
	return strings.Join(q, ", ")
}

type serviceData struct {
	Package          string
	Title            string
	Version          string
	APIVersion       string
	EndpointTemplate string
	Enums            []*enumData
	Messages         []*messageData
	Unions           []*unionData
	Methods          []*methodData
	// HasTime reports whether a model field holds a time.
	HasTime bool
	// QueryTime reports whether a query parameter holds a time.
	QueryTime bool
}

type enumData struct {
	Name    string
	Comment string
	Lenient string
	Strict  string
	Values  []*enumValue
	List    string
}

type enumValue struct {
	Const string
	Value string
}

type messageData struct {
	Name      string
	Comment   string
	Schema    string
	Fields    []*fieldData
	Attrs     []string
	Accessors []*accessorData
	Unions    []string
	// Defaults reports whether any attribute declares a default.
	Defaults bool
}

type fieldData struct {
	Name    string
	Type    string
	Comment string
}

type accessorData struct {
	Wire    string
	Field   string
	Getter  string
	Setter  string
	Type    string
	Elem    string
	Spec    string
	Strict  bool
	List    bool
	Message string
}

type unionData struct {
	Name          string
	Comment       string
	Marker        string
	Discriminator string
	Local         string
	Base          string
	Variants      []*variantData
}

type variantData struct {
	Value   string
	Message string
}

type methodData struct {
	Name        string
	Comment     string
	Op          string
	Verb        string
	Path        string
	Mutating    bool
	Binary      bool
	Request     string
	Params      []*fieldData
	Validations []string
	Bindings    []string
	Result      string
	Call        string
}

type annotator struct {
	api  *api.API
	data *serviceData
}

func annotate(a *api.API) (*serviceData, error) {
	n := &annotator{
		api: a,
		data: &serviceData{
			Package:          a.Name,
			Title:            a.Title,
			Version:          a.Version,
			APIVersion:       a.APIVersion,
			EndpointTemplate: a.EndpointTemplate,
		},
	}
	if n.data.Title == "" {
		n.data.Title = goName(a.Name)
	}
	for _, e := range a.Enums {
		n.data.Enums = append(n.data.Enums, n.enum(e))
	}
	variants := map[string][]string{}
	for _, u := range a.Unions {
		ud := n.union(u)
		n.data.Unions = append(n.data.Unions, ud)
		variants[u.Base] = append(variants[u.Base], ud.Marker)
		for _, v := range u.Variants {
			variants[v.Message] = append(variants[v.Message], ud.Marker)
		}
	}
	for _, m := range a.Messages {
		md, err := n.message(m)
		if err != nil {
			return nil, err
		}
		md.Unions = variants[m.Name]
		n.data.Messages = append(n.data.Messages, md)
	}
	for _, m := range a.Methods {
		md, err := n.method(m)
		if err != nil {
			return nil, err
		}
		n.data.Methods = append(n.data.Methods, md)
	}
	return n.data, nil
}

func (n *annotator) enum(e *api.Enum) *enumData {
	d := &enumData{
		Name:    e.Name,
		Comment: comment(e.Doc, fmt.Sprintf("%s enumerates the values of the %s enum.", e.Name, e.Name)),
		Lenient: varName(e.Name) + "Lenient",
		Strict:  varName(e.Name) + "Strict",
		List:    quoteList(e.Values),
	}
	for _, v := range e.Values {
		d.Values = append(d.Values, &enumValue{
			Const: e.Name + goName(strings.ToLower(v)),
			Value: v,
		})
	}
	return d
}

func (n *annotator) union(u *api.Union) *unionData {
	d := &unionData{
		Name:          u.Name,
		Comment:       comment(u.Doc, fmt.Sprintf("%s is one of the variants selected by %s.", u.Name, u.Discriminator)),
		Marker:        "is" + u.Name,
		Discriminator: u.Discriminator,
		Local:         strcase.ToSnake(u.Discriminator),
		Base:          u.Base,
	}
	for _, v := range u.Variants {
		d.Variants = append(d.Variants, &variantData{Value: v.Value, Message: v.Message})
	}
	return d
}

func (n *annotator) message(m *api.Message) (*messageData, error) {
	d := &messageData{
		Name:    m.Name,
		Comment: comment(m.Doc, fmt.Sprintf("%s is a model of the %s API.", m.Name, n.data.Title)),
		Schema:  varName(m.Name) + "Schema",
	}
	for _, u := range n.api.Unions {
		for _, v := range u.Variants {
			if v.Message == m.Name {
				d.Attrs = append(d.Attrs, fmt.Sprintf("model.Discriminant[%s](%q, %q, %q)",
					m.Name, u.Discriminator, strcase.ToSnake(u.Discriminator), v.Value))
			}
		}
	}
	for _, f := range m.Fields {
		if err := n.field(m, f, d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (n *annotator) field(m *api.Message, f *api.Field, d *messageData) error {
	local := f.Local
	if local == "" {
		local = strcase.ToSnake(f.Name)
	}
	name := goName(f.Name)
	if reserved[name] {
		name += "Field"
	}
	_, isEnum := n.api.Enum(f.Type)
	if isEnum {
		name = varName(f.Name)
	}
	elem := n.elemType(f.Type)
	typ := elem
	switch {
	case f.Repeated:
		typ = "[]" + elem
	case f.Map:
		typ = "map[string]" + elem
	}
	if f.Type == api.TypeTime {
		n.data.HasTime = true
	}
	get := fmt.Sprintf("func(m *%s) *model.Value[%s] { return &m.%s }", m.Name, typ, name)
	wire := fmt.Sprintf("%q, %q", f.Name, local)
	var def string
	if f.Default != "" {
		lit, err := n.literal(f)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", m.Name, f.Name, err)
		}
		def = fmt.Sprintf(", model.Default[%s](%s)", typ, lit)
		d.Defaults = true
	}

	var attr string
	_, isMessage := n.api.Message(f.Type)
	_, isUnion := n.api.Union(f.Type)
	switch {
	case isEnum:
		spec := varName(f.Type) + "Lenient"
		if f.Strict() {
			spec = varName(f.Type) + "Strict"
		}
		ctor := "model.Enum"
		if f.Repeated {
			ctor = "model.EnumList"
		}
		attr = fmt.Sprintf("%s(%s, %s, %s%s)", ctor, wire, spec, get, def)
		d.Accessors = append(d.Accessors, &accessorData{
			Wire:    f.Name,
			Field:   name,
			Getter:  goName(f.Name),
			Setter:  "Set" + goName(f.Name),
			Type:    typ,
			Elem:    elem,
			Spec:    spec,
			Strict:  f.Strict(),
			List:    f.Repeated,
			Message: m.Name,
		})
	case isMessage && f.Repeated:
		attr = fmt.Sprintf("model.ObjectList(%s, %sSchema, %s)", wire, varName(f.Type), get)
	case isMessage:
		attr = fmt.Sprintf("model.Object(%s, %sSchema, %s)", wire, varName(f.Type), get)
	case isUnion:
		attr = fmt.Sprintf("model.Poly(%s, Decode%s, %s)", wire, f.Type, get)
	case f.Repeated:
		attr = fmt.Sprintf("model.List(%s, %s, %s%s)", wire, converters[f.Type], get, def)
	case f.Map:
		attr = fmt.Sprintf("model.Dict(%s, %s, %s%s)", wire, converters[f.Type], get, def)
	default:
		attr = fmt.Sprintf("model.Scalar(%s, %s, %s%s)", wire, converters[f.Type], get, def)
	}
	d.Attrs = append(d.Attrs, attr)
	fallback := fmt.Sprintf("%s is the %s attribute.", name, f.Name)
	if isEnum {
		fallback = ""
	}
	fd := &fieldData{Name: name, Type: "model.Value[" + typ + "]"}
	if f.Doc != "" || fallback != "" {
		fd.Comment = comment(f.Doc, fallback)
	}
	d.Fields = append(d.Fields, fd)
	return nil
}

func (n *annotator) elemType(t string) string {
	if g, ok := goTypes[t]; ok {
		return g
	}
	if _, ok := n.api.Message(t); ok {
		return "*" + t
	}
	return t
}

func (n *annotator) literal(f *api.Field) (string, error) {
	switch f.Type {
	case api.TypeString:
		return strconv.Quote(f.Default), nil
	case api.TypeInt, api.TypeInt64, api.TypeFloat64, api.TypeBool:
		return f.Default, nil
	}
	if _, ok := n.api.Enum(f.Type); ok {
		return strconv.Quote(f.Default), nil
	}
	return "", fmt.Errorf("type %s cannot take a default", f.Type)
}

func (n *annotator) method(m *api.Method) (*methodData, error) {
	d := &methodData{
		Name:     m.Name,
		Comment:  comment(m.Doc, fmt.Sprintf("%s calls %s %s.", m.Name, m.Verb, m.Path)),
		Op:       varName(m.Name) + "Op",
		Verb:     verbConsts[m.Verb],
		Path:     m.Path,
		Mutating: m.Mutating,
		Request:  m.Name + "Request",
	}
	d.Validations = append(d.Validations, check(`client.RequireNonNil(op, "request", req)`))
	for _, p := range m.PathParams {
		field := goName(p.Name)
		d.Params = append(d.Params, &fieldData{
			Name:    field,
			Type:    "string",
			Comment: comment(p.Doc, fmt.Sprintf("%s is the %s path parameter. Required.", field, p.Name)),
		})
		d.Validations = append(d.Validations, check(fmt.Sprintf("client.RequirePath(op, %q, req.%s)", p.Name, field)))
		d.Bindings = append(d.Bindings, fmt.Sprintf("r.PathParam(%q, req.%s)", p.Name, field))
	}
	for _, p := range m.QueryParams {
		n.query(d, p)
	}
	if m.Body != nil {
		field := goName(m.Body.Name)
		d.Params = append(d.Params, &fieldData{
			Name:    field,
			Type:    "*" + m.Body.Message,
			Comment: comment("", fmt.Sprintf("%s is the request body. Required.", field)),
		})
		d.Validations = append(d.Validations, check(fmt.Sprintf("client.RequireNonNil(op, %q, req.%s)", m.Body.Name, field)))
		d.Bindings = append(d.Bindings, fmt.Sprintf("r.Body(req.%s)", field))
	}
	headers := []struct {
		field, header, doc string
		on                 bool
	}{
		{"OpcRequestID", "client.HeaderRequestID", "OpcRequestID is a unique identifier for the request.", true},
		{"IfMatch", "client.HeaderIfMatch", "IfMatch is the etag the resource must match for the call to proceed.", m.IfMatch},
		{"OpcRetryToken", "client.HeaderRetryToken", "OpcRetryToken makes the call idempotent. One is generated when unset.", m.Mutating},
	}
	for _, h := range headers {
		if !h.on {
			continue
		}
		d.Params = append(d.Params, &fieldData{Name: h.field, Type: "model.Value[string]", Comment: comment(h.doc, "")})
		d.Bindings = append(d.Bindings, fmt.Sprintf("if v, ok := req.%s.Get(); ok {\nr.Header(%s, v)\n}", h.field, h.header))
	}

	r := m.Response
	switch {
	case r == nil:
		d.Result = "struct{}"
		d.Call = "client.Call[struct{}](ctx, c.BaseClient, r, nil, opts...)"
	case r.Binary:
		d.Binary = true
		d.Result = "[]byte"
		d.Call = "client.CallBinary(ctx, c.BaseClient, r, opts...)"
	case r.List:
		d.Result = "[]*" + r.Message
		d.Call = fmt.Sprintf("client.Call[[]*%s](ctx, c.BaseClient, r, model.ListOf[*%s](Decode%s), opts...)", r.Message, r.Message, r.Message)
	default:
		d.Result = "*" + r.Message
		d.Call = fmt.Sprintf("client.Call[*%s](ctx, c.BaseClient, r, Decode%s, opts...)", r.Message, r.Message)
	}
	return d, nil
}

func (n *annotator) query(d *methodData, p *api.Param) {
	field := goName(p.Name)
	t := p.Type
	if t == "" {
		t = api.TypeString
	}
	typ := n.elemType(t)
	if p.Name == "sortOrder" {
		typ = "client.SortOrder"
	}
	if t == api.TypeTime {
		n.data.QueryTime = true
	}
	if p.Required {
		d.Params = append(d.Params, &fieldData{
			Name:    field,
			Type:    typ,
			Comment: comment(p.Doc, fmt.Sprintf("%s is the %s query parameter. Required.", field, p.Name)),
		})
		d.Validations = append(d.Validations, check(fmt.Sprintf("client.RequireString(op, %q, req.%s)", p.Name, field)))
		if len(p.Values) > 0 {
			d.Validations = append(d.Validations, check(fmt.Sprintf("client.ValidateFilter(op, %q, req.%s, []string{%s})", p.Name, field, quoteList(p.Values))))
		}
		d.Bindings = append(d.Bindings, fmt.Sprintf("r.Query(%q, req.%s)", p.Name, field))
		return
	}
	d.Params = append(d.Params, &fieldData{
		Name:    field,
		Type:    "model.Value[" + typ + "]",
		Comment: comment(p.Doc, fmt.Sprintf("%s is the %s query parameter.", field, p.Name)),
	})
	value := fmt.Sprintf("req.%s.OrZero()", field)
	switch {
	case p.Name == "sortOrder":
		d.Validations = append(d.Validations, check(fmt.Sprintf("client.ValidateSortOrder(op, %s)", value)))
	case p.Name == "sortBy" && len(p.Values) > 0:
		d.Validations = append(d.Validations, check(fmt.Sprintf("client.ValidateSortBy(op, %s, []string{%s})", value, quoteList(p.Values))))
	case len(p.Values) > 0:
		d.Validations = append(d.Validations, check(fmt.Sprintf("client.ValidateFilter(op, %q, %s, []string{%s})", p.Name, value, quoteList(p.Values))))
	default:
		if _, ok := n.api.Enum(t); ok {
			d.Validations = append(d.Validations, check(fmt.Sprintf("client.ValidateFilter(op, %q, %s, %sStrict.Values())", p.Name, value, varName(t))))
		}
	}
	d.Bindings = append(d.Bindings, fmt.Sprintf("client.SetQuery(r, %q, req.%s)", p.Name, field))
}

func check(call string) string {
	return fmt.Sprintf("if err := %s; err != nil {\nreturn nil, err\n}", call)
}
