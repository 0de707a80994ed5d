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

//go:build configdocgen

package main

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/token"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

var (
	inputDir   = flag.String("input", "internal/config", "Input directory containing config structs")
	outputFile = flag.String("output", "doc/config-schema.md", "Output file for documentation")
	rootStruct = flag.String("root", "Config", "The name of the root struct to start documentation from")
	rootTitle  = flag.String("root-title", "Root", "The title to use for the root struct block")
	tag        = flag.String("tag", "yaml", "The struct tag to use for field names (e.g., yaml, toml)")
	envPrefix  = flag.String("env-prefix", "SDK_", "Document string constants with this prefix as environment variables")
	title      = flag.String("title", "config.yaml", "The title of the generated Markdown page")
)

const (
	primaryConfigFile = "config.go"

	titleSuffix  = " Configuration"
	anchorSuffix = "-configuration"
	rootAnchor   = "root-configuration"
)

var docTemplate = template.Must(template.New("doc").Parse(`# {{.Title}} Schema

This document describes the schema for the {{.Title}} profile file. The same
keys are accepted in TOML files.
{{range .Structs}}
## {{.Title}}

{{if .SourceLink}}[Link to code]({{.SourceLink}})
{{end}}{{if .Doc}}{{.Doc}}
{{end}}| Field | Type | Description |
| :--- | :--- | :--- |
{{range .Fields}}| {{.Name}} | {{.Type}} | {{.Description}} |
{{end}}{{end}}{{if .Env}}
## Environment

Non-empty variables override the selected profile. They are read from the
process environment and from a .env file, with the process environment
taking precedence.

| Variable | Constant | Description |
| :--- | :--- | :--- |
{{range .Env}}| ` + "`{{.Name}}`" + ` | {{.Constant}} | {{.Description}} |
{{end}}{{end}}`))

type pageData struct {
	Title   string
	Structs []structData
	Env     []envData
}

type structData struct {
	Title      string
	SourceLink string
	Doc        string
	Fields     []fieldData
}

type fieldData struct {
	Name        string
	Type        string
	Description string
}

type envData struct {
	Name        string
	Constant    string
	Description string
}

// main scans the config package for struct definitions and environment
// variable constants and writes a Markdown schema for the profile file.
func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	pkg, err := loadPackage(*inputDir)
	if err != nil {
		return fmt.Errorf("loading package: %w", err)
	}
	d, err := newDocData(pkg, *rootStruct, *rootTitle, *tag, *title, *envPrefix)
	if err != nil {
		return fmt.Errorf("inspecting package syntax: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(*outputFile), 0755); err != nil {
		return err
	}
	output, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		cerr := output.Close()
		if err == nil {
			err = cerr
		}
	}()
	if err := d.generate(output); err != nil {
		return fmt.Errorf("generating documentation: %w", err)
	}
	return nil
}

// loadPackage loads the Go package in inputDir with its syntax trees.
func loadPackage(inputDir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedName | packages.NeedFiles | packages.NeedModule,
		Dir:  inputDir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", inputDir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}
	return pkg, nil
}

// docData holds what generate needs from the package.
type docData struct {
	pkg         *packages.Package
	structs     map[string]*ast.StructType
	docs        map[string]string
	sources     map[string]string
	configKeys  []string
	otherKeys   []string
	env         []envData
	rootStruct  string
	rootHeading string
	tag         string
	title       string
	envPrefix   string
}

func newDocData(pkg *packages.Package, rootStruct, rootHeading, tag, title, envPrefix string) (*docData, error) {
	d := &docData{
		pkg:         pkg,
		structs:     make(map[string]*ast.StructType),
		docs:        make(map[string]string),
		sources:     make(map[string]string),
		rootStruct:  rootStruct,
		rootHeading: rootHeading,
		tag:         tag,
		title:       title,
		envPrefix:   envPrefix,
	}

	moduleRoot := "."
	if pkg.Module != nil {
		moduleRoot = pkg.Module.Dir
	}

	for _, file := range pkg.Syntax {
		fileName := pkg.Fset.File(file.Pos()).Name()
		relPath, err := filepath.Rel(moduleRoot, fileName)
		if err != nil {
			return nil, err
		}
		isConfig := filepath.Base(fileName) == primaryConfigFile
		ast.Inspect(file, func(n ast.Node) bool {
			decl, ok := n.(*ast.GenDecl)
			if !ok {
				return true
			}
			switch decl.Tok {
			case token.TYPE:
				for _, spec := range decl.Specs {
					ts := spec.(*ast.TypeSpec)
					doc := ts.Doc
					if doc == nil && !decl.Lparen.IsValid() {
						doc = decl.Doc
					}
					d.collectStruct(ts, doc, relPath, isConfig)
				}
			case token.CONST:
				d.collectEnv(decl)
			}
			return false
		})
	}

	sort.Strings(d.otherKeys)
	sort.Slice(d.env, func(i, j int) bool { return d.env[i].Name < d.env[j].Name })
	return d, nil
}

func (d *docData) collectStruct(ts *ast.TypeSpec, doc *ast.CommentGroup, relPath string, isConfig bool) {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return
	}
	name := ts.Name.Name
	if !ast.IsExported(name) || d.structs[name] != nil {
		return
	}
	d.structs[name] = st
	if doc != nil {
		d.docs[name] = cleanDoc(doc.Text())
	}
	line := d.pkg.Fset.Position(ts.Pos()).Line
	d.sources[name] = fmt.Sprintf("../%s#L%d", relPath, line)
	if isConfig {
		d.configKeys = append(d.configKeys, name)
	} else {
		d.otherKeys = append(d.otherKeys, name)
	}
}

// collectEnv records string constants whose value has the environment
// prefix. A spec without its own comment inherits the block comment.
func (d *docData) collectEnv(decl *ast.GenDecl) {
	block := ""
	if decl.Doc != nil {
		block = cleanDoc(decl.Doc.Text())
	}
	for _, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		for i, name := range vs.Names {
			if i >= len(vs.Values) {
				continue
			}
			lit, ok := vs.Values[i].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			value, err := strconv.Unquote(lit.Value)
			if err != nil || !strings.HasPrefix(value, d.envPrefix) {
				continue
			}
			desc := block
			if vs.Doc != nil {
				desc = cleanDoc(vs.Doc.Text())
			} else if vs.Comment != nil {
				desc = cleanDoc(vs.Comment.Text())
			}
			d.env = append(d.env, envData{
				Name:        value,
				Constant:    name.Name,
				Description: desc,
			})
		}
	}
}

// generate writes the collected documentation in Markdown format.
func (d *docData) generate(output io.Writer) error {
	page := pageData{
		Title: d.title,
		Env:   d.env,
	}
	for _, k := range append(d.configKeys, d.otherKeys...) {
		page.Structs = append(page.Structs, d.collectStructData(k, d.sources[k]))
	}
	return docTemplate.Execute(output, page)
}

func (d *docData) collectStructData(name, sourceLink string) structData {
	st := d.structs[name]
	title := name + titleSuffix
	if name == d.rootStruct {
		title = d.rootHeading + titleSuffix
	}
	sd := structData{
		Title:      title,
		SourceLink: sourceLink,
		Doc:        d.docs[name],
	}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			sd.Fields = append(sd.Fields, fieldData{
				Name: "(embedded)",
				Type: d.formatType(getTypeName(field.Type)),
			})
			continue
		}
		fieldName := d.getFieldName(field)
		if fieldName == "" || fieldName == "-" {
			continue
		}
		description := ""
		if field.Doc != nil {
			description = cleanDoc(field.Doc.Text())
		}
		sd.Fields = append(sd.Fields, fieldData{
			Name:        fmt.Sprintf("`%s`", fieldName),
			Type:        d.formatType(getTypeName(field.Type)),
			Description: description,
		})
	}
	return sd
}

// getFieldName returns the key named by the configured struct tag, or the
// Go field name when the tag is absent.
func (d *docData) getFieldName(field *ast.Field) string {
	if field.Tag != nil {
		tagValue := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		if val := tagValue.Get(d.tag); val != "" {
			return strings.Split(val, ",")[0]
		}
	}
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}
	return ""
}

func getTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + getTypeName(t.X)
	case *ast.ArrayType:
		return "[]" + getTypeName(t.Elt)
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", getTypeName(t.Key), getTypeName(t.Value))
	case *ast.SelectorExpr:
		return fmt.Sprintf("%s.%s", getTypeName(t.X), t.Sel.Name)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func (d *docData) formatType(typeName string) string {
	if rest, ok := strings.CutPrefix(typeName, "map["); ok {
		key, value, _ := strings.Cut(rest, "]")
		return fmt.Sprintf("map of %s to %s", key, d.formatType(value))
	}
	isSlice := strings.HasPrefix(typeName, "[]")
	cleanType := strings.TrimPrefix(typeName, "[]")
	isPointer := strings.HasPrefix(cleanType, "*")
	cleanType = strings.TrimPrefix(cleanType, "*")
	res := cleanType
	if _, ok := d.structs[cleanType]; ok {
		anchor := strings.ToLower(cleanType) + anchorSuffix
		if cleanType == d.rootStruct {
			anchor = rootAnchor
		}
		res = fmt.Sprintf("[%s](#%s)", cleanType, anchor)
	}
	if isPointer {
		res = res + " (optional)"
	}
	if isSlice {
		res = "list of " + res
	}
	return res
}

func cleanDoc(doc string) string {
	return strings.Join(strings.Fields(doc), " ")
}
