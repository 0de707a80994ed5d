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
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// docRenderer turns the Markdown of descriptor docs into Go doc comment
// text. Links become doc links whose definitions follow the text.
type docRenderer struct {
	src   []byte
	lines []string
	links []docLink
}

type docLink struct {
	label, url string
}

var markdown = goldmark.New()

// docLines converts Markdown doc to the lines of a Go doc comment, without
// the comment markers.
func docLines(doc string) []string {
	r := &docRenderer{src: []byte(doc)}
	root := markdown.Parser().Parse(text.NewReader(r.src))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		r.block(n, "", true)
	}
	if len(r.links) > 0 {
		r.lines = append(r.lines, "")
		for _, l := range r.links {
			r.lines = append(r.lines, fmt.Sprintf("[%s]: %s", l.label, l.url))
		}
	}
	return r.lines
}

// block renders one block node. separate adds a blank line before the block
// when earlier output exists.
func (r *docRenderer) block(n ast.Node, indent string, separate bool) {
	if _, ok := n.(*ast.ThematicBreak); ok {
		return
	}
	if separate && len(r.lines) > 0 {
		r.lines = append(r.lines, "")
	}
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		r.text(indent, indent, r.inlineText(n))
	case *ast.Heading:
		r.lines = append(r.lines, "# "+strings.ReplaceAll(r.inlineText(n), "\n", " "))
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			r.lines = append(r.lines, "\t"+strings.TrimRight(string(seg.Value(r.src)), "\n"))
		}
	case *ast.List:
		num := n.Start
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "  - "
			if n.IsOrdered() {
				marker = fmt.Sprintf("  %d. ", num)
				num++
			}
			r.listItem(item, indent, marker, !n.IsTight && item != n.FirstChild())
		}
	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			r.lines = append(r.lines, indent+strings.TrimSpace(string(seg.Value(r.src))))
		}
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.block(c, indent, c != n.FirstChild())
		}
	}
}

func (r *docRenderer) listItem(item ast.Node, indent, marker string, separate bool) {
	if separate {
		r.lines = append(r.lines, "")
	}
	cont := indent + strings.Repeat(" ", len(marker))
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if first {
				r.text(indent+marker, cont, r.inlineText(c))
			} else {
				r.text(cont, cont, r.inlineText(c))
			}
		default:
			r.block(c, cont, false)
		}
		first = false
	}
}

// text appends s, prefixing its first line with lead and the rest with
// cont.
func (r *docRenderer) text(lead, cont, s string) {
	for i, line := range strings.Split(s, "\n") {
		prefix := cont
		if i == 0 {
			prefix = lead
		}
		r.lines = append(r.lines, prefix+strings.TrimSpace(line))
	}
}

func (r *docRenderer) inlineText(n ast.Node) string {
	var b strings.Builder
	r.inline(&b, n)
	return strings.TrimSpace(b.String())
}

func (r *docRenderer) inline(b *strings.Builder, n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(r.src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.Link:
			label := r.inlineText(c)
			b.WriteString("[" + label + "]")
			r.addLink(label, string(c.Destination))
		case *ast.AutoLink:
			b.Write(c.URL(r.src))
		case *ast.RawHTML:
			for i := 0; i < c.Segments.Len(); i++ {
				seg := c.Segments.At(i)
				b.Write(seg.Value(r.src))
			}
		default:
			r.inline(b, c)
		}
	}
}

func (r *docRenderer) addLink(label, url string) {
	for _, l := range r.links {
		if l.label == label {
			return
		}
	}
	r.links = append(r.links, docLink{label: label, url: url})
}
