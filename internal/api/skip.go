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
	"fmt"
	"slices"
)

// SkipElements prunes the descriptor of elements that are not wanted.
//
// If included is set, any element that is not one of the listed names or a
// dependency of one of them is pruned. If skipped is set, any element named
// in it is pruned. It is an error to set both.
func SkipElements(a *API, included, skipped []string) error {
	if len(included) > 0 && len(skipped) > 0 {
		return fmt.Errorf("both included and skipped names set, only set one")
	}
	if len(included) > 0 {
		keep, err := FindDependencies(a, included)
		if err != nil {
			return err
		}
		skipElements(a, func(name string) bool { return !keep[name] })
	}
	if len(skipped) > 0 {
		drop := map[string]bool{}
		for _, name := range skipped {
			drop[name] = true
		}
		skipElements(a, func(name string) bool { return drop[name] })
	}
	return nil
}

func skipElements(a *API, skip func(name string) bool) {
	a.Enums = slices.DeleteFunc(a.Enums, func(x *Enum) bool { return skip(x.Name) })
	a.Messages = slices.DeleteFunc(a.Messages, func(x *Message) bool { return skip(x.Name) })
	a.Unions = slices.DeleteFunc(a.Unions, func(x *Union) bool { return skip(x.Name) })
	a.Methods = slices.DeleteFunc(a.Methods, func(x *Method) bool { return skip(x.Name) })
	a.reindex()
}

// FindDependencies returns the names of the given elements and of every
// element they reference, transitively.
func FindDependencies(a *API, names []string) (map[string]bool, error) {
	deps := map[string]bool{}
	var visit func(name string) error
	visit = func(name string) error {
		if deps[name] {
			return nil
		}
		if _, ok := a.Enum(name); ok {
			deps[name] = true
			return nil
		}
		deps[name] = true
		var refs []string
		if m, ok := a.Message(name); ok {
			for _, f := range m.Fields {
				if !IsScalar(f.Type) {
					refs = append(refs, f.Type)
				}
			}
		} else if u, ok := a.Union(name); ok {
			refs = append(refs, u.Base)
			for _, v := range u.Variants {
				refs = append(refs, v.Message)
			}
		} else if m, ok := a.Method(name); ok {
			for _, p := range m.QueryParams {
				if p.Type != "" && !IsScalar(p.Type) {
					refs = append(refs, p.Type)
				}
			}
			if m.Body != nil {
				refs = append(refs, m.Body.Message)
			}
			if m.Response != nil && m.Response.Message != "" {
				refs = append(refs, m.Response.Message)
			}
		} else {
			return fmt.Errorf("cannot find element %q", name)
		}
		for _, r := range refs {
			if err := visit(r); err != nil {
				return err
			}
		}
		return nil
	}
	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return deps, nil
}
