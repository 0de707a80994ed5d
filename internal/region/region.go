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

// Package region resolves region identifiers to service endpoints.
package region

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/cloudsdk/sdk/internal/yaml"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultRealm is assumed for regions missing from the catalog.
const DefaultRealm = "oc1"

const endpointCacheSize = 256

//go:embed regions.yaml
var catalogYAML []byte

// Realm is a set of regions sharing a second-level domain.
type Realm struct {
	ID     string `yaml:"id"`
	Domain string `yaml:"domain"`
}

// Region is one entry of the region catalog.
type Region struct {
	ID    string `yaml:"id"`
	Short string `yaml:"short"`
	Realm string `yaml:"realm"`
}

type catalog struct {
	Realms  []Realm  `yaml:"realms"`
	Regions []Region `yaml:"regions"`
}

// ErrEmptyRegion is returned when an empty region identifier is resolved.
var ErrEmptyRegion = errors.New("region identifier is empty")

// Resolver maps region identifiers and short codes to regions and
// endpoints. It is safe for concurrent use.
type Resolver struct {
	realms  map[string]Realm
	regions map[string]Region
	order   []string
	cache   *lru.Cache[string, string]
	logger  *slog.Logger
}

// NewResolver returns a Resolver over the built-in region catalog.
func NewResolver(logger *slog.Logger) (*Resolver, error) {
	return NewResolverFromYAML(catalogYAML, logger)
}

// NewResolverFromYAML returns a Resolver over the catalog in data.
func NewResolverFromYAML(data []byte, logger *slog.Logger) (*Resolver, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c, err := yaml.UnmarshalStrict[catalog](data)
	if err != nil {
		return nil, fmt.Errorf("parse region catalog: %w", err)
	}
	cache, err := lru.New[string, string](endpointCacheSize)
	if err != nil {
		return nil, err
	}
	r := &Resolver{
		realms:  make(map[string]Realm, len(c.Realms)),
		regions: make(map[string]Region, len(c.Regions)*2),
		cache:   cache,
		logger:  logger,
	}
	for _, realm := range c.Realms {
		r.realms[realm.ID] = realm
	}
	if _, ok := r.realms[DefaultRealm]; !ok {
		return nil, fmt.Errorf("region catalog: missing default realm %q", DefaultRealm)
	}
	for _, reg := range c.Regions {
		if _, ok := r.realms[reg.Realm]; !ok {
			return nil, fmt.Errorf("region catalog: region %q references unknown realm %q", reg.ID, reg.Realm)
		}
		r.regions[reg.ID] = reg
		if reg.Short != "" {
			r.regions[reg.Short] = reg
		}
		r.order = append(r.order, reg.ID)
	}
	return r, nil
}

// Lookup returns the region for id, which may be a region identifier or a
// short code in any case. Unknown regions are returned in the default realm
// and reported with known set to false.
func (r *Resolver) Lookup(id string) (reg Region, known bool, err error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		return Region{}, false, ErrEmptyRegion
	}
	if reg, ok := r.regions[key]; ok {
		return reg, true, nil
	}
	r.logger.Info("unknown region, assuming default realm", "region", key, "realm", DefaultRealm)
	return Region{ID: key, Realm: DefaultRealm}, false, nil
}

// Realm returns the realm with the given identifier.
func (r *Resolver) Realm(id string) (Realm, bool) {
	realm, ok := r.realms[id]
	return realm, ok
}

// Regions returns the catalog regions in catalog order.
func (r *Resolver) Regions() []Region {
	out := make([]Region, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.regions[id])
	}
	return out
}

// Endpoint fills the {region} and {secondLevelDomain} placeholders of
// template for the region named id.
func (r *Resolver) Endpoint(template, id string) (string, error) {
	reg, _, err := r.Lookup(id)
	if err != nil {
		return "", err
	}
	key := template + "\x00" + reg.ID
	if ep, ok := r.cache.Get(key); ok {
		return ep, nil
	}
	realm := r.realms[reg.Realm]
	ep := strings.NewReplacer("{region}", reg.ID, "{secondLevelDomain}", realm.Domain).Replace(template)
	r.cache.Add(key, ep)
	r.logger.Debug("resolved endpoint", "template", template, "region", reg.ID, "endpoint", ep)
	return ep, nil
}

// Known reports whether id names a catalog region or short code.
func (r *Resolver) Known(id string) bool {
	_, ok := r.regions[strings.ToLower(strings.TrimSpace(id))]
	return ok
}

// IDs returns the sorted catalog region identifiers.
func (r *Resolver) IDs() []string {
	ids := slices.Clone(r.order)
	slices.Sort(ids)
	return ids
}
