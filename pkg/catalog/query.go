package catalog

import (
	"strings"

	"github.com/japaniel/glazekb/pkg/glaze"
)

type keyed[K comparable] interface {
	Key() K
}

// search keeps the records where any field returned by fields contains query,
// compared after plain lowercasing. An empty query returns everything. Order
// is the collection's order.
func search[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return append([]T{}, items...)
	}
	q := strings.ToLower(query)
	out := []T{}
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// first returns the first record whose key equals id.
func first[T keyed[K], K comparable](items []T, id K) (T, bool) {
	for _, it := range items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// byIDs returns the records whose key is in ids, in collection order. Unknown
// ids are skipped.
func byIDs[T keyed[K], K comparable](items []T, ids []K) []T {
	want := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := []T{}
	for _, it := range items {
		if _, ok := want[it.Key()]; ok {
			out = append(out, it)
		}
	}
	return out
}

func materialFields(m glaze.Material) []string {
	return append([]string{m.Name, m.Description}, m.AlternativeNames...)
}

func colorantFields(c glaze.Colorant) []string {
	return []string{c.Name, c.ChemicalName, c.Description}
}

func glazeTypeFields(g glaze.GlazeType) []string {
	return []string{g.Name, g.Description}
}

func firingTypeFields(f glaze.FiringType) []string {
	return []string{f.Name, f.Description}
}

func surfaceEffectFields(s glaze.SurfaceEffect) []string {
	return []string{s.Name, s.Description}
}

func safetyInfoFields(s glaze.SafetyInfo) []string {
	return []string{s.Title, s.Description}
}

func glossaryTermFields(g glaze.GlossaryTerm) []string {
	return append([]string{g.Term, g.Definition}, g.AlternativeTerms...)
}

func recipeFields(r glaze.Recipe) []string {
	fields := []string{r.Name, r.Cone, r.Atmosphere}
	for _, in := range r.Ingredients {
		fields = append(fields, in.Name)
	}
	for _, in := range r.Additives {
		fields = append(fields, in.Name)
	}
	return fields
}

// SearchMaterials matches name, description or any alternative name.
func (c *Catalog) SearchMaterials(query string) []glaze.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.materials, query, materialFields)
}

// SearchColorants matches name, chemical name or description.
func (c *Catalog) SearchColorants(query string) []glaze.Colorant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.colorants, query, colorantFields)
}

// SearchGlazeTypes matches name or description.
func (c *Catalog) SearchGlazeTypes(query string) []glaze.GlazeType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.glazeTypes, query, glazeTypeFields)
}

// SearchFiringTypes matches name or description.
func (c *Catalog) SearchFiringTypes(query string) []glaze.FiringType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.firingTypes, query, firingTypeFields)
}

// SearchSurfaceEffects matches name or description.
func (c *Catalog) SearchSurfaceEffects(query string) []glaze.SurfaceEffect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.surfaceEffects, query, surfaceEffectFields)
}

// SearchSafetyInfo matches title or description.
func (c *Catalog) SearchSafetyInfo(query string) []glaze.SafetyInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.safetyInfo, query, safetyInfoFields)
}

// SearchGlossaryTerms matches term, definition or any alternative term.
func (c *Catalog) SearchGlossaryTerms(query string) []glaze.GlossaryTerm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.glossaryTerms, query, glossaryTermFields)
}

// SearchRecipes matches name, cone, atmosphere or any ingredient or additive name.
func (c *Catalog) SearchRecipes(query string) []glaze.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return search(c.recipes, query, recipeFields)
}

// Material returns the first material with id.
func (c *Catalog) Material(id string) (glaze.Material, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.materials, id)
}

// Colorant returns the first colorant with id.
func (c *Catalog) Colorant(id string) (glaze.Colorant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.colorants, id)
}

// GlazeType returns the first glaze type with id.
func (c *Catalog) GlazeType(id string) (glaze.GlazeType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.glazeTypes, id)
}

// FiringType returns the first firing type with id.
func (c *Catalog) FiringType(id string) (glaze.FiringType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.firingTypes, id)
}

// SurfaceEffect returns the first surface effect with id.
func (c *Catalog) SurfaceEffect(id string) (glaze.SurfaceEffect, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.surfaceEffects, id)
}

// SafetyArticle returns the first safety article with id.
func (c *Catalog) SafetyArticle(id string) (glaze.SafetyInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.safetyInfo, id)
}

// GlossaryTerm returns the first glossary term with id.
func (c *Catalog) GlossaryTerm(id string) (glaze.GlossaryTerm, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.glossaryTerms, id)
}

// Recipe returns the first recipe with id.
func (c *Catalog) Recipe(id int) (glaze.Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return first(c.recipes, id)
}

// MaterialsByIDs resolves a related-materials list; dangling ids are dropped.
func (c *Catalog) MaterialsByIDs(ids []string) []glaze.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return byIDs(c.materials, ids)
}

// ColorantsByIDs returns the colorants listed in ids, in collection order.
func (c *Catalog) ColorantsByIDs(ids []string) []glaze.Colorant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return byIDs(c.colorants, ids)
}

// GlazeTypesByIDs returns the glaze types listed in ids, in collection order.
func (c *Catalog) GlazeTypesByIDs(ids []string) []glaze.GlazeType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return byIDs(c.glazeTypes, ids)
}

// FiringTypesByIDs returns the firing types listed in ids, in collection order.
func (c *Catalog) FiringTypesByIDs(ids []string) []glaze.FiringType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return byIDs(c.firingTypes, ids)
}

// SurfaceEffectsByIDs returns the surface effects listed in ids, in collection order.
func (c *Catalog) SurfaceEffectsByIDs(ids []string) []glaze.SurfaceEffect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return byIDs(c.surfaceEffects, ids)
}

// SafetyInfoByIDs returns the safety articles listed in ids, in collection order.
func (c *Catalog) SafetyInfoByIDs(ids []string) []glaze.SafetyInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return byIDs(c.safetyInfo, ids)
}

// GlossaryTermsByIDs returns the glossary terms listed in ids, in collection order.
func (c *Catalog) GlossaryTermsByIDs(ids []string) []glaze.GlossaryTerm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return byIDs(c.glossaryTerms, ids)
}
