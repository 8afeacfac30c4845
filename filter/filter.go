// Package filter narrows in-memory collections with a value-object filter
// state. It never mutates its inputs; views re-run it on every state or
// collection change.
package filter

import (
	"strings"

	"github.com/tnqbao/gau-dam-service/entity"
)

// All is the pass-through value for single-choice predicates.
const All = "all"

// AssetState describes the asset filter panel. Zero values pass everything
// through. Predicates are conjunctive except Tags, which matches when the
// asset carries at least one of the filter's tags.
type AssetState struct {
	Status         string
	Campaign       string
	GenderCategory string
	Tags           []string
	Search         string
}

type ProductState struct {
	Category string
	Status   string
	Gender   string
	Search   string
}

func passThrough(v string) bool {
	return v == "" || v == All
}

// Assets returns the subset of assets matching the state, in input order.
func Assets(assets []entity.Asset, state AssetState) []entity.Asset {
	out := make([]entity.Asset, 0, len(assets))
	for _, a := range assets {
		if matchAsset(a, state) {
			out = append(out, a)
		}
	}
	return out
}

func matchAsset(a entity.Asset, state AssetState) bool {
	if !passThrough(state.Status) && string(a.Status) != state.Status {
		return false
	}
	if state.Campaign != "" && (a.Campaign == nil || *a.Campaign != state.Campaign) {
		return false
	}
	if !passThrough(state.GenderCategory) && string(a.GenderCategory) != state.GenderCategory {
		return false
	}
	if len(state.Tags) > 0 && !hasAnyTag(a.Tags, state.Tags) {
		return false
	}
	if state.Search != "" && !searchAsset(a, state.Search) {
		return false
	}
	return true
}

func hasAnyTag(have []string, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func searchAsset(a entity.Asset, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(a.Filename), term) {
		return true
	}
	if a.Notes != nil && strings.Contains(strings.ToLower(*a.Notes), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Products returns the subset of products matching the state, in input order.
func Products(products []entity.Product, state ProductState) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if matchProduct(p, state) {
			out = append(out, p)
		}
	}
	return out
}

func matchProduct(p entity.Product, state ProductState) bool {
	if !passThrough(state.Category) && string(p.Category) != state.Category {
		return false
	}
	if !passThrough(state.Status) && string(p.Status) != state.Status {
		return false
	}
	if !passThrough(state.Gender) && string(p.Gender) != state.Gender {
		return false
	}
	if state.Search != "" && !searchProduct(p, state.Search) {
		return false
	}
	return true
}

func searchProduct(p entity.Product, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), term)
}
