package category

import (
	c "remindu/internal/core/domain/common"
)

// Registry is an ordered collection of categories with at most one
// selected entry. Methods never modify the receiver; they return an
// updated copy.
type Registry struct {
	categories []Category
	selected   c.Optional[ID]
}

// NewRegistry builds a registry from categories in display order.
// A selection pointing at a missing category is dropped.
func NewRegistry(categories []Category, selected c.Optional[ID]) Registry {
	r := Registry{categories: make([]Category, len(categories))}
	copy(r.categories, categories)
	if selected.IsPresent && r.indexOf(selected.Value) != -1 {
		r.selected = selected
	}
	return r
}

func (r Registry) List() []Category {
	result := make([]Category, len(r.categories))
	copy(result, r.categories)
	return result
}

func (r Registry) Len() int {
	return len(r.categories)
}

func (r Registry) Get(id ID) (Category, bool) {
	ix := r.indexOf(id)
	if ix == -1 {
		return Category{}, false
	}
	return r.categories[ix], true
}

// FindEqual returns the first category structurally equal to cat.
func (r Registry) FindEqual(cat Category) (Category, bool) {
	for _, existing := range r.categories {
		if existing.Equal(cat) {
			return existing, true
		}
	}
	return Category{}, false
}

// Add appends cat to the end of the registry.
func (r Registry) Add(cat Category) (Registry, error) {
	if cat.ID == "" {
		return r, ErrCategoryIDNotGenerated
	}
	if r.indexOf(cat.ID) != -1 {
		return r, ErrCategoryAlreadyExists
	}
	categories := make([]Category, len(r.categories), len(r.categories)+1)
	copy(categories, r.categories)
	return Registry{categories: append(categories, cat), selected: r.selected}, nil
}

// Update replaces the category with the given id, keeping its position.
func (r Registry) Update(id ID, cat Category) (Registry, error) {
	ix := r.indexOf(id)
	if ix == -1 {
		return r, ErrCategoryDoesNotExist
	}
	cat.ID = id
	updated := r.List()
	updated[ix] = cat
	return Registry{categories: updated, selected: r.selected}, nil
}

// Remove deletes the category with the given id. Removing the selected
// category clears the selection.
func (r Registry) Remove(id ID) (Registry, error) {
	ix := r.indexOf(id)
	if ix == -1 {
		return r, ErrCategoryDoesNotExist
	}
	categories := make([]Category, 0, len(r.categories)-1)
	categories = append(categories, r.categories[:ix]...)
	categories = append(categories, r.categories[ix+1:]...)
	selected := r.selected
	if selected.IsPresent && selected.Value == id {
		selected = c.Optional[ID]{}
	}
	return Registry{categories: categories, selected: selected}, nil
}

func (r Registry) Select(id ID) (Registry, error) {
	if r.indexOf(id) == -1 {
		return r, ErrCategoryDoesNotExist
	}
	return Registry{categories: r.categories, selected: c.NewOptional(id, true)}, nil
}

func (r Registry) Deselect() Registry {
	return Registry{categories: r.categories}
}

func (r Registry) SelectedID() c.Optional[ID] {
	return r.selected
}

func (r Registry) Selected() c.Optional[Category] {
	if !r.selected.IsPresent {
		return c.Optional[Category]{}
	}
	cat, ok := r.Get(r.selected.Value)
	return c.NewOptional(cat, ok)
}

func (r Registry) indexOf(id ID) int {
	for ix, cat := range r.categories {
		if cat.ID == id {
			return ix
		}
	}
	return -1
}

// Identical reports whether both registries hold the same categories, in
// the same order, with the same selection.
func (r Registry) Identical(other Registry) bool {
	if len(r.categories) != len(other.categories) || r.selected != other.selected {
		return false
	}
	for ix, cat := range r.categories {
		if cat != other.categories[ix] {
			return false
		}
	}
	return true
}
