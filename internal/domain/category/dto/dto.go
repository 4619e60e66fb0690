package dto

import "github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"

// CategoryRef is a tagged reference to a category: either an existing row
// by id, or free text to resolve through get-or-create.
type CategoryRef struct {
	ID   string
	Name string
}

// ByID references an existing category by its opaque id
func ByID(id string) CategoryRef {
	return CategoryRef{ID: id}
}

// ByName references a category by free-text name, creating it on demand
func ByName(name string) CategoryRef {
	return CategoryRef{Name: name}
}

// IsByID reports whether the reference carries an id
func (r CategoryRef) IsByID() bool {
	return r.ID != ""
}

// CategoryWithStats is an active category with aggregate stream numbers.
// LiveViewerCount sums viewer counts across live streams only.
type CategoryWithStats struct {
	entities.Category
	StreamCount     int64 `json:"streamCount"`
	LiveViewerCount int64 `json:"liveViewerCount"`
}
