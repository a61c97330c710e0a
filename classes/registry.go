package classes

import (
	"strings"

	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/internal/collision"
	"github.com/arloliu/dwg/internal/hash"
)

// Registry holds the decoded classes in file order.
//
// DXF names are indexed by their xxHash64; names that share a hash fall back
// to a linear scan.
type Registry struct {
	MaxClassNumber int16 // R2004 and later

	classes  []Class
	byNumber map[int16]int
	byName   map[uint64]int
	tracker  *collision.Tracker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byNumber: make(map[int16]int),
		byName:   make(map[uint64]int),
		tracker:  collision.NewTracker(),
	}
}

// add appends cls. The class is always stored; the returned error only
// reports that its DXF name could not be indexed.
func (r *Registry) add(cls Class) error {
	idx := len(r.classes)
	r.classes = append(r.classes, cls)
	if _, ok := r.byNumber[cls.Number]; !ok {
		r.byNumber[cls.Number] = idx
	}

	id := hash.ID(cls.DXFName)
	if err := r.tracker.Track(cls.DXFName, id); err != nil {
		return err
	}
	if _, ok := r.byName[id]; !ok {
		r.byName[id] = idx
	}

	return nil
}

// Len returns the number of classes.
func (r *Registry) Len() int {
	return len(r.classes)
}

// All returns the classes in file order.
func (r *Registry) All() []Class {
	return r.classes
}

// ByNumber returns the class with the given class number.
func (r *Registry) ByNumber(number int16) (Class, bool) {
	idx, ok := r.byNumber[number]
	if !ok {
		return Class{}, false
	}

	return r.classes[idx], true
}

// ByDXFName returns the first class with the given DXF record name, compared
// without regard to ASCII case.
func (r *Registry) ByDXFName(name string) (Class, bool) {
	id := hash.ID(name)
	if r.tracker.Collides(id) {
		for _, cls := range r.classes {
			if strings.EqualFold(cls.DXFName, name) {
				return cls, true
			}
		}

		return Class{}, false
	}

	idx, ok := r.byName[id]
	if !ok || !strings.EqualFold(r.classes[idx].DXFName, name) {
		return Class{}, false
	}

	return r.classes[idx], true
}

// ByNameID returns the class whose DXF name hashes to id.
//
// Returns errs.ErrHashCollision when several names share id and
// errs.ErrNameNotFound when none does.
func (r *Registry) ByNameID(id uint64) (Class, error) {
	name, err := r.tracker.Resolve(id)
	if err != nil {
		return Class{}, err
	}

	cls, ok := r.ByDXFName(name)
	if !ok {
		return Class{}, errs.ErrNameNotFound
	}

	return cls, nil
}

// DXFNames returns the distinct DXF names in file order.
func (r *Registry) DXFNames() []string {
	return r.tracker.Names()
}

// HasCollision reports whether two DXF names share a hash.
func (r *Registry) HasCollision() bool {
	return r.tracker.HasCollision()
}
