package entity

import "slices"

// Registry owns all entities. Iteration follows the registry order, which
// is both the draw order (back first) and the turn order.
type Registry struct {
	nextID   Handle
	entities map[Handle]*Entity
	order    []Handle
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		nextID:   1,
		entities: make(map[Handle]*Entity),
	}
}

// Add stores e at the end of the order and returns its handle.
func (r *Registry) Add(e Entity) Handle {
	h := r.nextID
	r.nextID++
	r.entities[h] = &e
	r.order = append(r.order, h)
	return h
}

// Get returns the entity for h, or nil.
func (r *Registry) Get(h Handle) *Entity {
	return r.entities[h]
}

// Len returns the number of entities.
func (r *Registry) Len() int {
	return len(r.order)
}

// Order returns a copy of the handles in registry order.
func (r *Registry) Order() []Handle {
	return slices.Clone(r.order)
}

// SendToBack moves h to the front of the order so it is drawn first and
// everything sharing its tile is drawn above it.
func (r *Registry) SendToBack(h Handle) {
	i := slices.Index(r.order, h)
	if i <= 0 {
		return
	}
	copy(r.order[1:i+1], r.order[:i])
	r.order[0] = h
}

// Each calls fn for every entity in registry order. fn may mutate the
// entity but must not add entities or reorder the registry.
func (r *Registry) Each(fn func(Handle, *Entity)) {
	for _, h := range r.Order() {
		fn(h, r.entities[h])
	}
}

// At returns every entity standing on (x, y), in registry order.
func (r *Registry) At(x, y int) []Handle {
	var out []Handle
	for _, h := range r.order {
		if r.entities[h].IsAt(x, y) {
			out = append(out, h)
		}
	}
	return out
}

// BlockingAt returns the first blocking entity on (x, y).
func (r *Registry) BlockingAt(x, y int) (Handle, bool) {
	for _, h := range r.order {
		if e := r.entities[h]; e.Blocks && e.IsAt(x, y) {
			return h, true
		}
	}
	return NilHandle, false
}

// FighterAt returns the first entity with combat stats on (x, y).
func (r *Registry) FighterAt(x, y int) (Handle, bool) {
	for _, h := range r.order {
		if e := r.entities[h]; e.Fighter != nil && e.IsAt(x, y) {
			return h, true
		}
	}
	return NilHandle, false
}
