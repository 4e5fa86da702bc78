package sketch

type entry struct {
	desc     Descriptor
	renderer Renderer
}

// Registry maps animation ids to their descriptor and renderer, keeping
// registration order for selector UIs. It is filled once at start-up and
// only read afterwards.
type Registry struct {
	entries []entry
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

func (r *Registry) Register(d Descriptor, renderer Renderer) error {
	if d.ID == "" || renderer == nil {
		return &RegistryError{Op: "register", ID: d.ID, Wrapped: ErrInvalid}
	}
	if _, ok := r.index[d.ID]; ok {
		return &RegistryError{Op: "register", ID: d.ID, Wrapped: ErrDuplicateID}
	}
	r.index[d.ID] = len(r.entries)
	r.entries = append(r.entries, entry{desc: d, renderer: renderer})
	return nil
}

func (r *Registry) Lookup(id string) (Descriptor, Renderer, error) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, nil, &RegistryError{Op: "lookup", ID: id, Wrapped: ErrNotFound}
	}
	e := r.entries[i]
	return e.desc, e.renderer, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// List returns descriptors in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.desc
	}
	return out
}

// Index returns the registration position of id, or -1.
func (r *Registry) Index(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}

// At returns the descriptor registered at position i.
func (r *Registry) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(r.entries) {
		return Descriptor{}, false
	}
	return r.entries[i].desc, true
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// IDs returns registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.desc.ID
	}
	return ids
}
