package provider

// Registry is the static provider table. It is immutable after construction
// and safe for concurrent readers.
type Registry struct {
	byID  map[string]Descriptor
	order []string
}

// NewRegistry builds a registry from the given descriptors. Later duplicates
// of the same id replace earlier ones but keep the original position.
func NewRegistry(descriptors ...Descriptor) *Registry {
	r := &Registry{byID: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, exists := r.byID[d.ID]; !exists {
			r.order = append(r.order, d.ID)
		}
		r.byID[d.ID] = d
	}
	return r
}

// Get returns the descriptor for the given provider id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// All returns all descriptors in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// DisplayName returns the provider's display name, falling back to the id
// when the provider is not registered.
func (r *Registry) DisplayName(id string) string {
	if d, ok := r.byID[id]; ok {
		return d.DisplayName
	}
	return id
}

// Per-token USD rates used by the cost heuristic. Unlisted providers fall
// back to defaultTokenRate.
const defaultTokenRate = 0.00002

var tokenRates = map[string]float64{
	IDOpenAI: 0.00003,
	IDClaude: 0.000015,
	IDGemini: 0.00001,
	IDGrok:   0.00002,
}

// TokenRate returns the per-token USD rate for the given provider id.
func TokenRate(id string) float64 {
	if rate, ok := tokenRates[id]; ok {
		return rate
	}
	return defaultTokenRate
}
