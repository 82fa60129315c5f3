package llm

// Registry holds the configured providers in preference order.
// Lookup resolves a caller-named provider; FirstAvailable is the
// fallback when no name is given or the name is unknown.
type Registry struct {
	clients []Client
}

func NewRegistry(clients ...Client) *Registry {
	return &Registry{clients: clients}
}

// Lookup returns the named provider if it is configured and
// available.
func (r *Registry) Lookup(name string) (Client, bool) {
	for _, c := range r.clients {
		if c.Name() == name && c.Available() {
			return c, true
		}
	}
	return nil, false
}

// FirstAvailable returns the first provider with credentials
// configured, in registration order.
func (r *Registry) FirstAvailable() (Client, bool) {
	for _, c := range r.clients {
		if c.Available() {
			return c, true
		}
	}
	return nil, false
}

// Select resolves the provider to use for a request: the named
// one when available, otherwise the first available.
func (r *Registry) Select(name string) (Client, bool) {
	if name != "" {
		if c, ok := r.Lookup(name); ok {
			return c, true
		}
	}
	return r.FirstAvailable()
}

// Providers lists the names of all available providers.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.clients))
	for _, c := range r.clients {
		if c.Available() {
			names = append(names, c.Name())
		}
	}
	return names
}

// ModelsByProvider maps each available provider to its model list.
func (r *Registry) ModelsByProvider() map[string][]string {
	out := make(map[string][]string)
	for _, c := range r.clients {
		if c.Available() {
			out[c.Name()] = c.Models()
		}
	}
	return out
}
