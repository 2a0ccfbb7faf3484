package client

import "sync"

// Registry hands out one Client per session ID, so concurrent requests in the
// same session share a single refresh state machine: N requests hitting 401
// together produce exactly one refresh call.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*Client
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// GetOrCreate returns the session's client, building it with factory on first
// use.
func (r *Registry) GetOrCreate(sessionID string, factory func() *Client) *Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clients[sessionID]; ok {
		return c
	}
	c := factory()
	r.clients[sessionID] = c
	return c
}

// Drop forgets a session's client, e.g. on logout.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, sessionID)
}
