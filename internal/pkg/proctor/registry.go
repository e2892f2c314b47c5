package proctor

import "sync"

// Registry holds one Policy per interview. Policies of different interviews
// share nothing.
type Registry struct {
	mu       sync.Mutex
	policies map[string]*Policy
	opts     []Option
}

// NewRegistry creates policies with opts.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		policies: make(map[string]*Policy),
		opts:     opts,
	}
}

// Get returns the policy for id, creating an inactive one if needed.
func (r *Registry) Get(id string) *Policy {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.policies[id]
	if !ok {
		p = NewPolicy(r.opts...)
		r.policies[id] = p
	}
	return p
}

// Lookup returns the policy for id without creating one.
func (r *Registry) Lookup(id string) (*Policy, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.policies[id]
	return p, ok
}

// Remove deactivates and forgets the policy for id. Safe to call repeatedly.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	p, ok := r.policies[id]
	delete(r.policies, id)
	r.mu.Unlock()

	if ok {
		p.Deactivate()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.policies)
}

// Idle is the snapshot of a policy that was never activated or was already removed.
func (r *Registry) Idle() Snapshot {
	return NewPolicy(r.opts...).Snapshot()
}
