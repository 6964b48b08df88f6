package action

// Registry is the ordered, read-only catalog. The key of every action
// must equal its position; there is no runtime add or remove.
type Registry struct {
	actions []Action
}

func NewRegistry(actions ...Action) *Registry {
	return &Registry{actions: actions}
}

func (r *Registry) Get(index int) (Action, bool) {
	if index < 0 || index >= len(r.actions) {
		return nil, false
	}
	return r.actions[index], true
}

func (r *Registry) Count() int {
	return len(r.actions)
}

func (r *Registry) All() []Action {
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}
