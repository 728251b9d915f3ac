package tekla

import "maps"

// ScopeID is a handle into the scope arena of an Environment.
type ScopeID int

const noScope ScopeID = -1

type scope struct {
	parent ScopeID
	vars   map[string]Value
}

// Environment is an arena of scopes. Blocks nest strictly, so scopes are
// pushed and popped like a stack; a handle is invalid once its scope is popped.
type Environment struct {
	scopes  []scope
	current ScopeID
}

func NewEnvironment() *Environment {
	return &Environment{
		scopes: []scope{
			{
				parent: noScope,
				vars:   make(map[string]Value),
			},
		},
		current: 0,
	}
}

func (e *Environment) Current() ScopeID {
	return e.current
}

// Push opens a child scope of the current scope and makes it current.
func (e *Environment) Push() ScopeID {
	id := ScopeID(len(e.scopes))
	e.scopes = append(e.scopes, scope{
		parent: e.current,
		vars:   make(map[string]Value),
	})
	e.current = id
	return id
}

// Pop discards id and every scope opened after it, and restores its parent as current.
func (e *Environment) Pop(id ScopeID) {
	if id <= 0 || int(id) >= len(e.scopes) {
		return
	}
	parent := e.scopes[id].parent
	clear(e.scopes[id:])
	e.scopes = e.scopes[:id]
	e.current = parent
}

// Reset drops every scope and binding.
func (e *Environment) Reset() {
	if len(e.scopes) > 1 {
		e.Pop(1)
	}
	e.current = 0
	clear(e.scopes[0].vars)
}

// Define declares name in the current scope, shadowing outer bindings.
func (e *Environment) Define(name string, value Value) {
	e.scopes[e.current].vars[name] = value
}

func (e *Environment) Get(name string) (Value, bool) {
	for id := e.current; id != noScope; id = e.scopes[id].parent {
		if v, ok := e.scopes[id].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign updates the nearest scope declaring name and reports whether one exists.
func (e *Environment) Assign(name string, value Value) bool {
	for id := e.current; id != noScope; id = e.scopes[id].parent {
		if _, ok := e.scopes[id].vars[name]; ok {
			e.scopes[id].vars[name] = value
			return true
		}
	}
	return false
}

// Depth is the number of live scopes, the global scope included.
func (e *Environment) Depth() int {
	return len(e.scopes)
}

// Globals returns a copy of the global scope bindings.
func (e *Environment) Globals() map[string]Value {
	return maps.Clone(e.scopes[0].vars)
}
