package expr

// Env binds variable names to values. It is always passed explicitly;
// nothing in the engine holds a global symbol table.
//
// A nil Env is a valid empty environment for reading.
type Env map[string]float64

// Clone returns an independent copy of the environment. Solvers snapshot
// the caller's Env with Clone before probing candidate values, so the
// original is never written to mid-solve.
func (e Env) Clone() Env {
	out := make(Env, len(e))
	for name, val := range e {
		out[name] = val
	}

	return out
}
