package eval

import "errors"

type Env map[string]any

var ErrEval = errors.New("evaluation error")

// with returns a copy of env extended by the given variable.
func (env Env) with(name string, v any) Env {
	res := make(Env, len(env)+1)
	for k, x := range env {
		res[k] = x
	}
	res[name] = v
	return res
}
