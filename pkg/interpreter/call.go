package interpreter

import (
	"monty/interpreter/pkg/runtime"
	"monty/interpreter/pkg/value"
)

// callUserFunction implements the call protocol of spec.md §4.4:
// positional arguments bind to the first N parameters in order,
// keyword arguments bind by name, any parameter still unbound takes
// its default (evaluated at definition time) or else none. The body
// runs in a fresh scope; a return signal supplies the result, and
// normal fall-through yields none.
func (interp *Interpreter) callUserFunction(fn *runtime.Function, positional []value.Value, keyword map[string]value.Value) (value.Value, error) {
	interp.scopes.Push()
	defer interp.scopes.Pop()

	for idx, param := range fn.Params {
		var bound value.Value
		switch {
		case idx < len(positional):
			bound = positional[idx]
		default:
			if v, ok := keyword[param]; ok {
				bound = v
			} else if d, ok := fn.Defaults[param]; ok {
				bound = d
			} else {
				bound = value.None
			}
		}
		interp.scopes.Assign(param, bound)
	}

	err := interp.evalSuite(fn.Body)
	if err == nil {
		return value.None, nil
	}
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	return value.None, err
}
