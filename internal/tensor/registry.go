package tensor

import (
	"reflect"
	"sync"
)

// Combiner registry.
//
// Public packages expose thin convenience combiners (tensor.Sum and
// friends). Reduce must route such an alias to the canonical registered
// implementation before folding, so that the convenience surface can stay a
// pass-through while the real kernel does the work. The registry is an
// explicit table keyed by function identity; a plain user-supplied function
// that was never registered resolves to itself.
var combinerAliases sync.Map // uintptr -> ReduceFunc

// RegisterCombinerAlias registers a convenience combining function as an
// alias of a canonical implementation. Registering is typically done from
// an init function of the package that owns the alias.
func RegisterCombinerAlias(alias, canonical ReduceFunc) {
	if alias == nil || canonical == nil {
		panic("RegisterCombinerAlias: nil combining function")
	}
	combinerAliases.Store(funcKey(alias), canonical)
}

// ResolveCombiner returns the canonical implementation registered for fn,
// or fn itself if it was never registered as an alias.
func ResolveCombiner(fn ReduceFunc) ReduceFunc {
	if fn == nil {
		return nil
	}
	if canonical, ok := combinerAliases.Load(funcKey(fn)); ok {
		return canonical.(ReduceFunc)
	}
	return fn
}

// funcKey returns a stable identity for a function value.
func funcKey(fn ReduceFunc) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
