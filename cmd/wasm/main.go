//go:build js && wasm

// Browser build of the calculation engine. Every entry in the export table is
// registered on the JS global object under its versioned name, so a host page
// calls e.g. engine_calculate_stress(1000, 10) directly.
package main

import (
	"math"
	"syscall/js"

	"github.com/Universe-Codex/PhyArch/internal/engine"
)

func main() {
	registerExports()
	select {}
}

func registerExports() {
	for _, name := range engine.Names() {
		exp, _ := engine.Resolve(name)
		js.Global().Set(exp.Name, js.FuncOf(func(this js.Value, args []js.Value) any {
			// No exception may cross this boundary: missing, extra and
			// non-numeric arguments all degrade to the sentinel inside
			// Export.Call.
			vals := make([]float64, len(args))
			for i, a := range args {
				if a.Type() == js.TypeNumber {
					vals[i] = a.Float()
				} else {
					vals[i] = math.NaN()
				}
			}
			return exp.Call(vals)
		}))
	}
}
