package engine

import (
	"math"
	"sort"
)

// Sentinel stands in for "invalid input" at boundaries that have no error
// channel. An invalid call is indistinguishable from one that legitimately
// computes zero; that is the boundary contract, not a defect.
const Sentinel = 0.0

// Versioned export names. Hosts resolve entry points by these strings, so a
// published name is never reused with different semantics.
const (
	ExportStress         = "engine_calculate_stress"
	ExportDisplacement   = "engine_calculate_displacement"
	ExportStrain         = "engine_calculate_strain"
	ExportAxialStiffness = "engine_calculate_axial_stiffness"
)

// Export is one sentinel-mapped entry point in the symbol table.
type Export struct {
	Name  string
	Arity int
	fn    func(args []float64) (float64, error)
}

// Call invokes the entry point. It never panics and never errors: wrong
// arity, domain-invalid input and non-finite results all degrade to the
// sentinel, because nothing richer can cross the boundary.
func (e Export) Call(args []float64) float64 {
	if e.fn == nil || len(args) != e.Arity {
		return Sentinel
	}
	v, err := e.fn(args)
	if err != nil {
		return Sentinel
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Sentinel
	}
	return v
}

var exports = map[string]Export{}

func register(name string, arity int, fn func([]float64) (float64, error)) {
	exports[name] = Export{Name: name, Arity: arity, fn: fn}
}

func init() {
	register(ExportStress, 2, func(a []float64) (float64, error) {
		return Stress(a[0], a[1])
	})
	register(ExportDisplacement, 4, func(a []float64) (float64, error) {
		return Displacement(a[0], a[1], a[2], a[3])
	})
	register(ExportStrain, 2, func(a []float64) (float64, error) {
		return Strain(a[0], a[1])
	})
	register(ExportAxialStiffness, 3, func(a []float64) (float64, error) {
		return AxialStiffness(a[0], a[1], a[2])
	})
}

// Resolve returns the export registered under name.
func Resolve(name string) (Export, bool) {
	e, ok := exports[name]
	return e, ok
}

// Call resolves name and invokes it. Unknown names yield the sentinel.
func Call(name string, args ...float64) float64 {
	return exports[name].Call(args)
}

// Names lists the registered export names in stable order.
func Names() []string {
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
