package predicate

import (
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/xab-mack/quorum/internal/engine"
	"github.com/xab-mack/quorum/internal/model"
)

const contradictsFuncName = "Contradicts"

// LoadFile interprets a caller-supplied Go file and wraps its exported
//
//	Contradicts(titleA, rationaleA, titleB, rationaleB string) bool
//
// as a contradiction predicate.
func LoadFile(path string) (engine.Predicate, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("predicate: stdlib symbols: %w", err)
	}
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("predicate: interpret %s: %w", path, err)
	}
	v, err := i.Eval(contradictsFuncName)
	if err != nil {
		return nil, fmt.Errorf("predicate: %s must define %s(titleA, rationaleA, titleB, rationaleB string) bool: %w",
			path, contradictsFuncName, err)
	}
	fn, ok := v.Interface().(func(string, string, string, string) bool)
	if !ok {
		return nil, fmt.Errorf("predicate: %s: %s has the wrong signature", path, contradictsFuncName)
	}
	return func(a, b model.Finding) bool {
		return fn(a.Title, a.Rationale, b.Title, b.Rationale)
	}, nil
}
