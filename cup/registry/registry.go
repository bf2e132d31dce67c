/* registry.go
 * Contains the cup type registry. Front ends pick a cup format by its code, e.g. "competitions.stepladder",
 * and get back a constructor. Unknown codes fail with the closest registered codes as suggestions
 */

package registry

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"knockout-cups/cup/logic"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Codes of the built-in cup formats
const (
	PowerOfTwoSingle = "competitions.poweroftwo_single"
	StandardSingle   = "competitions.standard_single"
	PowerOfTwoDouble = "competitions.poweroftwo_double"
	Stepladder       = "competitions.stepladder"
)

var (
	ErrCupNotFound  = errors.New("cup type not found")
	ErrDuplicateCup = errors.New("cup type already registered")
)

// Constructor builds a cup from construction options
type Constructor func(opts logic.Options) (logic.Cup, error)

// Registry maps cup codes to constructors. It is safe for concurrent use
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// New creates an empty registry
func New() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Default creates a registry holding the built-in cup formats
func Default() *Registry {
	r := New()
	// Built-in codes are distinct, so registration cannot fail
	_ = r.Register(PowerOfTwoSingle, adapt(logic.NewPowerOfTwoSingleElimination))
	_ = r.Register(StandardSingle, adapt(logic.NewSingleElimination))
	_ = r.Register(PowerOfTwoDouble, adapt(logic.NewDoubleElimination))
	_ = r.Register(Stepladder, adapt(logic.NewStepladder))
	return r
}

// adapt turns a concrete cup constructor into a Constructor, keeping a failed build a nil Cup
func adapt[C logic.Cup](build func(logic.Options) (C, error)) Constructor {
	return func(opts logic.Options) (logic.Cup, error) {
		cup, err := build(opts)
		if err != nil {
			return nil, err
		}
		return cup, nil
	}
}

// Register adds a constructor under a code
func (r *Registry) Register(name string, constructor Constructor) error {
	if name == "" || constructor == nil {
		return fmt.Errorf("register cup type: name and constructor are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.constructors[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCup, name)
	}
	r.constructors[name] = constructor
	return nil
}

// Resolve returns the constructor registered under name
func (r *Registry) Resolve(name string) (Constructor, error) {
	r.mu.RLock()
	constructor, ok := r.constructors[name]
	r.mu.RUnlock()
	if ok {
		return constructor, nil
	}

	suggestions := r.Suggest(name)
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCupNotFound, name)
	}
	return nil, fmt.Errorf("%w: %q, did you mean %s?", ErrCupNotFound, name, strings.Join(suggestions, " or "))
}

// Suggest returns the registered codes that fuzzily match name, best match first
func (r *Registry) Suggest(name string) []string {
	if name == "" {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(name, r.Names())
	sort.Sort(ranks)

	suggestions := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		suggestions = append(suggestions, rank.Target)
	}
	return suggestions
}

// Names returns every registered code in lexical order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
