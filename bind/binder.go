package bind

import (
	"sort"

	"github.com/jmp-0x7C0/swift-bridge/bind/swift"
	"github.com/jmp-0x7C0/swift-bridge/builtin"
	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/jmp-0x7C0/swift-bridge/model"
)

var (
	registry = map[string]func(*model.Module, builtin.Classifier) core.Binder{"swift": swift.NewBinder}
)

// NewBinder is a factory method for creating a new binder for a given target
func NewBinder(mod *model.Module, classifier builtin.Classifier, target string) (core.Binder, error) {
	bindable, ok := registry[target]
	if !ok {
		return nil, core.NewUserErrorF("I don't know how to create a binder for %s", target)
	}

	return bindable(mod, classifier), nil
}

// IsTarget returns true if a binder is registered for target
func IsTarget(target string) bool {
	_, ok := registry[target]
	return ok
}

// Targets returns the sorted names of all registered targets
func Targets() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
