package policy

import "github.com/alexanderramin/steward/internal/domain"

// Engine bundles the sandbox root with the action whitelist.
type Engine struct {
	Root      Root
	Whitelist Whitelist
}

// NewEngine returns an Engine over root with the given whitelist.
func NewEngine(root Root, whitelist Whitelist) *Engine {
	return &Engine{Root: root, Whitelist: whitelist}
}

// CheckIntent runs the plan-time checks for intent. Path parameters are
// validated again by the executor right before any filesystem access.
func (e *Engine) CheckIntent(intent domain.Intent) error {
	return e.Whitelist.Check(intent.Kind)
}

// ResolvePath applies the containment check, including symlink targets.
func (e *Engine) ResolvePath(userPath string) (string, error) {
	return e.Root.Resolve(userPath)
}
