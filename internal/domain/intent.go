package domain

import "maps"

// Parameter keys carried by intents.
const (
	ParamPath  = "path"
	ParamQuery = "query"
)

// Intent is the structured form of a recognized command. Values are
// immutable once classified; Parameters is copied on the way in and out.
type Intent struct {
	Kind                 IntentKind        `json:"intent_type"`
	Parameters           map[string]string `json:"parameters"`
	RequiresConfirmation bool              `json:"requires_confirmation"`
	Risk                 RiskLevel         `json:"risk_level"`
}

// NewIntent builds an Intent with its own copy of params.
func NewIntent(kind IntentKind, risk RiskLevel, params map[string]string) Intent {
	p := make(map[string]string, len(params))
	maps.Copy(p, params)
	return Intent{
		Kind:                 kind,
		Parameters:           p,
		RequiresConfirmation: true,
		Risk:                 risk,
	}
}

// Param returns the named parameter, or "" when absent.
func (i Intent) Param(key string) string {
	return i.Parameters[key]
}

// Clone returns a deep copy so callers cannot mutate a stored intent.
func (i Intent) Clone() Intent {
	c := i
	c.Parameters = make(map[string]string, len(i.Parameters))
	maps.Copy(c.Parameters, i.Parameters)
	return c
}
