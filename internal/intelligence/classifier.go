package intelligence

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/steward/internal/domain"
)

// UnrecognizedHint guides the user toward a phrasing the classifier accepts.
const UnrecognizedHint = "I didn't understand that command. Try 'list files' or 'open README.md'."

// Classifier turns raw text into a structured intent.
type Classifier interface {
	Classify(text string) (domain.Intent, bool)
}

// commandPattern binds one regular expression to the intent it produces.
// param names the intent parameter filled from capture group group.
type commandPattern struct {
	re    *regexp.Regexp
	kind  domain.IntentKind
	risk  domain.RiskLevel
	param string
	group int
}

// patterns are tested in order; the first match wins.
var patterns = []commandPattern{
	{re: regexp.MustCompile(`^(list files|show files|ls)`), kind: domain.IntentListFiles, risk: domain.RiskLow},
	{re: regexp.MustCompile(`^(open|show|read)\s+(.+)`), kind: domain.IntentOpenFile, risk: domain.RiskLow, param: domain.ParamPath, group: 2},
	{re: regexp.MustCompile(`^(run tests|test)`), kind: domain.IntentRunTests, risk: domain.RiskMedium},
	{re: regexp.MustCompile(`^search\s+(.+)`), kind: domain.IntentSearchCode, risk: domain.RiskLow, param: domain.ParamQuery, group: 1},
	{re: regexp.MustCompile(`^(install dependencies|npm install)`), kind: domain.IntentInstallDependencies, risk: domain.RiskMedium},
}

// PatternClassifier matches input against a fixed, ordered set of command
// patterns. It is pure and safe for concurrent use.
type PatternClassifier struct{}

// NewPatternClassifier returns the default classifier.
func NewPatternClassifier() PatternClassifier {
	return PatternClassifier{}
}

func (PatternClassifier) Classify(text string) (domain.Intent, bool) {
	return Classify(text)
}

// Classify lower-cases and trims text, then returns the intent of the first
// matching pattern. The second result is false when nothing matched.
func Classify(text string) (domain.Intent, bool) {
	lower := strings.TrimSpace(strings.ToLower(text))

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		params := map[string]string{}
		if p.param != "" {
			params[p.param] = strings.TrimSpace(m[p.group])
		}
		intent := domain.NewIntent(p.kind, p.risk, params)
		EnforceConfirmation(&intent)
		return intent, true
	}
	return domain.Intent{}, false
}
