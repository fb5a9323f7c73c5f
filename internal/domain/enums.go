package domain

// IntentKind names one of the bounded actions the assistant can perform.
type IntentKind string

const (
	IntentListFiles           IntentKind = "LIST_FILES"
	IntentOpenFile            IntentKind = "OPEN_FILE"
	IntentRunTests            IntentKind = "RUN_TESTS"
	IntentSearchCode          IntentKind = "SEARCH_CODE"
	IntentInstallDependencies IntentKind = "INSTALL_DEPENDENCIES"
)

// AllIntentKinds returns every intent kind the classifier can emit, in
// classifier priority order.
func AllIntentKinds() []IntentKind {
	return []IntentKind{
		IntentListFiles,
		IntentOpenFile,
		IntentRunTests,
		IntentSearchCode,
		IntentInstallDependencies,
	}
}

// ParseIntentKind converts a case-sensitive name into a known IntentKind.
func ParseIntentKind(s string) (IntentKind, bool) {
	for _, k := range AllIntentKinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)
