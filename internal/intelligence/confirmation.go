package intelligence

import "github.com/alexanderramin/steward/internal/domain"

// EnforceConfirmation forces RequiresConfirmation on every recognized intent.
// There is no auto-execute path; nothing upstream can switch this off.
func EnforceConfirmation(intent *domain.Intent) {
	if intent.Kind != "" {
		intent.RequiresConfirmation = true
	}
}
