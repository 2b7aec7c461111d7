package cli

import (
	"errors"

	"github.com/spec-kit/pizza-store/pkg/util"
)

// userMessage picks the wording shown at the menu for err. Domain
// errors expose their message field only, so wrapped storage causes
// stay in the operator log.
func userMessage(err error, fallback string) string {
	var domainErr *util.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return fallback
}
