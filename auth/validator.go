package auth

import (
	"chat-relay/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidatePayload checks the `validate` tags of an inbound payload and wraps
// any violation into ErrInvalidPayload.
func ValidatePayload(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidPayload, err.Error())
	}
	return nil
}
