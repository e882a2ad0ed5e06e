package services

import (
	"fmt"

	"github.com/joshua-takyi/tixgate/internal/models"
)

// validationError tags bad input so handlers can map it to a 400 instead of
// a generic 500.
func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", models.ErrValidation, fmt.Sprintf(format, args...))
}
