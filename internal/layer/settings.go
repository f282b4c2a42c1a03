// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/strataio/strata/internal/validate"
)

// ValidateSetting checks that a named configuration value is usable. It
// delegates entirely to the shared validation package: an empty name or an
// empty value yields the delegate's ValidationError unchanged, and a usable
// pair yields nil.
func ValidateSetting(name, value string) error {
	v := validate.New()
	v.NotEmpty("name", name)

	field := name
	if field == "" {
		field = "value"
	}
	v.NotEmpty(field, value)

	return v.Err()
}

// ValidateSettings checks a whole map of named settings, accumulating every
// failure into one error.
func ValidateSettings(settings map[string]string) error {
	v := validate.New()
	for name, value := range settings {
		v.NotEmpty("name", name)

		field := name
		if field == "" {
			field = "value"
		}
		v.NotEmpty(field, value)
	}
	return v.Err()
}
