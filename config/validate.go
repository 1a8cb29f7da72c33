// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/simpleiter/numeric"
)

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("rounding", validateRounding)
	_ = configValidate.RegisterValidation("posdecimal", validatePositiveDecimal)
}

// validateRounding accepts every name numeric.ParseRounding understands.
func validateRounding(fl validator.FieldLevel) bool {
	_, err := numeric.ParseRounding(fl.Field().String())
	return err == nil
}

// validatePositiveDecimal accepts finite decimal literals > 0.
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, err := numeric.Iteration().Parse(fl.Field().String())
	return err == nil && d.Sign() > 0
}

// Validate checks every field; all violations are reported together.
func (c *Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %q", fe.Namespace(), fe.Value(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
