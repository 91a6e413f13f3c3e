package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	pverrors "github.com/alexisbeaulieu97/pview/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return pverrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	img := cfg.Image
	if img.Width-2*img.Margin <= 0 {
		return pverrors.NewValidationError("image.margin", fmt.Sprintf("margins leave no width in a %d pixel wide image", img.Width), nil)
	}
	if img.Height-img.Margin-img.BottomMargin <= 0 {
		return pverrors.NewValidationError("image.bottom_margin", fmt.Sprintf("margins leave no height in a %d pixel tall image", img.Height), nil)
	}
	if img.BottomMargin < img.Margin {
		return pverrors.NewValidationError("image.bottom_margin", "must be at least image.margin to hold the footer", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return pverrors.NewValidationError(field, msg, err)
	}

	return pverrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name; the remaining segments are
// already yaml keys because of the registered tag name func.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
