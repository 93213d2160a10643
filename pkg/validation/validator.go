package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RunRequest represents a detection run as submitted through the CLI config
// file. Engine-internal defaults fill any omitted field after validation.
type RunRequest struct {
	Input        string  `yaml:"input" validate:"required"`
	Output       string  `yaml:"output" validate:"omitempty"`
	SyncStrategy string  `yaml:"syncStrategy" validate:"omitempty,oneof=fullSync earlyTerminate fullSyncEarlyTerminate"`
	Epsilon      float64 `yaml:"convergenceEpsilon" validate:"omitempty,gt=0"`
	MinMoved     float64 `yaml:"minMovedFraction" validate:"omitempty,gte=0,lte=1"`
	MaxPasses    int     `yaml:"maxPasses" validate:"omitempty,min=1"`
	MaxPhases    int     `yaml:"maxPhases" validate:"omitempty,min=1"`
	NumThreads   int     `yaml:"numThreads" validate:"omitempty,min=1,max=1024"`
	UseColoring  *bool   `yaml:"useColoring"`
	LogLevel     string  `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}

// ValidateRunRequest validates a CLI run request
func ValidateRunRequest(req *RunRequest) error {
	if req == nil {
		return errors.New("run request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
