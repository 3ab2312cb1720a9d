package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}
	if c.General.InstallDir != "" && !filepath.IsAbs(c.General.InstallDir) {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general.install_dir",
			Message:   "must be an absolute path",
		})
	}

	switch c.General.Backend {
	case BACKEND_SHELL:
		validationErrors = append(validationErrors, c.validateShell()...)
	case BACKEND_FILE:
		validationErrors = append(validationErrors, c.validateFile()...)
	}

	if err := validate.Struct(c.Restart); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "restart", "")...)
	}

	if err := validate.Struct(c.API); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "api", "")...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateShell() ValidationErrors {
	var validationErrors ValidationErrors

	if err := validate.Struct(c.Shell); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "shell", "")...)
	}

	if c.Shell.Library != "" {
		library := c.GetAbsLibraryPath()
		if _, err := os.Stat(library); stderrors.Is(err, os.ErrNotExist) {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "shell.library",
				Message:   fmt.Sprintf("file does not exist: %s", library),
			})
		}
	}

	return validationErrors
}

func (c *Config) validateFile() ValidationErrors {
	var validationErrors ValidationErrors

	if err := validate.Struct(c.File); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "file", "")...)
	}

	if c.File.ConfDir != "" {
		dir := c.GetAbsConfDir()
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "file.conf_dir",
				Message:   fmt.Sprintf("not a directory: %s", dir),
			})
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if stderrors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			message := getValidationMessage(e)

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message,
			})
		}
	}

	return validationErrors
}
