package config

import (
	"fmt"
	"io"
	"net"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be > %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "scope_name":
		return "must start with a letter or digit and consist only of letters, digits, '.', '-' and '_'"
	case "listen_address":
		return "must be in format 'host:port' with a port between 1 and 65535"
	case "template":
		return fmt.Sprintf("must be a valid template using only the variables: %s", formatTags(e.Param()))
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // Optional name of the item the field belongs to
	FieldPath string // Dot-notation field path (e.g., "shell.read_timeout", "api.bind_address")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("scope_name", validateScopeName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("listen_address", validateListenAddress); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("template", validateTemplate); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: scope name is used as a file name, so no separators
func validateScopeName(fl validator.FieldLevel) bool {
	return scopeRegexp.MatchString(fl.Field().String())
}

// Custom validator: host:port format with a numeric port
func validateListenAddress(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 1 && n <= 65535
}

// Custom validator: fasttemplate that references only the tags listed in the param
func validateTemplate(fl validator.FieldLevel) bool {
	return checkTemplate(fl.Field().String(), strings.Fields(fl.Param())) == nil
}

// checkTemplate renders tmpl and fails on unterminated or unknown tags.
func checkTemplate(tmpl string, allowed []string) error {
	if _, err := fasttemplate.NewTemplate(tmpl, "{{", "}}"); err != nil {
		return err
	}
	_, err := fasttemplate.ExecuteFuncStringWithErr(tmpl, "{{", "}}", func(w io.Writer, tag string) (int, error) {
		for _, a := range allowed {
			if tag == a {
				return 0, nil
			}
		}
		return 0, fmt.Errorf("unknown variable {{%s}}", tag)
	})
	return err
}

func formatTags(param string) string {
	tags := strings.Fields(param)
	for i, t := range tags {
		tags[i] = "{{" + t + "}}"
	}
	return strings.Join(tags, ", ")
}
