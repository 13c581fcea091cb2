package payload

import (
	"strings"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
)

const CodeMissingRequiredField = "missing_required_field"

const (
	FieldProductName = "productName"
	FieldPacks       = "packs"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError lists every failed pre-submit check. It matches
// errs.ErrMissingRequiredField.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		messages[i] = fe.Message
	}

	return strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return errs.ErrMissingRequiredField
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}

	return false
}

func missingRequiredField(field, message string) FieldError {
	return FieldError{Field: field, Code: CodeMissingRequiredField, Message: message}
}

// Validate runs the presence checks a tree must pass before it is assembled.
func Validate(tree *store.Tree) error {
	var fieldErrs []FieldError

	if strings.TrimSpace(tree.Product().ProductName) == "" {
		fieldErrs = append(fieldErrs, missingRequiredField(FieldProductName, "Product name is required"))
	}

	if tree.PackCount() == 0 {
		fieldErrs = append(fieldErrs, missingRequiredField(FieldPacks, "At least one product pack is required"))
	}

	if len(fieldErrs) > 0 {
		return &ValidationError{Errors: fieldErrs}
	}

	return nil
}
