package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError names the offending field of a rejected merge request.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// ValidationErrors is returned when a merge request cannot be persisted.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the first offending field name.
func (e ValidationErrors) Field() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Field
}

var branchNamePattern = regexp.MustCompile(`^[\w,.-]+[\w,-]$`)

// ValidBranchName reports whether name is acceptable as a target branch: word
// characters, dots, hyphens and commas, not ending in "." or ".lock".
func ValidBranchName(name string) bool {
	return branchNamePattern.MatchString(name) && !strings.HasSuffix(name, ".lock")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("branchname", func(fl validator.FieldLevel) bool {
		return ValidBranchName(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register branchname validation: %v", err))
	}
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		mr := sl.Current().Interface().(MergeRequest)
		if mr.ReviewerID != nil && *mr.ReviewerID == mr.AuthorID {
			sl.ReportError(mr.ReviewerID, "reviewer_id", "ReviewerID", "nefield", "author_id")
		}
	}, MergeRequest{})
	return v
}

// Validate checks the invariants that must hold before the request is persisted.
func (mr *MergeRequest) Validate() error {
	err := validate.Struct(mr)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate merge request: %w", err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: validationMessage(fe.Tag())})
	}
	return out
}

func validationMessage(tag string) string {
	switch tag {
	case "required":
		return "can't be blank"
	case "branchname":
		return "is invalid"
	case "nefield":
		return "can't be the author"
	}
	return "is invalid (" + tag + ")"
}
