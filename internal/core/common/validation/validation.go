package validation

import (
	"fmt"
	"reflect"

	errors "github.com/furnimed/catalog-admin/internal"
)

// Builder collects required-field checks for a request body and reports them
// all at once as a single validation AppError.
type Builder struct {
	errs []errors.ValidationError
}

func NewValidator() *Builder {
	return &Builder{}
}

// Require marks a field as mandatory. Empty strings, nil pointers and zero
// numbers fail; the admin UI treats a zero price or salary as absent.
func (b *Builder) Require(field string, value interface{}) *Builder {
	missing := value == nil
	if !missing {
		switch v := value.(type) {
		case string:
			missing = v == ""
		default:
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Ptr {
				if rv.IsNil() {
					missing = true
					break
				}
				rv = rv.Elem()
			}
			switch rv.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Float32, reflect.Float64:
				missing = rv.IsZero()
			}
		}
	}

	if missing {
		b.errs = append(b.errs, errors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
			Code:    string(errors.ErrCodeMissingFields),
		})
	}
	return b
}

func (b *Builder) Validate() *errors.AppError {
	if len(b.errs) == 0 {
		return nil
	}
	return errors.NewValidationError("Missing required fields", errors.ErrCodeMissingFields).
		WithDetails(errors.ValidationErrors{Errors: b.errs})
}
