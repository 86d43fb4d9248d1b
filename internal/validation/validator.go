// Package validation checks every row and aggregate that leaves storage.
//
// A row that breaks the storage contract (missing required column, a tri-state flag other
// than 0/1/NULL, coordinates out of range) means the source data or schema drifted. Such
// rows are reported as ErrInvalidRecord and fail the whole request.
package validation

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord marks data that failed schema validation.
var ErrInvalidRecord = errors.New("invalid stop and search record")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator. sql.Null* fields validate as their inner value,
// or as absent when not Valid.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterCustomTypeFunc(nullValue,
			sql.NullString{}, sql.NullInt64{}, sql.NullFloat64{}, sql.NullBool{})
	})
	return validate
}

func nullValue(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(driver.Valuer); ok {
		if v, err := valuer.Value(); err == nil {
			return v
		}
	}
	return nil
}

// Struct validates s and wraps any failure in ErrInvalidRecord.
func Struct(s interface{}) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}
