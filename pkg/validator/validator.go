package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// roomIDPattern mirrors the storage-safe room id rule enforced by the
// lesson service, so bad ids are rejected at the edge.
var roomIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the room_id rule
// registered.
func New() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("room_id", func(fl validator.FieldLevel) bool {
		return roomIDPattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
