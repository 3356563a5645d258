package inquiry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"expoBooths/internal/models"
)

// FieldKind selects the validation rule applied to an inquiry form field.
type FieldKind int

const (
	KindName FieldKind = iota + 1
	KindCompany
	KindEmail
	KindPhone
	KindPackage
	KindConsent
)

// Field is one input of the inquiry form.
type Field struct {
	Name  string
	Label string
	Kind  FieldKind
	Value string
}

// FieldError is the message shown next to an invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type rule func(f Field) (string, bool)

var phonePattern = regexp.MustCompile(`^[\d\s()+-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

var rules = map[FieldKind]rule{
	KindName: func(f Field) (string, bool) {
		return "Name is required.", f.Value != ""
	},
	KindCompany: func(f Field) (string, bool) {
		return fmt.Sprintf("%s is required.", f.Label), f.Value != ""
	},
	KindEmail: func(f Field) (string, bool) {
		if f.Value == "" {
			return "Email is required.", false
		}
		return "Please enter a valid email address.", validate.Var(f.Value, "email") == nil
	},
	KindPhone: func(f Field) (string, bool) {
		if f.Value == "" {
			return "", true
		}
		return "Please enter a valid phone number.", validate.Var(f.Value, "phone") == nil
	},
	KindPackage: func(f Field) (string, bool) {
		_, ok := models.ParsePackage(f.Value)
		return "Please make a selection.", ok
	},
	KindConsent: func(f Field) (string, bool) {
		consent, _ := strconv.ParseBool(f.Value)
		return "You must consent to continue.", consent
	},
}

// Validate checks every field against the rule of its kind, in order.
// Values are trimmed first. Fields of an unknown kind always pass.
func Validate(fields []Field) []FieldError {
	var errs []FieldError

	for _, f := range fields {
		check, ok := rules[f.Kind]
		if !ok {
			continue
		}

		f.Value = strings.TrimSpace(f.Value)
		if msg, valid := check(f); !valid {
			errs = append(errs, FieldError{Field: f.Name, Message: msg})
		}
	}

	return errs
}

// Submission is a completed booth inquiry.
type Submission struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Package string `json:"package"`
	BoothID string `json:"booth_id,omitempty"`
	Consent bool   `json:"consent"`
}

func (s Submission) Fields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Kind: KindName, Value: s.Name},
		{Name: "company", Label: "Company", Kind: KindCompany, Value: s.Company},
		{Name: "email", Label: "Email", Kind: KindEmail, Value: s.Email},
		{Name: "phone", Label: "Phone", Kind: KindPhone, Value: s.Phone},
		{Name: ParamPackage, Label: "Package", Kind: KindPackage, Value: s.Package},
		{Name: "consent", Label: "Consent", Kind: KindConsent, Value: strconv.FormatBool(s.Consent)},
	}
}

func (s Submission) Validate() []FieldError {
	return Validate(s.Fields())
}
