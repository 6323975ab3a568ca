// Package forms implements the client-side validation of the sign-in and
// sign-up forms.
//
// A field is checked once when it loses focus (Blur) and, after it has been
// found invalid, again on every change (Set). Submit checks every field and
// reports all failures at once; callers must not contact the backend unless
// Submit returned true.
package forms

import (
	"errors"
	"maps"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/go-playground/validator/v10"
)

type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// rule is a validator tag string plus the message reported for each tag.
type rule struct {
	tag      string
	messages map[string]string
	// other names the field whose value is compared against (eqcsfield).
	other Field
}

var rules = map[Field]rule{
	FieldName: {
		tag: "notblank,trimmedmin=2",
		messages: map[string]string{
			"notblank":   "Name is required",
			"trimmedmin": "Name must be at least 2 characters",
		},
	},
	FieldEmail: {
		tag: "required,looseemail",
		messages: map[string]string{
			"required":   "Email is required",
			"looseemail": "Invalid email format",
		},
	},
	FieldPassword: {
		tag: "required,min=6",
		messages: map[string]string{
			"required": "Password is required",
			"min":      "Password must be at least 6 characters",
		},
	},
	FieldConfirmPassword: {
		tag: "required,eqcsfield",
		messages: map[string]string{
			"required":  "Please confirm your password",
			"eqcsfield": "Passwords do not match",
		},
		other: FieldPassword,
	},
}

type Form struct {
	fields    []Field
	values    map[Field]string
	errors    map[Field]string
	validated map[Field]bool
}

func newForm(fields ...Field) *Form {
	return &Form{
		fields:    fields,
		values:    make(map[Field]string, len(fields)),
		errors:    make(map[Field]string, len(fields)),
		validated: make(map[Field]bool, len(fields)),
	}
}

func NewSignInForm() *Form {
	return newForm(FieldEmail, FieldPassword)
}

func NewSignUpForm() *Form {
	return newForm(FieldName, FieldEmail, FieldPassword, FieldConfirmPassword)
}

// Fields returns the form fields in display order.
func (f *Form) Fields() []Field {
	return append([]Field(nil), f.fields...)
}

func (f *Form) has(field Field) bool {
	for _, known := range f.fields {
		if known == field {
			return true
		}
	}
	return false
}

// Set stores a new value. A field that is currently invalid is re-checked;
// a changed password re-checks an already checked confirmation.
func (f *Form) Set(field Field, value string) {
	if !f.has(field) {
		return
	}
	f.values[field] = value

	if f.errors[field] != "" {
		f.check(field)
	}
	if field == FieldPassword && f.has(FieldConfirmPassword) && f.validated[FieldConfirmPassword] {
		f.check(FieldConfirmPassword)
	}
}

// Blur checks the field unconditionally and reports whether it is valid.
func (f *Form) Blur(field Field) bool {
	if !f.has(field) {
		return false
	}
	return f.check(field)
}

// Submit checks every field and reports whether all of them are valid.
func (f *Form) Submit() bool {
	ok := true
	for _, field := range f.fields {
		if !f.check(field) {
			ok = false
		}
	}
	return ok
}

func (f *Form) Value(field Field) string {
	return f.values[field]
}

func (f *Form) Error(field Field) string {
	return f.errors[field]
}

// Errors returns the current messages keyed by field; valid fields are absent.
func (f *Form) Errors() map[Field]string {
	return maps.Clone(f.errors)
}

func (f *Form) SignInCredentials() models.SignInCredentials {
	return models.SignInCredentials{
		Email:    f.values[FieldEmail],
		Password: f.values[FieldPassword],
	}
}

func (f *Form) SignUpCredentials() models.SignUpCredentials {
	return models.SignUpCredentials{
		Name:            f.values[FieldName],
		Email:           f.values[FieldEmail],
		Password:        f.values[FieldPassword],
		ConfirmPassword: f.values[FieldConfirmPassword],
	}
}

func (f *Form) check(field Field) bool {
	f.validated[field] = true

	msg := f.message(field)
	if msg == "" {
		delete(f.errors, field)
		return true
	}
	f.errors[field] = msg
	return false
}

func (f *Form) message(field Field) string {
	r, ok := rules[field]
	if !ok {
		return ""
	}

	var err error
	if r.other != "" {
		err = validate.VarWithValue(f.values[field], f.values[r.other], r.tag)
	} else {
		err = validate.Var(f.values[field], r.tag)
	}
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := r.messages[verrs[0].Tag()]; ok {
			return msg
		}
	}
	return err.Error()
}
