package cli

import (
	"context"

	"github.com/dmitrijs2005/learninghub/internal/client/auth"
	"github.com/dmitrijs2005/learninghub/internal/client/forms"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var fieldLabels = map[forms.Field]string{
	forms.FieldName:            "Name",
	forms.FieldEmail:           "Email",
	forms.FieldPassword:        "Password",
	forms.FieldConfirmPassword: "Confirm password",
}

// fillForm prompts for every field, checking each one as it is left.
func (a *App) fillForm(f *forms.Form) error {
	for _, field := range f.Fields() {
		var (
			value string
			err   error
		)
		switch field {
		case forms.FieldPassword, forms.FieldConfirmPassword:
			value, err = getPassword(a.reader, fieldLabels[field], a.out)
		default:
			value, err = getSimpleText(a.reader, fieldLabels[field], a.out)
		}
		if err != nil {
			return err
		}

		f.Set(field, value)
		if !f.Blur(field) {
			a.println("  !", f.Error(field))
		}
	}
	return nil
}

// submitForm reports whether f may be sent; otherwise every field error is
// printed at once.
func (a *App) submitForm(f *forms.Form) bool {
	if f.Submit() {
		return true
	}
	a.println("Please fix the following:")
	for _, field := range f.Fields() {
		if msg := f.Error(field); msg != "" {
			a.printf("  %s: %s\n", fieldLabels[field], msg)
		}
	}
	return false
}

func (a *App) SignIn(ctx context.Context, _ []string) error {
	f := forms.NewSignInForm()
	if err := a.fillForm(f); err != nil {
		return err
	}
	if !a.submitForm(f) {
		return nil
	}

	m := auth.FromContext(ctx)
	if err := m.SignIn(ctx, f.SignInCredentials()); err != nil {
		return err
	}
	a.printf("Welcome back, %s!\n", m.State().User.Name)
	return nil
}

func (a *App) SignUp(ctx context.Context, _ []string) error {
	f := forms.NewSignUpForm()
	if err := a.fillForm(f); err != nil {
		return err
	}
	if !a.submitForm(f) {
		return nil
	}

	m := auth.FromContext(ctx)
	if err := m.SignUp(ctx, f.SignUpCredentials()); err != nil {
		return err
	}
	a.printf("Welcome, %s!\n", m.State().User.Name)
	return nil
}

func (a *App) SignOut(ctx context.Context, _ []string) error {
	if err := auth.FromContext(ctx).SignOut(ctx); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	s := auth.FromContext(ctx).State()
	if s.User == nil {
		a.println("Not signed in.")
		return nil
	}
	a.printf("%s <%s> (id %s)\n", s.User.Name, s.User.Email, s.User.ID)
	return nil
}
