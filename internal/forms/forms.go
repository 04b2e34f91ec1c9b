// Package forms validates raw form input into typed values.
//
// Each Parse function is a pure function from submitted form values to
// either a typed input struct or a set of per-field error messages. No
// handler mutates storage before its form parses cleanly.
package forms

import (
	"net/mail"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"expensetracker/internal/models"
)

// Errors maps a field name to its validation error message.
type Errors map[string]string

// Has reports whether any field failed validation.
func (e Errors) Has() bool { return len(e) > 0 }

// Username, password and text bounds, matching the registration and
// profile form constraints.
const (
	UsernameMinLen    = 3
	UsernameMaxLen    = 20
	PasswordMinLen    = 6
	DescriptionMaxLen = 200
	FullNameMinLen    = 2
	FullNameMaxLen    = 100
	BioMaxLen         = 500
)

// allowedImageExts is the extension allow-list for profile pictures.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AllowedImageExt reports whether filename has an allowed image extension.
func AllowedImageExt(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// RegisterInput is the validated registration form.
type RegisterInput struct {
	Username string
	Password string
}

// ParseRegister validates the registration form.
func ParseRegister(values url.Values) (RegisterInput, Errors) {
	errs := Errors{}
	in := RegisterInput{
		Username: strings.TrimSpace(values.Get("username")),
		Password: values.Get("password"),
	}

	switch n := len(in.Username); {
	case n == 0:
		errs["username"] = "Username is required"
	case n < UsernameMinLen || n > UsernameMaxLen:
		errs["username"] = "Username must be between 3 and 20 characters"
	}

	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if len(in.Password) < PasswordMinLen {
		errs["password"] = "Password must be at least 6 characters"
	}

	if values.Get("confirm_password") != in.Password {
		errs["confirm_password"] = "Passwords must match"
	}

	return in, errs
}

// LoginInput is the validated login form.
type LoginInput struct {
	Username string
	Password string
}

// ParseLogin validates the login form.
func ParseLogin(values url.Values) (LoginInput, Errors) {
	errs := Errors{}
	in := LoginInput{
		Username: strings.TrimSpace(values.Get("username")),
		Password: values.Get("password"),
	}

	if in.Username == "" {
		errs["username"] = "Username is required"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	}

	return in, errs
}

// ExpenseInput is the validated add-expense form.
type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
}

// ParseExpense validates the add-expense form. Amounts must be strictly
// positive and the category must come from the fixed set.
func ParseExpense(values url.Values) (ExpenseInput, Errors) {
	errs := Errors{}
	in := ExpenseInput{
		Category:    values.Get("category"),
		Description: strings.TrimSpace(values.Get("description")),
	}

	rawAmount := strings.TrimSpace(values.Get("amount"))
	if rawAmount == "" {
		errs["amount"] = "Amount is required"
	} else if amount, err := strconv.ParseFloat(rawAmount, 64); err != nil {
		errs["amount"] = "Amount must be a number"
	} else if amount <= 0 {
		errs["amount"] = "Amount must be greater than zero"
	} else {
		in.Amount = amount
	}

	if in.Category == "" {
		errs["category"] = "Category is required"
	} else if !models.ValidCategory(in.Category) {
		errs["category"] = "Category must be one of the listed options"
	}

	if len(in.Description) > DescriptionMaxLen {
		errs["description"] = "Description must be at most 200 characters"
	}

	return in, errs
}

// ProfileInput is the validated profile-update form. Empty fields mean
// "leave unchanged".
type ProfileInput struct {
	FullName string
	Email    string
	Bio      string
}

// ParseProfile validates the profile-update form. All fields are optional;
// constraints apply only to non-empty values.
func ParseProfile(values url.Values) (ProfileInput, Errors) {
	errs := Errors{}
	in := ProfileInput{
		FullName: strings.TrimSpace(values.Get("full_name")),
		Email:    strings.TrimSpace(values.Get("email")),
		Bio:      strings.TrimSpace(values.Get("bio")),
	}

	if n := len(in.FullName); n > 0 && (n < FullNameMinLen || n > FullNameMaxLen) {
		errs["full_name"] = "Name must be between 2 and 100 characters"
	}

	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			errs["email"] = "Invalid email address"
		}
	}

	if len(in.Bio) > BioMaxLen {
		errs["bio"] = "Bio must be less than 500 characters"
	}

	return in, errs
}
