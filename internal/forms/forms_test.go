package forms

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegister(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantField string
	}{
		{
			name: "valid",
			values: url.Values{
				"username":         {"alice"},
				"password":         {"secret1"},
				"confirm_password": {"secret1"},
			},
		},
		{
			name: "missing username",
			values: url.Values{
				"password":         {"secret1"},
				"confirm_password": {"secret1"},
			},
			wantField: "username",
		},
		{
			name: "username too short",
			values: url.Values{
				"username":         {"al"},
				"password":         {"secret1"},
				"confirm_password": {"secret1"},
			},
			wantField: "username",
		},
		{
			name: "username too long",
			values: url.Values{
				"username":         {strings.Repeat("a", 21)},
				"password":         {"secret1"},
				"confirm_password": {"secret1"},
			},
			wantField: "username",
		},
		{
			name: "password too short",
			values: url.Values{
				"username":         {"alice"},
				"password":         {"short"},
				"confirm_password": {"short"},
			},
			wantField: "password",
		},
		{
			name: "confirmation mismatch",
			values: url.Values{
				"username":         {"alice"},
				"password":         {"secret1"},
				"confirm_password": {"secret2"},
			},
			wantField: "confirm_password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, errs := ParseRegister(tt.values)
			if tt.wantField == "" {
				assert.False(t, errs.Has(), "unexpected errors: %v", errs)
				assert.Equal(t, "alice", in.Username)
				assert.Equal(t, "secret1", in.Password)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestParseRegister_BoundaryLengths(t *testing.T) {
	for _, username := range []string{"abc", strings.Repeat("a", 20)} {
		values := url.Values{
			"username":         {username},
			"password":         {"secret"},
			"confirm_password": {"secret"},
		}
		_, errs := ParseRegister(values)
		assert.False(t, errs.Has(), "username %q should be accepted", username)
	}
}

func TestParseLogin(t *testing.T) {
	_, errs := ParseLogin(url.Values{"username": {"alice"}, "password": {"secret1"}})
	assert.False(t, errs.Has())

	_, errs = ParseLogin(url.Values{"password": {"secret1"}})
	assert.Contains(t, errs, "username")

	_, errs = ParseLogin(url.Values{"username": {"alice"}})
	assert.Contains(t, errs, "password")
}

func TestParseExpense(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantField string
	}{
		{
			name:   "valid",
			values: url.Values{"amount": {"12.50"}, "category": {"Food"}, "description": {"Lunch"}},
		},
		{
			name:   "valid without description",
			values: url.Values{"amount": {"3"}, "category": {"Other"}},
		},
		{
			name:      "missing amount",
			values:    url.Values{"category": {"Food"}},
			wantField: "amount",
		},
		{
			name:      "non-numeric amount",
			values:    url.Values{"amount": {"twelve"}, "category": {"Food"}},
			wantField: "amount",
		},
		{
			name:      "zero amount",
			values:    url.Values{"amount": {"0"}, "category": {"Food"}},
			wantField: "amount",
		},
		{
			name:      "negative amount",
			values:    url.Values{"amount": {"-4.20"}, "category": {"Food"}},
			wantField: "amount",
		},
		{
			name:      "missing category",
			values:    url.Values{"amount": {"5"}},
			wantField: "category",
		},
		{
			name:      "unknown category",
			values:    url.Values{"amount": {"5"}, "category": {"Gadgets"}},
			wantField: "category",
		},
		{
			name:      "description too long",
			values:    url.Values{"amount": {"5"}, "category": {"Food"}, "description": {strings.Repeat("x", 201)}},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, errs := ParseExpense(tt.values)
			if tt.wantField == "" {
				assert.False(t, errs.Has(), "unexpected errors: %v", errs)
				assert.Greater(t, in.Amount, 0.0)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantField string
	}{
		{
			name:   "all empty is valid",
			values: url.Values{},
		},
		{
			name: "valid full update",
			values: url.Values{
				"full_name": {"Alice Doe"},
				"email":     {"alice@example.com"},
				"bio":       {"I track expenses."},
			},
		},
		{
			name:      "name too short",
			values:    url.Values{"full_name": {"A"}},
			wantField: "full_name",
		},
		{
			name:      "invalid email",
			values:    url.Values{"email": {"not-an-email"}},
			wantField: "email",
		},
		{
			name:      "bio too long",
			values:    url.Values{"bio": {strings.Repeat("x", 501)}},
			wantField: "bio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ParseProfile(tt.values)
			if tt.wantField == "" {
				assert.False(t, errs.Has(), "unexpected errors: %v", errs)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestAllowedImageExt(t *testing.T) {
	assert.True(t, AllowedImageExt("me.jpg"))
	assert.True(t, AllowedImageExt("me.JPEG"))
	assert.True(t, AllowedImageExt("avatar.png"))
	assert.False(t, AllowedImageExt("script.php"))
	assert.False(t, AllowedImageExt("animation.gif"))
	assert.False(t, AllowedImageExt("noext"))
}
