package models

import "time"

// DefaultProfilePicture is the placeholder asset used when a user has not
// uploaded a picture. It lives under web/static, not the uploads directory.
const DefaultProfilePicture = "default_profile.png"

// User represents a user account.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	Email          string    `json:"email,omitempty"`
	FullName       string    `json:"full_name,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	LastLogin      time.Time `json:"last_login,omitzero"`
}

// HasCustomPicture reports whether the user has uploaded their own picture.
func (u *User) HasCustomPicture() bool {
	return u.ProfilePicture != "" && u.ProfilePicture != DefaultProfilePicture
}

// PictureURL returns the path the browser should request for the user's picture.
func (u *User) PictureURL() string {
	if u.HasCustomPicture() {
		return "/uploads/" + u.ProfilePicture
	}
	return "/static/" + DefaultProfilePicture
}

// Session represents a user session.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
