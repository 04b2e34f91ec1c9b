package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"expensetracker/internal/auth"
	"expensetracker/internal/forms"
	"expensetracker/internal/models"
	"expensetracker/internal/storage"
	"expensetracker/internal/uploads"
)

// LoginViewModel holds data for the login page.
type LoginViewModel struct {
	Flash    *Flash
	User     *models.User
	Errors   forms.Errors
	Username string
}

// LoginForm renders the login page.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	// If already logged in, go straight to the dashboard
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if _, err := h.db.ValidateSession(cookie.Value); err == nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
	}
	h.render(w, "login.html", LoginViewModel{Flash: h.popFlash(w, r)})
}

// Login handles the login form submission.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "login.html", LoginViewModel{
			Errors: forms.Errors{"form": "Invalid form submission"},
		})
		return
	}

	in, errs := forms.ParseLogin(r.PostForm)
	if errs.Has() {
		h.render(w, "login.html", LoginViewModel{Errors: errs, Username: in.Username})
		return
	}

	// Identical message for unknown user and wrong password: no username
	// enumeration.
	user, err := h.db.GetUserByUsername(in.Username)
	if err != nil || !auth.CheckPassword(in.Password, user.PasswordHash) {
		h.render(w, "login.html", LoginViewModel{
			Errors:   forms.Errors{"form": "Invalid username or password"},
			Username: in.Username,
		})
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		h.serverError(w, "generate session token", err)
		return
	}

	if err := h.db.CreateSession(token, user.ID, time.Now().Add(SessionDuration)); err != nil {
		h.serverError(w, "create session", err)
		return
	}

	if err := h.db.UpdateLastLogin(user.ID, time.Now()); err != nil {
		// Not fatal; the session is already established.
		slog.Warn("failed to update last login", "user", user.ID, "error", err)
	}

	h.setSessionCookie(w, token)
	h.setFlash(w, "success", "Login successful!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout ends the current session.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.db.DeleteSession(cookie.Value); err != nil {
			h.serverError(w, "delete session", err)
			return
		}
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// RegisterViewModel holds data for the registration page.
type RegisterViewModel struct {
	Flash    *Flash
	User     *models.User
	Errors   forms.Errors
	Username string
}

// RegisterForm renders the registration page.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", RegisterViewModel{Flash: h.popFlash(w, r)})
}

// Register handles the registration form submission.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		h.render(w, "register.html", RegisterViewModel{
			Errors: forms.Errors{"form": "Invalid form submission"},
		})
		return
	}

	in, errs := forms.ParseRegister(r.PostForm)

	if errs["username"] == "" {
		taken, err := h.db.UsernameExists(in.Username)
		if err != nil {
			h.serverError(w, "check username", err)
			return
		}
		if taken {
			errs["username"] = "Username is already taken"
		}
	}

	if errs.Has() {
		h.render(w, "register.html", RegisterViewModel{Errors: errs, Username: in.Username})
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		h.serverError(w, "hash password", err)
		return
	}

	// Optional profile picture; missing file means the default asset.
	// Browsers submit an empty part when no file was chosen.
	picture := ""
	file, header, fileErr := r.FormFile("profile_picture")
	if fileErr == nil {
		defer file.Close()
	}
	if fileErr == nil && header.Filename != "" {
		var err error
		picture, err = h.pictures.Save(file, header.Filename)
		if err != nil {
			if errors.Is(err, uploads.ErrDisallowedExtension) {
				errs["profile_picture"] = "Images only (jpg, jpeg, png)"
				h.render(w, "register.html", RegisterViewModel{Errors: errs, Username: in.Username})
				return
			}
			h.serverError(w, "save profile picture", err)
			return
		}
	}

	if _, err := h.db.CreateUser(in.Username, hash, picture); err != nil {
		// Remove the uploaded file so a failed registration leaves no state.
		if picture != "" {
			_ = h.pictures.Remove(picture)
		}
		if errors.Is(err, storage.ErrUsernameTaken) {
			errs["username"] = "Username is already taken"
			h.render(w, "register.html", RegisterViewModel{Errors: errs, Username: in.Username})
			return
		}
		h.serverError(w, "create user", err)
		return
	}

	h.setFlash(w, "success", "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// parseMultipart parses a form that may or may not be multipart encoded.
func parseMultipart(r *http.Request) error {
	err := r.ParseMultipartForm(maxUploadBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}
