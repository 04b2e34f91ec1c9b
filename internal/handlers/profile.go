package handlers

import (
	"errors"
	"net/http"

	"expensetracker/internal/forms"
	"expensetracker/internal/models"
	"expensetracker/internal/uploads"
)

// ProfileViewModel is the data passed to the profile template.
type ProfileViewModel struct {
	Flash  *Flash
	User   *models.User
	Errors forms.Errors
}

// ProfileForm renders the profile page with the user's current details.
func (h *Handlers) ProfileForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "profile.html", ProfileViewModel{
		Flash: h.popFlash(w, r),
		User:  GetUserFromContext(r),
	})
}

// ProfileUpdate handles the profile form submission. Every non-empty field
// overwrites the stored value; empty fields are left unchanged. A picture
// upload replaces the stored file only once the database row is updated.
func (h *Handlers) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	if err := parseMultipart(r); err != nil {
		h.render(w, "profile.html", ProfileViewModel{
			User:   user,
			Errors: forms.Errors{"form": "Invalid form submission"},
		})
		return
	}

	in, errs := forms.ParseProfile(r.PostForm)

	// Browsers submit an empty part when no file was chosen.
	file, header, fileErr := r.FormFile("profile_picture")
	if fileErr == nil {
		defer file.Close()
	}
	hasPicture := fileErr == nil && header.Filename != ""
	if hasPicture && !forms.AllowedImageExt(header.Filename) {
		errs["profile_picture"] = "Images only (jpg, jpeg, png)"
	}

	if errs.Has() {
		h.render(w, "profile.html", ProfileViewModel{User: user, Errors: errs})
		return
	}

	updated := *user
	if in.FullName != "" {
		updated.FullName = in.FullName
	}
	if in.Email != "" {
		updated.Email = in.Email
	}
	if in.Bio != "" {
		updated.Bio = in.Bio
	}

	if hasPicture {
		_, err := h.pictures.Replace(file, header.Filename, user.ProfilePicture, func(newName string) error {
			updated.ProfilePicture = newName
			return h.db.UpdateProfile(&updated)
		})
		if err != nil {
			if errors.Is(err, uploads.ErrDisallowedExtension) {
				h.render(w, "profile.html", ProfileViewModel{
					User:   user,
					Errors: forms.Errors{"profile_picture": "Images only (jpg, jpeg, png)"},
				})
				return
			}
			h.serverError(w, "replace profile picture", err)
			return
		}
	} else if err := h.db.UpdateProfile(&updated); err != nil {
		h.serverError(w, "update profile", err)
		return
	}

	h.setFlash(w, "success", "Profile updated successfully!")
	http.Redirect(w, r, "/profile", http.StatusFound)
}
