package handlers

import (
	"net/http"

	"expensetracker/internal/models"
)

// ReportsViewModel is the data passed to the reports template.
type ReportsViewModel struct {
	Flash          *Flash
	User           *models.User
	CategoryTotals []models.CategoryTotal
	Total          float64
}

// Reports shows per-category expense totals for the current user, ordered
// by category name, with the grand total.
func (h *Handlers) Reports(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	totals, err := h.db.CategoryTotals(user.ID)
	if err != nil {
		h.serverError(w, "category totals", err)
		return
	}

	var total float64
	for _, ct := range totals {
		total += ct.Total
	}

	h.render(w, "reports.html", ReportsViewModel{
		Flash:          h.popFlash(w, r),
		User:           user,
		CategoryTotals: totals,
		Total:          total,
	})
}
