package handlers

import (
	"net/http"
	"time"

	"expensetracker/internal/forms"
	"expensetracker/internal/models"
)

// DashboardViewModel is the data passed to the dashboard template.
type DashboardViewModel struct {
	Flash    *Flash
	User     *models.User
	Expenses []models.Expense
	Total    float64
}

// Dashboard lists the current user's expenses, newest first, with the
// running total.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	expenses, err := h.db.ListExpenses(user.ID)
	if err != nil {
		h.serverError(w, "list expenses", err)
		return
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	h.render(w, "index.html", DashboardViewModel{
		Flash:    h.popFlash(w, r),
		User:     user,
		Expenses: expenses,
		Total:    total,
	})
}

// ExpenseFormViewModel is the data passed to the add-expense template.
type ExpenseFormViewModel struct {
	Flash      *Flash
	User       *models.User
	Errors     forms.Errors
	Categories []string
	Input      forms.ExpenseInput
}

// AddExpenseForm renders the form to record a new expense.
func (h *Handlers) AddExpenseForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "add_expense.html", ExpenseFormViewModel{
		Flash:      h.popFlash(w, r),
		User:       GetUserFromContext(r),
		Categories: models.Categories,
	})
}

// AddExpense handles the add-expense form submission. The created record
// is stamped with the server-side time, not user input.
func (h *Handlers) AddExpense(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	in, errs := forms.ParseExpense(r.PostForm)
	if errs.Has() {
		h.render(w, "add_expense.html", ExpenseFormViewModel{
			User:       user,
			Errors:     errs,
			Categories: models.Categories,
			Input:      in,
		})
		return
	}

	if err := h.db.CreateExpense(user.ID, in.Amount, in.Category, in.Description, time.Now()); err != nil {
		h.serverError(w, "create expense", err)
		return
	}

	h.setFlash(w, "success", "Expense added successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}
