package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/expenselab/expense-keeper/internal/logger"
	"github.com/expenselab/expense-keeper/internal/service"
	"github.com/expenselab/expense-keeper/internal/store"
	"github.com/expenselab/expense-keeper/internal/utils"
	"github.com/expenselab/expense-keeper/models"
)

// expenseHandler serves the expense routes over one [service.ExpenseService].
// The same handler type backs both the canonical authenticated route set and
// the open one; which records a request can touch is decided entirely by the
// ownership policy baked into the service.
type expenseHandler struct {
	service service.ExpenseService
}

func newExpenseHandler(service service.ExpenseService) *expenseHandler {
	return &expenseHandler{service: service}
}

// userID pulls the authenticated identity bound by the auth middleware.
// Open routes have none; the zero value is fine there because the unscoped
// policy ignores it.
func userID(r *http.Request) int64 {
	uid, _ := utils.GetUserIDFromContext(r.Context())
	return uid
}

// create handles POST /expenses.
//
// Responses:
//   - 201 and the stored expense on success.
//   - 400 {"message": "<fields> is required"} when required fields are
//     missing, names joined by ", " in the order title, amount, category.
//   - 400 {"error": ...} on a malformed body or unexpected failure.
func (e *expenseHandler) create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Info().Msg("received request to create expense")

	var input models.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	expense, err := e.service.Create(r.Context(), input, userID(r))
	if err != nil {
		var missing *service.MissingFieldsError
		if errors.As(err, &missing) {
			utils.WriteJSON(w, models.MessageResponse{Message: missing.Error()}, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error creating expense")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, expense, http.StatusCreated)
}

// list handles GET /expenses: 200 and a (possibly empty) array in
// store-native order, or 500 {"error": ...} on unexpected failure.
func (e *expenseHandler) list(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Info().Msg("received request to fetch all expenses")

	expenses, err := e.service.List(r.Context(), userID(r))
	if err != nil {
		log.Err(err).Msg("error retrieving expenses")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

// getByID handles GET /expenses/{id}.
//
// Responses:
//   - 200 and the expense on success.
//   - 404 {"message": "Expense not found"} when no owned record matches;
//     another user's record is indistinguishable from a missing one.
//   - 500 {"error": ...} on unexpected failure (including malformed ids).
func (e *expenseHandler) getByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")
	log.Info().Str("expense_id", id).Msg("received request to fetch expense")

	expense, err := e.service.GetByID(r.Context(), id, userID(r))
	if err != nil {
		if errors.Is(err, store.ErrExpenseNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Message: msgExpenseNotFound}, http.StatusNotFound)
			return
		}
		log.Err(err).Str("expense_id", id).Msg("error retrieving expense")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, expense, http.StatusOK)
}

// update handles PUT /expenses/{id}.
//
// The raw body is passed as a key set so the service can reject disallowed
// fields before touching the store.
//
// Responses:
//   - 200 and the updated expense on success.
//   - 400 {"message": "Invalid update parameters"} on an empty body or any
//     key outside the allowlist, regardless of whether the id exists.
//   - 404 {"message": "Expense not found"} when no owned record matches.
//   - 400 {"error": ...} on a malformed body or unexpected failure.
func (e *expenseHandler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")
	log.Info().Str("expense_id", id).Msg("received request to update expense")

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	expense, err := e.service.Update(r.Context(), id, body, userID(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUpdateParams):
			utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidUpdate}, http.StatusBadRequest)
		case errors.Is(err, store.ErrExpenseNotFound):
			utils.WriteJSON(w, models.MessageResponse{Message: msgExpenseNotFound}, http.StatusNotFound)
		default:
			log.Err(err).Str("expense_id", id).Msg("error updating expense")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		}
		return
	}

	utils.WriteJSON(w, expense, http.StatusOK)
}

// delete handles DELETE /expenses/{id}.
//
// Responses:
//   - 200 {"message": "Expense deleted successfully"} on success.
//   - 404 {"message": "Expense not found"} when no owned record matches.
//   - 500 {"error": ...} on unexpected failure.
func (e *expenseHandler) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")
	log.Info().Str("expense_id", id).Msg("received request to delete expense")

	if err := e.service.Delete(r.Context(), id, userID(r)); err != nil {
		if errors.Is(err, store.ErrExpenseNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Message: msgExpenseNotFound}, http.StatusNotFound)
			return
		}
		log.Err(err).Str("expense_id", id).Msg("error deleting expense")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgExpenseDeleted}, http.StatusOK)
}

// search handles GET /expenses/search?query=<text>. A blank or absent query
// behaves exactly like list; no matches yields an empty array, never an
// error.
func (e *expenseHandler) search(w http.ResponseWriter, r *http.Request) {
	e.doSearch(w, r, r.URL.Query().Get("query"))
}

// searchByPath handles the open variant's path-parameter form
// GET /expenses/search/{query}.
func (e *expenseHandler) searchByPath(w http.ResponseWriter, r *http.Request) {
	e.doSearch(w, r, chi.URLParam(r, "query"))
}

func (e *expenseHandler) doSearch(w http.ResponseWriter, r *http.Request, query string) {
	log := logger.FromRequest(r)
	log.Info().Str("query", query).Msg("received request to search expenses")

	expenses, err := e.service.Search(r.Context(), query, userID(r))
	if err != nil {
		log.Err(err).Str("query", query).Msg("error searching expenses")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}
