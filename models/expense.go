package models

// Expense represents a single spending record owned by at most one user.
// Records created through the open (unauthenticated) route set carry no
// owner; everywhere else UserID is stamped server-side from the
// authenticated identity and is never client-writable.
type Expense struct {
	// ID is the server-generated identifier of the record (UUID string).
	// Assigned by the store adapter at insert time; immutable afterwards.
	ID string `json:"id"`

	// Title is the short human-readable name of the expense. Required.
	Title string `json:"title"`

	// Amount is the monetary value of the expense. Required.
	Amount float64 `json:"amount"`

	// Category is the user-chosen grouping label. Required.
	Category string `json:"category"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// Date is the optional day the expense occurred.
	Date *Date `json:"date,omitempty"`

	// UserID references the owning user. Nil for records created through
	// the open route set.
	UserID *int64 `json:"user,omitempty"`
}

// ExpenseInput is the client-supplied body of a create request.
// Zero values mark a field as absent: an empty title/category or a zero
// amount fails required-field validation the same way a missing key does.
type ExpenseInput struct {
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        *Date   `json:"date"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}
