package models

// ExpensePatch is a typed partial update of an expense. Nil fields are left
// untouched; the service layer populates it only from allowlisted keys, so
// the owner reference and the identifier can never appear here.
type ExpensePatch struct {
	Title       *string  `json:"title,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *Date    `json:"date,omitempty"`
}

// IsEmpty reports whether the patch carries no changes.
func (p ExpensePatch) IsEmpty() bool {
	return p.Title == nil && p.Amount == nil && p.Category == nil &&
		p.Description == nil && p.Date == nil
}
