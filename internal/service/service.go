// Package service holds one controller per page. Every controller loads its
// page from the finance API, turns it into a view model and, after a
// successful mutation, loads it again. Nothing is patched locally.
package service

// Success notices
const (
	NoticeTransactionAdded = "Transaction added"
	NoticeBillAdded        = "Bill added"
	NoticeMarkedPaid       = "Marked paid"
	NoticeDeleted          = "Deleted"
	NoticeGoalAdded        = "Goal added"
	NoticeContentAdded     = "Content added"
)

// Confirmation prompts
const (
	PromptMarkPaid   = "Mark as paid?"
	PromptDeleteBill = "Are you sure to delete this bill?"
)

// Confirmer answers a yes/no prompt before a destructive action
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Always confirms every prompt
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

// Never declines every prompt
var Never Confirmer = ConfirmFunc(func(string) bool { return false })
