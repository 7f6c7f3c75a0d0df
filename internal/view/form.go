package view

import "github.com/dafibh/finai/finai-web/internal/domain"

// NoticeLevel tells the page how to present a notice
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a blocking message shown once after an action
type Notice struct {
	Level   NoticeLevel
	Message string
}

// InfoNotice builds a success notice
func InfoNotice(msg string) *Notice {
	return &Notice{Level: NoticeInfo, Message: msg}
}

// ErrorNotice builds the notice for a failed mutation
func ErrorNotice(err error) *Notice {
	return &Notice{Level: NoticeError, Message: domain.NoticeMessage(err)}
}

// TransactionForm mirrors the dashboard form fields
type TransactionForm struct {
	Type        string `form:"type"`
	Amount      string `form:"amount"`
	Description string `form:"description"`
}

// Request converts the form into the API request body
func (f TransactionForm) Request() domain.NewTransaction {
	return domain.NewTransaction{Type: f.Type, Amount: f.Amount, Description: f.Description}
}

// BillForm mirrors the bill form fields
type BillForm struct {
	BillType   string `form:"bill_type"`
	Amount     string `form:"amount"`
	Date       string `form:"date"`
	TimePeriod string `form:"time_period"`
	Priority   string `form:"priority"`
}

// Request converts the form into the API request body
func (f BillForm) Request() domain.NewBill {
	return domain.NewBill{
		BillType:   f.BillType,
		Amount:     f.Amount,
		Date:       f.Date,
		TimePeriod: f.TimePeriod,
		Priority:   f.Priority,
	}
}

// GoalForm mirrors the goal form fields
type GoalForm struct {
	Name   string `form:"name"`
	Months string `form:"months"`
	Amount string `form:"amount"`
}

// Request converts the form into the API request body
func (f GoalForm) Request() domain.NewGoal {
	return domain.NewGoal{Name: f.Name, Months: f.Months, Amount: f.Amount}
}

// LearningForm mirrors the learning form fields
type LearningForm struct {
	Type    string `form:"type"`
	Name    string `form:"name"`
	Content string `form:"content"`
	Image   string `form:"image"`
	Code    string `form:"code"`
}

// Request converts the form into the API request body
func (f LearningForm) Request() domain.NewLearningItem {
	return domain.NewLearningItem{
		Type:    f.Type,
		Name:    f.Name,
		Content: f.Content,
		Image:   f.Image,
		Code:    f.Code,
	}
}
