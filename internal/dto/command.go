package dto

// CommandRequest carries one free-text ledger command
type CommandRequest struct {
	Text string `json:"text" validate:"required"`
}
