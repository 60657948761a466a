package dto

// AskRequest carries a free-form finance question for the advisor
type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// AskResponse carries the advisor's answer verbatim
type AskResponse struct {
	Answer string `json:"answer"`
}
