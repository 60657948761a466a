package dto

// SeedRequest controls how many sample transactions to insert
type SeedRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=1000"`
}

// SeedResponse reports how many records were inserted
type SeedResponse struct {
	Inserted int `json:"inserted"`
}
