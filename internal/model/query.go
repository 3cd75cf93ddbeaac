package model

import "github.com/google/uuid"

// QueryExchange is one question/answer round with the career Q&A collaborator.
// A new question overwrites the previous exchange.
type QueryExchange struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Error    string    `json:"error"`
	Loading  bool      `json:"loading"`
}
