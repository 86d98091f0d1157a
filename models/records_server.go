package models

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type System struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// TermsOfService records when the current user accepted a given terms text.
type TermsOfService struct {
	ID         string `json:"id"`
	AcceptedAt int64  `json:"acceptedAt"`
	CreateAt   int64  `json:"create_at"`
	UserID     string `json:"user_id"`
	Text       string `json:"text"`
}
