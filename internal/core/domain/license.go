package domain

// License is a software license assigned to exactly one developer.
type License struct {
	ID          string `json:"id"`
	Software    string `json:"software"`
	DeveloperID string `json:"developer"`
}
