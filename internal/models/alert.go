package models

import "time"

// SecurityAlert is one code scanning alert on a repository.
type SecurityAlert struct {
	Number    int       `json:"number"`
	Tool      string    `json:"tool"`
	Rule      string    `json:"rule"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}
