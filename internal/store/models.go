package store

import "time"

// Project groups supervisors, typically one per deployed application.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Supervisor is one managed process whose log file logdeck can browse.
type Supervisor struct {
	ID        string    `json:"id"`
	ProjectID int64     `json:"projectId"`
	Name      string    `json:"name"`
	LogPath   string    `json:"logPath"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
