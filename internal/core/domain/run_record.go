package domain

import "time"

// RunRecord describes the last successful ProGuard execution of a project.
type RunRecord struct {
	Project    string    `json:"project,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Args       []string  `json:"args,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
