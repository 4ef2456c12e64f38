package domain

import "time"

const (
	VariantDefault     = ""
	VariantSuccess     = "success"
	VariantDestructive = "destructive"
)

// Notification is the toast payload handed to the presentation layer.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
