package models

// Friend is a saved person who can be added to any bill as a default participant.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format).
	ID string `json:"id"`

	// Name is the display name used when the friend joins a bill.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the friend was saved.
	CreatedAt int64 `json:"createdAt"`
}
