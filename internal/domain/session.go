package domain

import "time"

// Session es una corrida del quiz para un perro.
type Session struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	DogName   string    `json:"dog_name"`
	Breed     string    `json:"breed,omitempty"`
	Age       string    `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BreedOrDefault devuelve la raza o "mixed breed" si no se informó.
func (s Session) BreedOrDefault() string {
	if s.Breed == "" {
		return "mixed breed"
	}
	return s.Breed
}
