package domain

import "time"

// Result es el resultado inmutable de una sesión completa. Solo Images puede
// cambiar, y únicamente por regeneración de un rasgo.
type Result struct {
	ID        string            `json:"id"`
	SessionID string            `json:"-"`
	Title     string            `json:"title"`
	Summary   string            `json:"summary"`
	Scores    Scores            `json:"scores"`
	Images    map[string]string `json:"generated_images"`
	CreatedAt time.Time         `json:"created_at"`
}
