package domain

import "time"

// Question es una pregunta materializada para una sesión.
type Question struct {
	ID         string   `json:"id"`
	SessionID  string   `json:"-"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	OrderIndex int      `json:"order_index"`
}

// HasOption indica si el texto es una de las opciones cerradas de la pregunta.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

type Answer struct {
	ID             string    `json:"id"`
	QuestionID     string    `json:"question_id"`
	SelectedOption string    `json:"selected_option"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// QAPair es la unidad de entrada del scorer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
