package main

import (
	"fmt"
	"os"
	"strings"

	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Scenario fija el aporte crudo esperado de una respuesta a una pregunta del
// banco estándar.
type Scenario struct {
	Name     string
	Question int
	Answer   string
	Expected map[string]int
}

var scenarios = []Scenario{
	{
		Name:     "Saludo efusivo suma amor",
		Question: 0,
		Answer:   "Jumps all over me with pure excitement",
		Expected: map[string]int{domain.TraitLove: 20},
	},
	{
		Name:     "Consuelo suma amor",
		Question: 3,
		Answer:   "Cuddles up close to comfort me",
		Expected: map[string]int{domain.TraitLove: 20},
	},
	{
		Name:     "Solo en casa: espera en la puerta",
		Question: 5,
		Answer:   "Waits by the door for my return",
		Expected: map[string]int{domain.TraitLoyalty: 20},
	},
	{
		Name:     "Solo en casa: travesuras",
		Question: 5,
		Answer:   "Gets into mischief",
		Expected: map[string]int{domain.TraitMischief: 20},
	},
	{
		Name:     "Entrenamiento con premios",
		Question: 6,
		Answer:   "Needs lots of treats to stay motivated",
		Expected: map[string]int{domain.TraitFoodDrive: 20},
	},
	{
		Name:     "Juego con palabra de otro rasgo no suma",
		Question: 4,
		Answer:   "Wrestling with other dogs",
		Expected: map[string]int{},
	},
}

func main() {
	questions := service.StandardQuestions()

	fmt.Println("=== Aportes por opcion ===")
	silent := 0
	for _, q := range questions {
		fmt.Println(q.Text)
		for _, opt := range q.Options {
			contrib := contributions(q.Text, opt)
			if contrib == "" {
				contrib = "-"
				silent++
			}
			fmt.Printf("  %-45s %s\n", opt, contrib)
		}
	}
	fmt.Printf("\nOpciones que no suman a ningun rasgo: %d\n\n", silent)

	fmt.Println("=== Escenarios ===")
	passed := 0
	for _, sc := range scenarios {
		if err := checkScenario(questions, sc); err != nil {
			fmt.Printf("%s❌ FAIL%s [%s] %v\n", colorRed, colorReset, sc.Name, err)
			continue
		}
		fmt.Printf("%s✅ PASS%s [%s]\n", colorGreen, colorReset, sc.Name)
		passed++
	}

	fmt.Printf("\nEscenarios: %d/%d pasaron\n", passed, len(scenarios))
	if passed != len(scenarios) {
		os.Exit(1)
	}
}

// contributions describe los rasgos que suma un par, en orden canónico.
func contributions(question, answer string) string {
	raw := service.ScoreTraits([]domain.QAPair{{Question: question, Answer: answer}})
	var parts []string
	for _, trait := range domain.TraitOrder {
		if raw[trait] > 0 {
			parts = append(parts, fmt.Sprintf("%s+%d", trait, raw[trait]))
		}
	}
	return strings.Join(parts, " ")
}

func checkScenario(questions []service.StandardQuestion, sc Scenario) error {
	if sc.Question < 0 || sc.Question >= len(questions) {
		return fmt.Errorf("pregunta %d fuera de rango", sc.Question)
	}
	q := questions[sc.Question]
	found := false
	for _, opt := range q.Options {
		if opt == sc.Answer {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%q no es una opcion de %q", sc.Answer, q.Text)
	}

	raw := service.ScoreTraits([]domain.QAPair{{Question: q.Text, Answer: sc.Answer}})
	for _, trait := range domain.TraitOrder {
		if raw[trait] != sc.Expected[trait] {
			return fmt.Errorf("%s: esperado %d, obtenido %d", trait, sc.Expected[trait], raw[trait])
		}
	}
	return nil
}
