package main

import (
	"strings"
	"testing"

	"dog-personality-quiz/internal/service"
)

func TestScenariosPass(t *testing.T) {
	questions := service.StandardQuestions()
	for _, sc := range scenarios {
		if err := checkScenario(questions, sc); err != nil {
			t.Fatalf("scenario %q: %v", sc.Name, err)
		}
	}
}

func TestCheckScenarioRejectsUnknownOption(t *testing.T) {
	sc := Scenario{Name: "x", Question: 0, Answer: "Barks at the mailman"}
	err := checkScenario(service.StandardQuestions(), sc)
	if err == nil || !strings.Contains(err.Error(), "no es una opcion") {
		t.Fatalf("expected unknown option error, got %v", err)
	}
	if err := checkScenario(service.StandardQuestions(), Scenario{Question: 99}); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestContributions(t *testing.T) {
	got := contributions("When left alone, your dog typically:", "Sleeps peacefully")
	if got != "independence+20" {
		t.Fatalf("unexpected contributions %q", got)
	}
	if got := contributions("Your dog's favorite type of play is:", "Wrestling with other dogs"); got != "" {
		t.Fatalf("expected no contributions, got %q", got)
	}
}
