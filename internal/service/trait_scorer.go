package service

import (
	"strings"

	"dog-personality-quiz/internal/domain"
)

type keywordTier struct {
	points   int
	keywords []string
}

// traitRule gates a trait on the question text and then scores the answer
// against keyword tiers, ordered from most to fewest points.
type traitRule struct {
	trait        string
	topicMarkers []string
	tiers        []keywordTier
}

// "left alone" gates loyalty, independence and mischief at the same time.
var traitRules = []traitRule{
	{
		trait:        domain.TraitLove,
		topicMarkers: []string{"greet", "feeling sad"},
		tiers: []keywordTier{
			{points: 20, keywords: []string{"cuddles", "jumps all over", "comfort"}},
			{points: 15, keywords: []string{"happy", "wags"}},
			{points: 10, keywords: []string{"calm"}},
		},
	},
	{
		trait:        domain.TraitLoyalty,
		topicMarkers: []string{"left alone", "new people", "approach"},
		tiers: []keywordTier{
			{points: 20, keywords: []string{"waits by the door", "stays close", "protective"}},
			{points: 15, keywords: []string{"nearby", "observes"}},
		},
	},
	{
		trait:        domain.TraitPlayfulness,
		topicMarkers: []string{"play", "training"},
		tiers: []keywordTier{
			{points: 20, keywords: []string{"fetch", "play immediately", "excited"}},
			{points: 15, keywords: []string{"tug", "toys"}},
		},
	},
	{
		trait:        domain.TraitIntelligence,
		topicMarkers: []string{"training", "puzzle"},
		tiers: []keywordTier{
			{points: 20, keywords: []string{"learns quickly", "puzzle", "brain games"}},
			{points: 15, keywords: []string{"tricks", "shows off"}},
		},
	},
	{
		trait:        domain.TraitIndependence,
		topicMarkers: []string{"exploring", "left alone"},
		tiers: []keywordTier{
			{points: 20, keywords: []string{"confidently leads", "sleeps peacefully", "ignores"}},
			{points: 15, keywords: []string{"sniffs everything", "looks out window"}},
		},
	},
	{
		trait:        domain.TraitMischief,
		topicMarkers: []string{"left alone", "bath"},
		tiers: []keywordTier{
			{points: 20, keywords: []string{"mischief", "escape", "distracted"}},
		},
	},
	{
		trait:        domain.TraitFoodDrive,
		topicMarkers: []string{"meal", "training"},
		tiers: []keywordTier{
			{points: 20, keywords: []string{"excited", "drool", "guards food", "treats"}},
		},
	},
}

// ScoreTraits suma puntos crudos por rasgo. Es pura y total: cada par se
// evalúa por separado y el resultado no depende del orden de entrada.
// Todas las claves de domain.TraitOrder están presentes aunque valgan 0.
func ScoreTraits(pairs []domain.QAPair) map[string]int {
	raw := make(map[string]int, len(domain.TraitOrder))
	for _, trait := range domain.TraitOrder {
		raw[trait] = 0
	}
	for _, pair := range pairs {
		question := strings.ToLower(pair.Question)
		answer := strings.ToLower(pair.Answer)
		for _, rule := range traitRules {
			raw[rule.trait] += rule.points(question, answer)
		}
	}
	return raw
}

// points devuelve el valor del tier más alto que matchea, sin acumular tiers.
func (r traitRule) points(question, answer string) int {
	if answer == "" || !containsAny(question, r.topicMarkers) {
		return 0
	}
	for _, tier := range r.tiers {
		if containsAny(answer, tier.keywords) {
			return tier.points
		}
	}
	return 0
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
