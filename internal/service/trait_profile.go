package service

import (
	"sort"

	"dog-personality-quiz/internal/domain"
)

// TraitProfiler encadena scorer, normalizador y selector de etiquetas.
type TraitProfiler struct {
	rnd RandSource
}

func NewTraitProfiler(rnd RandSource) *TraitProfiler {
	if rnd == nil {
		rnd = DefaultRandSource
	}
	return &TraitProfiler{rnd: rnd}
}

// Build produce el mapa completo de los siete rasgos. Recorre los rasgos en
// domain.TraitOrder para que una fuente aleatoria fija dé siempre lo mismo.
func (p *TraitProfiler) Build(pairs []domain.QAPair) domain.Scores {
	raw := ScoreTraits(pairs)
	scores := make(domain.Scores, len(domain.TraitOrder))
	for _, trait := range domain.TraitOrder {
		score := NormalizeScore(raw[trait], p.rnd)
		label, description := DescribeTrait(trait, TierFor(score), p.rnd)
		scores[trait] = domain.TraitScore{
			Label:       label,
			Emoji:       TraitEmoji(trait),
			Description: description,
			Score:       score,
			Raw:         raw[trait],
		}
	}
	return scores
}

// RankedTrait es un rasgo con su puntaje, usado para armar prompts.
type RankedTrait struct {
	Trait string
	domain.TraitScore
}

// TopTraits ordena por puntaje descendente; los empates respetan TraitOrder.
func TopTraits(scores domain.Scores, n int) []RankedTrait {
	ranked := make([]RankedTrait, 0, len(scores))
	for _, trait := range domain.TraitOrder {
		if ts, ok := scores[trait]; ok {
			ranked = append(ranked, RankedTrait{Trait: trait, TraitScore: ts})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
