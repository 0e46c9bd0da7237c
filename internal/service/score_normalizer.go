package service

import (
	"math/rand/v2"

	"dog-personality-quiz/internal/domain"
)

const (
	minPresentationScore = 20
	maxPresentationScore = 100
	scoreJitterSpan      = 20

	highTierThreshold   = 80
	mediumTierThreshold = 60
)

// RandSource aísla la aleatoriedad del pipeline (jitter y elección de
// etiquetas). *rand.Rand de math/rand/v2 lo satisface.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRandSource usa el generador global de math/rand/v2.
var DefaultRandSource RandSource = globalRand{}

// NormalizeScore aplica clamp(raw + U, 20, 100) con U uniforme en [0, 20).
func NormalizeScore(raw int, rnd RandSource) int {
	if rnd == nil {
		rnd = DefaultRandSource
	}
	return clampScore(raw + rnd.IntN(scoreJitterSpan))
}

func clampScore(v int) int {
	if v < minPresentationScore {
		return minPresentationScore
	}
	if v > maxPresentationScore {
		return maxPresentationScore
	}
	return v
}

// TierFor clasifica un puntaje ya normalizado. Los límites son inclusivos.
func TierFor(score int) domain.Tier {
	switch {
	case score >= highTierThreshold:
		return domain.TierHigh
	case score >= mediumTierThreshold:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}
