package domain

const (
	TraitLove         = "love"
	TraitLoyalty      = "loyalty"
	TraitPlayfulness  = "playfulness"
	TraitIntelligence = "intelligence"
	TraitIndependence = "independence"
	TraitMischief     = "mischief"
	TraitFoodDrive    = "food_drive"
)

// TraitOrder es el orden canónico de los rasgos; desempata el ranking del título.
var TraitOrder = []string{
	TraitLove,
	TraitLoyalty,
	TraitPlayfulness,
	TraitIntelligence,
	TraitIndependence,
	TraitMischief,
	TraitFoodDrive,
}

// IsKnownTrait reporta si la clave pertenece al set fijo de rasgos.
func IsKnownTrait(trait string) bool {
	for _, t := range TraitOrder {
		if t == trait {
			return true
		}
	}
	return false
}

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// TraitScore guarda el acumulador crudo y la presentación de un rasgo.
type TraitScore struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Score       int    `json:"score"`
	Raw         int    `json:"raw"`
}

// Scores siempre contiene las siete claves de TraitOrder.
type Scores map[string]TraitScore
