package service

import "dog-personality-quiz/internal/domain"

type tierCopy struct {
	labels      []string
	description string
}

var traitEmoji = map[string]string{
	domain.TraitLove:         "💖",
	domain.TraitLoyalty:      "🛡️",
	domain.TraitPlayfulness:  "🎾",
	domain.TraitIntelligence: "🧠",
	domain.TraitIndependence: "🗽",
	domain.TraitMischief:     "😈",
	domain.TraitFoodDrive:    "🍖",
}

var traitCopy = map[string]map[domain.Tier]tierCopy{
	domain.TraitLove: {
		domain.TierHigh:   {labels: []string{"Snuggle Master", "Love Bug Supreme", "Cuddle Champion"}, description: "This pup wears their heart on their paw and loves with their whole being!"},
		domain.TierMedium: {labels: []string{"Sweet Heart", "Gentle Soul", "Warm Companion"}, description: "Shows affection in their own sweet way, making every moment special."},
		domain.TierLow:    {labels: []string{"Reserved Sweetheart", "Subtle Lover", "Quiet Affection"}, description: "Expresses love in subtle, meaningful ways that touch the heart."},
	},
	domain.TraitLoyalty: {
		domain.TierHigh:   {labels: []string{"Devoted Guardian", "Faithful Companion", "Loyal Knight"}, description: "A devoted companion who will stand by your side through thick and thin."},
		domain.TierMedium: {labels: []string{"Steady Friend", "Reliable Buddy", "True Blue"}, description: "A dependable friend who's there when you need them most."},
		domain.TierLow:    {labels: []string{"Independent Spirit", "Friendly Acquaintance", "Casual Companion"}, description: "Values freedom while maintaining warm friendships."},
	},
	domain.TraitPlayfulness: {
		domain.TierHigh:   {labels: []string{"Play Maniac", "Fun Factory", "Energy Bomb"}, description: "Life is one big playground for this energetic and fun-loving dog!"},
		domain.TierMedium: {labels: []string{"Fun Loving", "Happy Player", "Joyful Spirit"}, description: "Enjoys a good game and knows how to have fun at the right times."},
		domain.TierLow:    {labels: []string{"Calm Observer", "Peaceful Soul", "Relaxed Buddy"}, description: "Finds joy in quiet moments and peaceful activities."},
	},
	domain.TraitIntelligence: {
		domain.TierHigh:   {labels: []string{"Genius Pup", "Brainy Beauty", "Smart Cookie"}, description: "This brilliant pup is always thinking and loves to show off their smarts."},
		domain.TierMedium: {labels: []string{"Clever Pup", "Quick Learner", "Bright Mind"}, description: "Smart and capable, picking up on things with ease."},
		domain.TierLow:    {labels: []string{"Intuitive Thinker", "Natural Learner", "Instinct-Driven"}, description: "Uses natural wisdom and instinct to navigate the world."},
	},
	domain.TraitIndependence: {
		domain.TierHigh:   {labels: []string{"Free Spirit", "Independent Thinker", "Solo Explorer"}, description: "A confident explorer who marches to the beat of their own drum."},
		domain.TierMedium: {labels: []string{"Balanced Explorer", "Confident Walker", "Self-Reliant"}, description: "Comfortable in their own skin while still enjoying companionship."},
		domain.TierLow:    {labels: []string{"People-Focused", "Social Butterfly", "Pack Oriented"}, description: "Thrives on social connection and family bonds."},
	},
	domain.TraitMischief: {
		domain.TierHigh:   {labels: []string{"Trouble Maker", "Sneaky Rascal", "Chaos Creator"}, description: "This little rascal keeps life interesting with their playful antics!"},
		domain.TierMedium: {labels: []string{"Playful Scamp", "Gentle Rebel", "Mild Troublemaker"}, description: "Keeps things lively with just the right amount of playful trouble."},
		domain.TierLow:    {labels: []string{"Angel Pup", "Well-Behaved", "Model Citizen"}, description: "A well-behaved companion who brings peace and harmony."},
	},
	domain.TraitFoodDrive: {
		domain.TierHigh:   {labels: []string{"Food Fanatic", "Treat Hunter", "Snack Attack"}, description: "Food is life for this enthusiastic eater who never misses a meal!"},
		domain.TierMedium: {labels: []string{"Food Lover", "Treat Appreciator", "Good Appetite"}, description: "Appreciates good food and treats without going overboard."},
		domain.TierLow:    {labels: []string{"Picky Eater", "Casual Diner", "Quality Over Quantity"}, description: "Has refined tastes and appreciates quality over quantity."},
	},
}

var fallbackCopy = map[domain.Tier]tierCopy{
	domain.TierHigh:   {labels: []string{"High Scorer"}, description: "A truly exceptional trait in this special dog!"},
	domain.TierMedium: {labels: []string{"Medium Scorer"}, description: "A wonderful balance in this personality trait!"},
	domain.TierLow:    {labels: []string{"Low Scorer"}, description: "A gentle and balanced approach to this trait."},
}

// DescribeTrait elige una etiqueta al azar entre las candidatas del tier y
// devuelve la descripción fija del par (rasgo, tier). Nunca falla: rasgos o
// tiers desconocidos caen en un texto genérico.
func DescribeTrait(trait string, tier domain.Tier, rnd RandSource) (label, description string) {
	if rnd == nil {
		rnd = DefaultRandSource
	}
	copyText, ok := traitCopy[trait][tier]
	if !ok {
		copyText, ok = fallbackCopy[tier]
		if !ok {
			copyText = fallbackCopy[domain.TierHigh]
		}
	}
	return copyText.labels[rnd.IntN(len(copyText.labels))], copyText.description
}

// TraitEmoji devuelve el glifo fijo del rasgo.
func TraitEmoji(trait string) string {
	if e, ok := traitEmoji[trait]; ok {
		return e
	}
	return "🐾"
}
