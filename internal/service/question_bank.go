package service

import "dog-personality-quiz/internal/domain"

// StandardQuestion es una entrada fija del banco de preguntas.
// Las opciones son el set cerrado de respuestas válidas y su redacción está
// acoplada a las palabras clave de traitRules: si cambia una, cambia la otra.
type StandardQuestion struct {
	Text    string
	Options []string
	Traits  []string
}

var standardQuestions = []StandardQuestion{
	{
		Text: "How does your dog typically greet you when you come home?",
		Options: []string{
			"Jumps all over me with pure excitement",
			"Wags tail and brings me a toy",
			"Gives me a calm, happy look",
			"Takes a moment to acknowledge me",
		},
		Traits: []string{domain.TraitLove},
	},
	{
		Text: "When meeting new people, your dog usually:",
		Options: []string{
			"Immediately wants pets and attention",
			"Observes from a distance first",
			"Hides behind me",
			"Acts like they've known them forever",
		},
		Traits: []string{domain.TraitLoyalty},
	},
	{
		Text: "During meal times, your dog:",
		Options: []string{
			"Sits patiently and waits",
			"Gets very excited and might drool",
			"Does tricks to earn their food",
			"Guards their food area",
		},
		Traits: []string{domain.TraitFoodDrive},
	},
	{
		Text: "When you're feeling sad, your dog:",
		Options: []string{
			"Cuddles up close to comfort me",
			"Brings me toys to cheer me up",
			"Gives me space but stays nearby",
			"Doesn't seem to notice much",
		},
		Traits: []string{domain.TraitLove},
	},
	{
		Text: "Your dog's favorite type of play is:",
		Options: []string{
			"Fetch and running games",
			"Tug-of-war",
			"Puzzle toys and brain games",
			"Wrestling with other dogs",
		},
		Traits: []string{domain.TraitPlayfulness},
	},
	{
		Text: "When left alone, your dog typically:",
		Options: []string{
			"Sleeps peacefully",
			"Looks out the window",
			"Gets into mischief",
			"Waits by the door for my return",
		},
		Traits: []string{domain.TraitLoyalty, domain.TraitIndependence, domain.TraitMischief},
	},
	{
		Text: "During training sessions, your dog:",
		Options: []string{
			"Learns quickly and eagerly",
			"Needs lots of treats to stay motivated",
			"Gets distracted easily",
			"Shows off once they know a trick",
		},
		Traits: []string{domain.TraitPlayfulness, domain.TraitIntelligence, domain.TraitFoodDrive},
	},
	{
		Text: "When exploring new places, your dog:",
		Options: []string{
			"Confidently leads the way",
			"Stays close to me",
			"Sniffs everything thoroughly",
			"Looks for other dogs to play with",
		},
		Traits: []string{domain.TraitIndependence},
	},
	{
		Text: "Your dog's reaction to bath time is:",
		Options: []string{
			"Tries to escape at all costs",
			"Tolerates it for treats",
			"Actually seems to enjoy it",
			"Gives me the saddest puppy eyes",
		},
		Traits: []string{domain.TraitMischief},
	},
	{
		Text: "When other dogs approach, your dog:",
		Options: []string{
			"Wants to play immediately",
			"Assesses the situation first",
			"Gets protective of me",
			"Ignores them completely",
		},
		Traits: []string{domain.TraitLoyalty},
	},
}

// StandardQuestions devuelve una copia del banco fijo, en orden.
func StandardQuestions() []StandardQuestion {
	out := make([]StandardQuestion, len(standardQuestions))
	for i, q := range standardQuestions {
		out[i] = StandardQuestion{
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
			Traits:  append([]string(nil), q.Traits...),
		}
	}
	return out
}
