package service

import (
	"fmt"
	"strings"

	"dog-personality-quiz/internal/domain"
)

type placeholderStyle struct {
	color string
	label string
}

var placeholderStyles = map[string]placeholderStyle{
	domain.TraitLove:         {color: "#FFB3C6", label: "Love"},
	domain.TraitLoyalty:      {color: "#87CEEB", label: "Loyalty"},
	domain.TraitPlayfulness:  {color: "#98FB98", label: "Playful"},
	domain.TraitIntelligence: {color: "#DDA0DD", label: "Smart"},
	domain.TraitIndependence: {color: "#F0E68C", label: "Independent"},
	domain.TraitMischief:     {color: "#FFA07A", label: "Mischievous"},
	domain.TraitFoodDrive:    {color: "#DEB887", label: "Food Lover"},
}

const placeholderPrefix = "placeholders/"

// PlaceholderKey es la referencia estable que reemplaza una imagen fallida.
func PlaceholderKey(trait string) string {
	return placeholderPrefix + trait + ".svg"
}

// TraitFromPlaceholderFile extrae el rasgo de "<trait>.svg"; false si no es conocido.
func TraitFromPlaceholderFile(file string) (string, bool) {
	trait, ok := strings.CutSuffix(file, ".svg")
	if !ok || !domain.IsKnownTrait(trait) {
		return "", false
	}
	return trait, true
}

// PlaceholderSVG dibuja el placeholder del rasgo. Se genera bajo demanda, así
// que no hace falta sembrar un bucket al arrancar.
func PlaceholderSVG(trait string) string {
	style, ok := placeholderStyles[trait]
	if !ok {
		style = placeholderStyle{color: "#E0E0E0", label: "Dog"}
	}
	return fmt.Sprintf(`<svg width="400" height="400" xmlns="http://www.w3.org/2000/svg">
  <rect width="400" height="400" fill="%s" rx="200"/>
  <circle cx="200" cy="200" r="180" fill="white" fill-opacity="0.7"/>
  <text x="200" y="160" font-family="Arial, sans-serif" font-size="80" text-anchor="middle" fill="#333">%s</text>
  <text x="200" y="220" font-family="Arial, sans-serif" font-size="24" text-anchor="middle" fill="#333" font-weight="bold">%s</text>
  <text x="200" y="250" font-family="Arial, sans-serif" font-size="18" text-anchor="middle" fill="#666">%s</text>
</svg>`, style.color, TraitEmoji(trait), style.label, strings.ToUpper(trait))
}
