package quiz

import (
	"fmt"
	"image"
)

// Slots is the number of entrants on every card.
const Slots = 4

type Entrant struct {
	Name     string
	Portrait image.Image // nil renders the "no photo" placeholder
}

type Quiz struct {
	Question string   `json:"question" toml:"question"`
	Footer   string   `json:"footer" toml:"footer"`
	Names    []string `json:"names" toml:"names"`
}

// PaddingName labels the entrant generated for an empty slot (1-based).
func PaddingName(position int) string {
	return fmt.Sprintf("Entrant %d", position)
}

// Normalize returns exactly Slots entrants: extra entrants are dropped,
// missing ones are filled with unnamed placeholders.
func Normalize(entrants []Entrant) []Entrant {
	out := make([]Entrant, Slots)
	for i := range out {
		if i < len(entrants) {
			out[i] = entrants[i]
			continue
		}
		out[i] = Entrant{Name: PaddingName(i + 1)}
	}
	return out
}

// Label is the text shown under a portrait.
func Label(position int, name string, numbered bool) string {
	if numbered {
		return fmt.Sprintf("%d. %s", position, name)
	}
	return name
}
