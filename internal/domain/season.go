package domain

import (
	"fmt"
	"strings"
)

// Season is a cropping season accepted by the yield endpoint.
type Season string

const (
	SeasonKharif    Season = "Kharif"
	SeasonRabi      Season = "Rabi"
	SeasonZaid      Season = "Zaid"
	SeasonWholeYear Season = "Whole Year"
	SeasonAutumn    Season = "Autumn"
	SeasonSummer    Season = "Summer"
	SeasonWinter    Season = "Winter"
)

var seasons = []Season{
	SeasonKharif,
	SeasonRabi,
	SeasonZaid,
	SeasonWholeYear,
	SeasonAutumn,
	SeasonSummer,
	SeasonWinter,
}

var seasonLabels = map[Season]string{
	SeasonKharif: "Kharif (Monsoon)",
	SeasonRabi:   "Rabi (Winter)",
	SeasonZaid:   "Zaid (Summer)",
}

// Seasons returns the selectable seasons in display order.
func Seasons() []Season {
	out := make([]Season, len(seasons))
	copy(out, seasons)
	return out
}

// Label is the human-facing option text.
func (s Season) Label() string {
	if l, ok := seasonLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	for _, k := range seasons {
		if k == s {
			return true
		}
	}
	return false
}

// ParseSeason matches case-insensitively and ignores surrounding space.
func ParseSeason(s string) (Season, error) {
	in := strings.TrimSpace(s)
	for _, k := range seasons {
		if strings.EqualFold(string(k), in) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown season %q: %w", s, ErrInvalidInput)
}

// NextSeason cycles through "" (unselected) and the known seasons.
// step is +1 or -1.
func NextSeason(cur Season, step int) Season {
	n := len(seasons) + 1
	idx := 0
	for i, k := range seasons {
		if k == cur {
			idx = i + 1
			break
		}
	}
	idx = ((idx+step)%n + n) % n
	if idx == 0 {
		return ""
	}
	return seasons[idx-1]
}
