package domain

import "strings"

// landscapeNames maps normalized briefing display names to Condor internal
// folder names. Add entries here when new landscapes appear in briefings.
var landscapeNames = map[string]string{
	"centroitalia3": "Centro_Italia3",
	"slovenia3":     "Slovenia3",
	"alps1":         "Alps1",
}

// aircraftNames maps lowercase briefing display names to Condor internal
// aircraft names.
var aircraftNames = map[string]string{
	"duo discus xl":   "DuoDiscusXL",
	"duo discus t":    "DuoDiscusT",
	"duo discus":      "DuoDiscus",
	"std cirrus":      "StdCirrus",
	"standard cirrus": "StdCirrus",
	"ls4":             "LS4",
	"ls8":             "LS8",
	"discus 2":        "Discus2",
	"discus2":         "Discus2",
	"blanik":          "Blanik",
	"asw 28":          "ASW28",
	"asw28":           "ASW28",
	"nimbus 4":        "Nimbus4",
	"ventus 2":        "Ventus2",
}

// NormalizeName lowercases a turnpoint name and collapses whitespace runs to
// single spaces, trimming the ends. Idempotent, never fails.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NormalizeLandscape normalizes a landscape identifier for comparison.
// Landscapes are compared more loosely than turnpoint names because source
// files disagree about separators: "Centro_Italia3", "Centro Italia 3" and
// "Centro Italia3" all map to "centroitalia3".
func NormalizeLandscape(landscape string) string {
	s := strings.ToLower(landscape)
	s = strings.ReplaceAll(s, "_", "")
	return strings.Join(strings.Fields(s), "")
}

// CanonicalLandscape maps a briefing display name to the Condor internal
// folder name. Unknown names fall back to title-cased words joined by
// underscores, which matches the folder convention for most landscapes.
func CanonicalLandscape(raw string) string {
	if internal, ok := landscapeNames[NormalizeLandscape(raw)]; ok {
		return internal
	}
	words := strings.Fields(raw)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, "_")
}

// CanonicalAircraft maps a briefing display name to the Condor internal
// aircraft name. Unknown names fall back to the raw name with spaces removed.
func CanonicalAircraft(raw string) string {
	if internal, ok := aircraftNames[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return internal
	}
	return strings.ReplaceAll(raw, " ", "")
}
