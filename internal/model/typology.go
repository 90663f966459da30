package model

import (
	"fmt"
	"strings"
)

// Typology is the Portuguese residential classification by bedroom count.
// Keep these values stable; they are used in API payloads and CSV output.
type Typology string

const (
	TypologyT0     Typology = "T0"
	TypologyT1     Typology = "T1"
	TypologyT2     Typology = "T2"
	TypologyT3     Typology = "T3"
	TypologyT4Plus Typology = "T4+"
)

// ParseTypology accepts the canonical forms plus a few spellings callers
// actually send ("t4plus", "T4PLUS").
func ParseTypology(s string) (Typology, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T0":
		return TypologyT0, nil
	case "T1":
		return TypologyT1, nil
	case "T2":
		return TypologyT2, nil
	case "T3":
		return TypologyT3, nil
	case "T4+", "T4PLUS", "T4":
		return TypologyT4Plus, nil
	}
	return "", fmt.Errorf("unknown typology: %q", s)
}

// Typologies lists all supported typologies in display order.
func Typologies() []Typology {
	return []Typology{TypologyT0, TypologyT1, TypologyT2, TypologyT3, TypologyT4Plus}
}

// RenovationTier selects the per-m² renovation cost band.
type RenovationTier string

const (
	RenovationLow    RenovationTier = "low"
	RenovationMedium RenovationTier = "medium"
	RenovationHigh   RenovationTier = "high"
)

// renovationCostPerM2 is a fixed table in €/m². These are configuration
// constants, not process state; do not mutate.
var renovationCostPerM2 = map[RenovationTier]float64{
	RenovationLow:    300.0,
	RenovationMedium: 600.0,
	RenovationHigh:   900.0,
}

// RenovationCostPerM2 returns the €/m² base cost for a tier.
// Unknown tiers fall back to the medium band.
func RenovationCostPerM2(tier RenovationTier) float64 {
	if v, ok := renovationCostPerM2[tier]; ok {
		return v
	}
	return renovationCostPerM2[RenovationMedium]
}

func ParseRenovationTier(s string) (RenovationTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "baixo":
		return RenovationLow, nil
	case "medium", "medio", "médio":
		return RenovationMedium, nil
	case "high", "alto":
		return RenovationHigh, nil
	}
	return "", fmt.Errorf("unknown renovation tier: %q", s)
}

// RenovationTiers lists all tiers in ascending cost order.
func RenovationTiers() []RenovationTier {
	return []RenovationTier{RenovationLow, RenovationMedium, RenovationHigh}
}
