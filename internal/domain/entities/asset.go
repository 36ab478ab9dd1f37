package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// AssetCondition is the inspected condition grade of a crane.
type AssetCondition string

const (
	ConditionExcellent AssetCondition = "excellent"
	ConditionGood      AssetCondition = "good"
	ConditionFair      AssetCondition = "fair"
	ConditionPoor      AssetCondition = "poor"
)

func ParseAssetCondition(raw string) (AssetCondition, bool) {
	c := AssetCondition(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return c, true
	}
	return "", false
}

// AssetDescriptor is the normalized description of one piece of equipment.
//
// Field rules are enforced by the valuation package; the struct tags carry the
// tier-independent part, SerialNumber is checked per tier.
type AssetDescriptor struct {
	Manufacturer string         `json:"manufacturer" validate:"required"`
	Model        string         `json:"model" validate:"required"`
	Year         int            `json:"year" validate:"required"`
	CapacityTons float64        `json:"capacity_tons" validate:"gt=0"`
	Hours        int            `json:"hours" validate:"gte=0"`
	Condition    AssetCondition `json:"condition" validate:"required,oneof=excellent good fair poor"`
	Location     string         `json:"location" validate:"required"`
	SerialNumber string         `json:"serial_number,omitempty"`
}

// Normalize trims free-text fields and upper-cases the location code.
func (a AssetDescriptor) Normalize() AssetDescriptor {
	a.Manufacturer = strings.TrimSpace(a.Manufacturer)
	a.Model = strings.TrimSpace(a.Model)
	a.Location = strings.ToUpper(strings.TrimSpace(a.Location))
	a.SerialNumber = strings.TrimSpace(a.SerialNumber)
	if c, ok := ParseAssetCondition(string(a.Condition)); ok {
		a.Condition = c
	}
	return a
}

// Fingerprint identifies the exact attribute set a valuation was computed from.
func (a AssetDescriptor) Fingerprint() string {
	b, _ := json.Marshal(a.Normalize())
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
