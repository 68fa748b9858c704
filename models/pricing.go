package models

import (
	"encoding/json"
	"fmt"
)

type PricingType string

const (
	PricingFixed PricingType = "fixed"
	PricingRange PricingType = "range"
)

// Pricing is a tagged union: a fixed amount, or a min/max range. Type selects
// which fields are meaningful.
type Pricing struct {
	Type   PricingType `bson:"type" json:"type"`
	Amount float64     `bson:"amount,omitempty" json:"amount"`
	Min    float64     `bson:"min,omitempty" json:"min"`
	Max    float64     `bson:"max,omitempty" json:"max"`
	Unit   string      `bson:"unit" json:"unit"` // e.g. "per visit", "per month"
}

func FixedPrice(amount float64, unit string) Pricing {
	return Pricing{Type: PricingFixed, Amount: amount, Unit: unit}
}

func PriceRange(min, max float64, unit string) Pricing {
	return Pricing{Type: PricingRange, Min: min, Max: max, Unit: unit}
}

func (p Pricing) Validate() error {
	switch p.Type {
	case PricingFixed:
		if p.Amount < 0 {
			return fmt.Errorf("fixed pricing amount must not be negative")
		}
	case PricingRange:
		if p.Min < 0 || p.Max < p.Min {
			return fmt.Errorf("invalid pricing range %v-%v", p.Min, p.Max)
		}
	default:
		return fmt.Errorf("unknown pricing type: %q", p.Type)
	}
	return nil
}

type fixedPricingJSON struct {
	Type   PricingType `json:"type"`
	Amount float64     `json:"amount"`
	Unit   string      `json:"unit"`
}

type rangePricingJSON struct {
	Type PricingType `json:"type"`
	Min  float64     `json:"min"`
	Max  float64     `json:"max"`
	Unit string      `json:"unit"`
}

// MarshalJSON emits only the fields of the active variant.
func (p Pricing) MarshalJSON() ([]byte, error) {
	switch p.Type {
	case PricingFixed:
		return json.Marshal(fixedPricingJSON{Type: p.Type, Amount: p.Amount, Unit: p.Unit})
	case PricingRange:
		return json.Marshal(rangePricingJSON{Type: p.Type, Min: p.Min, Max: p.Max, Unit: p.Unit})
	default:
		return nil, fmt.Errorf("cannot marshal pricing of type %q", p.Type)
	}
}

func (p *Pricing) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type   PricingType `json:"type"`
		Amount float64     `json:"amount"`
		Min    float64     `json:"min"`
		Max    float64     `json:"max"`
		Unit   string      `json:"unit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case PricingFixed:
		*p = FixedPrice(raw.Amount, raw.Unit)
	case PricingRange:
		*p = PriceRange(raw.Min, raw.Max, raw.Unit)
	default:
		return fmt.Errorf("unknown pricing type: %q", raw.Type)
	}
	return nil
}
