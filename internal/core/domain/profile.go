package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrProfileNotFound = errors.New("profile not found")

const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityIntense   = "intense"
)

type UserProfile struct {
	Name          string  `json:"name" yaml:"name"`
	Age           int     `json:"age" yaml:"age"`
	HeightCm      float64 `json:"height_cm" yaml:"height_cm"`
	WeightKg      float64 `json:"weight_kg" yaml:"weight_kg"`
	ActivityLevel string  `json:"activity_level" yaml:"activity_level"`
}

func (p *UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidInput)
	}
	if p.Age < 0 || p.Age > 130 {
		return fmt.Errorf("%w: implausible age %d", ErrInvalidInput, p.Age)
	}
	if !isFiniteNonNegative(p.HeightCm) || p.HeightCm == 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidInput)
	}
	if !isFiniteNonNegative(p.WeightKg) || p.WeightKg == 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}

	switch p.ActivityLevel {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityIntense:
	default:
		return fmt.Errorf("%w: activity level must be one of sedentary, light, moderate, intense", ErrInvalidInput)
	}
	return nil
}
