package bodycomp

import (
	"errors"
	"time"

	"github.com/2beens/fitplan/internal/gymstats/plans"
)

var ErrBodyCompositionNotFound = errors.New("body composition not found")

// BodyComposition is one measurement of a user's body.
// Height is in cm, weight and muscle mass in kg, circumferences in cm.
type BodyComposition struct {
	ID                 int       `json:"id"`
	UserID             int       `json:"user_id"`
	Height             float64   `json:"height"`
	Weight             float64   `json:"weight"`
	BodyFatPercentage  float64   `json:"body_fat_percentage"`
	MuscleMass         float64   `json:"muscle_mass"`
	BMI                float64   `json:"bmi"`
	VisceralFat        float64   `json:"visceral_fat"`
	BasalMetabolicRate float64   `json:"basal_metabolic_rate"`
	WaistCircumference float64   `json:"waist_circumference"`
	HipCircumference   float64   `json:"hip_circumference"`
	MeasuredAt         time.Time `json:"measured_at"`
}

// CalculateBMI sets and returns weight / height(m)^2.
func (bc *BodyComposition) CalculateBMI() float64 {
	if bc.Height <= 0 {
		bc.BMI = 0
		return 0
	}
	heightM := bc.Height / 100
	bc.BMI = bc.Weight / (heightM * heightM)
	return bc.BMI
}

func (bc BodyComposition) Validate() error {
	if bc.Height <= 0 || bc.Height > 250 {
		return plans.NewValidationError("height", "must be in (0, 250] cm")
	}
	if bc.Weight <= 0 || bc.Weight > 300 {
		return plans.NewValidationError("weight", "must be in (0, 300] kg")
	}
	if bc.BodyFatPercentage < 0 || bc.BodyFatPercentage > 100 {
		return plans.NewValidationError("body_fat_percentage", "must be in [0, 100]")
	}
	nonNegative := map[string]float64{
		"muscle_mass":          bc.MuscleMass,
		"visceral_fat":         bc.VisceralFat,
		"basal_metabolic_rate": bc.BasalMetabolicRate,
		"waist_circumference":  bc.WaistCircumference,
		"hip_circumference":    bc.HipCircumference,
	}
	for field, v := range nonNegative {
		if v < 0 {
			return plans.NewValidationError(field, "must not be negative")
		}
	}
	return nil
}
