package plans

import (
	"fmt"
	"strings"
	"time"
)

// CaloriesPerKgFat is the energy in one kilogram of body fat.
const CaloriesPerKgFat = 7700.0

type ExerciseType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Exercise is one planned or logged workout, the root of the set/detail tree.
type Exercise struct {
	ID                       int           `json:"id"`
	OwnerID                  int           `json:"owner_id"`
	Name                     string        `json:"name"`
	Goal                     Goal          `json:"goal"`
	TotalDuration            int           `json:"total_duration"`
	ExerciseTypes            []string      `json:"exercise_type"`
	ManualCaloriesBurned     *float64      `json:"manual_calories_burned"`
	CalculatedCaloriesBurned float64       `json:"calculated_calories_burned"`
	ScheduledDate            Date          `json:"scheduled_date"`
	CreatedAt                time.Time     `json:"created_at"`
	Sets                     []ExerciseSet `json:"sets"`
}

// UpdateTotalDuration sets TotalDuration to the whole minutes of all sets.
func (e *Exercise) UpdateTotalDuration() int {
	seconds := 0
	for _, s := range e.Sets {
		seconds += s.TotalDuration()
	}
	e.TotalDuration = seconds / 60
	return e.TotalDuration
}

// METValue averages the MET of the tagged types, DefaultMET when untagged.
func (e Exercise) METValue() float64 {
	if len(e.ExerciseTypes) == 0 {
		return DefaultMET
	}
	var sum float64
	for _, name := range e.ExerciseTypes {
		sum += METFor(name)
	}
	return sum / float64(len(e.ExerciseTypes))
}

// CalculateCalories stores and returns MET x kg x 3.5 / 200 per minute of TotalDuration.
func (e *Exercise) CalculateCalories(weightKg float64) float64 {
	perMinute := e.METValue() * weightKg * 3.5 / 200
	e.CalculatedCaloriesBurned = perMinute * float64(e.TotalDuration)
	return e.CalculatedCaloriesBurned
}

// CaloriesBurned prefers the manual value over the calculated one.
func (e Exercise) CaloriesBurned() float64 {
	if e.ManualCaloriesBurned != nil {
		return *e.ManualCaloriesBurned
	}
	return e.CalculatedCaloriesBurned
}

// CalculateWeightLoss converts burned calories to kilograms of fat.
func (e Exercise) CalculateWeightLoss() float64 {
	burned := e.CaloriesBurned()
	if burned <= 0 {
		return 0
	}
	return burned / CaloriesPerKgFat
}

func (e Exercise) TotalVolume() float64 {
	var volume float64
	for _, s := range e.Sets {
		volume += s.TotalVolume()
	}
	return volume
}

// Recompute refreshes every derived value of the tree. The calculated calories
// follow weightKg (nil meaning no recorded weight) unless a manual value is set.
func (e *Exercise) Recompute(weightKg *float64) {
	for i := range e.Sets {
		e.Sets[i].Sets = len(e.Sets[i].Details)
	}
	e.UpdateTotalDuration()
	if e.ManualCaloriesBurned != nil {
		return
	}
	if weightKg == nil {
		e.CalculatedCaloriesBurned = 0
		return
	}
	e.CalculateCalories(*weightKg)
}

// Clone deep-copies the tree for ownerID with every identity cleared.
func (e Exercise) Clone(ownerID int, createdAt time.Time) Exercise {
	clone := e
	clone.ID = 0
	clone.OwnerID = ownerID
	clone.CreatedAt = createdAt
	clone.ExerciseTypes = append([]string{}, e.ExerciseTypes...)
	if e.ManualCaloriesBurned != nil {
		manual := *e.ManualCaloriesBurned
		clone.ManualCaloriesBurned = &manual
	}
	clone.Sets = make([]ExerciseSet, len(e.Sets))
	for i, s := range e.Sets {
		s.ID = 0
		s.ExerciseID = 0
		details := make([]SetDetail, len(s.Details))
		for j, d := range s.Details {
			d.ID = 0
			d.ExerciseSetID = 0
			details[j] = d
		}
		s.Details = details
		clone.Sets[i] = s
	}
	return clone
}

// ApplyDefaults fills the enum defaults and normalizes empty collections.
func (e *Exercise) ApplyDefaults() {
	if e.Goal == "" {
		e.Goal = GoalGeneralFitness
	}
	e.ExerciseTypes = uniqueTypeNames(e.ExerciseTypes)
	if e.Sets == nil {
		e.Sets = []ExerciseSet{}
	}
	for i := range e.Sets {
		e.Sets[i].applyDefaults()
	}
}

// uniqueTypeNames trims the names and drops repeats, keeping the first
// occurrence order. The result is never nil.
func uniqueTypeNames(names []string) []string {
	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return NewValidationError("name", "required")
	}
	if !e.Goal.IsValid() {
		return NewValidationError("goal", fmt.Sprintf("unknown value %q", e.Goal))
	}
	if e.ScheduledDate.IsZero() {
		return NewValidationError("scheduled_date", "required")
	}
	if e.ManualCaloriesBurned != nil && *e.ManualCaloriesBurned < 0 {
		return NewValidationError("manual_calories_burned", "must not be negative")
	}
	for i, s := range e.Sets {
		if err := s.Validate(); err != nil {
			return prefixed(fmt.Sprintf("sets[%d]", i), err)
		}
	}
	return nil
}
