package plans

const (
	minVolumeReps = 3
	maxVolumeReps = 15
)

// SetDetail is a single performed set: reps at a weight, with work and rest seconds.
type SetDetail struct {
	ID             int     `json:"id"`
	ExerciseSetID  int     `json:"exercise_set_id"`
	Reps           int     `json:"reps"`
	Weight         float64 `json:"weight"`
	ActualDuration int     `json:"actual_duration"`
	RestTime       int     `json:"rest_time"`
}

// CalculateTime returns the seconds spent on this set, rest included.
func (d SetDetail) CalculateTime() int {
	return d.ActualDuration + d.RestTime
}

// CalculateVolume returns reps x weight, counted only for 3..15 reps.
func (d SetDetail) CalculateVolume() float64 {
	if d.Reps < minVolumeReps || d.Reps > maxVolumeReps {
		return 0
	}
	return float64(d.Reps) * d.Weight
}

func (d SetDetail) Validate() error {
	if d.Reps <= 0 {
		return NewValidationError("reps", "must be greater than 0")
	}
	if d.Weight < 0 {
		return NewValidationError("weight", "must not be negative")
	}
	if d.ActualDuration < 0 {
		return NewValidationError("actual_duration", "must not be negative")
	}
	if d.RestTime < 0 {
		return NewValidationError("rest_time", "must not be negative")
	}
	return nil
}
