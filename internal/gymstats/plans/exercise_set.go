package plans

import (
	"fmt"
	"strings"
)

// ExerciseSet groups the performed sets of one movement within an Exercise.
type ExerciseSet struct {
	ID           int         `json:"id"`
	ExerciseID   int         `json:"exercise_id"`
	ExerciseName string      `json:"exercise_name"`
	BodyPart     BodyPart    `json:"body_part"`
	JointType    JointType   `json:"joint_type"`
	Sets         int         `json:"sets"`
	Details      []SetDetail `json:"details"`
}

// TotalDuration returns the seconds of all details, 0 when there are none.
func (s ExerciseSet) TotalDuration() int {
	total := 0
	for _, d := range s.Details {
		total += d.CalculateTime()
	}
	return total
}

func (s ExerciseSet) TotalVolume() float64 {
	var volume float64
	for _, d := range s.Details {
		volume += d.CalculateVolume()
	}
	return volume
}

func (s *ExerciseSet) applyDefaults() {
	if s.BodyPart == "" {
		s.BodyPart = BodyPartFullBody
	}
	if s.JointType == "" {
		s.JointType = JointTypeMulti
	}
	if s.Details == nil {
		s.Details = []SetDetail{}
	}
	s.Sets = len(s.Details)
}

func (s ExerciseSet) Validate() error {
	if strings.TrimSpace(s.ExerciseName) == "" {
		return NewValidationError("exercise_name", "required")
	}
	if !s.BodyPart.IsValid() {
		return NewValidationError("body_part", fmt.Sprintf("unknown value %q", s.BodyPart))
	}
	if !s.JointType.IsValid() {
		return NewValidationError("joint_type", fmt.Sprintf("unknown value %q", s.JointType))
	}
	for i, d := range s.Details {
		if err := d.Validate(); err != nil {
			return prefixed(fmt.Sprintf("details[%d]", i), err)
		}
	}
	return nil
}
