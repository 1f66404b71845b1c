package templates

import (
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/gymstats/plans"
)

var ErrTemplateNotFound = fmt.Errorf("template %w", plans.ErrNotFound)

// Template is a named, reusable reference to a group of existing exercises.
type Template struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"owner_id"`
	Name        string    `json:"name"`
	ExerciseIDs []int     `json:"exercise_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// uniqueIDs drops repeated ids, keeping the first occurrence order.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
