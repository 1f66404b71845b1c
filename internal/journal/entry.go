package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitplan/internal/gymstats/plans"
)

const maxTitleLength = 200

var ErrEntryNotFound = fmt.Errorf("journal entry %w", plans.ErrNotFound)

type Entry struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate trims the title and checks the content is present.
func (e *Entry) Validate() error {
	e.Title = strings.TrimSpace(e.Title)
	if len(e.Title) > maxTitleLength {
		return plans.NewValidationError("title", fmt.Sprintf("must be at most %d characters", maxTitleLength))
	}
	if strings.TrimSpace(e.Content) == "" {
		return plans.NewValidationError("content", "is required")
	}
	return nil
}
