package entities

import (
	"math"
	"time"
)

type Milestone struct {
	MilestoneID   string
	OrderID       string
	Title         string
	Description   string
	Status        MilestoneStatus
	EstimatedDate time.Time
	// CompletedDate is set only while Status is MilestoneCompleted.
	CompletedDate *time.Time
	Position      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MilestonePatch is a partial update; nil fields are left untouched.
type MilestonePatch struct {
	Title         *string
	Description   *string
	Status        *MilestoneStatus
	EstimatedDate *time.Time
	Position      *int
}

// MilestoneProgress derives overall progress as round(100 * completed / total).
// Zero milestones means zero progress, never a division error. The value is
// always derived on read so it cannot drift from the milestone rows.
func MilestoneProgress(milestones []Milestone) int {
	if len(milestones) == 0 {
		return 0
	}
	var completed int
	for _, m := range milestones {
		if m.Status == MilestoneCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(milestones))))
}
