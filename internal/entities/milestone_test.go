package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilestoneProgress(t *testing.T) {
	ms := func(statuses ...MilestoneStatus) []Milestone {
		out := make([]Milestone, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, Milestone{Status: s})
		}
		return out
	}

	tests := []struct {
		name       string
		milestones []Milestone
		want       int
	}{
		{name: "no milestones is zero percent", milestones: nil, want: 0},
		{name: "none completed", milestones: ms(MilestonePending, MilestoneInProgress), want: 0},
		{name: "one of three", milestones: ms(MilestoneCompleted, MilestonePending, MilestonePending), want: 33},
		{name: "two of three", milestones: ms(MilestoneCompleted, MilestoneCompleted, MilestonePending), want: 67},
		{name: "all completed", milestones: ms(MilestoneCompleted, MilestoneCompleted), want: 100},
		{name: "half", milestones: ms(MilestoneCompleted, MilestoneCancelled), want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MilestoneProgress(tt.milestones))
		})
	}
}
