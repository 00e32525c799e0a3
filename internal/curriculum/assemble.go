package curriculum

import (
	"fmt"
	"strings"
)

// BuildChunk produces the chunk for one activity. The homework map comes
// from GroupHomework; homework is attached only to late-session activities
// (sequence order >= LateSessionThreshold) whose day has at least one
// titled assignment.
func BuildChunk(a ActivityContext, homework map[DayKey][]Homework) Chunk {
	theme := ""
	if a.DayTheme != nil {
		theme = *a.DayTheme
	}

	parts := []string{
		fmt.Sprintf("Module: %s", a.Module),
		fmt.Sprintf("Day %d: %s", a.DayNumber, theme),
		fmt.Sprintf("Session %d: %s", a.SequenceOrder, a.ActivityName),
	}

	if a.LearningBlockFocus != nil && *a.LearningBlockFocus != "" {
		parts = append(parts, fmt.Sprintf("Learning Block Focus: %s", *a.LearningBlockFocus))
	}
	if a.Purpose != nil && *a.Purpose != "" {
		parts = append(parts, fmt.Sprintf("Purpose: %s", *a.Purpose))
	}
	if a.Duration != nil && *a.Duration != "" {
		parts = append(parts, fmt.Sprintf("Duration: %s", *a.Duration))
	}
	if a.FacilitatorScript != nil && *a.FacilitatorScript != "" {
		parts = append(parts, fmt.Sprintf("Facilitator Script: %s", *a.FacilitatorScript))
	}
	if a.TransitionScript != nil && *a.TransitionScript != "" {
		parts = append(parts, fmt.Sprintf("Transition: %s", *a.TransitionScript))
	}

	if a.SequenceOrder >= LateSessionThreshold {
		key := DayKey{Module: a.Module, DayNumber: a.DayNumber}
		if line := FormatHomework(homework[key]); line != "" {
			parts = append(parts, fmt.Sprintf("Homework: %s", line))
		}
	}

	return Chunk{
		ID:                fmt.Sprintf("%s%d", IDPrefix, a.ActivityID),
		ContentType:       ContentType,
		Module:            a.Module,
		Day:               a.DayNumber,
		DayTheme:          a.DayTheme,
		SessionNumber:     a.SequenceOrder,
		ActivityName:      a.ActivityName,
		Purpose:           a.Purpose,
		Duration:          a.Duration,
		SearchableContent: strings.Join(parts, "\n"),
		FacilitatorScript: a.FacilitatorScript,
		TransitionScript:  a.TransitionScript,
	}
}

// FormatHomework renders a day's assignments as "title: tasks" entries
// joined by "; ". Returns "" when there are no titled assignments.
func FormatHomework(entries []Homework) string {
	if len(entries) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(entries))
	for _, hw := range entries {
		rendered = append(rendered, fmt.Sprintf("%s: %s", hw.Title, hw.Tasks))
	}
	return strings.Join(rendered, "; ")
}
