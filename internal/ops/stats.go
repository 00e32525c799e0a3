package ops

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/greenrows/currex/internal/config"
	"github.com/greenrows/currex/internal/curriculum"
	"github.com/greenrows/currex/internal/db"
)

// ModuleStats summarizes one module's source content.
type ModuleStats struct {
	Module      string `json:"module"`
	Days        int    `json:"days"`
	Activities  int    `json:"activities"`
	Assignments int    `json:"assignments"`
}

// StatsOutput contains the result of the Stats operation.
type StatsOutput struct {
	Modules []ModuleStats `json:"modules"`

	// ExcludedActivities counts activities that would be silently dropped
	// by the export because their day join fails.
	ExcludedActivities int `json:"excluded_activities"`
}

// Stats reports per-module source counts without writing anything. It runs
// the same reads as the export plus a count of unjoined activities, so the
// numbers it prints match what an export run would produce.
func Stats(ctx context.Context, database *sqlx.DB, cfg *config.Config) (*StatsOutput, error) {
	activities, err := db.ActivityContexts(ctx, database)
	if err != nil {
		return nil, err
	}

	homeworkRows, err := db.HomeworkRows(ctx, database)
	if err != nil {
		return nil, err
	}

	excluded, err := db.CountUnjoinedActivities(ctx, database)
	if err != nil {
		return nil, err
	}

	activityCounts := lo.CountValuesBy(activities, func(a curriculum.ActivityContext) string {
		return a.Module
	})

	dayKeys := lo.UniqBy(homeworkRows, func(r curriculum.HomeworkRow) curriculum.DayKey {
		return curriculum.DayKey{Module: r.Module, DayNumber: r.DayNumber}
	})
	dayCounts := lo.CountValuesBy(dayKeys, func(r curriculum.HomeworkRow) string {
		return r.Module
	})

	titled := lo.Filter(homeworkRows, func(r curriculum.HomeworkRow, _ int) bool {
		return r.Title != nil
	})
	assignmentCounts := lo.CountValuesBy(titled, func(r curriculum.HomeworkRow) string {
		return r.Module
	})

	modules := make([]ModuleStats, 0, len(cfg.Modules))
	for _, m := range cfg.Modules {
		modules = append(modules, ModuleStats{
			Module:      m,
			Days:        dayCounts[m],
			Activities:  activityCounts[m],
			Assignments: assignmentCounts[m],
		})
	}

	return &StatsOutput{
		Modules:            modules,
		ExcludedActivities: excluded,
	}, nil
}
