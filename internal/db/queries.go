package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/greenrows/currex/internal/curriculum"
	"github.com/greenrows/currex/internal/errors"
)

// ActivityContexts returns every activity joined with its owning day and
// optional learning block, restricted to days with a non-null module.
// Activities whose day join fails are excluded here, silently. Row order
// is (module, day number, sequence order) ascending and downstream code
// must preserve it: the export diffing contract depends on it.
func ActivityContexts(ctx context.Context, database *sqlx.DB) ([]curriculum.ActivityContext, error) {
	query := sq.Select(
		"a.id AS activity_id",
		"d.module",
		"d.day_number",
		"d.theme AS day_theme",
		"a.name AS activity_name",
		"a.sequence_order",
		"a.purpose",
		"a.duration",
		"a.facilitator_script",
		"a.transition_script",
		"lb.focus AS learning_block_focus",
	).
		From("activities a").
		LeftJoin("days d ON a.day_id = d.id").
		LeftJoin("learning_blocks lb ON a.block_id = lb.id").
		Where("d.module IS NOT NULL").
		OrderBy("d.module", "d.day_number", "a.sequence_order")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	var rows []curriculum.ActivityContext
	if err := database.SelectContext(ctx, &rows, queryString, args...); err != nil {
		return nil, errors.NewInternal(err)
	}
	return rows, nil
}

// HomeworkRows returns one row per (day, assignment) pair for days with a
// non-null module. Task descriptions are concatenated per assignment with
// " | " by the query itself; days without assignments surface as a single
// row with null title/tasks from the outer join.
func HomeworkRows(ctx context.Context, database *sqlx.DB) ([]curriculum.HomeworkRow, error) {
	query := sq.Select(
		"d.id AS day_id",
		"d.module",
		"d.day_number",
		"ha.title AS homework_title",
		"GROUP_CONCAT(ht.task, ' | ') AS homework_tasks",
	).
		From("days d").
		LeftJoin("homework_assignments ha ON ha.day_id = d.id").
		LeftJoin("homework_tasks ht ON ht.assignment_id = ha.id").
		Where("d.module IS NOT NULL").
		GroupBy("d.id", "d.module", "d.day_number", "ha.title")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	var rows []curriculum.HomeworkRow
	if err := database.SelectContext(ctx, &rows, queryString, args...); err != nil {
		return nil, errors.NewInternal(err)
	}
	return rows, nil
}

// CountUnjoinedActivities counts activities excluded from export because
// their day join fails (missing day or day with a null module).
func CountUnjoinedActivities(ctx context.Context, database *sqlx.DB) (int, error) {
	query := sq.Select("COUNT(*)").
		From("activities a").
		LeftJoin("days d ON a.day_id = d.id").
		Where("d.module IS NULL")

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, errors.NewInternal(err)
	}

	var count int
	if err := database.GetContext(ctx, &count, queryString, args...); err != nil {
		return 0, errors.NewInternal(err)
	}
	return count, nil
}
