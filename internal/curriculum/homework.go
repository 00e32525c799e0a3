package curriculum

// GroupHomework builds the (module, day) homework lookup from aggregation
// query rows. Every row materializes its key, so a day with zero
// assignments maps to an empty list. Only rows carrying a title contribute
// an entry; a nil tasks string becomes "".
func GroupHomework(rows []HomeworkRow) map[DayKey][]Homework {
	byDay := make(map[DayKey][]Homework)
	for _, row := range rows {
		key := DayKey{Module: row.Module, DayNumber: row.DayNumber}
		if _, ok := byDay[key]; !ok {
			byDay[key] = nil
		}
		if row.Title == nil {
			continue
		}
		tasks := ""
		if row.Tasks != nil {
			tasks = *row.Tasks
		}
		byDay[key] = append(byDay[key], Homework{Title: *row.Title, Tasks: tasks})
	}
	return byDay
}
