package curriculum

// ContentType tags every exported chunk so downstream indexers can
// distinguish curriculum records from other document sources.
const ContentType = "curriculum_activity"

// IDPrefix is prepended to the source activity ID to form the chunk ID.
const IDPrefix = "curr-"

// LateSessionThreshold is the sequence order at which an activity counts
// as late-session and picks up the day's homework. Preserved from the
// original curriculum design.
const LateSessionThreshold = 3

// ActivityContext is one activity joined with its owning day and optional
// learning block, as returned by the context query. Optional source
// columns are pointers so absent values stay distinguishable from empty
// strings.
type ActivityContext struct {
	ActivityID         int64   `db:"activity_id"`
	Module             string  `db:"module"`
	DayNumber          int     `db:"day_number"`
	DayTheme           *string `db:"day_theme"`
	ActivityName       string  `db:"activity_name"`
	SequenceOrder      int     `db:"sequence_order"`
	Purpose            *string `db:"purpose"`
	Duration           *string `db:"duration"`
	FacilitatorScript  *string `db:"facilitator_script"`
	TransitionScript   *string `db:"transition_script"`
	LearningBlockFocus *string `db:"learning_block_focus"`
}

// HomeworkRow is one (day, assignment) pair from the homework aggregation
// query. Days with no assignments still produce a row with a nil title;
// assignments with no tasks produce a nil task string.
type HomeworkRow struct {
	DayID     int64   `db:"day_id"`
	Module    string  `db:"module"`
	DayNumber int     `db:"day_number"`
	Title     *string `db:"homework_title"`
	Tasks     *string `db:"homework_tasks"`
}

// Homework is one titled assignment with its tasks already concatenated.
type Homework struct {
	Title string
	Tasks string
}

// DayKey identifies a day within a module. Used as the homework lookup key.
type DayKey struct {
	Module    string
	DayNumber int
}

// Chunk is one denormalized, self-contained record emitted per qualifying
// activity. Field names match the export format consumed by the search
// indexer; nullable fields serialize as JSON null.
type Chunk struct {
	ID                string  `json:"id"`
	ContentType       string  `json:"content_type"`
	Module            string  `json:"module"`
	Day               int     `json:"day"`
	DayTheme          *string `json:"day_theme"`
	SessionNumber     int     `json:"session_number"`
	ActivityName      string  `json:"activity_name"`
	Purpose           *string `json:"purpose"`
	Duration          *string `json:"duration"`
	SearchableContent string  `json:"searchable_content"`
	FacilitatorScript *string `json:"facilitator_script"`
	TransitionScript  *string `json:"transition_script"`
}
