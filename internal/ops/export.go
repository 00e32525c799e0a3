package ops

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/greenrows/currex/internal/config"
	"github.com/greenrows/currex/internal/curriculum"
	"github.com/greenrows/currex/internal/db"
)

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path      string         `json:"path"`
	Count     int            `json:"count"`
	PerModule map[string]int `json:"per_module"`
}

// Export reads the curriculum source, flattens every qualifying activity
// into a search chunk, and writes the full ordered sequence to the
// configured output path. Chunk order follows the context query exactly:
// (module, day number, sequence order) ascending.
func Export(ctx context.Context, database *sqlx.DB, cfg *config.Config) (*ExportOutput, error) {
	activities, err := db.ActivityContexts(ctx, database)
	if err != nil {
		return nil, err
	}

	homeworkRows, err := db.HomeworkRows(ctx, database)
	if err != nil {
		return nil, err
	}
	homework := curriculum.GroupHomework(homeworkRows)

	chunks := make([]curriculum.Chunk, 0, len(activities))
	for _, a := range activities {
		chunks = append(chunks, curriculum.BuildChunk(a, homework))
	}

	if err := writeChunks(cfg.OutputPath, chunks); err != nil {
		return nil, err
	}

	return &ExportOutput{
		Path:      cfg.OutputPath,
		Count:     len(chunks),
		PerModule: Breakdown(chunks, cfg.Modules),
	}, nil
}
