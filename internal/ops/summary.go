package ops

import (
	"github.com/samber/lo"

	"github.com/greenrows/currex/internal/curriculum"
)

// Breakdown counts exported chunks per module for the fixed module list.
// Modules with no chunks report zero; chunks from modules outside the list
// are counted in the export total but get no breakdown entry.
func Breakdown(chunks []curriculum.Chunk, modules []string) map[string]int {
	counts := lo.CountValuesBy(chunks, func(c curriculum.Chunk) string {
		return c.Module
	})

	result := make(map[string]int, len(modules))
	for _, m := range modules {
		result[m] = counts[m]
	}
	return result
}
