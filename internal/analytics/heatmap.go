package analytics

import (
	"sort"

	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/types"
)

// heatmapLevels maps a sentiment label to its calendar intensity. Days with no
// entries render as level 0 in the calendar widget itself.
var heatmapLevels = map[classifier.Label]int{
	classifier.LabelPositive: 4,
	classifier.LabelNeutral:  2,
	classifier.LabelNegative: 1,
}

// BuildHeatmap emits one cell per observation, keyed by local calendar day.
func BuildHeatmap(observations []types.MoodObservation) []types.HeatmapCell {
	cells := make([]types.HeatmapCell, 0, len(observations))
	for _, obs := range observations {
		level := heatmapLevels[obs.Label]
		cells = append(cells, types.HeatmapCell{
			Date:  DayKey(obs.CreatedAt),
			Count: level,
			Level: level,
		})
	}
	return cells
}

// CollapseLatest reduces cells to one per day, keeping the last cell seen for
// each day. Input order decides which entry wins.
func CollapseLatest(cells []types.HeatmapCell) []types.HeatmapCell {
	latest := make(map[string]types.HeatmapCell)
	for _, cell := range cells {
		latest[cell.Date] = cell
	}
	return sortCells(latest)
}

// CollapseDominant reduces cells to one per day, keeping the most frequent
// level for each day. Ties go to the higher level so a mixed day never
// under-reports.
func CollapseDominant(cells []types.HeatmapCell) []types.HeatmapCell {
	freq := make(map[string]map[int]int)
	for _, cell := range cells {
		if freq[cell.Date] == nil {
			freq[cell.Date] = make(map[int]int)
		}
		freq[cell.Date][cell.Level]++
	}

	dominant := make(map[string]types.HeatmapCell, len(freq))
	for date, levels := range freq {
		best, bestCount := 0, 0
		for level, count := range levels {
			if count > bestCount || (count == bestCount && level > best) {
				best, bestCount = level, count
			}
		}
		dominant[date] = types.HeatmapCell{Date: date, Count: best, Level: best}
	}
	return sortCells(dominant)
}

func sortCells(byDate map[string]types.HeatmapCell) []types.HeatmapCell {
	out := make([]types.HeatmapCell, 0, len(byDate))
	for _, cell := range byDate {
		out = append(out, cell)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
