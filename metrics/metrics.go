// Package metrics computes derived figures from raw attendance and mark
// records. Both computations return exactly 0 for empty input rather than
// NaN, so a student with no records shows 0 instead of an undefined value.
package metrics

import (
	"school_backend/models"
)

// AttendancePercentage is 100 * present / total over all records,
// duplicates included.
func AttendancePercentage(records []models.AttendanceRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	present := 0
	for _, r := range records {
		if r.Status == models.StatusPresent {
			present++
		}
	}
	return float64(present) / float64(len(records)) * 100
}

// AverageMark is the mean over all mark entries. A subject with several
// marks contributes each of them.
func AverageMark(scores []models.StudentMark) float64 {
	if len(scores) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range scores {
		sum += s.Mark
	}
	return sum / float64(len(scores))
}
