package metrics

import (
	"math"
	"testing"

	"school_backend/models"
)

func attendance(statuses ...string) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, len(statuses))
	for i, s := range statuses {
		records[i] = models.AttendanceRecord{ID: i + 1, StudentID: 1, Status: s}
	}
	return records
}

func TestAttendancePercentageNoRecords(t *testing.T) {
	got := AttendancePercentage(nil)
	if got != 0 {
		t.Errorf("expected exactly 0 for no records, got %v", got)
	}
	if math.IsNaN(got) {
		t.Error("percentage must never be NaN")
	}
}

func TestAttendancePercentage(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     float64
	}{
		{"all present", []string{"present", "present"}, 100},
		{"all absent", []string{"absent", "absent"}, 0},
		{"two of three", []string{"present", "present", "absent"}, 200.0 / 3.0},
		{"duplicate same-day entries count", []string{"present", "present", "present", "absent"}, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendancePercentage(attendance(tt.statuses...))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AttendancePercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func marks(values ...float64) []models.StudentMark {
	scores := make([]models.StudentMark, len(values))
	for i, v := range values {
		scores[i] = models.StudentMark{MarkRecord: models.MarkRecord{ID: i + 1, StudentID: 1, Mark: v}}
	}
	return scores
}

func TestAverageMarkNoRecords(t *testing.T) {
	got := AverageMark(nil)
	if got != 0 {
		t.Errorf("expected exactly 0 for no marks, got %v", got)
	}
	if math.IsNaN(got) {
		t.Error("average must never be NaN")
	}
}

func TestAverageMark(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single mark", []float64{42}, 42},
		{"three marks", []float64{70, 80, 90}, 80},
		{"repeat marks for one subject all count", []float64{60, 60, 90}, 70},
		{"negative marks are aggregated as-is", []float64{-10, 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageMark(marks(tt.values...))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AverageMark() = %v, want %v", got, tt.want)
			}
		})
	}
}
