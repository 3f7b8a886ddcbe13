package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/report"
)

func withExpAndRating(e dataset.Employee, years, rating float64) dataset.Employee {
	e.ExperienceYears = years
	e.PerformanceRating = rating
	return e
}

func TestRatingByExperienceBucket(t *testing.T) {
	rows := []dataset.Employee{
		withExpAndRating(emp("E1", "A", "Eng", 1), 0, 3),
		withExpAndRating(emp("E2", "B", "Eng", 1), 2, 5), // boundary: 2 is still 0-2
		withExpAndRating(emp("E3", "C", "Eng", 1), 3, 4),
		withExpAndRating(emp("E4", "D", "Eng", 1), 5, 4),
		withExpAndRating(emp("E5", "E", "Eng", 1), 10, 2), // boundary: 10 is still 6-10
		withExpAndRating(emp("E6", "F", "Eng", 1), 11, 5),
	}

	got := report.RatingByExperienceBucket(rows)

	assert.Len(t, got, 4)
	assert.Equal(t, "0-2", got[0].Bucket)
	assert.Equal(t, 4.0, got[0].AvgRating)
	assert.Equal(t, "3-5", got[1].Bucket)
	assert.Equal(t, 4.0, got[1].AvgRating)
	assert.Equal(t, "6-10", got[2].Bucket)
	assert.Equal(t, 2.0, got[2].AvgRating)
	assert.Equal(t, "10+", got[3].Bucket)
	assert.Equal(t, 5.0, got[3].AvgRating)
}

func TestRatingByExperienceBucket_EmptyBucketsAbsent(t *testing.T) {
	rows := []dataset.Employee{
		withExpAndRating(emp("E1", "A", "Eng", 1), 1, 3),
	}
	got := report.RatingByExperienceBucket(rows)
	assert.Len(t, got, 1)
	assert.Equal(t, "0-2", got[0].Bucket)
}

func TestTopTitlesByRating(t *testing.T) {
	mk := func(id, title string, rating float64) dataset.Employee {
		e := emp(id, "N"+id, "Eng", 1)
		e.JobTitle = title
		e.PerformanceRating = rating
		return e
	}
	rows := []dataset.Employee{
		mk("E1", "Analyst", 4.5),
		mk("E2", "Analyst", 3.5), // Analyst avg 4.0
		mk("E3", "Architect", 4.8),
		mk("E4", "Designer", 4.2),
		mk("E5", "Manager", 4.2),
		mk("E6", "Tester", 3.0),
	}

	got := report.TopTitlesByRating(rows, 3)

	assert.Len(t, got, 3)
	assert.Equal(t, "Architect", got[0].JobTitle)
	// Designer and Manager tie at 4.2; title asc orders the tie and the cut
	// at 3 positions drops Analyst.
	assert.Equal(t, "Designer", got[1].JobTitle)
	assert.Equal(t, "Manager", got[2].JobTitle)
	assert.Equal(t, 4.2, got[2].AvgRating)
}
