package report

import (
	"sort"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// Experience buckets, boundaries inclusive (compared with <=).
var experienceBuckets = []struct {
	label string
	max   float64
}{
	{"0-2", 2},
	{"3-5", 5},
	{"6-10", 10},
}

const bucketTenPlus = "10+"

func experienceBucket(years float64) string {
	for _, b := range experienceBuckets {
		if years <= b.max {
			return b.label
		}
	}
	return bucketTenPlus
}

// BucketRow is one row of Q4.
type BucketRow struct {
	Bucket    string
	Count     int
	AvgRating float64
}

// RatingByExperienceBucket computes Q4 in the fixed bucket order
// 0-2, 3-5, 6-10, 10+. Empty buckets are absent.
func RatingByExperienceBucket(rows []dataset.Employee) []BucketRow {
	groups := groupBy(rows, func(e dataset.Employee) string {
		return experienceBucket(e.ExperienceYears)
	})

	order := []string{"0-2", "3-5", "6-10", bucketTenPlus}

	var out []BucketRow
	for _, bucket := range order {
		members, ok := groups[bucket]
		if !ok {
			continue
		}
		ratings := make([]float64, len(members))
		for i, e := range members {
			ratings[i] = e.PerformanceRating
		}
		out = append(out, BucketRow{
			Bucket:    bucket,
			Count:     len(members),
			AvgRating: Round2(Mean(ratings)),
		})
	}
	return out
}

// TitleRating is one row of Q8.
type TitleRating struct {
	JobTitle  string
	Count     int
	AvgRating float64
}

// TopTitlesByRating computes Q8: job titles by average performance rating,
// highest first, title asc among equal ratings, cut at the top 3 positions.
func TopTitlesByRating(rows []dataset.Employee, limit int) []TitleRating {
	groups := groupBy(rows, func(e dataset.Employee) string { return e.JobTitle })

	out := make([]TitleRating, 0, len(groups))
	for _, title := range sortedKeys(groups) {
		members := groups[title]
		ratings := make([]float64, len(members))
		for i, e := range members {
			ratings[i] = e.PerformanceRating
		}
		out = append(out, TitleRating{
			JobTitle:  title,
			Count:     len(members),
			AvgRating: Round2(Mean(ratings)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].JobTitle < out[j].JobTitle
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
