package food

import (
	"math"
	"time"

	"fridgemate/entities"
	"fridgemate/pkg/expiry"
)

const (
	BucketExpired     = "만료"
	BucketWithin3Days = "3일 이내"
	BucketWithinWeek  = "1주일 이내"
	BucketWithinMonth = "1개월 이내"
	BucketBeyondMonth = "1개월 이상"
)

// UrgencyBuckets lists the dashboard buckets in display order. Unlike the
// filter windows they partition the item set.
func UrgencyBuckets() []string {
	return []string{BucketExpired, BucketWithin3Days, BucketWithinWeek, BucketWithinMonth, BucketBeyondMonth}
}

func UrgencyBucket(days int) string {
	switch {
	case days < 0:
		return BucketExpired
	case days <= 3:
		return BucketWithin3Days
	case days <= 7:
		return BucketWithinWeek
	case days <= 30:
		return BucketWithinMonth
	default:
		return BucketBeyondMonth
	}
}

// CountByCategory counts items per label. Every label is present, items whose
// category is not a label are not counted.
func CountByCategory(items []entities.FoodItem, categories []string) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, category := range categories {
		counts[category] = 0
	}
	for _, item := range items {
		if _, ok := counts[item.Category]; ok {
			counts[item.Category]++
		}
	}
	return counts
}

func CountByUrgency(items []entities.FoodItem, now time.Time) map[string]int {
	counts := make(map[string]int, 5)
	for _, bucket := range UrgencyBuckets() {
		counts[bucket] = 0
	}
	for _, item := range items {
		counts[UrgencyBucket(expiry.DaysUntil(item.ExpiryDate, now))]++
	}
	return counts
}

func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}
