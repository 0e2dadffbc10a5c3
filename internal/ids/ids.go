// Package ids allocates task identifiers.
package ids

import "time"

// FromTime returns the Unix millisecond id for now, bumped past every id in
// existing so the result is unique across the collection.
func FromTime(now time.Time, existing []int64) int64 {
	id := now.UnixMilli()
	var maxID int64
	taken := false
	for _, e := range existing {
		if e == id {
			taken = true
		}
		if e > maxID {
			maxID = e
		}
	}
	if taken {
		return maxID + 1
	}
	return id
}
