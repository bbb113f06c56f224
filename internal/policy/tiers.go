package policy

import "sort"

// highestQualifyingFloor returns the index of the tier with the largest
// threshold that is still <= value, or -1 if none qualifies. thresholds
// need not arrive sorted; selection works on a sorted copy of the indexes.
func highestQualifyingFloor(thresholds []int, value int) int {
	best := -1
	idx := make([]int, len(thresholds))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return thresholds[idx[a]] > thresholds[idx[b]] })

	for _, i := range idx {
		if thresholds[i] <= value {
			best = i
			break
		}
	}
	return best
}
