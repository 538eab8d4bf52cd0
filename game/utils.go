package game

import "sort"

func setToIntSlice(set map[int]struct{}) []int {
	s := []int{}
	for key := range set {
		s = append(s, key)
	}

	sort.Ints(s)

	return s
}

func emptyTempleLists() [][]int {
	lists := make([][]int, NumTemples)
	for i := range lists {
		lists[i] = []int{}
	}
	return lists
}

func countTokens(slots [][]int) int {
	total := 0
	for _, s := range slots {
		total += len(s)
	}
	return total
}
