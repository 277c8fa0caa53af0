package freetime

// IntersectPair пересекает два отсортированных списка непересекающихся интервалов
// за O(len(a)+len(b)). При равных концах сдвигается указатель b: это влияет только
// на число итераций, но не на результат.
func IntersectPair(a, b []Interval) []Interval {
	result := make([]Interval, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].Start
		if b[j].Start.After(start) {
			start = b[j].Start
		}
		end := a[i].End
		if b[j].End.Before(end) {
			end = b[j].End
		}
		if start.Before(end) {
			result = append(result, Interval{Start: start, End: end})
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return result
}

// IntersectAll сворачивает списки слева направо, начиная с первого.
// Пустой набор списков дает пустой результат; пустой список поглощает все остальные.
func IntersectAll(lists [][]Interval) []Interval {
	if len(lists) == 0 {
		return []Interval{}
	}
	common := lists[0]
	for _, l := range lists[1:] {
		if len(common) == 0 {
			break
		}
		common = IntersectPair(common, l)
	}
	if common == nil {
		return []Interval{}
	}
	return common
}

// IntersectTree дает тот же результат, что IntersectAll, но пересекает списки
// попарно, уровнями. Глубина свертки log2(n).
func IntersectTree(lists [][]Interval) []Interval {
	if len(lists) == 0 {
		return []Interval{}
	}
	level := lists
	for len(level) > 1 {
		next := make([][]Interval, 0, (len(level)+1)/2)
		for k := 0; k+1 < len(level); k += 2 {
			next = append(next, IntersectPair(level[k], level[k+1]))
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}
	if level[0] == nil {
		return []Interval{}
	}
	return level[0]
}
