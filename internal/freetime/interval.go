// Package freetime вычисляет общее свободное время участников группы:
// нормализация интервалов, развертка еженедельных слотов, инверсия занятости
// в свободные окна и пересечение списков нескольких участников.
//
// Пакет не выполняет ввод-вывод и не хранит состояние между вызовами.
package freetime

import (
	"slices"
	"time"
)

// Interval - полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Empty сообщает, что интервал нулевой или отрицательной длины
func (iv Interval) Empty() bool {
	return !iv.Start.Before(iv.End)
}

func sortByStart(intervals []Interval) {
	slices.SortStableFunc(intervals, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})
}

// MergeOverlapping сортирует интервалы по началу и склеивает пересекающиеся.
// Соприкасающиеся интервалы (curr.Start == prev.End) тоже склеиваются, чтобы
// не появлялись свободные промежутки нулевой длины. Пустые интервалы отбрасываются.
// Входной срез не изменяется.
func MergeOverlapping(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.Empty() {
			sorted = append(sorted, iv)
		}
	}
	if len(sorted) == 0 {
		return []Interval{}
	}
	sortByStart(sorted)

	merged := make([]Interval, 0, len(sorted))
	acc := sorted[0]
	for _, curr := range sorted[1:] {
		if !curr.Start.After(acc.End) {
			if curr.End.After(acc.End) {
				acc.End = curr.End
			}
			continue
		}
		merged = append(merged, acc)
		acc = curr
	}
	return append(merged, acc)
}

// Invert возвращает промежутки окна [windowStart, windowEnd), не покрытые busy.
// busy должен быть отсортирован и не содержать пересечений (результат MergeOverlapping).
// Занятость за пределами окна обрезается, поэтому свободные и занятые интервалы
// вместе ровно покрывают окно.
func Invert(busy []Interval, windowStart, windowEnd time.Time) []Interval {
	free := make([]Interval, 0, len(busy)+1)
	cursor := windowStart
	for _, b := range busy {
		if !cursor.Before(windowEnd) {
			break
		}
		if b.Start.After(cursor) {
			end := b.Start
			if end.After(windowEnd) {
				end = windowEnd
			}
			free = append(free, Interval{Start: cursor, End: end})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(windowEnd) {
		free = append(free, Interval{Start: cursor, End: windowEnd})
	}
	return free
}
