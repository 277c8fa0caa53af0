package freetime

import (
	"time"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

// BusyIntervals собирает занятость одного участника внутри окна:
// разовые слоты берутся как есть, еженедельные разворачиваются в loc.
// Результат не нормализован.
func BusyIntervals(slots []domain.BusySlot, windowStart, windowEnd time.Time, loc *time.Location) []Interval {
	busy := make([]Interval, 0, len(slots))
	for _, s := range slots {
		switch p := s.Period.(type) {
		case domain.OneTime:
			busy = append(busy, Interval{Start: p.StartAt, End: p.EndAt})
		case domain.CyclicWeekly:
			busy = append(busy, ExpandWeekly(p, windowStart, windowEnd, loc)...)
		}
	}
	return busy
}

// MemberFreeIntervals возвращает свободные интервалы участника в окне
// [windowStart, windowEnd). slots должны принадлежать одному участнику.
// Без слотов свободно все окно.
func MemberFreeIntervals(slots []domain.BusySlot, windowStart, windowEnd time.Time, loc *time.Location) []Interval {
	busy := MergeOverlapping(BusyIntervals(slots, windowStart, windowEnd, loc))
	return Invert(busy, windowStart, windowEnd)
}
