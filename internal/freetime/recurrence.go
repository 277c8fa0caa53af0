package freetime

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

const (
	defaultStartClock = "00:00"
	defaultEndClock   = "23:59"
)

var rruleWeekdays = [...]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// clockOrDefault разбирает "HH:MM"; при ошибке используется fallback
func clockOrDefault(s, fallback string) (hour, minute int) {
	h, m, err := domain.ParseClock(s)
	if err != nil {
		h, m, _ = domain.ParseClock(fallback)
	}
	return h, m
}

// wallClock возвращает момент y-mo-d h:mi в loc. Если такого времени нет из-за перевода
// часов и time.Date ушел в предыдущие сутки, берется первый момент после перехода.
func wallClock(y int, mo time.Month, d, h, mi int, loc *time.Location) time.Time {
	noon := time.Date(y, mo, d, 12, 0, 0, 0, loc)
	t := time.Date(y, mo, d, h, mi, 0, 0, loc)
	if t.Year() != noon.Year() || t.YearDay() != noon.YearDay() {
		_, t = t.ZoneBounds()
	}
	return t
}

// dayStart - первый существующий момент календарного дня t в loc
func dayStart(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return wallClock(lt.Year(), lt.Month(), lt.Day(), 0, 0, loc)
}

// weeklyDays возвращает полдень каждого дня с заданным днем недели, начиная с даты
// windowStart (в loc), пока начало дня раньше windowEnd. Полдень не попадает на перевод
// часов, поэтому дата берется из него.
func weeklyDays(day time.Weekday, windowStart, windowEnd time.Time, loc *time.Location) []time.Time {
	ws := windowStart.In(loc)
	firstNoon := time.Date(ws.Year(), ws.Month(), ws.Day(), 12, 0, 0, 0, loc)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   firstNoon,
		Byweekday: []rrule.Weekday{rruleWeekdays[day]},
	})
	if err != nil {
		return nil
	}

	days := r.Between(firstNoon, windowEnd.Add(24*time.Hour), true)
	out := days[:0]
	for _, d := range days {
		if d.Weekday() == day && dayStart(d, loc).Before(windowEnd) {
			out = append(out, d)
		}
	}
	return out
}

// ExpandWeekly разворачивает еженедельное правило в конкретные интервалы внутри окна.
// Время правила трактуется как настенное время loc (nil - time.Local). Если конец
// раньше начала, интервал заканчивается на следующие сутки. Некорректные строки
// времени заменяются на "00:00" и "23:59". Интервалы нулевой длины не возвращаются.
func ExpandWeekly(rule domain.CyclicWeekly, windowStart, windowEnd time.Time, loc *time.Location) []Interval {
	if loc == nil {
		loc = time.Local
	}
	if !windowStart.Before(windowEnd) || rule.DayOfWeek < time.Sunday || rule.DayOfWeek > time.Saturday {
		return []Interval{}
	}

	sh, sm := clockOrDefault(rule.StartTimeLocal, defaultStartClock)
	eh, em := clockOrDefault(rule.EndTimeLocal, defaultEndClock)

	days := weeklyDays(rule.DayOfWeek, windowStart, windowEnd, loc)
	result := make([]Interval, 0, len(days))
	for _, d := range days {
		start := wallClock(d.Year(), d.Month(), d.Day(), sh, sm, loc)
		end := wallClock(d.Year(), d.Month(), d.Day(), eh, em, loc)
		if eh < sh || (eh == sh && em < sm) {
			end = wallClock(d.Year(), d.Month(), d.Day()+1, eh, em, loc)
		}
		if !start.Before(end) {
			continue
		}
		result = append(result, Interval{Start: start, End: end})
	}
	return result
}
