package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type SlotType string

const (
	SlotOneTime      SlotType = "ONE_TIME"
	SlotCyclicWeekly SlotType = "CYCLIC_WEEKLY"
)

// SlotPeriod - период занятости. Реализации: OneTime и CyclicWeekly.
type SlotPeriod interface {
	Type() SlotType
	validate() error
}

// OneTime - разовая занятость в абсолютных моментах времени
type OneTime struct {
	StartAt time.Time
	EndAt   time.Time
}

func (OneTime) Type() SlotType { return SlotOneTime }

func (p OneTime) validate() error {
	if p.StartAt.IsZero() || p.EndAt.IsZero() {
		return errors.New("one-time slot requires start_at and end_at")
	}
	if !p.StartAt.Before(p.EndAt) {
		return errors.New("one-time slot start_at must be before end_at")
	}
	return nil
}

// CyclicWeekly - еженедельная занятость по локальному времени ("HH:MM").
// Если EndTimeLocal раньше StartTimeLocal, слот переходит на следующие сутки.
type CyclicWeekly struct {
	DayOfWeek      time.Weekday // 0 = воскресенье .. 6 = суббота
	StartTimeLocal string
	EndTimeLocal   string
}

func (CyclicWeekly) Type() SlotType { return SlotCyclicWeekly }

func (p CyclicWeekly) validate() error {
	if p.DayOfWeek < time.Sunday || p.DayOfWeek > time.Saturday {
		return fmt.Errorf("day_of_week must be in [0,6], got %d", p.DayOfWeek)
	}
	return nil
}

// BusySlot - запись о занятости участника. Description только для отображения.
type BusySlot struct {
	ID          string
	UserID      int64
	GroupID     int64
	Description string
	Period      SlotPeriod
	CreatedAt   time.Time
}

func (s BusySlot) Type() SlotType {
	if s.Period == nil {
		return ""
	}
	return s.Period.Type()
}

// Validate проверяет контракт слота на входе в расчет.
// Некорректные строки времени у еженедельных слотов здесь не считаются ошибкой:
// при расчете они заменяются значениями по умолчанию.
func (s BusySlot) Validate() error {
	if s.Period == nil {
		return NewValidationError("slot %q has no period", s.ID)
	}
	if err := s.Period.validate(); err != nil {
		return NewValidationError("slot %q: %v", s.ID, err)
	}
	return nil
}

// ValidateStrict - проверка для новых записей: дополнительно требует корректный "HH:MM"
// и ненулевую длительность еженедельного слота.
func (s BusySlot) ValidateStrict() error {
	if err := s.Validate(); err != nil {
		return err
	}
	cw, ok := s.Period.(CyclicWeekly)
	if !ok {
		return nil
	}
	sh, sm, err := ParseClock(cw.StartTimeLocal)
	if err != nil {
		return NewValidationError("start_time_local: %v", err)
	}
	eh, em, err := ParseClock(cw.EndTimeLocal)
	if err != nil {
		return NewValidationError("end_time_local: %v", err)
	}
	if sh == eh && sm == em {
		return NewValidationError("start_time_local and end_time_local must differ")
	}
	return nil
}

// ParseClock разбирает "HH:MM" (секунды "HH:MM:SS" допускаются и отбрасываются)
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, 0, fmt.Errorf("invalid second in %q", s)
		}
	}
	return hour, minute, nil
}
