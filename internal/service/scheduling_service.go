package service

import (
	"context"
	"time"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

// FindRequest - параметры поиска общего свободного времени
type FindRequest struct {
	GroupID   int64
	MemberIDs []int64
	// AllMembers - автопоиск по всей группе, доступен не на всех тарифах
	AllMembers bool
	// Now - момент, от которого строится окно поиска; нулевое значение - текущее время
	Now time.Time
	// Limit: 0 - значение по умолчанию, < 0 - без ограничения
	Limit int
}

type FindResult struct {
	GroupID     int64
	Tier        domain.PlanTier
	MemberIDs   []int64
	WindowStart time.Time
	WindowEnd   time.Time
	Windows     []domain.FreeWindow
	// Total - число найденных окон до применения Limit
	Total int
}

type SchedulingService interface {
	FindCommonTime(ctx context.Context, req FindRequest) (*FindResult, error)
}

// FreeTimeFinder - расчетное ядро, см. freetime.Finder
type FreeTimeFinder interface {
	FindCommonFreeTime(group domain.Group, slots []domain.BusySlot, selected []int64, now time.Time) ([]domain.FreeWindow, error)
	Window(policy domain.PlanPolicy, now time.Time) (time.Time, time.Time)
}
