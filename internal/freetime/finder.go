package freetime

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

// ExpansionMode определяет, в каком часовом поясе разворачиваются еженедельные слоты.
type ExpansionMode string

const (
	// ExpansionProcessLocal - все правила в одном поясе расчета (по умолчанию time.Local).
	ExpansionProcessLocal ExpansionMode = "process"
	// ExpansionMemberZone - правила участника в его собственном поясе.
	ExpansionMemberZone ExpansionMode = "member"
)

func ParseExpansionMode(s string) (ExpansionMode, error) {
	switch ExpansionMode(s) {
	case ExpansionProcessLocal, "":
		return ExpansionProcessLocal, nil
	case ExpansionMemberZone:
		return ExpansionMemberZone, nil
	default:
		return "", fmt.Errorf("unknown recurrence mode %q (want %q or %q)", s, ExpansionProcessLocal, ExpansionMemberZone)
	}
}

// Finder ищет общее свободное время участников группы. Finder не хранит
// состояние между вызовами и безопасен для конкурентного использования.
type Finder struct {
	location    *time.Location
	mode        ExpansionMode
	parallelism int
	logger      *zap.Logger
}

type Option func(*Finder)

// WithLocation задает пояс, в котором окно поиска привязывается к полуночи
func WithLocation(loc *time.Location) Option {
	return func(f *Finder) {
		if loc != nil {
			f.location = loc
		}
	}
}

func WithExpansionMode(mode ExpansionMode) Option {
	return func(f *Finder) {
		f.mode = mode
	}
}

// WithParallelism ограничивает число участников, считаемых одновременно. n <= 1 - последовательно.
func WithParallelism(n int) Option {
	return func(f *Finder) {
		f.parallelism = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(f *Finder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		location:    time.Local,
		mode:        ExpansionProcessLocal,
		parallelism: 1,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Finder) Location() *time.Location {
	return f.location
}

// FindCommonFreeTime - расчет с настройками по умолчанию
func FindCommonFreeTime(group domain.Group, slots []domain.BusySlot, selected []int64, now time.Time) ([]domain.FreeWindow, error) {
	return NewFinder().FindCommonFreeTime(group, slots, selected, now)
}

// Window возвращает окно поиска: от полуночи now до полуночи через SearchWindowDays дней
func (f *Finder) Window(policy domain.PlanPolicy, now time.Time) (time.Time, time.Time) {
	n := now.In(f.location)
	start := wallClock(n.Year(), n.Month(), n.Day(), 0, 0, f.location)
	end := wallClock(n.Year(), n.Month(), n.Day()+policy.SearchWindowDays, 0, 0, f.location)
	return start, end
}

// FindCommonFreeTime возвращает окна, в которые свободны все выбранные участники группы,
// длительностью не меньше минимума тарифа, по возрастанию начала.
// Пустой выбор дает пустой результат без ошибки.
func (f *Finder) FindCommonFreeTime(group domain.Group, slots []domain.BusySlot, selected []int64, now time.Time) ([]domain.FreeWindow, error) {
	policy, ok := domain.PolicyFor(group.Tier)
	if !ok {
		return nil, domain.NewValidationError("unknown plan tier %q", group.Tier)
	}
	return f.FindWithPolicy(policy, group, slots, selected, now)
}

// FindWithPolicy - то же, что FindCommonFreeTime, но с явно заданной политикой
func (f *Finder) FindWithPolicy(policy domain.PlanPolicy, group domain.Group, slots []domain.BusySlot, selected []int64, now time.Time) ([]domain.FreeWindow, error) {
	if policy.SearchWindowDays <= 0 {
		return nil, domain.NewValidationError("search window must be positive, got %d days", policy.SearchWindowDays)
	}
	if policy.MinSlotDurationMinutes < 0 {
		return nil, domain.NewValidationError("minimum slot duration must not be negative, got %d", policy.MinSlotDurationMinutes)
	}
	if now.IsZero() {
		return nil, domain.NewValidationError("reference time is required")
	}

	members := selectedMembers(group.Members, selected)
	if len(members) == 0 {
		return []domain.FreeWindow{}, nil
	}

	slotsByUser := make(map[int64][]domain.BusySlot, len(members))
	for _, m := range members {
		slotsByUser[m.UserID] = nil
	}
	for _, s := range slots {
		if _, ok := slotsByUser[s.UserID]; !ok {
			continue
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		slotsByUser[s.UserID] = append(slotsByUser[s.UserID], s)
	}

	windowStart, windowEnd := f.Window(policy, now)

	locations := make([]*time.Location, len(members))
	for i, m := range members {
		locations[i] = f.memberLocation(m)
	}

	lists := make([][]Interval, len(members))
	var common []Interval
	if f.parallelism > 1 && len(members) > 1 {
		var g errgroup.Group
		g.SetLimit(f.parallelism)
		for i, m := range members {
			g.Go(func() error {
				lists[i] = MemberFreeIntervals(slotsByUser[m.UserID], windowStart, windowEnd, locations[i])
				return nil
			})
		}
		_ = g.Wait()
		common = IntersectTree(lists)
	} else {
		for i, m := range members {
			lists[i] = MemberFreeIntervals(slotsByUser[m.UserID], windowStart, windowEnd, locations[i])
		}
		common = IntersectAll(lists)
	}

	windows := f.toFreeWindows(common, policy.MinSlotDurationMinutes)

	f.logger.Debug("common free time computed",
		zap.Int64("group_id", group.ID),
		zap.String("tier", string(group.Tier)),
		zap.Int("members", len(members)),
		zap.Time("window_start", windowStart),
		zap.Time("window_end", windowEnd),
		zap.Int("intervals", len(common)),
		zap.Int("windows", len(windows)),
	)

	return windows, nil
}

func (f *Finder) toFreeWindows(common []Interval, minMinutes int) []domain.FreeWindow {
	minDuration := time.Duration(minMinutes) * time.Minute
	windows := make([]domain.FreeWindow, 0, len(common))
	for _, iv := range common {
		d := iv.Duration()
		if d <= 0 || d < minDuration {
			continue
		}
		windows = append(windows, domain.FreeWindow{
			Start:           iv.Start.In(f.location),
			End:             iv.End.In(f.location),
			DurationMinutes: int(d / time.Minute),
		})
	}
	slices.SortStableFunc(windows, func(a, b domain.FreeWindow) int {
		return a.Start.Compare(b.Start)
	})
	return windows
}

func (f *Finder) memberLocation(m domain.Member) *time.Location {
	if f.mode != ExpansionMemberZone || m.Timezone == "" {
		return f.location
	}
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		f.logger.Warn("invalid member timezone, using finder location",
			zap.Int64("user_id", m.UserID),
			zap.String("timezone", m.Timezone),
			zap.Error(err),
		)
		return f.location
	}
	return loc
}

// selectedMembers оставляет участников группы, чьи id есть в selected,
// в порядке группы и без повторов
func selectedMembers(members []domain.Member, selected []int64) []domain.Member {
	if len(selected) == 0 {
		return nil
	}
	want := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		want[id] = struct{}{}
	}
	result := make([]domain.Member, 0, len(selected))
	for _, m := range members {
		if _, ok := want[m.UserID]; !ok {
			continue
		}
		result = append(result, m)
		delete(want, m.UserID)
	}
	return result
}
