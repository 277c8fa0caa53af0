// Package snapshot читает состояние группы из YAML-файла для офлайн-поиска
// свободного времени (команда find).
package snapshot

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type fileMember struct {
	UserID    int64  `yaml:"user_id"`
	Username  string `yaml:"username"`
	FirstName string `yaml:"first_name"`
	Timezone  string `yaml:"timezone"`
}

type fileGroup struct {
	ID      int64        `yaml:"id"`
	Title   string       `yaml:"title"`
	Tier    string       `yaml:"tier"`
	Members []fileMember `yaml:"members"`
}

type fileSlot struct {
	ID          string `yaml:"id"`
	UserID      int64  `yaml:"user_id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	StartAt     string `yaml:"start_at"`
	EndAt       string `yaml:"end_at"`
	// DayOfWeek - число 0..6 (0 = воскресенье) или имя дня ("monday", "mon")
	DayOfWeek string `yaml:"day_of_week"`
	Start     string `yaml:"start_time_local"`
	End       string `yaml:"end_time_local"`
}

type file struct {
	Timezone string     `yaml:"timezone"`
	Now      string     `yaml:"now"`
	Group    fileGroup  `yaml:"group"`
	Slots    []fileSlot `yaml:"slots"`
}

// Snapshot - группа и ее занятость, готовые для freetime.Finder
type Snapshot struct {
	Group domain.Group
	Slots []domain.BusySlot
	// Now - нулевое, если в файле не задано
	Now time.Time
	// Location - nil, если в файле не задан timezone
	Location *time.Location
}

func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Snapshot, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	snap := &Snapshot{}

	if f.Timezone != "" {
		loc, err := time.LoadLocation(f.Timezone)
		if err != nil {
			return nil, domain.NewValidationError("unknown timezone %q", f.Timezone)
		}
		snap.Location = loc
	}

	if f.Now != "" {
		now, err := time.Parse(time.RFC3339, f.Now)
		if err != nil {
			return nil, domain.NewValidationError("now must be RFC 3339, got %q", f.Now)
		}
		snap.Now = now
	}

	group, err := toGroup(f.Group)
	if err != nil {
		return nil, err
	}
	snap.Group = group

	snap.Slots = make([]domain.BusySlot, 0, len(f.Slots))
	for i, fs := range f.Slots {
		slot, err := toSlot(fs, group.ID)
		if err != nil {
			return nil, fmt.Errorf("slot #%d: %w", i+1, err)
		}
		snap.Slots = append(snap.Slots, slot)
	}

	return snap, nil
}

func toGroup(fg fileGroup) (domain.Group, error) {
	tier := domain.PlanTier(strings.ToUpper(fg.Tier))
	if tier == "" {
		tier = domain.TierFree
	}
	if !tier.Valid() {
		return domain.Group{}, domain.NewValidationError("unknown plan tier %q", fg.Tier)
	}

	group := domain.Group{
		ID:      fg.ID,
		Title:   fg.Title,
		Tier:    tier,
		Members: make([]domain.Member, 0, len(fg.Members)),
	}
	for _, m := range fg.Members {
		if m.UserID == 0 {
			return domain.Group{}, domain.NewValidationError("member user_id is required")
		}
		tz := m.Timezone
		if tz == "" {
			tz = domain.DefaultTimezone
		}
		group.Members = append(group.Members, domain.Member{
			UserID:    m.UserID,
			Username:  m.Username,
			FirstName: m.FirstName,
			Timezone:  tz,
		})
	}
	return group, nil
}

func toSlot(fs fileSlot, groupID int64) (domain.BusySlot, error) {
	slot := domain.BusySlot{
		ID:          fs.ID,
		UserID:      fs.UserID,
		GroupID:     groupID,
		Description: fs.Description,
	}

	switch domain.SlotType(strings.ToUpper(fs.Type)) {
	case domain.SlotOneTime:
		start, err := time.Parse(time.RFC3339, fs.StartAt)
		if err != nil {
			return slot, domain.NewValidationError("start_at must be RFC 3339, got %q", fs.StartAt)
		}
		end, err := time.Parse(time.RFC3339, fs.EndAt)
		if err != nil {
			return slot, domain.NewValidationError("end_at must be RFC 3339, got %q", fs.EndAt)
		}
		slot.Period = domain.OneTime{StartAt: start, EndAt: end}
	case domain.SlotCyclicWeekly:
		day, err := parseWeekday(fs.DayOfWeek)
		if err != nil {
			return slot, err
		}
		slot.Period = domain.CyclicWeekly{DayOfWeek: day, StartTimeLocal: fs.Start, EndTimeLocal: fs.End}
	default:
		return slot, domain.NewValidationError("unknown slot type %q", fs.Type)
	}

	if err := slot.Validate(); err != nil {
		return slot, err
	}
	return slot, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayNames[s]; ok {
		return d, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 6 {
		return 0, domain.NewValidationError("invalid day_of_week %q", s)
	}
	return time.Weekday(n), nil
}
