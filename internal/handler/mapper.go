package handler

import (
	"time"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/service"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		Timezone:  user.Timezone,
	}
}

func domainGroupToHTTP(group *domain.Group) GroupResponse {
	members := make([]MemberResponse, 0, len(group.Members))
	for _, m := range group.Members {
		members = append(members, MemberResponse{
			UserID:    m.UserID,
			Username:  m.Username,
			FirstName: m.FirstName,
			Timezone:  m.Timezone,
			JoinedAt:  m.JoinedAt,
		})
	}

	return GroupResponse{
		GroupID:   group.ID,
		Title:     group.Title,
		Tier:      string(group.Tier),
		Members:   members,
		CreatedAt: group.CreatedAt,
	}
}

// httpSlotToDomain собирает период слота по полю type
func httpSlotToDomain(req AddSlotRequest) (*domain.BusySlot, error) {
	slot := &domain.BusySlot{
		GroupID:     req.GroupID,
		UserID:      req.UserID,
		Description: req.Description,
	}

	switch domain.SlotType(req.Type) {
	case domain.SlotOneTime:
		if req.StartAt == nil || req.EndAt == nil {
			return nil, domain.NewValidationError("start_at and end_at are required for %s", req.Type)
		}
		slot.Period = domain.OneTime{StartAt: *req.StartAt, EndAt: *req.EndAt}
	case domain.SlotCyclicWeekly:
		if req.DayOfWeek == nil {
			return nil, domain.NewValidationError("day_of_week is required for %s", req.Type)
		}
		slot.Period = domain.CyclicWeekly{
			DayOfWeek:      time.Weekday(*req.DayOfWeek),
			StartTimeLocal: req.StartTimeLocal,
			EndTimeLocal:   req.EndTimeLocal,
		}
	default:
		return nil, domain.NewValidationError("type must be %s or %s", domain.SlotOneTime, domain.SlotCyclicWeekly)
	}

	return slot, nil
}

func domainSlotToHTTP(slot domain.BusySlot) SlotResponse {
	resp := SlotResponse{
		SlotID:      slot.ID,
		GroupID:     slot.GroupID,
		UserID:      slot.UserID,
		Type:        string(slot.Type()),
		Description: slot.Description,
		CreatedAt:   slot.CreatedAt,
	}

	switch p := slot.Period.(type) {
	case domain.OneTime:
		start, end := p.StartAt, p.EndAt
		resp.StartAt = &start
		resp.EndAt = &end
	case domain.CyclicWeekly:
		day := int(p.DayOfWeek)
		resp.DayOfWeek = &day
		resp.StartTimeLocal = p.StartTimeLocal
		resp.EndTimeLocal = p.EndTimeLocal
	}

	return resp
}

func domainSlotsToHTTP(slots []domain.BusySlot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, domainSlotToHTTP(s))
	}
	return result
}

func httpFindToService(req FindRequest) service.FindRequest {
	sr := service.FindRequest{
		GroupID:    req.GroupID,
		MemberIDs:  req.MemberIDs,
		AllMembers: req.AllMembers,
		Limit:      req.Limit,
	}
	if req.Now != nil {
		sr.Now = *req.Now
	}
	return sr
}

func findResultToHTTP(result *service.FindResult) FindResponse {
	windows := make([]FreeWindowResponse, 0, len(result.Windows))
	for _, w := range result.Windows {
		windows = append(windows, FreeWindowResponse{
			Start:           w.Start,
			End:             w.End,
			DurationMinutes: w.DurationMinutes,
		})
	}

	return FindResponse{
		GroupID:     result.GroupID,
		Tier:        string(result.Tier),
		MemberIDs:   result.MemberIDs,
		WindowStart: result.WindowStart,
		WindowEnd:   result.WindowEnd,
		Total:       result.Total,
		Windows:     windows,
	}
}

func planToHTTP(tier domain.PlanTier, p domain.PlanPolicy) PlanResponse {
	return PlanResponse{
		Tier:                   string(tier),
		SearchWindowDays:       p.SearchWindowDays,
		MinSlotDurationMinutes: p.MinSlotDurationMinutes,
		MaxMembers:             p.MaxMembers,
		AllowAutoSearch:        p.AllowAutoSearch,
	}
}

func domainStatsToHTTP(stats *domain.GroupStats) StatsResponse {
	response := StatsResponse{
		GroupID:     stats.GroupID,
		MemberStats: make([]MemberSlotStatResponse, len(stats.MemberStats)),
		TypeStats:   make([]SlotTypeStatResponse, len(stats.TypeStats)),
	}

	for i, stat := range stats.MemberStats {
		response.MemberStats[i] = MemberSlotStatResponse{
			UserID:    stat.UserID,
			Username:  stat.Username,
			SlotCount: stat.SlotCount,
		}
	}

	for i, stat := range stats.TypeStats {
		response.TypeStats[i] = SlotTypeStatResponse{
			Type:  string(stat.Type),
			Count: stat.Count,
		}
	}

	return response
}
