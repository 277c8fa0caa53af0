package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

type schedulingService struct {
	snapshotRepo repository.SnapshotRepository
	finder       FreeTimeFinder
	defaultLimit int
	now          func() time.Time
	logger       *zap.Logger
}

// NewSchedulingService создает новый экземпляр SchedulingService.
// defaultLimit применяется к запросам с Limit == 0.
func NewSchedulingService(
	snapshotRepo repository.SnapshotRepository,
	finder FreeTimeFinder,
	defaultLimit int,
	logger *zap.Logger,
) SchedulingService {
	return &schedulingService{
		snapshotRepo: snapshotRepo,
		finder:       finder,
		defaultLimit: defaultLimit,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *schedulingService) FindCommonTime(ctx context.Context, req FindRequest) (*FindResult, error) {
	group, slots, err := s.snapshotRepo.LoadGroupSnapshot(ctx, req.GroupID)
	if err != nil {
		return nil, notFound(err, "group")
	}

	policy, ok := domain.PolicyFor(group.Tier)
	if !ok {
		return nil, domain.NewValidationError("unknown plan tier %q", group.Tier)
	}
	if req.AllMembers && !policy.AllowAutoSearch {
		return nil, domain.ErrPlanRestricted
	}

	selected, unknown := SelectSearchMembers(group, req.MemberIDs, req.AllMembers)
	if len(unknown) > 0 {
		return nil, domain.NewValidationError("users %v are not members of group %d", unknown, group.ID)
	}
	if !req.AllMembers && len(selected) > policy.MaxMembers {
		return nil, domain.NewValidationError("plan %s allows at most %d members per search, got %d",
			group.Tier, policy.MaxMembers, len(selected))
	}

	now := req.Now
	if now.IsZero() {
		now = s.now()
	}

	windows, err := s.finder.FindCommonFreeTime(*group, slots, selected, now)
	if err != nil {
		return nil, err
	}
	windowStart, windowEnd := s.finder.Window(policy, now)

	total := len(windows)
	limit := req.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > 0 && len(windows) > limit {
		windows = windows[:limit]
	}

	s.logger.Info("common time found",
		zap.Int64("group_id", group.ID),
		zap.Int("members", len(selected)),
		zap.Bool("auto_search", req.AllMembers),
		zap.Int("windows_total", total),
		zap.Int("windows_returned", len(windows)),
	)

	return &FindResult{
		GroupID:     group.ID,
		Tier:        group.Tier,
		MemberIDs:   selected,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Windows:     windows,
		Total:       total,
	}, nil
}
