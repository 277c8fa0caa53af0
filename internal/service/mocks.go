package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) CreateWithMember(ctx context.Context, group *domain.Group, userID int64) error {
	args := m.Called(ctx, group, userID)
	return args.Error(0)
}

func (m *MockGroupRepository) Upsert(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) UpdateTier(ctx context.Context, id int64, tier domain.PlanTier) error {
	args := m.Called(ctx, id, tier)
	return args.Error(0)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, groupID, userID int64, maxMembers int) error {
	args := m.Called(ctx, groupID, userID, maxMembers)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockGroupRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Group), args.Error(1)
}

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Create(ctx context.Context, slot *domain.BusySlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockSlotRepository) Delete(ctx context.Context, id string, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockSlotRepository) ListByGroupID(ctx context.Context, groupID int64) ([]domain.BusySlot, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusySlot), args.Error(1)
}

func (m *MockSlotRepository) ListByUser(ctx context.Context, groupID, userID int64) ([]domain.BusySlot, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusySlot), args.Error(1)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) LoadGroupSnapshot(ctx context.Context, groupID int64) (*domain.Group, []domain.BusySlot, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Group), args.Get(1).([]domain.BusySlot), args.Error(2)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetMemberSlotStats(ctx context.Context, groupID int64) ([]*domain.MemberSlotStat, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemberSlotStat), args.Error(1)
}

func (m *MockStatsRepository) GetSlotStatsByType(ctx context.Context, groupID int64) ([]*domain.SlotTypeStat, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SlotTypeStat), args.Error(1)
}

type MockFreeTimeFinder struct {
	mock.Mock
}

func (m *MockFreeTimeFinder) FindCommonFreeTime(group domain.Group, slots []domain.BusySlot, selected []int64, now time.Time) ([]domain.FreeWindow, error) {
	args := m.Called(group, slots, selected, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FreeWindow), args.Error(1)
}

func (m *MockFreeTimeFinder) Window(policy domain.PlanPolicy, now time.Time) (time.Time, time.Time) {
	args := m.Called(policy, now)
	return args.Get(0).(time.Time), args.Get(1).(time.Time)
}
