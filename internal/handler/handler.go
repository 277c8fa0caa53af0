package handler

import (
	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/service"
)

type Handler struct {
	userService       service.UserService
	groupService      service.GroupService
	slotService       service.SlotService
	schedulingService service.SchedulingService
	statsService      service.StatsService
	logger            *zap.Logger
}

func NewHandler(
	userService service.UserService,
	groupService service.GroupService,
	slotService service.SlotService,
	schedulingService service.SchedulingService,
	statsService service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userService:       userService,
		groupService:      groupService,
		slotService:       slotService,
		schedulingService: schedulingService,
		statsService:      statsService,
		logger:            logger,
	}
}
