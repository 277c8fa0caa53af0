package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type RegisterUserRequest struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Timezone  string `json:"timezone"`
}

type UserResponse struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Timezone  string `json:"timezone"`
}

type CreateGroupRequest struct {
	GroupID   int64  `json:"group_id"`
	Title     string `json:"title"`
	Tier      string `json:"tier"`
	CreatorID int64  `json:"creator_id"`
}

type InitGroupRequest struct {
	GroupID int64  `json:"group_id"`
	Title   string `json:"title"`
}

type MembershipRequest struct {
	GroupID int64 `json:"group_id"`
	UserID  int64 `json:"user_id"`
}

type SetTierRequest struct {
	GroupID int64  `json:"group_id"`
	Tier    string `json:"tier"`
}

type MemberResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	Timezone  string    `json:"timezone"`
	JoinedAt  time.Time `json:"joined_at"`
}

type GroupResponse struct {
	GroupID   int64            `json:"group_id"`
	Title     string           `json:"title"`
	Tier      string           `json:"tier"`
	Members   []MemberResponse `json:"members"`
	CreatedAt time.Time        `json:"created_at"`
}

type GroupEnvelope struct {
	Group GroupResponse `json:"group"`
}

type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// AddSlotRequest - тело POST /slots/add. Для ONE_TIME нужны start_at и end_at,
// для CYCLIC_WEEKLY - day_of_week, start_time_local и end_time_local.
type AddSlotRequest struct {
	GroupID        int64      `json:"group_id"`
	UserID         int64      `json:"user_id"`
	Type           string     `json:"type"`
	Description    string     `json:"description"`
	StartAt        *time.Time `json:"start_at,omitempty"`
	EndAt          *time.Time `json:"end_at,omitempty"`
	DayOfWeek      *int       `json:"day_of_week,omitempty"`
	StartTimeLocal string     `json:"start_time_local,omitempty"`
	EndTimeLocal   string     `json:"end_time_local,omitempty"`
}

type SlotResponse struct {
	SlotID         string     `json:"slot_id"`
	GroupID        int64      `json:"group_id"`
	UserID         int64      `json:"user_id"`
	Type           string     `json:"type"`
	Description    string     `json:"description"`
	StartAt        *time.Time `json:"start_at,omitempty"`
	EndAt          *time.Time `json:"end_at,omitempty"`
	DayOfWeek      *int       `json:"day_of_week,omitempty"`
	StartTimeLocal string     `json:"start_time_local,omitempty"`
	EndTimeLocal   string     `json:"end_time_local,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type SlotEnvelope struct {
	Slot SlotResponse `json:"slot"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

type RemoveSlotRequest struct {
	SlotID string `json:"slot_id"`
	UserID int64  `json:"user_id"`
}

type FindRequest struct {
	GroupID    int64      `json:"group_id"`
	MemberIDs  []int64    `json:"member_ids"`
	AllMembers bool       `json:"all_members"`
	Now        *time.Time `json:"now,omitempty"`
	Limit      int        `json:"limit"`
}

type FreeWindowResponse struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

type FindResponse struct {
	GroupID     int64                `json:"group_id"`
	Tier        string               `json:"tier"`
	MemberIDs   []int64              `json:"member_ids"`
	WindowStart time.Time            `json:"window_start"`
	WindowEnd   time.Time            `json:"window_end"`
	Total       int                  `json:"total"`
	Windows     []FreeWindowResponse `json:"windows"`
}

type PlanResponse struct {
	Tier                   string `json:"tier"`
	SearchWindowDays       int    `json:"search_window_days"`
	MinSlotDurationMinutes int    `json:"min_slot_duration_minutes"`
	MaxMembers             int    `json:"max_members"`
	AllowAutoSearch        bool   `json:"allow_auto_search"`
}

type PlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

type MemberSlotStatResponse struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	SlotCount int    `json:"slot_count"`
}

type SlotTypeStatResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	GroupID     int64                    `json:"group_id"`
	MemberStats []MemberSlotStatResponse `json:"member_stats"`
	TypeStats   []SlotTypeStatResponse   `json:"type_stats"`
}
