package domain

import "time"

// Group - групповой чат, для участников которого ищется общее свободное время.
// ID совпадает с id чата в мессенджере.
type Group struct {
	ID        int64
	Title     string
	Tier      PlanTier
	Members   []Member
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Member struct {
	UserID    int64
	Username  string
	FirstName string
	Timezone  string
	JoinedAt  time.Time
}

// HasMember сообщает, состоит ли пользователь в группе
func (g *Group) HasMember(userID int64) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (g *Group) MemberIDs() []int64 {
	ids := make([]int64, 0, len(g.Members))
	for _, m := range g.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}
