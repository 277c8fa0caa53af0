package domain

type MemberSlotStat struct {
	UserID    int64
	Username  string
	SlotCount int
}

type SlotTypeStat struct {
	Type  SlotType
	Count int
}

type GroupStats struct {
	GroupID     int64
	MemberStats []*MemberSlotStat
	TypeStats   []*SlotTypeStat
}
