package domain

type PlanTier string

const (
	TierFree     PlanTier = "FREE"
	TierGroupPro PlanTier = "GROUP_PRO"
	TierBusiness PlanTier = "BUSINESS"
)

// PlanPolicy - ограничения тарифа группы
type PlanPolicy struct {
	SearchWindowDays       int
	MinSlotDurationMinutes int
	MaxMembers             int
	AllowAutoSearch        bool
}

var planPolicies = map[PlanTier]PlanPolicy{
	TierFree: {
		SearchWindowDays:       7,
		MinSlotDurationMinutes: 30,
		MaxMembers:             7,
		AllowAutoSearch:        false,
	},
	TierGroupPro: {
		SearchWindowDays:       30,
		MinSlotDurationMinutes: 15,
		MaxMembers:             50,
		AllowAutoSearch:        true,
	},
	TierBusiness: {
		SearchWindowDays:       60,
		MinSlotDurationMinutes: 15,
		MaxMembers:             200,
		AllowAutoSearch:        true,
	},
}

// PolicyFor возвращает политику тарифа; ok == false для неизвестного тарифа
func PolicyFor(tier PlanTier) (PlanPolicy, bool) {
	p, ok := planPolicies[tier]
	return p, ok
}

func (t PlanTier) Valid() bool {
	_, ok := planPolicies[t]
	return ok
}

// Tiers возвращает тарифы в порядке возрастания
func Tiers() []PlanTier {
	return []PlanTier{TierFree, TierGroupPro, TierBusiness}
}
