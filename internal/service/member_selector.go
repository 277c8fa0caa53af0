package service

import (
	"github.com/bagdasarian/freetime-finder/internal/domain"
)

// SelectSearchMembers определяет, по кому искать общее время.
// all == true - все участники группы в порядке вступления. Иначе берутся
// requested без повторов, в порядке запроса; id не участников возвращаются в unknown.
func SelectSearchMembers(group *domain.Group, requested []int64, all bool) (selected []int64, unknown []int64) {
	if all {
		return group.MemberIDs(), []int64{}
	}

	selected = make([]int64, 0, len(requested))
	unknown = make([]int64, 0)
	seen := make(map[int64]struct{}, len(requested))
	for _, id := range requested {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if group.HasMember(id) {
			selected = append(selected, id)
		} else {
			unknown = append(unknown, id)
		}
	}

	return selected, unknown
}
