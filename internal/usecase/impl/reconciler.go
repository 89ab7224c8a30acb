package impl

import "bpaml/internal/domain/entity"

// Unsaved returns the remote activities whose id is not in localIDs, in their original order.
// An id repeated in remote is returned once.
func Unsaved(localIDs []int64, remote []entity.RemoteActivity) []entity.RemoteActivity {
	seen := make(map[int64]struct{}, len(localIDs)+len(remote))
	for _, id := range localIDs {
		seen[id] = struct{}{}
	}

	unsaved := make([]entity.RemoteActivity, 0, len(remote))
	for _, activity := range remote {
		if _, ok := seen[activity.ID]; ok {
			continue
		}
		seen[activity.ID] = struct{}{}
		unsaved = append(unsaved, activity)
	}

	return unsaved
}
