package impl

import (
	"testing"

	"bpaml/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ids(activities []entity.RemoteActivity) []int64 {
	out := make([]int64, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}

	return out
}

func TestUnsaved(t *testing.T) {
	tests := []struct {
		name     string
		local    []int64
		remote   []int64
		expected []int64
	}{
		{name: "nothing stored", local: nil, remote: []int64{3, 1, 2}, expected: []int64{3, 1, 2}},
		{name: "set difference keeps order", local: []int64{1}, remote: []int64{3, 1, 2}, expected: []int64{3, 2}},
		{name: "everything stored", local: []int64{1, 2, 3}, remote: []int64{1, 2, 3}, expected: []int64{}},
		{name: "empty remote", local: []int64{1}, remote: nil, expected: []int64{}},
		{name: "duplicate remote ids are returned once", local: []int64{9}, remote: []int64{5, 5, 6, 5}, expected: []int64{5, 6}},
		{name: "local ids not in remote are ignored", local: []int64{100, 200}, remote: []int64{1}, expected: []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := make([]entity.RemoteActivity, 0, len(tt.remote))
			for _, id := range tt.remote {
				remote = append(remote, remoteWithID(id))
			}

			got := Unsaved(tt.local, remote)

			assert.NotNil(t, got)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestUnsaved_Idempotent(t *testing.T) {
	remote := []entity.RemoteActivity{remoteWithID(4), remoteWithID(7), remoteWithID(8)}
	local := []int64{7}

	once := Unsaved(local, remote)
	twice := Unsaved(local, once)

	assert.Equal(t, once, twice)
}

func TestUnsaved_DoesNotModifyInput(t *testing.T) {
	remote := []entity.RemoteActivity{remoteWithID(1), remoteWithID(2)}

	_ = Unsaved([]int64{1}, remote)

	assert.Equal(t, []int64{1, 2}, ids(remote))
}
