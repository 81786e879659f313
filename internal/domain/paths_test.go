package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerLogPath(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		want  string
	}{
		{
			name:  "simple name",
			owner: "Amelia",
			want:  "owner-amelia.log",
		},
		{
			name:  "name with spaces",
			owner: "Amelia Jones",
			want:  "owner-amelia-jones.log",
		},
		{
			name:  "name with path separator",
			owner: "a/b",
			want:  "owner-a-b.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OwnerLogPath("/data", tt.owner)
			assert.Equal(t, filepath.Join("/data", "logs", tt.want), got)
		})
	}
}

func TestDataDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/amelia", ".pawpal"), DataDir("/home/amelia"))
}
