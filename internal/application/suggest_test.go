package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearMissMaterials(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		rejected  []string
		want      []string
	}{
		{
			name:      "typo within distance",
			requested: "acetone",
			rejected:  []string{"acetome", "toluene"},
			want:      []string{"acetome"},
		},
		{
			name:      "case folded and trimmed",
			requested: "Acetone",
			rejected:  []string{"  ACETONE 1 ", "benzene"},
			want:      []string{"ACETONE 1"},
		},
		{
			name:      "exact match excluded",
			requested: "acetone",
			rejected:  []string{"acetone", "ACETONE"},
			want:      nil,
		},
		{
			name:      "duplicates collapse",
			requested: "acetone",
			rejected:  []string{"acetonee", "Acetonee", "acetonee"},
			want:      []string{"acetonee"},
		},
		{
			name:      "empty requested yields nothing",
			requested: "  ",
			rejected:  []string{"acetone"},
			want:      nil,
		},
		{
			name:      "distant labels filtered",
			requested: "acetone",
			rejected:  []string{"sulfuric acid", "sodium hydroxide"},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nearMissMaterials(tt.requested, tt.rejected)
			assert.Equal(t, tt.want, got)
		})
	}
}
