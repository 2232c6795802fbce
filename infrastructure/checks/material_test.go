package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyai/matchengine/internal/domain"
)

func TestNewMaterialCheck(t *testing.T) {
	tests := []struct {
		name      string
		checkName string
		weight    int
		wantErr   error
	}{
		{name: "valid", checkName: "material", weight: 40},
		{name: "empty name", checkName: "", weight: 40, wantErr: ErrEmptyCheckName},
		{name: "zero weight", checkName: "material", weight: 0, wantErr: ErrNonPositiveWeight},
		{name: "negative weight", checkName: "material", weight: -1, wantErr: ErrNonPositiveWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := NewMaterialCheck(tt.checkName, tt.weight)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, check)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.checkName, check.Name())
			assert.Equal(t, tt.weight, check.Weight())
		})
	}
}

func TestMaterialCheck_Evaluate(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.Record
		request   domain.Record
		want      domain.CheckResult
	}{
		{
			name:      "exact match",
			candidate: domain.Record{"material": "Hydrochloric Acid"},
			request:   domain.Record{"material": "Hydrochloric Acid"},
			want: domain.CheckResult{
				Points:   40,
				Comments: []string{"Material 'Hydrochloric Acid' matches."},
			},
		},
		{
			name:      "case and whitespace insensitive",
			candidate: domain.Record{"material": "  SULFURIC ACID "},
			request:   domain.Record{"material": "sulfuric acid"},
			want: domain.CheckResult{
				Points:   40,
				Comments: []string{"Material 'sulfuric acid' matches."},
			},
		},
		{
			name:      "mismatch halts and excludes",
			candidate: domain.Record{"material": "Sodium Hydroxide"},
			request:   domain.Record{"material": "Hydrochloric Acid"},
			want: domain.CheckResult{
				Halt:     true,
				Exclude:  true,
				Comments: []string{"Material mismatch: candidate 'Sodium Hydroxide' vs requested 'Hydrochloric Acid'."},
			},
		},
		{
			name:      "candidate missing material reported as N/A",
			candidate: domain.Record{},
			request:   domain.Record{"material": "Hydrochloric Acid"},
			want: domain.CheckResult{
				Halt:     true,
				Exclude:  true,
				Comments: []string{"Material mismatch: candidate 'N/A' vs requested 'Hydrochloric Acid'."},
			},
		},
		{
			name:      "empty request material halts without exclusion",
			candidate: domain.Record{"material": "Hydrochloric Acid"},
			request:   domain.Record{},
			want: domain.CheckResult{
				Halt:     true,
				Comments: []string{"Requested material is not specified. Cannot perform match."},
			},
		},
		{
			name:      "whitespace-only request material halts without exclusion",
			candidate: domain.Record{"material": "Hydrochloric Acid"},
			request:   domain.Record{"material": "   "},
			want: domain.CheckResult{
				Halt:     true,
				Comments: []string{"Requested material is not specified. Cannot perform match."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := NewMaterialCheck("material", 40)
			require.NoError(t, err)
			got := check.Evaluate(context.Background(), tt.candidate, tt.request)
			assert.Equal(t, tt.want, got)
		})
	}
}
