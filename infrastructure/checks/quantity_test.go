package checks

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyai/matchengine/infrastructure/scalar"
	"github.com/supplyai/matchengine/internal/domain"
)

func TestNewQuantityCheck(t *testing.T) {
	parser := scalar.NewParser(zerolog.Nop())

	_, err := NewQuantityCheck("", 20, parser)
	assert.ErrorIs(t, err, ErrEmptyCheckName)

	_, err = NewQuantityCheck("quantity", -5, parser)
	assert.ErrorIs(t, err, ErrNonPositiveWeight)

	check, err := NewQuantityCheck("quantity", 20, parser)
	require.NoError(t, err)
	assert.Equal(t, "quantity", check.Name())
	assert.Equal(t, 20, check.Weight())
}

func TestQuantityCheck_Evaluate(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.Record
		request   domain.Record
		want      domain.CheckResult
	}{
		{
			name:      "sufficient supply",
			candidate: domain.Record{"quantity": "150 kg/month"},
			request:   domain.Record{"quantity": "100 kg/month"},
			want: domain.CheckResult{
				Points:   20,
				Comments: []string{"Quantity sufficient: candidate 150 kg/month >= requested 100 kg/month."},
			},
		},
		{
			name:      "exactly sufficient",
			candidate: domain.Record{"quantity": "100 kg/month"},
			request:   domain.Record{"quantity": "100 kg/month"},
			want: domain.CheckResult{
				Points:   20,
				Comments: []string{"Quantity sufficient: candidate 100 kg/month >= requested 100 kg/month."},
			},
		},
		{
			name:      "insufficient supply",
			candidate: domain.Record{"quantity": "80 kg/month"},
			request:   domain.Record{"quantity": "100 kg/month"},
			want: domain.CheckResult{
				Comments: []string{"Quantity insufficient: candidate 80 kg/month < requested 100 kg/month."},
			},
		},
		{
			name:      "unit mismatch awards nothing even for larger value",
			candidate: domain.Record{"quantity": "500 kg/week"},
			request:   domain.Record{"quantity": "100 kg/month"},
			want: domain.CheckResult{
				Comments: []string{"Quantity unit mismatch: candidate 'kg/week' vs requested 'kg/month'. Cannot directly compare quantities based on value alone."},
			},
		},
		{
			name:      "bare numbers take the default unit",
			candidate: domain.Record{"quantity": 150},
			request:   domain.Record{"quantity": "100"},
			want: domain.CheckResult{
				Points:   20,
				Comments: []string{"Quantity sufficient: candidate 150 kg/month >= requested 100 kg/month."},
			},
		},
		{
			name:      "unit comparison is case-insensitive",
			candidate: domain.Record{"quantity": "150 KG/Month"},
			request:   domain.Record{"quantity": "100 kg/month"},
			want: domain.CheckResult{
				Points:   20,
				Comments: []string{"Quantity sufficient: candidate 150 kg/month >= requested 100 kg/month."},
			},
		},
		{
			name:      "missing candidate quantity defaults to zero and fails",
			candidate: domain.Record{},
			request:   domain.Record{"quantity": "100 kg/month"},
			want: domain.CheckResult{
				Comments: []string{"Quantity insufficient: candidate 0 kg/month < requested 100 kg/month."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := NewQuantityCheck("quantity", 20, scalar.NewParser(zerolog.Nop()))
			require.NoError(t, err)
			got := check.Evaluate(context.Background(), tt.candidate, tt.request)
			assert.Equal(t, tt.want, got)
		})
	}
}
