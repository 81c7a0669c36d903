package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stmt-engine/internal/detect"
	"stmt-engine/internal/models"
)

// fixedClock returns a Clock pinned to the given instant.
func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   detect.Format
		wantType interface{}
	}{
		{"capital one", detect.CapitalOne, &CapitalOneParser{}},
		{"chase", detect.Chase, &ChaseParser{}},
		{"bank of america falls back", detect.BankOfAmerica, &GenericParser{}},
		{"wells fargo falls back", detect.WellsFargo, &GenericParser{}},
		{"unknown falls back", detect.Unknown, &GenericParser{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ForFormat(tt.format, nil, nil)
			assert.IsType(t, tt.wantType, p)
			assert.Equal(t, tt.format, p.Format())
		})
	}
}

func TestForFormatCarriesBankNameIntoFallback(t *testing.T) {
	clock := fixedClock(time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC))
	p := ForFormat(detect.WellsFargo, clock, nil)

	txns := p.Parse([]string{"01/15/2025 COFFEE SHOP $4.50"}, "stmt.txt")
	assert.Len(t, txns, 1)
	assert.Equal(t, models.BankWellsFargo, txns[0].Bank)
}
