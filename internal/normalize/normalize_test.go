package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "trims and drops blanks",
			text: "  first line \n\n\tsecond line\t\n   \nthird",
			want: []string{"first line", "second line", "third"},
		},
		{
			name: "windows line endings",
			text: "one\r\ntwo\r\n",
			want: []string{"one", "two"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "only whitespace",
			text: " \n\t\n ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.text))
		})
	}
}

func TestLinesPreservesOrder(t *testing.T) {
	text := "DEPOSITS AND ADDITIONS\n12/05 Payroll $1,200.00\nELECTRONIC WITHDRAWALS\n12/06 Rent $900.00"
	lines := Lines(text)
	assert.Equal(t, []string{
		"DEPOSITS AND ADDITIONS",
		"12/05 Payroll $1,200.00",
		"ELECTRONIC WITHDRAWALS",
		"12/06 Rent $900.00",
	}, lines)
}
