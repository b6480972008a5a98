package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		question string
		valid    bool
		reason   string
	}{
		{
			name:     "domain keyword passes",
			question: "dame el honorario de los contratos de marzo",
			valid:    true,
		},
		{
			name:     "keyword match is case insensitive",
			question: "CUÁL ES EL SUELDO PROMEDIO",
			valid:    true,
		},
		{
			name:     "absurd term blocks even with keywords",
			question: "cuánto gana un alien con contrato en la universidad",
			valid:    false,
			reason:   ReasonOutOfContext,
		},
		{
			name:     "absurd term blocks",
			question: "quien gano el mundial de quidditch",
			valid:    false,
			reason:   ReasonOutOfContext,
		},
		{
			name:     "interrogative with enough words passes without keywords",
			question: "cuánto se pagó durante abril",
			valid:    true,
		},
		{
			name:     "short question without keywords is blocked",
			question: "qué pasó",
			valid:    false,
			reason:   ReasonNoStructure,
		},
		{
			name:     "long text without structure is blocked",
			question: "el cielo estaba despejado toda la semana",
			valid:    false,
			reason:   ReasonNoStructure,
		},
		{
			name:     "empty question is blocked",
			question: "",
			valid:    false,
			reason:   ReasonNoStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, reason := v.Validate(tt.question)
			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
