package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		known bool
	}{
		{"id_contrato", KindContrato, true},
		{"id_contratos", KindContrato, true},
		{"id_persona", KindPersona, true},
		{"id_personas", KindPersona, true},
		{"id_funcion", KindFuncion, true},
		{"id_tiempo", KindTiempo, true},
		{"contrato", KindContrato, true},
		{"  ID_CONTRATO  ", KindContrato, true},
		{"id_sueldo", "sueldo", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, known := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}
