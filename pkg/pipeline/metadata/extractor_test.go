package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		text     string
		wantText string
		wantKind string
		wantIds  []int64
	}{
		{
			name:     "trailing contract references",
			text:     "Se encontraron 3 contratos con honorario sobre $ 1.000.000.\n{\"id_contrato\": [12, 15, 18]}",
			wantText: "Se encontraron 3 contratos con honorario sobre $ 1.000.000.",
			wantKind: "id_contrato",
			wantIds:  []int64{12, 15, 18},
		},
		{
			name:     "trailing person references",
			text:     "Las personas con mayor honorario son María Rojas y Juan Mamani. {\"id_persona\": [5, 7]}",
			wantText: "Las personas con mayor honorario son María Rojas y Juan Mamani.",
			wantKind: "id_persona",
			wantIds:  []int64{5, 7},
		},
		{
			name:     "no json block",
			text:     "No se encontró información para esa pregunta.",
			wantText: "No se encontró información para esa pregunta.",
		},
		{
			name:     "malformed json left intact",
			text:     "Resultados listos {\"id_contrato\": [12,}",
			wantText: "Resultados listos {\"id_contrato\": [12,}",
		},
		{
			name:     "json without id key left intact",
			text:     "Resumen {\"total\": [3]}",
			wantText: "Resumen {\"total\": [3]}",
		},
		{
			name:     "id key with non list value left intact",
			text:     "Resumen {\"id_contrato\": 12}",
			wantText: "Resumen {\"id_contrato\": 12}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, kind, ids := e.Extract(tt.text)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantIds, ids)
		})
	}
}
