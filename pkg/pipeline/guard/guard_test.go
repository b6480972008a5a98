package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	g := New()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain query gains semicolon",
			raw:  "SELECT * FROM contrato",
			want: "SELECT * FROM contrato;",
		},
		{
			name: "existing semicolon kept",
			raw:  "SELECT id_contrato FROM contrato;",
			want: "SELECT id_contrato FROM contrato;",
		},
		{
			name: "clean query with limit unchanged",
			raw:  "SELECT p.nombre_completo, c.honorario_total_bruto FROM contrato c JOIN persona p ON p.id_persona = c.id_persona LIMIT 100;",
			want: "SELECT p.nombre_completo, c.honorario_total_bruto FROM contrato c JOIN persona p ON p.id_persona = c.id_persona LIMIT 100;",
		},
		{
			name: "line comments stripped",
			raw:  "SELECT nombre_completo -- nombre de la persona\nFROM persona",
			want: "SELECT nombre_completo FROM persona;",
		},
		{
			name: "prose before the query cut",
			raw:  "Aquí está la consulta:\nSELECT * FROM persona",
			want: "SELECT * FROM persona;",
		},
		{
			name: "enthusiastic trailer cut",
			raw:  "SELECT * FROM contrato LIMIT 100; ES INCREIBLE como funciona",
			want: "SELECT * FROM contrato LIMIT 100;",
		},
		{
			name: "exclamation trailer cut",
			raw:  "SELECT * FROM contrato ¡Espero que te sirva!",
			want: "SELECT * FROM contrato;",
		},
		{
			name: "prose fused after limit clause cut",
			raw:  "SELECT * FROM contrato LIMIT 100 Esta consulta muestra todos los contratos",
			want: "SELECT * FROM contrato LIMIT 100;",
		},
		{
			name: "multiline query flattened",
			raw:  "SELECT c.id_contrato, p.nombre_completo\nFROM contrato c\nJOIN persona p ON p.id_persona = c.id_persona",
			want: "SELECT c.id_contrato, p.nombre_completo FROM contrato c JOIN persona p ON p.id_persona = c.id_persona;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Sanitize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeNoSelect(t *testing.T) {
	g := New()

	_, err := g.Sanitize("No puedo responder a esa consulta.")
	assert.ErrorIs(t, err, ErrNoSelect)
}

func TestValidate(t *testing.T) {
	g := New()

	tests := []struct {
		name string
		sql  string
		safe bool
	}{
		{
			name: "simple select accepted",
			sql:  "SELECT * FROM contrato;",
			safe: true,
		},
		{
			name: "join with aggregates accepted",
			sql:  "SELECT p.nombre_completo, SUM(c.honorario_total_bruto) FROM contrato c JOIN persona p ON p.id_persona = c.id_persona GROUP BY p.nombre_completo ORDER BY 2 DESC LIMIT 100;",
			safe: true,
		},
		{
			name: "empty rejected",
			sql:  "",
			safe: false,
		},
		{
			name: "non select rejected",
			sql:  "WITH t AS (SELECT 1) SELECT * FROM t;",
			safe: false,
		},
		{
			name: "drop rejected",
			sql:  "SELECT 1; DROP TABLE contrato;",
			safe: false,
		},
		{
			name: "delete rejected",
			sql:  "SELECT * FROM contrato WHERE 1=1 DELETE FROM persona;",
			safe: false,
		},
		{
			name: "distinct with order by and case rejected",
			sql:  "SELECT DISTINCT p.nombre_completo FROM persona p ORDER BY CASE WHEN p.nombre_completo IS NULL THEN 1 ELSE 0 END;",
			safe: false,
		},
		{
			name: "distinct with order by but no case accepted",
			sql:  "SELECT DISTINCT region FROM tiempo_contrato ORDER BY region;",
			safe: true,
		},
		{
			name: "keyword inside identifier not rejected",
			sql:  "SELECT updated_at FROM contrato;",
			safe: true,
		},
		{
			name: "keyword fused to punctuation rejected",
			sql:  "SELECT * FROM contrato;DELETE FROM persona;",
			safe: false,
		},
		{
			name: "lowercase keyword after parenthesis rejected",
			sql:  "SELECT * FROM contrato WHERE id_contrato IN (truncate);",
			safe: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.safe, g.Validate(tt.sql))
		})
	}
}
