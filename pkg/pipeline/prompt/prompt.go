// Package prompt assembles the SQL-generation and answer-composition
// prompts. Table and column names in the schema text are literal; the model
// copies them into the queries it writes.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

const TableSchema = `TABLA persona
  id_persona SERIAL,
  nombre_completo TEXT

TABLA funcion
  id_funcion SERIAL,
  grado_eus INT,
  descripcion_funcion TEXT,
  calificacion_profesional TEXT

TABLA tiempo_contrato
  id_tiempo SERIAL,
  anho INT,
  mes TEXT,
  fecha_inicio DATE,
  fecha_termino DATE,
  region TEXT

TABLA contrato
  id_contrato SERIAL,
  id_persona INT,
  id_funcion INT,
  id_tiempo INT,
  honorario_total_bruto INT,
  tipo_pago TEXT,
  viaticos TEXT,
  observaciones TEXT,
  enlace_funciones TEXT

Relaciones:
- contrato.id_persona → persona.id_persona
- contrato.id_funcion → funcion.id_funcion
- contrato.id_tiempo → tiempo_contrato.id_tiempo
`

const defaultInstruction = "Eres un asistente experto en análisis de datos para RRHH universitarios. Responde preguntas basadas en las siguientes tablas relacionales:"

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// BuildGenerationPrompt produces the full SQL-generation prompt. An active
// custom context replaces the default preamble; the schema text is always
// included, and excluded terms add a mandatory exclusion block.
func (b *Builder) BuildGenerationPrompt(question string, excludedTerms []string, customContext string) string {
	base := defaultInstruction
	if customContext != "" {
		base = customContext
	}
	base += "\n" + TableSchema

	var exclusions string
	if len(excludedTerms) > 0 {
		exclusions = fmt.Sprintf(`

IMPORTANTE - TÉRMINOS EXCLUIDOS: El usuario ha configurado los siguientes términos para EXCLUIR completamente de los resultados: %s.

Debes agregar condiciones WHERE para filtrar estos términos en TODAS las columnas relevantes:
- Si un término coincide con un mes (enero, febrero, marzo, etc.), agrega: AND LOWER(tiempo_contrato.mes) NOT LIKE '%%término%%'
- Si un término coincide con una región, agrega: AND LOWER(tiempo_contrato.region) NOT LIKE '%%término%%'
- Si un término coincide con un nombre/apellido, agrega: AND LOWER(persona.nombre_completo) NOT LIKE '%%término%%'
- Si un término coincide con una función, agrega: AND LOWER(funcion.descripcion_funcion) NOT LIKE '%%término%%'
- Si un término coincide con una calificación, agrega: AND LOWER(funcion.calificacion_profesional) NOT LIKE '%%término%%'

Ejemplo: Si 'marzo' está excluido, la consulta debe incluir: AND LOWER(tiempo_contrato.mes) NOT LIKE '%%marzo%%'
Los filtros de exclusión son OBLIGATORIOS y deben aplicarse siempre que haya términos excluidos.`, strings.Join(excludedTerms, ", "))
	}

	return fmt.Sprintf(`%s%s

Y la siguiente consulta en lenguaje natural:
"%s"

Genera una consulta SQL para el motor PostgreSQL que responda la pregunta del usuario. Sigue estas pautas:
1. Usa exclusivamente las tablas y relaciones provistas.
2. Utiliza JOIN cuando sea necesario combinar información entre tablas.
3. Usa LIKE y funciones como LOWER para permitir búsquedas insensibles a mayúsculas.
4. Siempre que busques por nombres, considera que están en formato: "APELLIDOS, NOMBRES".
5. Si el usuario entrega el nombre en formato natural (ej. "Felipe Álvarez"), intenta invertirlo o comparar ambos extremos usando LIKE con comodines.
6. Utiliza funciones agregadas como COUNT, SUM, AVG, MAX o MIN cuando la pregunta lo sugiera.
7. Ordena los resultados cuando sea útil, por ejemplo usando ORDER BY honorario_total_bruto DESC.
8. Limita el resultado a 100 filas como máximo. Usa LIMIT 100.
9. Nunca generes comandos como CREATE, DROP, INSERT ni UPDATE. Solo SELECT.
10. Usa alias de tabla cuando sea necesario para mantener claridad.
11. Si el usuario pregunta por "los anteriores" o "las personas anteriores", asume que se refiere al resultado más reciente de la conversación, y genera una consulta coherente filtrando por los mismos nombres si es posible.
12. Si no puedes generar una consulta válida o la pregunta no se relaciona con el contexto de los datos, responde amablemente que no puedes responder a esa consulta.
13. OBLIGATORIO: Si hay términos excluidos configurados (mostrados arriba), debes aplicar TODOS los filtros de exclusión correspondientes usando condiciones WHERE con NOT LIKE.
14. MUY IMPORTANTE: SIEMPRE incluye los campos de ID relevantes (id_contrato, id_persona, id_funcion, id_tiempo) en el SELECT para permitir referencias posteriores. Por ejemplo, si consultas datos de contratos, SIEMPRE incluye c.id_contrato en el SELECT.

Tu respuesta debe ser solo la consulta SQL, sin explicaciones adicionales.
`, base, exclusions, question)
}

// BuildReferenceHint renders the structured block of the previous answer as
// an extra prompt section. With the concrete ids at hand the model can resolve
// follow-ups like "los anteriores" with an IN filter instead of guessing from
// names in the history. Returns the empty string when there is nothing cached.
func (b *Builder) BuildReferenceHint(kind string, ids []int64) string {
	if kind == "" || len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf(`

CONTEXTO DE LA CONVERSACIÓN: La respuesta anterior se basó en %s = [%s]. Si el usuario se refiere a "los anteriores" o a resultados previos, genera la consulta filtrando por esos identificadores (por ejemplo WHERE %s IN (%s)).`,
		kind, strings.Join(parts, ", "), kind, strings.Join(parts, ", "))
}

// BuildCompositionPrompt produces the answer-composition prompt from the
// question and the raw query results. An active custom context is appended
// as an extra instruction, it does not replace the base rules.
func (b *Builder) BuildCompositionPrompt(question, results string, customContext string) string {
	var extra string
	if customContext != "" {
		extra = "\n\nINSTRUCCIÓN ESPECIAL DEL USUARIO: " + customContext
	}

	return fmt.Sprintf(`Dada la siguiente pregunta:
"%s"
Y los siguientes resultados:
%s

Genera una respuesta clara para un usuario de RRHH universitario. Sigue estas pautas:
- Usa lenguaje profesional y ordenado.
- Muestra cifras con formato de pesos chilenos ($ 1.000.000).
- Si hay varios datos personales o contratos, incluye un JSON al final así: {"id_contrato": [12, 15, 18]} o {"id_persona": [5, 7, 9]}.
- Esa instrucción no debe ser explicada, solo insertada al final como dato estructurado, la instruccion que esta puesta arriba es solo un ejemplo no tomes ese dato para dar informacion, tienes que buscar el dato especifico de la informacion que se te pide o de la persona como tal o contrato de donde extrajiste la informacion.
- Si no hay datos, indica que no se encontró información y sugiere reformular la pregunta.%s
`, question, results, extra)
}
