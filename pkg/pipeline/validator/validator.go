// Package validator decides whether a free-text question belongs to the
// university HR payroll domain before any model call is made.
package validator

import (
	"regexp"
	"strings"
)

const (
	ReasonOutOfContext = "Pregunta absurda o fuera de contexto"
	ReasonNoStructure  = "No contiene términos relacionados ni estructura válida"
)

// absurdTerms short-circuit the check regardless of anything else in the
// question.
var absurdTerms = []string{
	"galaxia", "alien", "extraterrestre", "quien gano el mundial de quidditch",
	"cocinar", "pastel de papas", "inflacion en saturno", "marciano", "dragones",
}

var domainKeywords = []string{
	"honorario", "contrato", "persona", "nombre", "apellido", "funcion", "calificacion",
	"región", "mes", "año", "pagado", "liquido", "bruto", "tipo de pago", "profesion",
	"psicólogo", "sueldo", "remuneración", "trabajador", "gasto", "top", "más ganaron", "ganó",
}

var interrogativePattern = regexp.MustCompile(`(cu[aá]nto|cu[aá]les|d[aá]me|muestra|qu[ée]|qu[íi]en)`)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate returns (true, "") for questions that may proceed to generation,
// or (false, reason) with the recorded blocking reason. Checks run in fixed
// order: absurd terms, domain keywords, then question structure.
func (v *Validator) Validate(question string) (bool, string) {
	lower := strings.ToLower(strings.TrimSpace(question))

	for _, term := range absurdTerms {
		if strings.Contains(lower, term) {
			return false, ReasonOutOfContext
		}
	}

	for _, keyword := range domainKeywords {
		if strings.Contains(lower, keyword) {
			return true, ""
		}
	}

	if len(strings.Fields(lower)) >= 4 && interrogativePattern.MatchString(lower) {
		return true, ""
	}

	return false, ReasonNoStructure
}
