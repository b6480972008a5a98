// Package dataset maps the metadata kind keys to the HR entity kinds they
// reference.
package dataset

import "strings"

const (
	KindPersona  = "persona"
	KindFuncion  = "funcion"
	KindTiempo   = "tiempo"
	KindContrato = "contrato"
)

var known = map[string]bool{
	KindPersona:  true,
	KindFuncion:  true,
	KindTiempo:   true,
	KindContrato: true,
}

// Normalize converts a metadata kind key such as "id_contratos" into its
// canonical entity kind. The id_ prefix and a plural s are both optional.
func Normalize(kind string) (string, bool) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(kind)), "id_")
	normalized = strings.TrimRight(normalized, "s")
	return normalized, known[normalized]
}
