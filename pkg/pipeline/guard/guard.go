// Package guard cleans and vets model-generated SQL before execution.
// Nothing reaches the database unless it survives both Sanitize and
// Validate.
package guard

import (
	"errors"
	"regexp"
	"strings"
)

var ErrNoSelect = errors.New("no SELECT statement found")

// Phrases the model occasionally appends after the query. Everything from
// the first occurrence onward is discarded.
var trailingPhrases = []string{
	"ES INCREIBLE", "¡", "EXCELENTE", "PERFECTO", "GENIAL",
	"INCREÍBLE", "MARAVILLOSO", "FANTÁSTICO",
}

// Standalone occurrences only: identifiers such as updated_at must not trip
// the scan, but a keyword glued to punctuation (";DELETE") must.
var forbiddenPattern = regexp.MustCompile(
	`(?i)\b(drop|delete|insert|update|alter|create|truncate|exec|execute|grant|revoke)\b`)

var limitProsePattern = regexp.MustCompile(`(?i)(LIMIT\s+\d+)\s+[A-Za-z]`)

type Guard struct{}

func New() *Guard {
	return &Guard{}
}

// Sanitize extracts the bare SELECT statement from raw model output. It
// strips line comments, flattens whitespace, cuts any prose before the
// first SELECT or after the query, and guarantees a trailing semicolon.
func (g *Guard) Sanitize(raw string) (string, error) {
	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if pos := strings.Index(line, "--"); pos != -1 {
			line = line[:pos]
		}
		cleaned = append(cleaned, strings.TrimSpace(line))
	}
	flat := strings.TrimSpace(strings.Join(cleaned, " "))

	start := strings.Index(strings.ToUpper(flat), "SELECT")
	if start == -1 {
		return "", ErrNoSelect
	}
	sql := flat[start:]

	for _, phrase := range trailingPhrases {
		if pos := strings.Index(strings.ToUpper(sql), phrase); pos != -1 {
			sql = strings.TrimSpace(sql[:pos])
		}
	}

	// A LIMIT clause fused with trailing prose keeps only the clause
	if m := limitProsePattern.FindStringSubmatchIndex(sql); m != nil {
		sql = sql[:m[3]]
	}

	sql = strings.TrimSpace(sql)
	if !strings.HasSuffix(sql, ";") {
		sql += ";"
	}
	return sql, nil
}

// Validate reports whether a sanitized statement is safe to run. It must be
// a plain SELECT, must not carry any data or schema modifying keyword, and
// must not combine SELECT DISTINCT with ORDER BY and CASE, a combination
// the engine resolves incorrectly for the generated queries.
func (g *Guard) Validate(sql string) bool {
	if sql == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(sql))
	if !strings.HasPrefix(lower, "select") {
		return false
	}

	flat := strings.ToLower(strings.ReplaceAll(sql, "\n", " "))
	if strings.Contains(flat, "select distinct") &&
		strings.Contains(flat, "order by") &&
		strings.Contains(flat, "case") {
		return false
	}

	return !forbiddenPattern.MatchString(sql)
}
