// Package executor runs the generate, guard, execute, compose, extract
// sequence for one validated question.
package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hr-chatbot-be/pkg/llm"
	"hr-chatbot-be/pkg/pipeline/guard"
	"hr-chatbot-be/pkg/pipeline/metadata"
	"hr-chatbot-be/pkg/pipeline/prompt"
)

var (
	// ErrInvalidQuery marks SQL the guard refused. The caller answers with
	// the fixed warning instead of surfacing detail.
	ErrInvalidQuery = errors.New("generated query rejected")
)

// QueryRunner executes one vetted SELECT and returns its rows.
type QueryRunner interface {
	Execute(ctx context.Context, query string) ([]map[string]interface{}, error)
}

// Reference is the structured block carried over from the previous answer in
// the same session. It lets a follow-up generation resolve "los anteriores"
// against concrete ids.
type Reference struct {
	Kind string
	Ids  []int64
}

// Result is everything one pipeline pass produced.
type Result struct {
	Sql    string
	Rows   []map[string]interface{}
	Answer string
	Kind   string
	Ids    []int64
}

type Executor struct {
	provider  llm.LLMProvider
	runner    QueryRunner
	prompts   *prompt.Builder
	guard     *guard.Guard
	extractor *metadata.Extractor
	maxTokens int
}

func New(provider llm.LLMProvider, runner QueryRunner, maxTokens int) *Executor {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &Executor{
		provider:  provider,
		runner:    runner,
		prompts:   prompt.NewBuilder(),
		guard:     guard.New(),
		extractor: metadata.NewExtractor(),
		maxTokens: maxTokens,
	}
}

// Run executes the full pipeline for one question. History is the prior
// conversation in order; excludedTerms and customContext feed the prompts.
// A non-nil prior appends the previous answer's reference ids to the
// generation prompt.
func (e *Executor) Run(ctx context.Context, question string, history []llm.Message, excludedTerms []string, customContext string, prior *Reference) (*Result, error) {
	generationPrompt := e.prompts.BuildGenerationPrompt(question, excludedTerms, customContext)
	if prior != nil {
		generationPrompt += e.prompts.BuildReferenceHint(prior.Kind, prior.Ids)
	}

	messages := append([]llm.Message{{Role: "user", Content: generationPrompt}}, history...)
	rawSql, err := e.provider.Chat(ctx, messages,
		llm.WithTemperature(0),
		llm.WithMaxTokens(e.maxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("generate sql: %w", err)
	}

	sql, err := e.guard.Sanitize(rawSql)
	if err != nil {
		return nil, ErrInvalidQuery
	}
	if !e.guard.Validate(sql) {
		return nil, ErrInvalidQuery
	}

	rows, err := e.runner.Execute(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}

	compositionPrompt := e.prompts.BuildCompositionPrompt(question, formatRows(rows), customContext)
	composeMessages := append([]llm.Message{{Role: "user", Content: compositionPrompt}}, history...)
	rawAnswer, err := e.provider.Chat(ctx, composeMessages,
		llm.WithTemperature(0),
		llm.WithMaxTokens(e.maxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("compose answer: %w", err)
	}

	answer, kind, ids := e.extractor.Extract(rawAnswer)

	return &Result{
		Sql:    sql,
		Rows:   rows,
		Answer: answer,
		Kind:   kind,
		Ids:    ids,
	}, nil
}

func formatRows(rows []map[string]interface{}) string {
	if len(rows) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(rows)
	if err != nil {
		return fmt.Sprintf("%v", rows)
	}
	return string(encoded)
}
