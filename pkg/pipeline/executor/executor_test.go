package executor

import (
	"context"
	"errors"
	"testing"

	"hr-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider replays scripted responses in order and records the prompts
// it was given.
type fakeProvider struct {
	responses []string
	prompts   []string
	calls     int
}

func (f *fakeProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	if len(messages) > 0 {
		f.prompts = append(f.prompts, messages[0].Content)
	}
	if f.calls >= len(f.responses) {
		return "", errors.New("no scripted response")
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type fakeRunner struct {
	rows    []map[string]interface{}
	err     error
	lastSql string
}

func (f *fakeRunner) Execute(ctx context.Context, query string) ([]map[string]interface{}, error) {
	f.lastSql = query
	return f.rows, f.err
}

func TestRun(t *testing.T) {
	provider := &fakeProvider{responses: []string{
		"SELECT c.id_contrato, p.nombre_completo FROM contrato c JOIN persona p ON p.id_persona = c.id_persona LIMIT 100",
		"Se encontraron 2 contratos.\n{\"id_contrato\": [1, 2]}",
	}}
	runner := &fakeRunner{rows: []map[string]interface{}{
		{"id_contrato": int64(1), "nombre_completo": "María Rojas"},
		{"id_contrato": int64(2), "nombre_completo": "Juan Mamani"},
	}}

	e := New(provider, runner, 1000)
	res, err := e.Run(context.Background(), "quiénes tienen contrato", nil, nil, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "SELECT c.id_contrato, p.nombre_completo FROM contrato c JOIN persona p ON p.id_persona = c.id_persona LIMIT 100;", res.Sql)
	assert.Equal(t, res.Sql, runner.lastSql)
	assert.Equal(t, "Se encontraron 2 contratos.", res.Answer)
	assert.Equal(t, "id_contrato", res.Kind)
	assert.Equal(t, []int64{1, 2}, res.Ids)
	assert.Len(t, res.Rows, 2)

	// generation prompt carries the question, composition prompt the rows
	require.Len(t, provider.prompts, 2)
	assert.Contains(t, provider.prompts[0], "quiénes tienen contrato")
	assert.Contains(t, provider.prompts[1], "María Rojas")
}

func TestRunCarriesExclusionsIntoGenerationPrompt(t *testing.T) {
	provider := &fakeProvider{responses: []string{
		"SELECT c.id_contrato FROM contrato c LIMIT 100",
		"No se encontró información.",
	}}
	runner := &fakeRunner{}

	e := New(provider, runner, 1000)
	_, err := e.Run(context.Background(), "dame los honorarios", nil, []string{"marzo"}, "", nil)
	require.NoError(t, err)

	require.NotEmpty(t, provider.prompts)
	assert.Contains(t, provider.prompts[0], "TÉRMINOS EXCLUIDOS")
	assert.Contains(t, provider.prompts[0], "marzo")
}

func TestRunAppendsPriorReferenceToGenerationPrompt(t *testing.T) {
	provider := &fakeProvider{responses: []string{
		"SELECT c.id_contrato FROM contrato c WHERE c.id_contrato IN (5, 7) LIMIT 100",
		"Aquí está el detalle de los contratos.",
	}}
	runner := &fakeRunner{}

	e := New(provider, runner, 1000)
	prior := &Reference{Kind: "id_contrato", Ids: []int64{5, 7}}
	_, err := e.Run(context.Background(), "muestra el detalle de los anteriores", nil, nil, "", prior)
	require.NoError(t, err)

	require.NotEmpty(t, provider.prompts)
	assert.Contains(t, provider.prompts[0], "id_contrato = [5, 7]")
	assert.Contains(t, provider.prompts[0], "CONTEXTO DE LA CONVERSACIÓN")
}

func TestRunRejectsUnsafeSql(t *testing.T) {
	provider := &fakeProvider{responses: []string{
		"DROP TABLE contrato",
	}}
	runner := &fakeRunner{}

	e := New(provider, runner, 1000)
	_, err := e.Run(context.Background(), "borra los contratos", nil, nil, "", nil)

	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Empty(t, runner.lastSql)
}

func TestRunRejectsNonSelectOutput(t *testing.T) {
	provider := &fakeProvider{responses: []string{
		"No puedo responder a esa consulta.",
	}}
	runner := &fakeRunner{}

	e := New(provider, runner, 1000)
	_, err := e.Run(context.Background(), "pregunta rara", nil, nil, "", nil)

	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestRunPropagatesExecutionError(t *testing.T) {
	provider := &fakeProvider{responses: []string{
		"SELECT * FROM contrato",
	}}
	runner := &fakeRunner{err: errors.New("connection refused")}

	e := New(provider, runner, 1000)
	_, err := e.Run(context.Background(), "dame los contratos", nil, nil, "", nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidQuery)
}
