package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHorizon indica um horizonte de previsão menor que 1
	ErrInvalidHorizon = errors.New("forecast horizon must be at least 1 month")
)

// IngestError indica um campo obrigatório ausente ou malformado no livro-razão
type IngestError struct {
	Row   int    // Linha do arquivo de origem (1 = cabeçalho)
	Field string // Campo com problema
	Value string // Valor recebido
	Err   error  // Erro base
}

func (e *IngestError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("ingest: row %d: field %s (%q): %v", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("ingest: field %s: %v", e.Field, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// EmptyCategoryError indica que uma categoria chegou ao construtor de séries sem nenhum total.
// Não deve ocorrer dado o contrato do agregador; é uma violação de invariante.
type EmptyCategoryError struct {
	Category string
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("category %q has no monthly totals", e.Category)
}

// ModelFitError indica que o ajuste do modelo estatístico falhou para uma categoria
type ModelFitError struct {
	Category string
	Err      error
}

func (e *ModelFitError) Error() string {
	return fmt.Sprintf("model fit failed for category %q: %v", e.Category, e.Err)
}

func (e *ModelFitError) Unwrap() error {
	return e.Err
}

// SinkError indica falha ao persistir o relatório
type SinkError struct {
	Location string
	Err      error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s: %v", e.Location, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
