// Package llm defines the completion interface enrichment depends on and the
// prompt builders for each analysis pass. The package never talks to a model
// provider itself; callers supply an Oracle.
package llm

import "context"

// Oracle is a text-in/text-out completion backend.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f OracleFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
