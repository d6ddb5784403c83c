package websearch

import "context"

// Result is one usable search hit. All three fields must be populated
// before a result is allowed into the answer context.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

// Provider is the outbound web-search collaborator. Implementations are
// best-effort: a failed or unconfigured provider yields zero results,
// never an error that reaches the caller of the pipeline.
type Provider interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// Disabled is the no-op provider used when no search backend is configured.
type Disabled struct{}

func (Disabled) Search(ctx context.Context, query string) ([]Result, error) {
	return nil, nil
}
