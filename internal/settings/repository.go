package settings

import "context"

// Repository persists per-terminal key→string preferences.
type Repository interface {
	GetAll(ctx context.Context, terminal string) (map[string]string, error)
	Save(ctx context.Context, terminal string, values map[string]string) error
}
