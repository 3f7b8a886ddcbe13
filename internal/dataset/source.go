package dataset

import "context"

//go:generate mockgen -source=source.go -destination=mock/source_mock.go -package=mock
type Source interface {
	// Load reads the hr_data table once. Row-scoped problems are returned as
	// warnings; a non-nil error means the source itself is unusable.
	Load(ctx context.Context) ([]Employee, []RowWarning, error)
}
