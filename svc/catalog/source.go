package catalog

import "context"

// Source provides the raw catalog content.
type Source interface {
	Load(ctx context.Context) (Data, error)
}

type inMemSource struct {
	data Data
}

// NewInMemSource returns an in-memory Source holding a deep copy of data.
func NewInMemSource(data Data) Source {
	return &inMemSource{data: data.Clone()}
}

// Load returns a deep copy of the stored data.
func (s *inMemSource) Load(ctx context.Context) (Data, error) {
	if err := ctx.Err(); err != nil {
		return Data{}, err
	}
	return s.data.Clone(), nil
}
