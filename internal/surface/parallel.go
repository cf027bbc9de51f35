package surface

import (
	"context"

	"github.com/alitto/pond/v2"

	"voxelsurface.ai/internal/volume"
)

// ExtractAll extracts every chunk of s. Each chunk is still polygonized by one
// goroutine; with workers > 1 distinct chunks run on a worker pool, which is
// safe because extraction only reads the store and writes the chunk's own mesh.
// Stats are returned in the store's chunk order. Cancellation stops chunks that
// have not started yet.
func (e *Extractor) ExtractAll(ctx context.Context, s *volume.Store, workers int) ([]Stats, error) {
	chunks := s.Chunks()
	stats := make([]Stats, len(chunks))

	if workers <= 1 {
		for i, ch := range chunks {
			if err := ctx.Err(); err != nil {
				return stats[:i], err
			}
			stats[i] = e.Extract(s, ch)
		}
		return stats, nil
	}

	pool := pond.NewPool(workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i, ch := range chunks {
		i, ch := i, ch
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats[i] = e.Extract(s, ch)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Totals sums vertex and triangle counts.
func Totals(stats []Stats) (vertices, triangles int) {
	for _, st := range stats {
		vertices += st.Vertices
		triangles += st.Triangles
	}
	return vertices, triangles
}
