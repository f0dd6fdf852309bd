package cmdutil

import (
	"context"

	"vpcr/internal/pipeline"
)

// RunStream runs the shared pipeline and streams every result via send.
// It returns the number of sent outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	work func(pipeline.Job) []T,
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEach(ctx, cfg, seqFiles, work, func(v T) error {
		if err := send(v); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
