package checkout

import (
	"context"

	"github.com/fekuna/omnipos-terminal-service/internal/checkout/dto"
)

// UseCase is the sale submitter. Submit either commits the whole sale or
// leaves the database untouched; a failed attempt can be retried with the
// same cart.
type UseCase interface {
	Submit(ctx context.Context, input *dto.SubmitInput) (*dto.SubmitResult, error)
}
