package seed

import (
	"context"
	"fmt"

	"kanban/internal/auth"
	"kanban/internal/model"
	"kanban/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCodeAttempts = 3

// AccessCodeStore is the part of the board repository the backfill needs.
type AccessCodeStore interface {
	GetWithoutAccessCode(ctx context.Context) ([]model.Board, error)
	SetAccessCode(ctx context.Context, id uuid.UUID, code string) error
}

// PopulateAccessCodes gives every board lacking an access code a fresh one and
// returns how many boards were updated. A code collision is retried.
func PopulateAccessCodes(ctx context.Context, boards AccessCodeStore, log *zap.Logger) (int, error) {
	pending, err := boards.GetWithoutAccessCode(ctx)
	if err != nil {
		return 0, fmt.Errorf("list boards without access code: %w", err)
	}

	updated := 0
	for _, board := range pending {
		if err := assignCode(ctx, boards, board.ID); err != nil {
			return updated, fmt.Errorf("board %s: %w", board.ID, err)
		}
		log.Info("assigned access code", zap.String("board_id", board.ID.String()), zap.String("title", board.Title))
		updated++
	}
	return updated, nil
}

func assignCode(ctx context.Context, boards AccessCodeStore, id uuid.UUID) error {
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		var code string
		code, err = auth.NewAccessCode()
		if err != nil {
			return err
		}
		err = boards.SetAccessCode(ctx, id, code)
		if err == nil || repository.Classify(err) != repository.KindUniqueViolation {
			return err
		}
	}
	return err
}
