package history

import (
	"context"
	"fmt"

	"github.com/mishasvintus/merge_request_service/internal/domain"
	"github.com/mishasvintus/merge_request_service/internal/repository"
)

// Insert appends an event and returns its id.
func Insert(ctx context.Context, exec repository.DBTX, mergeRequestID int64, e domain.HistoryEvent) (int64, error) {
	query := `
		INSERT INTO history_events (merge_request_id, actor, what, at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	if err := exec.GetContext(ctx, &id, query, mergeRequestID, e.Actor, e.What, e.At); err != nil {
		return 0, fmt.Errorf("failed to insert history event: %w", err)
	}
	return id, nil
}

// ListByMergeRequest returns the events of a merge request ordered by time.
// Events with equal timestamps keep insertion order.
func ListByMergeRequest(ctx context.Context, exec repository.DBTX, mergeRequestID int64) ([]domain.HistoryEvent, error) {
	query := `
		SELECT id, merge_request_id, actor, what, at
		FROM history_events
		WHERE merge_request_id = $1
		ORDER BY at, id
	`
	var events []domain.HistoryEvent
	if err := exec.SelectContext(ctx, &events, query, mergeRequestID); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return events, nil
}
