package sqlite

import (
	"context"
	"fmt"
	"slices"
	"time"

	"agentforge/internal/conversation"
	"agentforge/internal/conversation/repository"
)

// InsertMessage appends one message. created_at is stored as Unix nanoseconds.
func (r *implRepository) InsertMessage(ctx context.Context, opt repository.InsertMessageOptions) (conversation.Message, error) {
	res, err := r.db.ExecContext(ctx, queryInsertMessage, opt.UserID, opt.Role, opt.Text, opt.CreatedAt.UnixNano())
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.sqlite.InsertMessage: %v", err)
		return conversation.Message{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return conversation.Message{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	return conversation.Message{
		ID:        id,
		UserID:    opt.UserID,
		Role:      opt.Role,
		Text:      opt.Text,
		CreatedAt: opt.CreatedAt,
	}, nil
}

// ListRecent returns up to opt.Limit of the user's newest messages, oldest first.
func (r *implRepository) ListRecent(ctx context.Context, opt repository.ListRecentOptions) ([]conversation.Message, error) {
	rows, err := r.db.QueryContext(ctx, queryListRecent, opt.UserID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.sqlite.ListRecent: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var out []conversation.Message
	for rows.Next() {
		var (
			m       conversation.Message
			created int64
		)
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Text, &created); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		m.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	slices.Reverse(out)
	return out, nil
}

// DeleteBefore removes every message created before the cutoff.
func (r *implRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, queryDeleteBefore, before.UnixNano())
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.sqlite.DeleteBefore: %v", err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return n, nil
}
