package sqlite

import (
	"context"
	"fmt"
	"time"

	"agentforge/internal/evaluation"
	"agentforge/internal/evaluation/repository"
)

const ddlFeedback = `CREATE TABLE IF NOT EXISTS hitl_feedback (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	task       TEXT    NOT NULL,
	output     TEXT    NOT NULL,
	rating     INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
	feedback   TEXT    NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
)`

const (
	queryInsertFeedback = `INSERT INTO hitl_feedback (task, output, rating, feedback, created_at) VALUES (?, ?, ?, ?, ?)`
	queryListFeedback   = `SELECT id, task, output, rating, feedback, created_at FROM hitl_feedback ORDER BY id DESC LIMIT ?`
)

func (r *implRepository) InsertFeedback(ctx context.Context, opt repository.InsertFeedbackOptions) (evaluation.Feedback, error) {
	res, err := r.db.ExecContext(ctx, queryInsertFeedback, opt.Task, opt.Output, opt.Rating, opt.Feedback, opt.CreatedAt.UnixNano())
	if err != nil {
		r.l.Errorf(ctx, "evaluation.repository.sqlite.InsertFeedback: %v", err)
		return evaluation.Feedback{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return evaluation.Feedback{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	return evaluation.Feedback{
		ID:        id,
		Task:      opt.Task,
		Output:    opt.Output,
		Rating:    opt.Rating,
		Feedback:  opt.Feedback,
		CreatedAt: opt.CreatedAt,
	}, nil
}

func (r *implRepository) ListFeedback(ctx context.Context, limit int) ([]evaluation.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, queryListFeedback, limit)
	if err != nil {
		r.l.Errorf(ctx, "evaluation.repository.sqlite.ListFeedback: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var out []evaluation.Feedback
	for rows.Next() {
		var (
			f       evaluation.Feedback
			created int64
		)
		if err := rows.Scan(&f.ID, &f.Task, &f.Output, &f.Rating, &f.Feedback, &created); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		f.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return out, nil
}
