package mysql

import (
	"context"
	"database/sql"

	"resabot/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Repo is the chat audit log store. Writes are append-only; reads serve the
// admin log endpoint.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Record(ctx context.Context, e domain.ChatLog) error {
	_, err := r.db.ExecContext(ctx, insertChatLogSQL,
		valStr(e.UserID),
		valStr(e.Role),
		e.Intent,
		e.Message,
		e.Reply,
	)
	return err
}

func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.ChatLog, error) {
	rows, err := r.db.QueryContext(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChatLog
	for rows.Next() {
		var e domain.ChatLog
		var userID, role sql.NullString
		if err := rows.Scan(&e.ID, &userID, &role, &e.Intent, &e.Message, &e.Reply, &e.CreatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			s := userID.String
			e.UserID = &s
		}
		if role.Valid {
			s := role.String
			e.Role = &s
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
