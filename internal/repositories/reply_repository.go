package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shelterBack/internal/models"
)

type ReplyRepository struct {
	DB *sql.DB
}

func (r *ReplyRepository) CreateReply(ctx context.Context, reply models.Reply) (models.Reply, error) {
	query := `
INSERT INTO replies (id, review_id, parent_reply_id, user_id, comment, created_at)
VALUES (?, ?, ?, ?, ?, NOW())
	`
	var parent sql.NullString
	if reply.ParentReplyID != nil {
		parent = sql.NullString{String: *reply.ParentReplyID, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		reply.ID, reply.ReviewID, parent, reply.UserID, reply.Comment,
	)
	if err != nil {
		return models.Reply{}, fmt.Errorf("create reply: %w", err)
	}
	return reply, nil
}

// GetReplyByID resolves a reply, used to attach nested replies to the right
// review thread.
func (r *ReplyRepository) GetReplyByID(ctx context.Context, id string) (models.Reply, error) {
	query := `SELECT r.id, r.review_id, r.parent_reply_id, r.user_id, u.name, r.comment, r.created_at
                 FROM replies r
                 JOIN users u ON r.user_id = u.id
                 WHERE r.id = ?`
	row := r.DB.QueryRowContext(ctx, query, id)

	reply, err := scanReply(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reply{}, models.ErrReplyNotFound
		}
		return models.Reply{}, err
	}
	return reply, nil
}

// GetRepliesByReviewID lists a review's top-level replies, oldest first.
func (r *ReplyRepository) GetRepliesByReviewID(ctx context.Context, reviewID string) ([]models.Reply, error) {
	query := `SELECT r.id, r.review_id, r.parent_reply_id, r.user_id, u.name, r.comment, r.created_at
                 FROM replies r
                 JOIN users u ON r.user_id = u.id
                 WHERE r.review_id = ? AND r.parent_reply_id IS NULL
                 ORDER BY r.created_at ASC`
	return r.queryReplies(ctx, query, reviewID)
}

// GetRepliesByParentID lists the nested replies under one reply.
func (r *ReplyRepository) GetRepliesByParentID(ctx context.Context, parentReplyID string) ([]models.Reply, error) {
	query := `SELECT r.id, r.review_id, r.parent_reply_id, r.user_id, u.name, r.comment, r.created_at
                 FROM replies r
                 JOIN users u ON r.user_id = u.id
                 WHERE r.parent_reply_id = ?
                 ORDER BY r.created_at ASC`
	return r.queryReplies(ctx, query, parentReplyID)
}

func (r *ReplyRepository) queryReplies(ctx context.Context, query string, arg any) ([]models.Reply, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []models.Reply{}
	for rows.Next() {
		reply, err := scanReply(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reply rows error: %w", err)
	}
	return replies, nil
}

func scanReply(row rowScanner) (models.Reply, error) {
	var reply models.Reply
	var parent sql.NullString
	err := row.Scan(&reply.ID, &reply.ReviewID, &parent, &reply.UserID, &reply.UserName,
		&reply.Comment, &reply.CreatedAt)
	if err != nil {
		return models.Reply{}, err
	}
	if parent.Valid {
		reply.ParentReplyID = &parent.String
	}
	return reply, nil
}
