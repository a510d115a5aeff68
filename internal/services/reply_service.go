package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"shelterBack/internal/models"
	"shelterBack/internal/repositories"
)

var ErrEmptyReply = errors.New("reply comment must not be empty")

type ReplyService struct {
	ReplyRepo  *repositories.ReplyRepository
	ReviewRepo *repositories.ReviewRepository
}

// AddReply attaches a top-level reply to a review.
func (s *ReplyService) AddReply(ctx context.Context, reviewID string, reply models.Reply) (models.Reply, error) {
	if reply.Comment == "" {
		return models.Reply{}, ErrEmptyReply
	}
	if _, err := s.ReviewRepo.GetReviewByID(ctx, reviewID); err != nil {
		return models.Reply{}, err
	}

	reply.ID = uuid.New().String()
	reply.ReviewID = reviewID
	reply.ParentReplyID = nil
	return s.ReplyRepo.CreateReply(ctx, reply)
}

// AddNestedReply attaches a reply underneath an existing reply, inheriting
// the parent's review thread.
func (s *ReplyService) AddNestedReply(ctx context.Context, parentReplyID string, reply models.Reply) (models.Reply, error) {
	if reply.Comment == "" {
		return models.Reply{}, ErrEmptyReply
	}
	parent, err := s.ReplyRepo.GetReplyByID(ctx, parentReplyID)
	if err != nil {
		return models.Reply{}, err
	}

	reply.ID = uuid.New().String()
	reply.ReviewID = parent.ReviewID
	reply.ParentReplyID = &parent.ID
	return s.ReplyRepo.CreateReply(ctx, reply)
}

func (s *ReplyService) GetRepliesByReviewID(ctx context.Context, reviewID string) ([]models.Reply, error) {
	return s.ReplyRepo.GetRepliesByReviewID(ctx, reviewID)
}

func (s *ReplyService) GetRepliesByParentID(ctx context.Context, parentReplyID string) ([]models.Reply, error) {
	return s.ReplyRepo.GetRepliesByParentID(ctx, parentReplyID)
}
