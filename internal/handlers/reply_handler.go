package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shelterBack/internal/models"
	"shelterBack/internal/services"
)

type ReplyHandler struct {
	Service *services.ReplyService
}

type replyRequest struct {
	UserID  string `json:"user_id"`
	Comment string `json:"comment"`
}

func (h *ReplyHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	reviewID := getParam(r, "review_id")
	if reviewID == "" {
		http.Error(w, "Invalid review_id", http.StatusBadRequest)
		return
	}

	reply, ok := h.decodeReply(w, r)
	if !ok {
		return
	}

	created, err := h.Service.AddReply(r.Context(), reviewID, reply)
	if err != nil {
		h.writeReplyError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReplyHandler) GetRepliesByReviewID(w http.ResponseWriter, r *http.Request) {
	reviewID := getParam(r, "review_id")
	if reviewID == "" {
		http.Error(w, "Invalid review_id", http.StatusBadRequest)
		return
	}

	replies, err := h.Service.GetRepliesByReviewID(r.Context(), reviewID)
	if err != nil {
		http.Error(w, "Failed to fetch replies", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(replies)
}

func (h *ReplyHandler) AddNestedReply(w http.ResponseWriter, r *http.Request) {
	parentReplyID := getParam(r, "parent_reply_id")
	if parentReplyID == "" {
		http.Error(w, "Invalid parent_reply_id", http.StatusBadRequest)
		return
	}

	reply, ok := h.decodeReply(w, r)
	if !ok {
		return
	}

	created, err := h.Service.AddNestedReply(r.Context(), parentReplyID, reply)
	if err != nil {
		h.writeReplyError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReplyHandler) GetRepliesByParentID(w http.ResponseWriter, r *http.Request) {
	replyID := getParam(r, "reply_id")
	if replyID == "" {
		http.Error(w, "Invalid reply_id", http.StatusBadRequest)
		return
	}

	replies, err := h.Service.GetRepliesByParentID(r.Context(), replyID)
	if err != nil {
		http.Error(w, "Failed to fetch replies", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(replies)
}

func (h *ReplyHandler) decodeReply(w http.ResponseWriter, r *http.Request) (models.Reply, bool) {
	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return models.Reply{}, false
	}
	if req.UserID == "" {
		req.UserID = requestUserID(r)
	}
	return models.Reply{UserID: req.UserID, Comment: req.Comment}, true
}

func (h *ReplyHandler) writeReplyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrReviewNotFound):
		http.Error(w, "Review not found", http.StatusNotFound)
	case errors.Is(err, models.ErrReplyNotFound):
		http.Error(w, "Reply not found", http.StatusNotFound)
	case errors.Is(err, services.ErrEmptyReply):
		http.Error(w, "Reply comment must not be empty", http.StatusBadRequest)
	default:
		http.Error(w, "Failed to create reply", http.StatusInternalServerError)
	}
}
