package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shelterBack/internal/models"
	"shelterBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

type reviewRequest struct {
	UserID  string  `json:"user_id"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	accommodationID := getParam(r, "accommodation_id")
	if accommodationID == "" {
		http.Error(w, "Invalid accommodation_id", http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		req.UserID = requestUserID(r)
	}

	rev := models.Review{
		AccommodationID: accommodationID,
		UserID:          req.UserID,
		Rating:          req.Rating,
		Comment:         req.Comment,
	}
	created, err := h.Service.CreateReview(r.Context(), rev)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccommodationNotFound):
			http.Error(w, "Accommodation not found", http.StatusNotFound)
		case errors.Is(err, models.ErrAlreadyReviewed):
			http.Error(w, "You already reviewed this accommodation", http.StatusConflict)
		case errors.Is(err, services.ErrInvalidRating):
			http.Error(w, "Rating must be between 0 and 5", http.StatusBadRequest)
		default:
			http.Error(w, "Failed to create review", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReviewsByAccommodationID(w http.ResponseWriter, r *http.Request) {
	accommodationID := getParam(r, "accommodation_id")
	if accommodationID == "" {
		http.Error(w, "Invalid accommodation_id", http.StatusBadRequest)
		return
	}

	reviews, err := h.Service.GetReviewsByAccommodationID(r.Context(), accommodationID)
	if err != nil {
		http.Error(w, "Failed to fetch reviews", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	accommodationID := getParam(r, "accommodation_id")
	if accommodationID == "" {
		http.Error(w, "Invalid accommodation_id", http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		req.UserID = requestUserID(r)
	}

	err := h.Service.UpdateReview(r.Context(), accommodationID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrReviewNotFound):
			http.Error(w, "Review not found", http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidRating):
			http.Error(w, "Rating must be between 0 and 5", http.StatusBadRequest)
		default:
			http.Error(w, "Failed to update review", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Invalid review id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteReview(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			http.Error(w, "Review not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete review", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
