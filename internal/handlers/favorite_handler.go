package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shelterBack/internal/models"
	"shelterBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	var req models.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AccommodationID == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	fav := models.Favorite{UserID: userID, AccommodationID: req.AccommodationID}
	if err := h.Service.AddToFavorites(r.Context(), fav); err != nil {
		if errors.Is(err, models.ErrAlreadyFavorite) {
			http.Error(w, "Already in favorites", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to add to favorites", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FavoriteHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	// DELETE with a body, the way the web client sends it
	var req models.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AccommodationID == "" {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveFromFavorites(r.Context(), userID, req.AccommodationID); err != nil {
		http.Error(w, "Failed to remove from favorites", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	accommodationID := getParam(r, "accommodation_id")
	if userID == "" || accommodationID == "" {
		http.Error(w, "Invalid user_id or accommodation_id", http.StatusBadRequest)
		return
	}

	liked, err := h.Service.IsFavorite(r.Context(), userID, accommodationID)
	if err != nil {
		http.Error(w, "Failed to check favorite status", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"liked": liked})
}

func (h *FavoriteHandler) GetFavoritesByUser(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	favs, err := h.Service.GetFavoritesByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to get favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(favs)
}
