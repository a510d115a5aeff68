package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shelterBack/internal/filter"
	"shelterBack/internal/models"
	"shelterBack/internal/services"
)

// ListingNotifier pushes listing lifecycle events to connected viewers.
type ListingNotifier interface {
	NotifyListing(event string, acc models.Accommodation)
}

type AccommodationHandler struct {
	Service *services.AccommodationService
	Events  ListingNotifier
}

// parseListingCriteria maps the listing endpoint's query string onto the
// committed filter criteria. Absent parameters stay at their unset values.
func parseListingCriteria(r *http.Request) filter.Criteria {
	q := r.URL.Query()

	c := filter.Criteria{
		Search:        q.Get("search"),
		Location:      q.Get("location"),
		CompanyName:   q.Get("company"),
		OccupancyType: q.Get("occupancy_type"),
		RoomType:      q.Get("room_type"),
	}

	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinPrice = &f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MaxPrice = &f
		}
	}
	if v := q.Get("rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Rating = f
		}
	}
	if q.Get("favorites") == "true" {
		c.ShowFavorites = true
	}
	switch q.Get("sort") {
	case "asc":
		c.SortPrice = filter.SortAsc
	case "desc":
		c.SortPrice = filter.SortDesc
	}

	return c
}

func (h *AccommodationHandler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	criteria := parseListingCriteria(r)

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}

	userID := requestUserID(r)
	if userID == "" {
		userID = r.URL.Query().Get("user_id")
	}

	resp, err := h.Service.ListAvailable(r.Context(), criteria, userID, page)
	if err != nil {
		http.Error(w, "Failed to fetch accommodations", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resp)
}

func (h *AccommodationHandler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Invalid accommodation ID", http.StatusBadRequest)
		return
	}

	acc, err := h.Service.GetAccommodationByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAccommodationNotFound) {
			http.Error(w, "Accommodation not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch accommodation", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(acc)
}

func (h *AccommodationHandler) GetAccommodationsByUserID(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	accs, err := h.Service.GetAccommodationsByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch accommodations", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(accs)
}

func (h *AccommodationHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		userID = requestUserID(r)
	}
	if userID == "" {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}

	var acc models.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateAccommodation(r.Context(), userID, acc)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAccommodation) {
			http.Error(w, "Please fill in all required fields", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to post accommodation", http.StatusInternalServerError)
		return
	}

	if h.Events != nil {
		h.Events.NotifyListing("created", created)
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *AccommodationHandler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Invalid accommodation ID", http.StatusBadRequest)
		return
	}

	var acc models.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	acc.ID = id

	requester := requestUserID(r)
	if requester == "" {
		requester = acc.UserID
	}

	updated, err := h.Service.UpdateAccommodation(r.Context(), requester, acc)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccommodationNotFound):
			http.Error(w, "Accommodation not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Forbidden", http.StatusForbidden)
		case errors.Is(err, services.ErrInvalidAccommodation):
			http.Error(w, "Invalid accommodation fields", http.StatusBadRequest)
		default:
			http.Error(w, "Failed to update accommodation", http.StatusInternalServerError)
		}
		return
	}

	if h.Events != nil {
		h.Events.NotifyListing("updated", updated)
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *AccommodationHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		http.Error(w, "Invalid accommodation ID", http.StatusBadRequest)
		return
	}
	userID := requestUserID(r)

	if err := h.Service.DeleteAccommodation(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, models.ErrAccommodationNotFound):
			http.Error(w, "Accommodation not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Forbidden", http.StatusForbidden)
		default:
			http.Error(w, "Failed to delete accommodation", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}
