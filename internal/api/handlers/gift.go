package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/api/middleware"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/domain"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GiftHandler struct {
	giftService *service.GiftService
}

func NewGiftHandler(giftService *service.GiftService) *GiftHandler {
	return &GiftHandler{giftService: giftService}
}

// GiftRequest is the body for both create and update. Price is a pointer so
// a missing price is distinguishable from a zero price.
type GiftRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
}

func (h *GiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req GiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Price == nil {
		http.Error(w, "Title and price are required", http.StatusBadRequest)
		return
	}

	gift, err := h.giftService.Create(r.Context(), userID, service.GiftInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		log.Printf("ERROR [gift.Create] failed to create gift: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(gift)
}

func (h *GiftHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gifts, err := h.giftService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [gift.List] failed to list gifts: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	if gifts == nil {
		gifts = []*domain.Gift{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gifts)
}

func (h *GiftHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	giftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id reads the same as an absent gift.
		http.Error(w, "Gift not found", http.StatusNotFound)
		return
	}

	var req GiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Price == nil {
		http.Error(w, "Title and price are required", http.StatusBadRequest)
		return
	}

	gift, err := h.giftService.Update(r.Context(), userID, giftID, service.GiftInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrGiftNotFound) {
			http.Error(w, "Gift not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [gift.Update] failed to update gift: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gift)
}

func (h *GiftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	giftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Gift not found", http.StatusNotFound)
		return
	}

	if err := h.giftService.Delete(r.Context(), userID, giftID); err != nil {
		if errors.Is(err, domain.ErrGiftNotFound) {
			http.Error(w, "Gift not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [gift.Delete] failed to delete gift: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Gift deleted"))
}
