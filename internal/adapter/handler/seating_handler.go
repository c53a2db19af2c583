package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/srgjo27/openspace/internal/core/domain"
	"github.com/srgjo27/openspace/internal/core/services"
)

type SeatingHandler struct {
	svc *services.SeatingService
}

func NewSeatingHandler(svc *services.SeatingService) *SeatingHandler {
	return &SeatingHandler{svc: svc}
}

// Routes registers the handler on mux.
func (h *SeatingHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/arrangements", h.Arrangements)
}

func (h *SeatingHandler) Arrangements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateArrangement(w, r)
	case http.MethodGet:
		h.GetArrangement(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *SeatingHandler) CreateArrangement(w http.ResponseWriter, r *http.Request) {
	var req services.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	resp, err := h.svc.Seat(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoNames), errors.Is(err, domain.ErrInvalidCapacity):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Failed to seat %d names: %v", len(req.Names), err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *SeatingHandler) GetArrangement(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetArrangement(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrArrangementNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			log.Printf("Failed to load arrangement: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
