package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"geoconv-service/internal/api/dto"
	"geoconv-service/internal/ports"
)

const maxHistoryLimit = 200

// HistoryHandler exposes the recent conversion log.
type HistoryHandler struct {
	Log          ports.ConversionLog
	DefaultLimit int
	Logger       *zap.Logger
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Log == nil {
		writeError(w, r, http.StatusNotFound, "history is disabled")
		return
	}

	limit := h.DefaultLimit
	if limit <= 0 {
		limit = 20
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	records, err := h.Log.Recent(r.Context(), limit)
	if err != nil {
		h.Logger.Error("list history failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHistoryResponse{
		History: make([]dto.HistoryEntryResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.History = append(res.History, dto.HistoryEntryResponse{
			ID:        rec.ID,
			RequestID: rec.RequestID,
			Workflow:  rec.Workflow,
			Input:     rawJSON(rec.Input),
			Output:    rawJSON(rec.Output),
			Success:   rec.Success,
			Error:     rec.Error,
			CreatedAt: rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// rawJSON passes stored JSON through unchanged; anything else is sent as a string.
func rawJSON(s string) json.RawMessage {
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	b, _ := json.Marshal(s)
	return b
}
