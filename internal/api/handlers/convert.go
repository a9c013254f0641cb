package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"geoconv-service/internal/api/dto"
	"geoconv-service/internal/services"
)

// Converter is the conversion use case the HTTP layer depends on.
type Converter interface {
	Convert(ctx context.Context, req services.ConvertRequest) (services.Outcome, error)
}

type ConvertHandler struct {
	Converter Converter
	Logger    *zap.Logger
}

// Convert runs one workflow. Conversion failures are reported in the body
// with status 200; only an unreadable request is a client error.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ConvertRequest
	defer r.Body.Close()
	if err := decodeOne(r.Body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	writeJSON(w, r, http.StatusOK, h.run(r.Context(), req))
}

func (h *ConvertHandler) run(ctx context.Context, req dto.ConvertRequest) dto.ConvertResponse {
	out, err := h.Converter.Convert(ctx, req.ToService())
	if err != nil {
		h.Logger.Debug("conversion failed", zap.String("type", req.Type), zap.Error(err))
	}
	return dto.NewConvertResponse(out, err)
}
