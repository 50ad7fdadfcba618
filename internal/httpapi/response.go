package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind meeting.Kind) int {
	switch kind {
	case meeting.KindInvalidRequest, meeting.KindArtifactNotFound:
		return http.StatusBadRequest
	case meeting.KindNotFound:
		return http.StatusNotFound
	case meeting.KindTranscriptionFailed, meeting.KindAnalysisFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn(ctx, "Failed to write response: %v", err)
	}
}

func (h *handler) writeError(ctx context.Context, w http.ResponseWriter, status int, detail string) {
	h.writeJSON(ctx, w, status, errorResponse{Detail: detail})
}

// fail reports err as a single error object whose status follows its kind.
func (h *handler) fail(ctx context.Context, w http.ResponseWriter, prefix string, err error) {
	status := statusFor(meeting.KindOf(err))
	if status >= http.StatusInternalServerError {
		h.logger.Error(ctx, "%s: %v", prefix, err)
	} else {
		h.logger.Warn(ctx, "%s: %v", prefix, err)
	}
	h.writeError(ctx, w, status, prefix+": "+err.Error())
}
