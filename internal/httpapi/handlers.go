package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
	"github.com/nguyentantai21042004/meeting-agent/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-agent/internal/report"
)

const uploadField = "file"

type searchResponse struct {
	Query   string              `json:"query"`
	Results []meeting.SearchHit `json:"results"`
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"message": "Meeting Agent API is running"})
}

// transcribe streams the multipart "file" part straight into the pipeline.
func (h *handler) transcribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}

	mr, err := r.MultipartReader()
	if err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "Expected a multipart/form-data upload")
		return
	}

	part, err := nextFilePart(mr)
	if err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "No file provided")
		return
	}
	defer part.Close()

	res, err := h.pipeline.Process(ctx, pipeline.Upload{Filename: part.FileName(), Body: part})
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(ctx, w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File exceeds the %d byte upload limit", tooLarge.Limit))
			return
		}
		h.fail(ctx, w, "Error processing file", err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, res)
}

func nextFilePart(mr *multipart.Reader) (*multipart.Part, error) {
	for {
		part, err := mr.NextPart()
		if err != nil {
			return nil, err
		}
		if part.FormName() == uploadField {
			return part, nil
		}
		part.Close()
	}
}

func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("query")
	if query == "" {
		h.writeError(ctx, w, http.StatusBadRequest, "Search query cannot be empty")
		return
	}

	hits, err := h.repo.Search(ctx, query)
	if err != nil {
		h.fail(ctx, w, "Error searching meetings", err)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, searchResponse{Query: query, Results: hits})
}

// download renders the report on demand and releases it once streamed. The
// optional format query parameter selects docx instead of the default pdf.
func (h *handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["meeting_id"]

	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.fail(ctx, w, "Unsupported report format", err)
		return
	}

	record, err := h.repo.Get(ctx, id)
	if err != nil {
		if meeting.IsKind(err, meeting.KindNotFound) {
			h.writeError(ctx, w, http.StatusNotFound, "Meeting not found")
			return
		}
		h.fail(ctx, w, "Error loading meeting", err)
		return
	}

	path, err := h.renderer.Render(ctx, record, format)
	if err != nil {
		h.fail(ctx, w, "Error generating report", err)
		return
	}
	defer func() {
		if err := h.store.Release(path); err != nil {
			h.logger.Warn(ctx, "Failed to release report %s: %v", path, err)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		h.fail(ctx, w, "Error generating report", meeting.E(meeting.KindRender, "httpapi.download", err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.fail(ctx, w, "Error generating report", meeting.E(meeting.KindRender, "httpapi.download", err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(record.ID, format)))
	w.Header().Set("Content-Length", fmt.Sprint(info.Size()))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Warn(ctx, "Report stream for %s interrupted: %v", id, err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info(r.Context(), "%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
