package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/realgenekim/genpassword/internal/model"
	"github.com/realgenekim/genpassword/internal/password"
	"github.com/realgenekim/genpassword/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body is
// a valid request for one password with all defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			if err.Error() == "http: request body too large" {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isConfigError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleProfiles handles GET /api/v1/profiles requests.
func (h *GeneratorHandler) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.ProfilesResponse{Profiles: h.service.Profiles()})
}

// isConfigError reports whether err is the caller's fault: a bad profile
// name, layout, charset or count rather than a generation failure.
func isConfigError(err error) bool {
	return errors.Is(err, password.ErrUnknownProfile) ||
		errors.Is(err, password.ErrInvalidLayout) ||
		errors.Is(err, password.ErrConflictingLayout) ||
		errors.Is(err, password.ErrUnsafeCharset) ||
		errors.Is(err, password.ErrInvalidProfile) ||
		errors.Is(err, service.ErrInvalidCount)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
