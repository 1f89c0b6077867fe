package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"protmotif/internal/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// writeError maps a domain error kind to its status. Storage failures and
// anything unclassified are logged and answered with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var msg string
	var de *domain.Error
	if errors.As(err, &de) {
		msg = de.Msg
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
	case domain.KindNotFound:
		writeJSON(w, http.StatusNotFound, errorBody{Error: msg})
	case domain.KindConflict:
		writeJSON(w, http.StatusConflict, errorBody{Error: msg})
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error"})
	}
}

const invalidJSON = "Invalid JSON format"

// decodeJSON reads one JSON value from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return domain.Validationf(invalidJSON)
	}
	return nil
}

// readText returns the trimmed request body.
func readText(w http.ResponseWriter, r *http.Request) (string, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return "", domain.Validationf("request body too large")
	}
	return strings.TrimSpace(string(b)), nil
}

// accepts reports whether the Accept header admits mediaType. A missing
// header accepts anything.
func accepts(r *http.Request, mediaType string) bool {
	header := r.Header.Get("Accept")
	if strings.TrimSpace(header) == "" {
		return true
	}
	typ, _, _ := strings.Cut(mediaType, "/")
	for _, part := range strings.Split(header, ",") {
		mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if q, ok := params["q"]; ok {
			if v, err := strconv.ParseFloat(q, 64); err == nil && v <= 0 {
				continue
			}
		}
		if mt == mediaType || mt == "*/*" || mt == typ+"/*" {
			return true
		}
	}
	return false
}
