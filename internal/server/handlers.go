package server

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	crockford "github.com/AdeThorMiwa/crockford-uuid"
	"github.com/AdeThorMiwa/crockford-uuid/pkg/entropy"
)

type generateResponse struct {
	Identifiers []string `json:"identifiers"`
}

type validateResponse struct {
	ID         string `json:"id"`
	Canonical  string `json:"canonical"`
	Integer    string `json:"integer"`
	PayloadHex string `json:"payload_hex"`
	Checksum   string `json:"checksum"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerate draws count fresh identifiers. Entropy failure is a server
// fault, never retried here.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, "invalid_count", "count must be a positive integer")
			return
		}
		if n > s.cfg.MaxBatch {
			s.writeError(w, http.StatusBadRequest, "invalid_count", "count exceeds maximum batch size of "+strconv.Itoa(s.cfg.MaxBatch))
			return
		}
		count = n
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := crockford.New(crockford.WithSize(s.cfg.ByteSize))
		if err != nil {
			s.log.Error("identifier generation failed", slog.Any("error", err))
			if errors.Is(err, entropy.ErrUnavailable) {
				s.writeError(w, http.StatusInternalServerError, "entropy_unavailable", "secure random source unavailable")
				return
			}
			s.writeError(w, http.StatusInternalServerError, "internal", "identifier generation failed")
			return
		}
		ids = append(ids, id.String())
	}

	s.writeJSON(w, http.StatusCreated, generateResponse{Identifiers: ids})
}

// handleValidate parses the path identifier and reports its canonical form
// and conversions, or the validation failure kind.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := crockford.Parse(raw, crockford.WithSize(s.cfg.ByteSize))
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, errorKind(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, validateResponse{
		ID:         raw,
		Canonical:  id.String(),
		Integer:    id.Int().String(),
		PayloadHex: hex.EncodeToString(id.Bytes()),
		Checksum:   string(crockford.ChecksumSymbol(id.Checksum())),
	})
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, crockford.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, crockford.ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, crockford.ErrChecksumMismatch):
		return "checksum_mismatch"
	default:
		return "invalid"
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encoding failed", slog.Any("error", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, kind, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}
