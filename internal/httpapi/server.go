// Package httpapi exposes board generation and leveling over HTTP, mirroring
// the three routes the reference backend serves: a health check, a
// generate endpoint, and a level endpoint.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gasin/seiti/internal/config"
	"github.com/gasin/seiti/internal/level"
	"github.com/gasin/seiti/pkg/board"
	"github.com/gasin/seiti/pkg/export"
	"github.com/gasin/seiti/pkg/generate"
	"github.com/gasin/seiti/pkg/matching"
)

// NewServer builds the full HTTP handler: health, generate, level, wrapped
// in the configured CORS policy.
func NewServer(cfg config.ServerCfg, logger board.Logger) http.Handler {
	if logger == nil {
		logger = board.NopLogger{}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/api/board/generate", handleGenerate)
	mux.HandleFunc("/api/board/level", handleLevel(logger))

	return withCORS(cfg.AllowedOrigins, mux)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type generateRequest struct {
	Seed uint32 `json:"seed"`
}

func handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	var req generateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	state := generate.GenerateBoardState(req.Seed)
	data, err := export.MarshalState(state)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "marshaling board: "+err.Error())
		return
	}
	writeRaw(w, http.StatusOK, data)
}

func handleLevel(logger board.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
			return
		}

		before, err := decodeState(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		after, err := level.Level(before, logger)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "leveling failed: "+err.Error())
			return
		}

		moves, err := matching.ComputeStoneMoves(before, after)
		if err != nil {
			// ErrStoneCountMismatch means the supplied before/after pair is
			// malformed (a client-data fault per spec.md §7), mapped to 400
			// same as ErrSizeMismatch; anything else is an internal failure.
			if errors.Is(err, board.ErrStoneCountMismatch) || errors.Is(err, board.ErrSizeMismatch) {
				writeError(w, http.StatusBadRequest, "matching failed: "+err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "matching failed: "+err.Error())
			return
		}

		data, err := export.MarshalLevelResult(after, moves)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "marshaling result: "+err.Error())
			return
		}
		writeRaw(w, http.StatusOK, data)
	}
}

func decodeState(r *http.Request) (board.State, error) {
	if r.Body == nil {
		return board.State{}, errors.New("missing request body")
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return board.State{}, err
	}
	state, err := export.UnmarshalState(data)
	if err != nil {
		return board.State{}, err
	}
	if err := state.CheckShape(); err != nil {
		return board.State{}, err
	}
	return state, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeRaw(w, status, data)
}

func writeRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
