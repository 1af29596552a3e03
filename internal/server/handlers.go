package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// maxScrambleCount bounds generated sequences per request.
const maxScrambleCount = 1000

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Snapshot is the JSON view of a session.
type Snapshot struct {
	ID       string   `json:"id"`
	State    string   `json:"state"`
	Solved   bool     `json:"solved"`
	Scramble []string `json:"scramble,omitempty"`
	History  []string `json:"history"`
}

type movesRequest struct {
	Moves  []string `json:"moves"`
	Strict bool     `json:"strict"`
}

type moveResult struct {
	Token string `json:"token"`
	Move  string `json:"move,omitempty"`
	Error string `json:"error,omitempty"`
}

type movesResponse struct {
	Results []moveResult `json:"results"`
	Errors  int          `json:"errors"`
	Session Snapshot     `json:"session"`
}

type scrambleRequest struct {
	Count int `json:"count"`
}

type scrambleResponse struct {
	Moves   []string  `json:"moves"`
	Session *Snapshot `json:"session,omitempty"`
}

type solveResponse struct {
	Solution []string `json:"solution"`
	Session  Snapshot `json:"session"`
}

type handlers struct {
	log      *slog.Logger
	registry *Registry
}

func snapshot(id string, s *cubesim.Session) Snapshot {
	history := s.History()
	if history == nil {
		history = []string{}
	}
	return Snapshot{
		ID:       id,
		State:    s.Serialize(),
		Solved:   s.IsSolved(),
		Scramble: s.ScrambleRecord(),
		History:  history,
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: empty body", ErrBadRequest)
		}
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

func parseCount(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q", ErrBadRequest, raw)
	}
	return checkCount(n)
}

func checkCount(n int) (int, error) {
	if n < 0 || n > maxScrambleCount {
		return 0, fmt.Errorf("%w: count must be between 0 and %d", ErrBadRequest, maxScrambleCount)
	}
	return n, nil
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (h *handlers) scramble(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, err := parseCount(q.Get("count"), scramble.DefaultLength)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	gen := scramble.NewRandom()
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, h.log, fmt.Errorf("%w: seed %q", ErrBadRequest, raw))
			return
		}
		gen = scramble.New(seed)
	}

	writeJSON(w, http.StatusOK, scrambleResponse{Moves: gen.Generate(n)})
}

func (h *handlers) invert(w http.ResponseWriter, r *http.Request) {
	var req movesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	inv, err := cubesim.Invert(req.Moves)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, scrambleResponse{Moves: inv})
}

func (h *handlers) createSession(w http.ResponseWriter, _ *http.Request) {
	id, s, err := h.registry.Create()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: err.Error(), Status: http.StatusServiceUnavailable})
		return
	}
	h.log.Info("session created", slog.String("session_id", id))
	writeJSON(w, http.StatusCreated, snapshot(id, s))
}

// withSession resolves the {id} URL parameter.
func (h *handlers) withSession(fn func(w http.ResponseWriter, r *http.Request, id string, s *cubesim.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s, err := h.registry.Get(id)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		fn(w, r, id, s)
	}
}

func (h *handlers) getSession(w http.ResponseWriter, _ *http.Request, id string, s *cubesim.Session) {
	writeJSON(w, http.StatusOK, snapshot(id, s))
}

func (h *handlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.registry.Delete(id); err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Info("session deleted", slog.String("session_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) resetSession(w http.ResponseWriter, _ *http.Request, id string, s *cubesim.Session) {
	s.Reset()
	writeJSON(w, http.StatusOK, snapshot(id, s))
}

func (h *handlers) applyMoves(w http.ResponseWriter, r *http.Request, id string, s *cubesim.Session) {
	var req movesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	var results []cubesim.MoveResult
	if req.Strict {
		results, _ = s.ApplySequenceStrict(req.Moves)
	} else {
		results, _ = s.ApplySequence(req.Moves)
	}

	resp := movesResponse{Results: make([]moveResult, 0, len(results))}
	for _, res := range results {
		mr := moveResult{Token: res.Token}
		if res.OK() {
			mr.Move = res.Move.Notation()
		} else {
			mr.Error = res.Err.Error()
			resp.Errors++
		}
		resp.Results = append(resp.Results, mr)
	}
	resp.Session = snapshot(id, s)

	// Valid moves were applied even when some tokens failed, so the
	// response is 200 with the failures listed per token.
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) scrambleSession(w http.ResponseWriter, r *http.Request, id string, s *cubesim.Session) {
	var req scrambleRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			writeError(w, h.log, err)
			return
		}
	}
	n, err := checkCount(req.Count)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	tokens := s.Scramble(n)
	snap := snapshot(id, s)
	writeJSON(w, http.StatusOK, scrambleResponse{Moves: tokens, Session: &snap})
}

func (h *handlers) solveSession(w http.ResponseWriter, _ *http.Request, id string, s *cubesim.Session) {
	solution, err := s.Solve()
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, solveResponse{Solution: solution, Session: snapshot(id, s)})
}
