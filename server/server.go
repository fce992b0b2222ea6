// Package server exposes the move generators over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordplay/analyzer"
	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/movegen"
	"github.com/domino14/wordplay/tilemapping"
	"github.com/domino14/wordplay/wordgraph"
)

const (
	// RequestTimeout bounds a single handler.
	RequestTimeout = 10 * time.Second
	// MaxBodyBytes bounds a request body. A batch of full boards fits
	// comfortably.
	MaxBodyBytes = 1 << 20
)

// Server bundles the router and the analyzer it serves.
type Server struct {
	r   *chi.Mux
	an  *analyzer.Analyzer
	srv *http.Server
}

// New builds a Server, installs middleware and registers routes.
func New(an *analyzer.Analyzer) *Server {
	s := &Server{r: chi.NewRouter(), an: an}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(RequestTimeout))
	s.r.Use(jsonContentType)

	s.r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Handle("/metrics", promhttp.Handler())

	s.r.Post("/moves", s.handleMoves)
	s.r.Post("/words", s.handleWords)
	s.r.Post("/batch", s.handleBatch)
	s.r.Post("/validate", s.handleValidate)
	s.r.Get("/wordcheck", s.handleWordCheck)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Router exposes the router, for tests.
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      RequestTimeout + 5*time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server-starting")
		errc <- s.srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info().Msg("server-shutting-down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger puts a per-request zerolog logger in the context and logs
// and counts each request once it is handled.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		logger := log.With().Str("request-id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).Str("path", r.URL.Path).Logger()
		next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context())))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		logger.Info().Int("status", status).Int("bytes", ww.BytesWritten()).
			Dur("elapsed", time.Since(start)).Msg("request")
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("encode-response")
	}
}

// errorStatus maps an analysis error to a status code.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("bad_json: %w", err)
	}
	return nil
}

// generate runs one position and records its timing.
func (s *Server) generate(ctx context.Context, p *analyzer.Position) ([]analyzer.JsonMove, error) {
	mode := p.Mode
	if mode == "" {
		mode = analyzer.ModeBoard
	}
	timer := prometheus.NewTimer(GenerationSeconds.WithLabelValues(mode))
	moves, err := s.an.Run(ctx, p)
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}
	MovesReturned.WithLabelValues(mode).Observe(float64(len(moves)))
	return lo.Map(moves, func(m *move.Move, _ int) analyzer.JsonMove { return analyzer.MakeJsonMove(m) }), nil
}

// POST /moves: an analyzer position in, the best moves out.
func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	var p analyzer.Position
	if err := decode(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondMoves(w, r, &p)
}

// POST /words: the same position, searched as a bare rack.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	var p analyzer.Position
	if err := decode(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.Mode = analyzer.ModeRack
	p.Board = nil
	s.respondMoves(w, r, &p)
}

func (s *Server) respondMoves(w http.ResponseWriter, r *http.Request, p *analyzer.Position) {
	moves, err := s.generate(r.Context(), p)
	if err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}
	writeJSON(w, moves)
}

type batchReq struct {
	Positions []analyzer.Position `json:"positions"`
}

// POST /batch: several positions analyzed concurrently. ?format=yaml
// renders the results as YAML.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	timer := prometheus.NewTimer(GenerationSeconds.WithLabelValues("batch"))
	results, err := s.an.AnalyzeBatch(r.Context(), req.Positions)
	timer.ObserveDuration()
	if err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}
	if r.URL.Query().Get("format") == "yaml" {
		out, err := analyzer.ToYAML(results)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(out)
		return
	}
	writeJSON(w, results)
}

type validateReq struct {
	Rack   string   `json:"rack,omitempty"`
	Board  []string `json:"board"`
	Coords string   `json:"coords"`
	// Tiles are the tiles placed, in order; a lower-case letter is a
	// blank standing for that letter.
	Tiles string `json:"tiles"`
}

// POST /validate: check and score a single play.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ld := s.an.LetterDistribution()
	bd, err := board.FromRows(req.Board, ld)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	row, col, vertical, ok := move.FromBoardGameCoords(req.Coords)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad coordinates "+strconv.Quote(req.Coords))
		return
	}
	tiles, err := ld.TilesFor(req.Tiles)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var rack *tilemapping.Rack
	if req.Rack != "" {
		rack, err = tilemapping.RackFromString(strings.ToUpper(req.Rack), ld)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	dir := move.Horizontal
	if vertical {
		dir = move.Vertical
	}
	m, err := movegen.ValidatePlay(bd, s.an.Graph(), row, col, dir, tiles, rack)
	if err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Str("coords", req.Coords).Msg("invalid-play")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, analyzer.MakeJsonMove(m))
}

type wordCheckRes struct {
	Word    string `json:"word"`
	Valid   bool   `json:"valid"`
	Lexicon string `json:"lexicon"`
}

// GET /wordcheck?word=: dictionary membership.
func (s *Server) handleWordCheck(w http.ResponseWriter, r *http.Request) {
	word := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("word")))
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing word")
		return
	}
	g := s.an.Graph()
	writeJSON(w, wordCheckRes{Word: word, Valid: wordgraph.FindWord(g, word), Lexicon: g.LexiconName()})
}
