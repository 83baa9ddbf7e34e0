// Package server exposes a StringTrie over HTTP for autocomplete lookups.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/khalid-nowaf/trie/pkg/trie"
)

const shutdownTimeout = 5 * time.Second

// Server guards a StringTrie with a read/write lock so HTTP handlers can share it.
type Server struct {
	mu     sync.RWMutex
	words  *trie.StringTrie
	logger *slog.Logger
	router *mux.Router
}

type completeResponse struct {
	Prefix  string   `json:"prefix"`
	Matches []string `json:"matches"`
}

type containsResponse struct {
	Word     string `json:"word"`
	Contains bool   `json:"contains"`
}

type wordsResponse struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

func New(words *trie.StringTrie, logger *slog.Logger) *Server {
	s := &Server{
		words:  words,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.router.HandleFunc("/complete", s.handleComplete).Methods(http.MethodGet)
	// words may contain slashes, so the variables take the rest of the path
	s.router.HandleFunc("/complete/{prefix:.+}", s.handleComplete).Methods(http.MethodGet)
	s.router.HandleFunc("/contains/{word:.+}", s.handleContains).Methods(http.MethodGet)
	s.router.HandleFunc("/words", s.handleList).Methods(http.MethodGet)
	s.router.HandleFunc("/words/{word:.+}", s.handleInsert).Methods(http.MethodPut)
	s.router.HandleFunc("/words/{word:.+}", s.handleRemove).Methods(http.MethodDelete)
	s.router.Use(s.logRequests)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Info("trie server listening", "addr", addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("trie server shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]

	s.mu.RLock()
	matches := s.words.StartingWith(prefix)
	s.mu.RUnlock()

	if matches == nil {
		matches = []string{}
	}
	s.writeJson(w, http.StatusOK, completeResponse{Prefix: prefix, Matches: matches})
}

func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.RLock()
	found := s.words.Contains(word)
	s.mu.RUnlock()

	s.writeJson(w, http.StatusOK, containsResponse{Word: word, Contains: found})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	words := s.words.All()
	s.mu.RUnlock()

	if words == nil {
		words = []string{}
	}
	s.writeJson(w, http.StatusOK, wordsResponse{Count: len(words), Words: words})
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.Lock()
	added := s.words.Insert(word)
	s.mu.Unlock()

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	s.writeJson(w, status, containsResponse{Word: word, Contains: true})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]

	s.mu.Lock()
	removed := s.words.Remove(word)
	s.mu.Unlock()

	if !removed {
		s.writeJson(w, http.StatusNotFound, containsResponse{Word: word, Contains: false})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
