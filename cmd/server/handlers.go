package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/teatak/pinyin/config"
	"github.com/teatak/pinyin/dictionary"
	"github.com/teatak/pinyin/parser"
	"github.com/teatak/pinyin/render"
	"github.com/teatak/pinyin/segmenter"
)

// server guards the dictionary: conversions read it, corrections write it.
type server struct {
	mu              sync.RWMutex
	dict            *dictionary.Dictionary
	seg             *segmenter.Segmenter
	correctionsPath string
	logger          *slog.Logger
}

func newServer(dict *dictionary.Dictionary, cfg *config.Config, logger *slog.Logger) *server {
	return &server{
		dict:            dict,
		seg:             segmenter.New(dict, cfg.Conversion),
		correctionsPath: cfg.Dictionary.CorrectionsPath,
		logger:          logger,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/convert", s.handleConvert)
	mux.HandleFunc("/parse", s.handleParse)
	mux.HandleFunc("/corrections", s.handleCorrection)
	return mux
}

// Request/Response types
type ConvertRequest struct {
	Text string `json:"text"`
	render.Options
}

type ConvertResponse struct {
	Results []string `json:"results"`
}

type SyllableResponse struct {
	ToneMark   string `json:"tone_mark"`
	ToneNumber string `json:"tone_number"`
}

type ParseResponse struct {
	Syllables []SyllableResponse `json:"syllables"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.RLock()
	results := s.seg.Convert(req.Text, req.Options)
	s.mu.RUnlock()

	if results == nil {
		results = []string{}
	}
	writeJSON(w, http.StatusOK, ConvertResponse{Results: results})
}

func (s *server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	text := strings.TrimSpace(r.URL.Query().Get("text"))
	if text == "" {
		writeError(w, http.StatusBadRequest, "text param required")
		return
	}

	syllables, err := parser.ParseWord(text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := ParseResponse{Syllables: make([]SyllableResponse, len(syllables))}
	for i, syl := range syllables {
		resp.Syllables[i] = SyllableResponse{ToneMark: syl.ToneMark(), ToneNumber: syl.ToneNumber()}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCorrection applies a correction immediately and, when a corrections
// file is configured, appends it so it survives a restart.
func (s *server) handleCorrection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var c dictionary.Correction
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(c.Chinese) == "" || strings.TrimSpace(c.Pinyin) == "" {
		writeError(w, http.StatusBadRequest, "chinese and pinyin are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dict.ApplyCorrection(c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if s.correctionsPath != "" {
		if err := dictionary.AppendCorrection(s.correctionsPath, c); err != nil {
			s.logger.Error("persist correction", slog.String("chinese", c.Chinese), slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "correction applied but not saved")
			return
		}
	}

	s.logger.Info("correction applied", slog.String("chinese", c.Chinese), slog.String("pinyin", c.Pinyin))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
