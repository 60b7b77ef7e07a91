package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hazyhaar/lexiscore/pkg/dataset"
	"github.com/hazyhaar/lexiscore/pkg/kit"
	"github.com/hazyhaar/lexiscore/pkg/vocab"
)

// NewRouter returns an http.Handler with all API routes. ds may be nil when
// no auxiliary dataset is configured.
func NewRouter(reg *vocab.Registry, ds *dataset.Dataset, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		scoreText:     scoreTextEndpoint(reg, logger),
		scoreBatch:    scoreBatchEndpoint(reg, logger),
		listVocabs:    listVocabsEndpoint(reg, logger),
		searchDataset: searchDatasetEndpoint(ds, logger),
		reg:           reg,
	}

	mux.HandleFunc("GET /v1/score", methodNotAllowed) // score takes a body
	mux.HandleFunc("POST /v1/score", h.handleScoreText)
	mux.HandleFunc("POST /v1/score/batch", h.handleScoreBatch)
	mux.HandleFunc("GET /v1/vocabs", h.handleListVocabs)
	mux.HandleFunc("GET /v1/dataset/search", h.handleSearchDataset)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	scoreText     kit.Endpoint
	scoreBatch    kit.Endpoint
	listVocabs    kit.Endpoint
	searchDataset kit.Endpoint
	reg           *vocab.Registry
}

// --- score single text ---

type httpScoreRequest struct {
	Text      string   `json:"text"`
	Languages []string `json:"languages,omitempty"`
	Domains   []string `json:"domains,omitempty"`
	Vocabs    []string `json:"vocabs,omitempty"`
}

func (h *handler) handleScoreText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256*1024) // 256 KiB max, texts can be long
	var req httpScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.scoreText(r.Context(), &scoreTextReq{
		Text: req.Text,
		Opts: &vocab.ScoreOptions{
			Languages: req.Languages,
			Domains:   req.Domains,
			Vocabs:    req.Vocabs,
		},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- score batch ---

type httpBatchRequest struct {
	Texts     []string `json:"texts"`
	Languages []string `json:"languages,omitempty"`
	Domains   []string `json:"domains,omitempty"`
	Vocabs    []string `json:"vocabs,omitempty"`
}

func (h *handler) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024*1024) // 1 MiB max for 100 texts
	var req httpBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.scoreBatch(r.Context(), &scoreBatchReq{
		Texts: req.Texts,
		Opts: &vocab.ScoreOptions{
			Languages: req.Languages,
			Domains:   req.Domains,
			Vocabs:    req.Vocabs,
		},
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- list vocabs ---

func (h *handler) handleListVocabs(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listVocabs(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- dataset search ---

func (h *handler) handleSearchDataset(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("column") == "" || q.Get("q") == "" {
		writeError(w, http.StatusBadRequest, "column and q parameters are required")
		return
	}

	req := &searchDatasetReq{
		Column:  q.Get("column"),
		Query:   q.Get("q"),
		Limit:   10,
		GroupBy: q.Get("group_by"),
		TopN:    10,
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		req.Limit = n
	}
	if v := q.Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid top_n")
			return
		}
		req.TopN = n
	}

	resp, err := h.searchDataset(r.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "no dataset configured") {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- health ---

type healthResponse struct {
	Status       string `json:"status"`
	Vocabularies int    `json:"vocabularies"`
	TotalTerms   int    `json:"total_terms"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Vocabularies: h.reg.VocabCount(),
		TotalTerms:   h.reg.TotalTerms(),
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
