package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hazyhaar/lexiscore/pkg/dataset"
	"github.com/hazyhaar/lexiscore/pkg/kit"
	"github.com/hazyhaar/lexiscore/pkg/vocab"
)

// Shared request/response types used by both HTTP and MCP transports.

type scoreResponse struct {
	Scores []vocab.VocabScore `json:"scores"`
}

type batchResponse struct {
	Results []scoreResponse `json:"results"`
}

type vocabsResponse struct {
	Vocabularies []vocab.VocabInfo `json:"vocabularies"`
}

type searchResponse struct {
	Total   int              `json:"total"`
	Rows    []dataset.Row    `json:"rows"`
	Grouped []dataset.CountBy `json:"grouped,omitempty"`
}

type scoreTextReq struct {
	Text string
	Opts *vocab.ScoreOptions
}

type scoreBatchReq struct {
	Texts []string
	Opts  *vocab.ScoreOptions
}

type searchDatasetReq struct {
	Column  string
	Query   string
	Limit   int
	GroupBy string
	TopN    int
}

// Endpoints returns the kit.Endpoints backed by the registry and dataset,
// each wrapped in the logging middleware.

func scoreTextEndpoint(reg *vocab.Registry, logger *slog.Logger) kit.Endpoint {
	ep := func(_ context.Context, request any) (any, error) {
		req := request.(*scoreTextReq)
		return scoreResponse{Scores: reg.ScoreText(req.Text, req.Opts)}, nil
	}
	return kit.Logging(logger, "score_text")(ep)
}

func scoreBatchEndpoint(reg *vocab.Registry, logger *slog.Logger) kit.Endpoint {
	ep := func(_ context.Context, request any) (any, error) {
		req := request.(*scoreBatchReq)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("texts array is empty")
		}
		if len(req.Texts) > 100 {
			return nil, fmt.Errorf("too many texts (max 100, got %d)", len(req.Texts))
		}
		results := make([]scoreResponse, len(req.Texts))
		for i, text := range req.Texts {
			results[i] = scoreResponse{Scores: reg.ScoreText(text, req.Opts)}
		}
		return batchResponse{Results: results}, nil
	}
	return kit.Logging(logger, "score_batch")(ep)
}

func listVocabsEndpoint(reg *vocab.Registry, logger *slog.Logger) kit.Endpoint {
	ep := func(_ context.Context, _ any) (any, error) {
		return vocabsResponse{Vocabularies: reg.ListVocabs()}, nil
	}
	return kit.Logging(logger, "list_vocabs")(ep)
}

func searchDatasetEndpoint(ds *dataset.Dataset, logger *slog.Logger) kit.Endpoint {
	ep := func(_ context.Context, request any) (any, error) {
		if ds == nil {
			return nil, fmt.Errorf("no dataset configured")
		}
		req := request.(*searchDatasetReq)
		rows, err := ds.Search(req.Column, req.Query)
		if err != nil {
			return nil, err
		}
		resp := searchResponse{Total: len(rows), Rows: rows}
		if req.GroupBy != "" {
			// Group over all matches, then cap the returned rows.
			resp.Grouped = dataset.CountRows(rows, req.GroupBy, req.TopN)
		}
		if req.Limit > 0 && len(resp.Rows) > req.Limit {
			resp.Rows = resp.Rows[:req.Limit]
		}
		return resp, nil
	}
	return kit.Logging(logger, "search_dataset")(ep)
}
