package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	// ErrEmptyQuery is returned for a query with no letters to search.
	ErrEmptyQuery = errors.New("please enter one or more words")
	// ErrQueryTooLong is returned for a query over the configured length.
	ErrQueryTooLong = errors.New("query too long")
)

// AnagramRequest is the body of POST /v1/anagrams.
type AnagramRequest struct {
	Query string `json:"query"`
}

// AnagramResponse lists the anagrams found, longest first.
type AnagramResponse struct {
	Query      string   `json:"query"`
	Normalised string   `json:"normalised"`
	Count      int      `json:"count"`
	Anagrams   []string `json:"anagrams"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HandleAnagramsQuery handles GET /v1/anagrams?q=...
func (s *Server) HandleAnagramsQuery(c *gin.Context) {
	s.answer(c, c.Query("q"))
}

// HandleAnagramsBody handles POST /v1/anagrams.
func (s *Server) HandleAnagramsBody(c *gin.Context) {
	requestID := getOrCreateRequestID(c)

	var req AnagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warn("Invalid request body", "request_id", requestID, "error", err)
		queriesTotal.WithLabelValues(resultRejected).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	s.answer(c, req.Query)
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Words: s.searcher.Len()})
}

func (s *Server) answer(c *gin.Context, query string) {
	requestID := getOrCreateRequestID(c)
	logger := s.logger.With("request_id", requestID)

	if err := s.validateQuery(query); err != nil {
		code := "INVALID_QUERY"
		switch {
		case errors.Is(err, ErrEmptyQuery):
			code = "EMPTY_QUERY"
		case errors.Is(err, ErrQueryTooLong):
			code = "QUERY_TOO_LONG"
		}
		logger.Info("Query rejected", "code", code)
		queriesTotal.WithLabelValues(resultRejected).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	start := time.Now()
	hits := s.searcher.Anagrams(query)
	elapsed := time.Since(start)

	queryDuration.Observe(elapsed.Seconds())
	queryResults.Observe(float64(len(hits)))
	if len(hits) == 0 {
		queriesTotal.WithLabelValues(resultEmpty).Inc()
	} else {
		queriesTotal.WithLabelValues(resultFound).Inc()
	}
	logger.Debug("Anagrams found", "query", query, "count", len(hits), "elapsed", elapsed)

	c.JSON(http.StatusOK, AnagramResponse{
		Query:      query,
		Normalised: s.searcher.Normalise(query),
		Count:      len(hits),
		Anagrams:   hits,
	})
}

func (s *Server) validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	if n := utf8.RuneCountInString(query); s.maxQueryLength > 0 && n > s.maxQueryLength {
		return fmt.Errorf("%w: %d letters, at most %d allowed", ErrQueryTooLong, n, s.maxQueryLength)
	}
	return nil
}

func getOrCreateRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set("request_id", requestID)
	c.Header("X-Request-ID", requestID)
	return requestID
}
