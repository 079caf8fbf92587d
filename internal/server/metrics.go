package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts anagram queries by result
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anagram_queries_total",
		Help: "Total anagram queries by result",
	}, []string{"result"})

	// queryDuration tracks search latency
	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "anagram_query_duration_seconds",
		Help:    "Anagram search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})

	// queryResults tracks how many words a query returned
	queryResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "anagram_query_results",
		Help:    "Number of words returned per anagram query",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
	})

	// dictionaryWords reports the size of the served index
	dictionaryWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "anagram_dictionary_words",
		Help: "Number of distinct words in the served dictionary",
	})
)

const (
	resultFound    = "found"
	resultEmpty    = "empty"
	resultRejected = "rejected"
)
