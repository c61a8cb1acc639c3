package main

import (
	"strings"
	"time"
)

const (
	Wildcard = "*"
	// NoData is returned by AverageWaitingTime when no record matches.
	NoData = -1
)

// FilterSpec is the match criteria of one query. Service and Response
// match exactly, QuestionType by prefix; Wildcard disables a clause.
// From and To are inclusive, nil means unbounded.
type FilterSpec struct {
	Service      string
	QuestionType string
	Response     string
	From         *time.Time
	To           *time.Time
}

func (f FilterSpec) Matches(r Record) bool {
	if f.Service != Wildcard && r.Service != f.Service {
		return false
	}
	if f.QuestionType != Wildcard && !strings.HasPrefix(r.QuestionType, f.QuestionType) {
		return false
	}
	if f.Response != Wildcard && r.Response != f.Response {
		return false
	}
	if f.From != nil && r.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && r.Date.After(*f.To) {
		return false
	}
	return true
}

type QueryEngine struct {
	store *Store
}

func NewQueryEngine(store *Store) *QueryEngine {
	return &QueryEngine{store: store}
}

// Stats scans the store and accumulates the wait times of matching records.
func (q *QueryEngine) Stats(spec FilterSpec) Metric {
	records := q.store.All()
	if spec.Service != Wildcard {
		records = q.store.ByService(spec.Service)
	}
	var m Metric
	for _, r := range records {
		if spec.Matches(r) {
			m.Add(r.WaitTime)
		}
	}
	return m
}

// AverageWaitingTime returns the rounded mean wait time of records matching
// spec, or NoData.
func (q *QueryEngine) AverageWaitingTime(spec FilterSpec) int {
	m := q.Stats(spec)
	return m.Avg()
}
