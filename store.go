package main

import (
	"strconv"
	"time"

	"golang.org/x/xerrors"
)

// Record is one stored service interaction. Records are values and are
// never modified after they reach the Store.
type Record struct {
	Service      string
	QuestionType string
	Response     string
	Date         time.Time
	WaitTime     int
}

func NewRecord(service, questionType, response, date string, waitTime int) (Record, error) {
	tm, err := ParseDate(date)
	if err != nil {
		return Record{}, xerrors.Errorf("record date: %w", err)
	}
	if waitTime < 0 {
		return Record{}, xerrors.Errorf("record wait time: %w",
			&MalformedIntegerError{Value: strconv.Itoa(waitTime)})
	}
	return Record{
		Service:      service,
		QuestionType: questionType,
		Response:     response,
		Date:         tm,
		WaitTime:     waitTime,
	}, nil
}

// Store is an append-only, insertion-ordered collection of records.
type Store struct {
	contents []Record
	// service -> positions in contents, ascending
	index map[string][]int
}

func NewStore() *Store {
	return &Store{index: map[string][]int{}}
}

func (s *Store) Append(rec Record) {
	if s.index == nil {
		s.index = map[string][]int{}
	}
	s.index[rec.Service] = append(s.index[rec.Service], len(s.contents))
	s.contents = append(s.contents, rec)
}

// All returns the records in insertion order. The slice capacity is
// clipped, so a later Append never writes into a view already handed out.
func (s *Store) All() []Record {
	return s.contents[:len(s.contents):len(s.contents)]
}

// ByService returns the records of one service in insertion order.
func (s *Store) ByService(service string) []Record {
	positions := s.index[service]
	res := make([]Record, 0, len(positions))
	for _, p := range positions {
		res = append(res, s.contents[p])
	}
	return res
}

func (s *Store) Len() int {
	return len(s.contents)
}
