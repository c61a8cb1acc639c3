package main

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

const (
	AddCommandName   = "C"
	QueryCommandName = "D"

	addFields   = 6
	queryFields = 5
)

// Command is either *AddCommand or *QueryCommand.
type Command interface {
	Name() string
}

type AddCommand struct {
	Record Record
}

func (*AddCommand) Name() string { return AddCommandName }

type QueryCommand struct {
	Filter FilterSpec
}

func (*QueryCommand) Name() string { return QueryCommandName }

// ServiceName keeps only the part of a service token before the first dot.
// "A.1" and "A.2" both name service "A".
func ServiceName(token string) string {
	name, _, _ := strings.Cut(token, ".")
	return name
}

// ParseCommand parses one input line. Lines with an unknown command letter
// (including blank lines) yield a nil Command and no error.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	switch fields[0] {
	case AddCommandName:
		if len(fields) != addFields {
			return nil, &MalformedLineError{Line: line, Want: addFields, Got: len(fields)}
		}
		wait, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, xerrors.Errorf("wait time: %w", &MalformedIntegerError{Value: fields[5]})
		}
		rec, err := NewRecord(ServiceName(fields[1]), fields[2], fields[3], fields[4], wait)
		if err != nil {
			return nil, xerrors.Errorf("add: %w", err)
		}
		return &AddCommand{Record: rec}, nil
	case QueryCommandName:
		// anything after the date field is ignored
		if len(fields) < queryFields {
			return nil, &MalformedLineError{Line: line, Want: queryFields, Got: len(fields)}
		}
		from, to, err := ParseDateRange(fields[4])
		if err != nil {
			return nil, xerrors.Errorf("query dates: %w", err)
		}
		return &QueryCommand{Filter: FilterSpec{
			Service:      ServiceName(fields[1]),
			QuestionType: fields[2],
			Response:     fields[3],
			From:         from,
			To:           to,
		}}, nil
	}
	return nil, nil
}
