package response

import (
	"errors"
	"fmt"
	"strconv"
)

type Status int

const (
	StatusOK               Status = 200
	StatusCreated          Status = 201
	StatusBadRequest       Status = 400
	StatusNotFound         Status = 404
	StatusMethodNotAllowed Status = 405
)

var ErrUnknownStatus = errors.New("unknown status")

var reasons = map[Status]string{
	StatusOK:               "OK",
	StatusCreated:          "Created",
	StatusBadRequest:       "Bad Request",
	StatusNotFound:         "Not Found",
	StatusMethodNotAllowed: "Method Not Allowed",
}

func (s Status) Code() int {
	return int(s)
}

func (s Status) Reason() string {
	return reasons[s]
}

// String returns the status as it appears on the status line, e.g. "404 Not Found".
func (s Status) String() string {
	return strconv.Itoa(int(s)) + " " + s.Reason()
}

func (s Status) Valid() bool {
	_, ok := reasons[s]
	return ok
}

// ParseStatus parses the "<code> <reason>" part of a status line.
func ParseStatus(raw string) (Status, error) {
	for s := range reasons {
		if s.String() == raw {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}
