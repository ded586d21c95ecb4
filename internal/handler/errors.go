package handler

import (
	"errors"
	"fmt"
)

var ErrNoRecords = errors.New("event contains no S3 records")

type Kind string

const (
	KindEvent     Kind = "event"
	KindNotFound  Kind = "not_found"
	KindDecode    Kind = "decode"
	KindFetch     Kind = "fetch"
	KindInference Kind = "inference"
	KindParse     Kind = "parse"
	KindPersist   Kind = "persist"
)

// Error reports which step of an invocation failed. The underlying error is
// kept intact and reachable through errors.Is and errors.As.
type Error struct {
	Kind   Kind
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error processing s3://%s/%s: %v", e.Kind, e.Bucket, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind of err, or "" when err did not come from
// the handler.
func KindOf(err error) Kind {
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Kind
	}
	return ""
}
