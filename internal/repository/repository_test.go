package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRows struct {
	data [][]interface{}
	idx  int
	err  error
}

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.data) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...interface{}) error {
	row := f.data[f.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: expected %d columns, got %d", len(row), len(dest))
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *[]byte:
			*d = v.([]byte)
		case *int:
			*d = v.(int)
		default:
			return fmt.Errorf("unsupported dest %T", d)
		}
	}
	return nil
}

func (f *fakeRows) Err() error { return f.err }
func (f *fakeRows) Close()     {}

func TestScanQuestions_DecodesOptions(t *testing.T) {
	rows := &fakeRows{data: [][]interface{}{
		{"q1", "s1", "When left alone, your dog typically:", []byte(`["Sleeps peacefully","Gets into mischief"]`), 1},
		{"q2", "s1", "During meal times, your dog:", []byte(`["Guards their food area"]`), 2},
	}}

	questions, err := scanQuestions(rows)
	if err != nil {
		t.Fatalf("scan questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Options[1] != "Gets into mischief" || questions[1].OrderIndex != 2 {
		t.Fatalf("unexpected questions: %+v", questions)
	}
}

func TestScanQuestions_Errors(t *testing.T) {
	bad := &fakeRows{data: [][]interface{}{{"q1", "s1", "text", []byte(`not json`), 1}}}
	if _, err := scanQuestions(bad); err == nil {
		t.Fatalf("expected decode error")
	}

	rowsErr := &fakeRows{err: errors.New("conn reset")}
	if _, err := scanQuestions(rowsErr); err == nil {
		t.Fatalf("expected rows error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("expected wrapped 23505 to be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation must not be treated as unique violation")
	}
	if isUniqueViolation(nil) || isUniqueViolation(errors.New("boom")) {
		t.Fatalf("plain errors are not unique violations")
	}
}

func TestMarshalImages_NilIsEmptyObject(t *testing.T) {
	payload, err := marshalImages(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != "{}" {
		t.Fatalf("expected {}, got %s", payload)
	}
}
