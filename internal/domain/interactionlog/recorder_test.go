package interactionlog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestRecorderPersistsRecord(t *testing.T) {
	repo := &fakeRepository{}
	rec := NewRecorder(repo, zerolog.Nop(), nil)

	entry := NewSuccessRecord(nil, "openai", []byte(`{"prompt":"q"}`), []byte(`{"response":"a"}`), 0.0001, 1200)
	rec.Record(context.Background(), entry)

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 record, got %d", len(repo.created))
	}
	if repo.created[0].Provider != "openai" || !repo.created[0].Success {
		t.Fatalf("unexpected record: %+v", repo.created[0])
	}
}

func TestRecorderSwallowsWriteFailure(t *testing.T) {
	repo := &fakeRepository{err: errors.New("connection reset")}
	dropped := 0
	rec := NewRecorder(repo, zerolog.Nop(), func() { dropped++ })

	// Must not panic or propagate the repository error.
	rec.Record(context.Background(), NewFailureRecord(nil, "claude", []byte(`{}`), "timeout"))
	rec.Record(context.Background(), nil)

	if dropped != 1 {
		t.Fatalf("expected 1 dropped record, got %d", dropped)
	}
}
