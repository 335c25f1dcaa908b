package migrate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sttools/internal/match"
	"sttools/internal/migrate"
	"sttools/pkg/domain"
	"sttools/pkg/stapi"

	"github.com/stretchr/testify/require"
)

type fakeMatcher struct {
	best map[domain.PersonID]*domain.MatchResult
	err  error
}

func (f fakeMatcher) FindMatches(_ context.Context) (match.Candidates, error) {
	return nil, f.err
}

func (f fakeMatcher) FindBestMatches(_ context.Context) (map[domain.PersonID]*domain.MatchResult, error) {
	return f.best, f.err
}

type fakePersonSource struct {
	persons []domain.Person
	err     error
}

func (f fakePersonSource) Persons(_ context.Context) ([]domain.Person, error) {
	return f.persons, f.err
}

type fakeNoteWriter struct {
	created []stapi.UserNoteCreate
	failOn  string
}

func (f *fakeNoteWriter) CreateUserNote(_ context.Context, req stapi.UserNoteCreate) (*domain.UserNote, error) {
	if f.failOn != "" && req.Content == f.failOn {
		return nil, errors.New("create failed")
	}
	f.created = append(f.created, req)

	return &domain.UserNote{ID: int64(len(f.created)), UserID: req.UserID, Content: req.Content}, nil
}

func noteAt(content string, createdAt time.Time) domain.Note {
	return domain.Note{Content: content, CreatedAt: createdAt}
}

func TestNotesRunMigratesMatchedPersons(t *testing.T) {
	first := time.Date(2023, 2, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2023, 5, 9, 18, 30, 0, 0, time.UTC)

	persons := []domain.Person{
		{ID: 1, Notes: []domain.Note{noteAt("first call", first), noteAt("follow-up", second)}},
		{ID: 2, Notes: []domain.Note{noteAt("orphaned", first)}},
		{ID: 3},
	}
	matcher := fakeMatcher{best: map[domain.PersonID]*domain.MatchResult{
		1: {UserID: 10, Confidence: 1.0},
		2: nil,
		3: {UserID: 30, Confidence: 0.95},
	}}
	writer := &fakeNoteWriter{}

	m := migrate.NewNotes(matcher, fakePersonSource{persons: persons}, writer, migrate.NotesOptions{})

	summary, err := m.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, summary.PersonsMatched)
	require.Equal(t, 1, summary.PersonsSkipped)
	require.Equal(t, 2, summary.NotesCreated)
	require.Zero(t, summary.NotesFailed)

	require.Len(t, writer.created, 2)
	require.Equal(t, domain.UserID(10), writer.created[0].UserID)
	require.Equal(t, "first call", writer.created[0].Content)
	require.Equal(t, first.Unix(), writer.created[0].CreatedAt)
	require.Equal(t, second.Unix(), writer.created[1].CreatedAt)
}

func TestNotesRunDryRun(t *testing.T) {
	persons := []domain.Person{
		{ID: 1, Notes: []domain.Note{noteAt("first call", time.Now())}},
	}
	matcher := fakeMatcher{best: map[domain.PersonID]*domain.MatchResult{
		1: {UserID: 10, Confidence: 1.0},
	}}
	writer := &fakeNoteWriter{}

	m := migrate.NewNotes(matcher, fakePersonSource{persons: persons}, writer, migrate.NotesOptions{DryRun: true})

	summary, err := m.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, summary.NotesCreated)
	require.Empty(t, writer.created, "dry run must not call the API")
}

func TestNotesRunCountsFailures(t *testing.T) {
	persons := []domain.Person{
		{ID: 1, Notes: []domain.Note{
			noteAt("good", time.Now()),
			noteAt("bad", time.Now()),
			noteAt("also good", time.Now()),
		}},
	}
	matcher := fakeMatcher{best: map[domain.PersonID]*domain.MatchResult{
		1: {UserID: 10, Confidence: 1.0},
	}}
	writer := &fakeNoteWriter{failOn: "bad"}

	m := migrate.NewNotes(matcher, fakePersonSource{persons: persons}, writer, migrate.NotesOptions{})

	summary, err := m.Run(context.Background())
	require.NoError(t, err, "per-note failures must not abort the run")
	require.Equal(t, 2, summary.NotesCreated)
	require.Equal(t, 1, summary.NotesFailed)
	require.Len(t, writer.created, 2)
}

func TestNotesRunPropagatesMatcherErrors(t *testing.T) {
	boom := errors.New("boom")

	m := migrate.NewNotes(fakeMatcher{err: boom}, fakePersonSource{}, &fakeNoteWriter{}, migrate.NotesOptions{})
	_, err := m.Run(context.Background())
	require.ErrorIs(t, err, boom)

	m = migrate.NewNotes(fakeMatcher{}, fakePersonSource{err: boom}, &fakeNoteWriter{}, migrate.NotesOptions{})
	_, err = m.Run(context.Background())
	require.ErrorIs(t, err, boom)
}
