// Package migrate implements data-migration workflows that copy records from
// an ST JSON export onto the matched live users of another ST account.
package migrate

import (
	"context"
	"fmt"

	"sttools/internal/match"
	"sttools/pkg/domain"
	"sttools/pkg/logger"
	"sttools/pkg/stapi"

	"go.uber.org/zap"
)

// NoteWriter is the slice of the API client the notes migration needs.
type NoteWriter interface {
	CreateUserNote(ctx context.Context, req stapi.UserNoteCreate) (*domain.UserNote, error)
}

// NotesOptions configure a notes migration run.
type NotesOptions struct {
	// DryRun logs every note that would be created without calling the API.
	DryRun bool
}

// NotesSummary reports what a migration run did. In dry-run mode NotesCreated
// counts the notes that would have been created.
type NotesSummary struct {
	PersonsMatched int
	PersonsSkipped int
	NotesCreated   int
	NotesFailed    int
}

// Notes copies agent notes from exported persons onto their matched live
// users, preserving the original creation timestamps. Per-note failures are
// logged and counted but never abort the run.
type Notes struct {
	matcher match.Matcher
	persons match.PersonSource
	client  NoteWriter
	options NotesOptions
}

// NewNotes creates a notes migration over the given matcher, person source
// and API client.
func NewNotes(matcher match.Matcher, persons match.PersonSource, client NoteWriter, options NotesOptions) *Notes {
	return &Notes{
		matcher: matcher,
		persons: persons,
		client:  client,
		options: options,
	}
}

// Run executes the migration and returns a summary of what happened.
func (n *Notes) Run(ctx context.Context) (NotesSummary, error) {
	best, err := n.matcher.FindBestMatches(ctx)
	if err != nil {
		return NotesSummary{}, fmt.Errorf("could not match records: %w", err)
	}
	persons, err := n.persons.Persons(ctx)
	if err != nil {
		return NotesSummary{}, fmt.Errorf("could not load persons: %w", err)
	}

	var summary NotesSummary
	for _, person := range persons {
		result := best[person.ID]
		if result == nil {
			summary.PersonsSkipped++
			logger.Warn(ctx, "skipping person: no confident match",
				zap.Int64("person_id", int64(person.ID)))

			continue
		}
		summary.PersonsMatched++

		if len(person.Notes) == 0 {
			continue
		}

		logger.Info(ctx, "migrating notes",
			zap.Int64("person_id", int64(person.ID)),
			zap.Int64("user_id", int64(result.UserID)),
			zap.Int("notes", len(person.Notes)))

		for _, note := range person.Notes {
			req := stapi.UserNoteCreate{
				UserID:    result.UserID,
				Content:   note.Content,
				CreatedAt: note.CreatedAt.Unix(),
			}

			if n.options.DryRun {
				summary.NotesCreated++
				logger.Info(ctx, "dry run: would create note",
					zap.Int64("user_id", int64(result.UserID)),
					zap.Time("created_at", note.CreatedAt))

				continue
			}

			if _, err := n.client.CreateUserNote(ctx, req); err != nil {
				summary.NotesFailed++
				logger.Error(ctx, "could not create note",
					zap.Int64("user_id", int64(result.UserID)),
					zap.Error(err))

				continue
			}
			summary.NotesCreated++
		}
	}

	return summary, nil
}
