package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry *Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if entry.CreatedAt.IsZero() {
		return nil, errors.New("entry timestamp empty")
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO journal_entry (owner_id, title, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			RETURNING id, updated_at;`,
		entry.OwnerID, entry.Title, entry.Content, entry.CreatedAt,
	).Scan(&entry.ID, &entry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert journal entry: %w", err)
	}

	return entry, nil
}

func (r *Repo) Get(ctx context.Context, ownerID, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var entry Entry
	err = r.db.QueryRow(
		ctx,
		`SELECT id, owner_id, title, content, created_at, updated_at
			FROM journal_entry
			WHERE id = $1 AND owner_id = $2;`,
		id, ownerID,
	).Scan(&entry.ID, &entry.OwnerID, &entry.Title, &entry.Content, &entry.CreatedAt, &entry.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("journal entry [query row]: %w", err)
	}

	return &entry, nil
}

func (r *Repo) Update(ctx context.Context, entry *Entry, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`UPDATE journal_entry SET title = $1, content = $2, updated_at = $3
			WHERE id = $4 AND owner_id = $5
			RETURNING created_at, updated_at;`,
		entry.Title, entry.Content, now, entry.ID, entry.OwnerID,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEntryNotFound
	}
	if err != nil {
		return fmt.Errorf("update journal entry: %w", err)
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, ownerID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM journal_entry WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context, ownerID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, owner_id, title, content, created_at, updated_at
			FROM journal_entry
			WHERE owner_id = $1
			ORDER BY created_at DESC, id DESC;`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
