// Package repo provides postgres access for the commands service
package repo

import (
	"context"
	"encoding/json"
	"time"

	"domovoy/internal/core/extract"
	"domovoy/internal/modkit/repokit"
	"domovoy/internal/platform/store"
	"domovoy/internal/services/commands/domain"
)

// Storage defines the commands repository
type Storage interface {
	Insert(ctx context.Context, id string, in domain.RecordInput) (domain.Command, error)
	Recent(ctx context.Context, limit, offset int) ([]domain.Command, error)
	ListRange(ctx context.Context, in domain.RangeInput) ([]domain.Command, domain.AfterKey, error)
	UpdateSlots(ctx context.Context, id string, slots extract.SlotRecord) error
}

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, id string, in domain.RecordInput) (domain.Command, error) {
	slots, err := json.Marshal(in.Slots)
	if err != nil {
		return domain.Command{}, err
	}
	const sql = `
INSERT INTO commands (id, text, intent, intent_score, slots)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`
	createdAt, err := store.Scalar[time.Time](ctx, s.q, sql, id, in.Text, in.Intent, in.IntentScore, slots)
	if err != nil {
		return domain.Command{}, err
	}
	return domain.Command{
		ID:          id,
		Text:        in.Text,
		Intent:      in.Intent,
		IntentScore: in.IntentScore,
		Slots:       in.Slots,
		CreatedAt:   createdAt,
	}, nil
}

// commandRow is the wire shape of a commands row; slots stay raw until decoded
type commandRow struct {
	ID          string    `db:"id"`
	Text        string    `db:"text"`
	Intent      string    `db:"intent"`
	IntentScore float64   `db:"intent_score"`
	Slots       []byte    `db:"slots"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r commandRow) toCommand() (domain.Command, error) {
	c := domain.Command{
		ID:          r.ID,
		Text:        r.Text,
		Intent:      r.Intent,
		IntentScore: r.IntentScore,
		CreatedAt:   r.CreatedAt,
	}
	if len(r.Slots) > 0 {
		if err := json.Unmarshal(r.Slots, &c.Slots); err != nil {
			return domain.Command{}, err
		}
	}
	return c, nil
}

// Recent implements Storage
func (s *pg) Recent(ctx context.Context, limit, offset int) ([]domain.Command, error) {
	const sql = `
SELECT id::text AS id, text, intent, intent_score, slots::text AS slots, created_at
FROM commands
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`
	rows, err := store.StructsByName[commandRow](ctx, s.q, sql, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Command, 0, len(rows))
	for _, r := range rows {
		c, err := r.toCommand()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ListRange implements Storage with keyset pagination
func (s *pg) ListRange(ctx context.Context, in domain.RangeInput) ([]domain.Command, domain.AfterKey, error) {
	var (
		sql  string
		args []any
	)
	if in.After.ID == "" {
		sql = `
SELECT id::text, text, intent, intent_score, slots, created_at
FROM commands
WHERE created_at >= $1 AND created_at < $2
ORDER BY created_at ASC, id ASC
LIMIT $3`
		args = []any{in.Since, in.Until, in.Limit}
	} else {
		sql = `
SELECT id::text, text, intent, intent_score, slots, created_at
FROM commands
WHERE created_at >= $1 AND created_at < $2
AND (created_at, id) > ($3, $4::uuid)
ORDER BY created_at ASC, id ASC
LIMIT $5`
		args = []any{in.Since, in.Until, in.After.CreatedAt, in.After.ID, in.Limit}
	}

	out, err := store.Many(ctx, s.q, scanCommand, sql, args...)
	if err != nil {
		return nil, domain.AfterKey{}, err
	}

	next := domain.AfterKey{}
	if len(out) > 0 {
		last := out[len(out)-1]
		next = domain.AfterKey{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return out, next, nil
}

// UpdateSlots implements Storage
func (s *pg) UpdateSlots(ctx context.Context, id string, slots extract.SlotRecord) error {
	body, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return store.ExecOne(ctx, s.q, `UPDATE commands SET slots = $2 WHERE id = $1`, id, body)
}

func scanCommand(r store.Row) (domain.Command, error) {
	var (
		c     domain.Command
		slots []byte
	)
	if err := r.Scan(&c.ID, &c.Text, &c.Intent, &c.IntentScore, &slots, &c.CreatedAt); err != nil {
		return domain.Command{}, err
	}
	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &c.Slots); err != nil {
			return domain.Command{}, err
		}
	}
	return c, nil
}
