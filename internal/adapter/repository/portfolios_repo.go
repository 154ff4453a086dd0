package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// PortfoliosRepo stores canonical records as JSONB documents. A repo
// without a pool accepts writes and finds nothing, so the service can run
// without a database. Discarded writes are logged.
type PortfoliosRepo struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPortfoliosRepo(pool *pgxpool.Pool, log *zap.Logger) *PortfoliosRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &PortfoliosRepo{pool: pool, log: log}
}

// Persistent reports whether writes reach a database.
func (r *PortfoliosRepo) Persistent() bool { return r.pool != nil }

func (r *PortfoliosRepo) Save(ctx context.Context, d *domain.PortfolioDocument) error {
	if r.pool == nil {
		r.log.Warn("persistence disabled, portfolio not stored", zap.String("portfolio_id", d.ID.String()))
		return nil
	}

	dataB, err := json.Marshal(d.Data)
	if err != nil {
		return fmt.Errorf("encode portfolio %s: %w", d.ID, err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO portfolios (id, user_id, template, portfolio_type, source, status, data, completeness, published_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET template = EXCLUDED.template, portfolio_type = EXCLUDED.portfolio_type, source = EXCLUDED.source, status = EXCLUDED.status, data = EXCLUDED.data, completeness = EXCLUDED.completeness, published_at = EXCLUDED.published_at, updated_at = EXCLUDED.updated_at`,
		d.ID, d.UserID, d.Template, d.PortfolioType, d.Source, d.Status, dataB, d.Completeness, d.PublishedAt, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert portfolio %s: %w", d.ID, err)
	}
	return nil
}

func (r *PortfoliosRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PortfolioDocument, error) {
	if r.pool == nil {
		return nil, domain.ErrNotFound
	}

	var (
		d     domain.PortfolioDocument
		dataB []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, template, portfolio_type, source, status, data, completeness, published_at, created_at, updated_at
		FROM portfolios WHERE id = $1`, id).
		Scan(&d.ID, &d.UserID, &d.Template, &d.PortfolioType, &d.Source, &d.Status, &dataB, &d.Completeness, &d.PublishedAt, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load portfolio %s: %w", id, err)
	}

	d.Data, err = model.Decode(dataB)
	if err != nil {
		return nil, fmt.Errorf("portfolio %s: %w", id, err)
	}
	return &d, nil
}

// ListByUser returns summaries of the user's documents, newest first. The
// rows are aggregated to one JSON array server-side.
func (r *PortfoliosRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PortfolioSummary, error) {
	out := []domain.PortfolioSummary{}
	if r.pool == nil {
		return out, nil
	}

	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT coalesce(json_agg(json_build_object(
			'id', p.id,
			'title', p.data->'metadata'->>'title',
			'template', p.template,
			'status', p.status,
			'completeness', p.completeness,
			'updated_at', p.updated_at) ORDER BY p.updated_at DESC), '[]')
		FROM portfolios p WHERE p.user_id = $1`, userID).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("list portfolios for %s: %w", userID, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode portfolio list: %w", err)
	}
	return out, nil
}

// Delete removes a document. Deleting a missing id is not an error.
func (r *PortfoliosRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete portfolio %s: %w", id, err)
	}
	return nil
}

