package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio-builder/internal/model"
)

// ErrNotFound is returned when no stored document matches an id.
var ErrNotFound = errors.New("portfolio not found")

// Document statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Import sources.
const (
	SourceResume = "resume"
	SourceLegacy = "legacy"
	SourceEditor = "editor"
)

// PortfolioDocument is a stored canonical record. The record itself is kept
// verbatim; identity and lifecycle live on the document.
type PortfolioDocument struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"user_id"`
	Template      string           `json:"template"`
	PortfolioType string           `json:"portfolio_type"`
	Source        string           `json:"source"`
	Status        string           `json:"status"`
	Data          *model.Portfolio `json:"data"`
	Completeness  int              `json:"completeness"`
	PublishedAt   *time.Time       `json:"published_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PortfolioSummary is the list view of a stored document.
type PortfolioSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Template     string    `json:"template"`
	Status       string    `json:"status"`
	Completeness int       `json:"completeness"`
	UpdatedAt    time.Time `json:"updated_at"`
}
