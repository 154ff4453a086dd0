package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PortfolioRepo interface {
	Save(ctx context.Context, d *domain.PortfolioDocument) error
	Get(ctx context.Context, id uuid.UUID) (*domain.PortfolioDocument, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PortfolioSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResumeParser turns raw resume text into the loosely structured object
// FromResume consumes.
type ResumeParser interface {
	ParseResume(ctx context.Context, text, portfolioType string) (map[string]interface{}, error)
}

// TemplateRenderer turns a canonical record into a template view model.
type TemplateRenderer interface {
	Adapt(id string, p *model.Portfolio) (interface{}, error)
	Has(id string) bool
	IDs() []string
}

const fallbackTemplate = "modern"

// Processor runs the import, edit and render flows around the pure mappers.
type Processor struct {
	repo            PortfolioRepo
	parser          ResumeParser
	templates       TemplateRenderer
	log             *zap.Logger
	defaultTemplate string
	now             func() time.Time
}

func NewProcessor(repo PortfolioRepo, parser ResumeParser, templates TemplateRenderer, log *zap.Logger, defaultTemplate string) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultTemplate == "" {
		defaultTemplate = fallbackTemplate
	}
	return &Processor{
		repo:            repo,
		parser:          parser,
		templates:       templates,
		log:             log,
		defaultTemplate: defaultTemplate,
		now:             time.Now,
	}
}

// Templates exposes the adapter registry.
func (p *Processor) Templates() TemplateRenderer { return p.templates }

// DefaultTemplate is the template assigned to imported documents.
func (p *Processor) DefaultTemplate() string { return p.defaultTemplate }

// Persistent reports whether saved documents can be read back. Repos that
// cannot tell are assumed to persist.
func (p *Processor) Persistent() bool {
	if r, ok := p.repo.(interface{ Persistent() bool }); ok {
		return r.Persistent()
	}
	return true
}

// ImportResult is a stored document plus its validation outcome.
type ImportResult struct {
	Document   *domain.PortfolioDocument `json:"document"`
	Validation ValidationResult          `json:"validation"`
}

// normalizeType falls back to the default flavour for unknown hints.
func normalizeType(portfolioType string) string {
	t := strings.ToLower(strings.TrimSpace(portfolioType))
	if model.IsPortfolioType(t) {
		return t
	}
	return model.DefaultPortfolioType
}

// ImportResume maps parsed resume output and stores it as a new draft.
// When mapping fails nothing is stored; the result still carries the empty
// record so callers can render something.
func (p *Processor) ImportResume(ctx context.Context, userID uuid.UUID, raw map[string]interface{}, portfolioType string) (*ImportResult, error) {
	portfolioType = normalizeType(portfolioType)
	record, err := FromResume(raw, portfolioType)
	return p.store(ctx, userID, domain.SourceResume, portfolioType, record, err)
}

// ImportResumeText sends resume text through the parser, then imports it.
func (p *Processor) ImportResumeText(ctx context.Context, userID uuid.UUID, text, portfolioType string) (*ImportResult, error) {
	if p.parser == nil {
		return nil, fmt.Errorf("%w: no resume parser configured", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty resume text", ErrInvalidInput)
	}
	portfolioType = normalizeType(portfolioType)
	raw, err := p.parser.ParseResume(ctx, text, portfolioType)
	if err != nil {
		p.log.Error("resume parsing failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("parse resume: %w", err)
	}
	return p.ImportResume(ctx, userID, raw, portfolioType)
}

// ImportLegacy maps a record saved by the old editor and stores it.
func (p *Processor) ImportLegacy(ctx context.Context, userID uuid.UUID, raw map[string]interface{}) (*ImportResult, error) {
	record, err := FromLegacy(raw)
	return p.store(ctx, userID, domain.SourceLegacy, model.DefaultPortfolioType, record, err)
}

func (p *Processor) store(ctx context.Context, userID uuid.UUID, source, portfolioType string, record *model.Portfolio, mapErr error) (*ImportResult, error) {
	now := p.now().UTC()
	doc := &domain.PortfolioDocument{
		ID:            uuid.New(),
		UserID:        userID,
		Template:      p.defaultTemplate,
		PortfolioType: portfolioType,
		Source:        source,
		Status:        domain.StatusDraft,
		Data:          record,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	res := &ImportResult{Document: doc, Validation: Validate(record)}
	doc.Completeness = res.Validation.Completeness

	if mapErr != nil {
		p.log.Warn("transform failed", zap.String("source", source), zap.String("user_id", userID.String()), zap.Error(mapErr))
		return res, mapErr
	}
	if err := p.repo.Save(ctx, doc); err != nil {
		p.log.Error("failed to save portfolio", zap.String("id", doc.ID.String()), zap.Error(err))
		return nil, err
	}
	p.log.Info("portfolio imported",
		zap.String("id", doc.ID.String()),
		zap.String("source", source),
		zap.Int("completeness", doc.Completeness),
		zap.Int("errors", len(res.Validation.Errors)))
	return res, nil
}

// Get loads a stored document.
func (p *Processor) Get(ctx context.Context, id uuid.UUID) (*domain.PortfolioDocument, error) {
	doc, err := p.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		p.log.Error("failed to load portfolio", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	if doc.Data == nil {
		doc.Data = model.Empty()
	}
	return doc, nil
}

// List returns the user's documents.
func (p *Processor) List(ctx context.Context, userID uuid.UUID) ([]domain.PortfolioSummary, error) {
	return p.repo.ListByUser(ctx, userID)
}

// Delete removes a stored document.
func (p *Processor) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := p.Get(ctx, id); err != nil {
		return err
	}
	if err := p.repo.Delete(ctx, id); err != nil {
		p.log.Error("failed to delete portfolio", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

// SaveInput is a form save. Empty Template keeps the current template.
type SaveInput struct {
	Template string
	Data     *model.Portfolio
}

// Save replaces the stored record wholesale and re-scores it. Saving a
// published document moves it back to draft when it no longer validates.
func (p *Processor) Save(ctx context.Context, id uuid.UUID, in SaveInput) (*ImportResult, error) {
	if in.Data == nil {
		return nil, fmt.Errorf("%w: missing portfolio data", ErrInvalidInput)
	}
	if in.Template != "" {
		if !p.templates.Has(in.Template) {
			return nil, fmt.Errorf("%w: unknown template %q", ErrInvalidInput, in.Template)
		}
	}
	doc, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.Data = in.Data
	doc.Source = domain.SourceEditor
	if in.Template != "" {
		doc.Template = in.Template
	}
	res := &ImportResult{Document: doc, Validation: Validate(in.Data)}
	doc.Completeness = res.Validation.Completeness
	if doc.Status == domain.StatusPublished && !res.Validation.IsValid {
		doc.Status = domain.StatusDraft
		doc.PublishedAt = nil
	}
	doc.UpdatedAt = p.now().UTC()

	if err := p.repo.Save(ctx, doc); err != nil {
		p.log.Error("failed to save portfolio", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return res, nil
}

// Publish marks a document as published. Records with hard validation
// errors cannot be published.
func (p *Processor) Publish(ctx context.Context, id uuid.UUID) (*ImportResult, error) {
	doc, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res := &ImportResult{Document: doc, Validation: Validate(doc.Data)}
	if !res.Validation.IsValid {
		return res, fmt.Errorf("%w: %v", ErrNotPublishable, res.Validation.Err())
	}

	now := p.now().UTC()
	doc.Status = domain.StatusPublished
	doc.PublishedAt = &now
	doc.UpdatedAt = now
	doc.Completeness = res.Validation.Completeness
	if err := p.repo.Save(ctx, doc); err != nil {
		p.log.Error("failed to publish portfolio", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	p.log.Info("portfolio published", zap.String("id", id.String()))
	return res, nil
}

// Props projects a stored record onto one editor section.
func (p *Processor) Props(ctx context.Context, id uuid.UUID, section string) (interface{}, error) {
	doc, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToComponentProps(doc.Data, section), nil
}

// Render builds a template view model for a stored record. An empty
// templateID uses the document's template.
func (p *Processor) Render(ctx context.Context, id uuid.UUID, templateID string) (interface{}, error) {
	doc, err := p.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if templateID == "" {
		templateID = doc.Template
	}
	return p.templates.Adapt(templateID, doc.Data)
}
