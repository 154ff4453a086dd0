package http

import (
	"encoding/json"
	"errors"

	"portfolio-builder/internal/adapter/template"
	"portfolio-builder/internal/model"
	"portfolio-builder/internal/usecase"
	"portfolio-builder/pkg/ai"
	"portfolio-builder/pkg/apierr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	processor *usecase.Processor
	log       *zap.Logger
}

func NewHandler(p *usecase.Processor, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{processor: p, log: log}
}

// Register mounts every route on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/health", h.Health)
	r.Get("/schema", h.Schema)
	r.Get("/templates", h.Templates)
	r.Get("/portfolio-types", h.PortfolioTypes)

	r.Post("/transform/resume", h.TransformResume)
	r.Post("/transform/legacy", h.TransformLegacy)
	r.Post("/validate", h.Validate)
	r.Post("/props/:section", h.ComponentProps)
	r.Post("/render/:template", h.RenderRecord)

	r.Post("/portfolios/import/resume", h.ImportResume)
	r.Post("/portfolios/import/text", h.ImportResumeText)
	r.Post("/portfolios/import/legacy", h.ImportLegacy)
	r.Get("/users/:userId/portfolios", h.ListPortfolios)
	r.Get("/portfolios/:id", h.GetPortfolio)
	r.Put("/portfolios/:id", h.SavePortfolio)
	r.Delete("/portfolios/:id", h.DeletePortfolio)
	r.Post("/portfolios/:id/publish", h.PublishPortfolio)
	r.Get("/portfolios/:id/props/:section", h.StoredProps)
	r.Get("/portfolios/:id/render/:template", h.RenderStored)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "persistence": h.processor.Persistent()})
}

func (h *Handler) Schema(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(model.SchemaJSON())
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": h.processor.Templates().IDs(),
		"default":   h.processor.DefaultTemplate(),
	})
}

func (h *Handler) PortfolioTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"types":   model.PortfolioTypes(),
		"default": model.DefaultPortfolioType,
	})
}

type transformResp struct {
	Data       *model.Portfolio         `json:"data"`
	Validation usecase.ValidationResult `json:"validation"`
	Error      string                   `json:"error,omitempty"`
}

// TransformResume maps a parsed resume without storing it. A failed mapping
// still answers 200 with the empty record and the failure message.
func (h *Handler) TransformResume(c *fiber.Ctx) error {
	raw, err := bodyMap(c)
	if err != nil {
		return err
	}
	p, err := usecase.FromResume(raw, c.Query("type"))
	return c.JSON(h.transformed(p, err, "resume"))
}

func (h *Handler) TransformLegacy(c *fiber.Ctx) error {
	raw, err := bodyMap(c)
	if err != nil {
		return err
	}
	p, err := usecase.FromLegacy(raw)
	return c.JSON(h.transformed(p, err, "legacy"))
}

func (h *Handler) transformed(p *model.Portfolio, err error, kind string) transformResp {
	resp := transformResp{Data: p, Validation: usecase.Validate(p)}
	if err != nil {
		h.log.Warn("transform failed", zap.String("kind", kind), zap.Error(err))
		resp.Error = err.Error()
	}
	return resp
}

func (h *Handler) Validate(c *fiber.Ctx) error {
	raw, err := bodyMap(c)
	if err != nil {
		return err
	}
	return c.JSON(usecase.ValidateDocument(raw))
}

func (h *Handler) ComponentProps(c *fiber.Ctx) error {
	p, err := bodyRecord(c)
	if err != nil {
		return err
	}
	return c.JSON(usecase.ToComponentProps(p, c.Params("section")))
}

func (h *Handler) RenderRecord(c *fiber.Ctx) error {
	p, err := bodyRecord(c)
	if err != nil {
		return err
	}
	out, err := h.processor.Templates().Adapt(c.Params("template"), p)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(out)
}

type importReq struct {
	UserID        string                 `json:"userId"`
	PortfolioType string                 `json:"portfolioType,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
	Text          string                 `json:"text,omitempty"`
}

func (r importReq) user() (uuid.UUID, error) {
	uid, err := uuid.Parse(r.UserID)
	if err != nil {
		return uuid.Nil, apierr.ErrBadRequest("invalid userId")
	}
	return uid, nil
}

func parseImport(c *fiber.Ctx) (importReq, uuid.UUID, error) {
	var req importReq
	if err := c.BodyParser(&req); err != nil {
		return req, uuid.Nil, apierr.ErrBadRequest("invalid payload")
	}
	uid, err := req.user()
	return req, uid, err
}

func (h *Handler) ImportResume(c *fiber.Ctx) error {
	req, uid, err := parseImport(c)
	if err != nil {
		return err
	}
	res, err := h.processor.ImportResume(c.UserContext(), uid, req.Data, req.PortfolioType)
	return imported(c, res, err)
}

func (h *Handler) ImportResumeText(c *fiber.Ctx) error {
	req, uid, err := parseImport(c)
	if err != nil {
		return err
	}
	res, err := h.processor.ImportResumeText(c.UserContext(), uid, req.Text, req.PortfolioType)
	return imported(c, res, err)
}

func (h *Handler) ImportLegacy(c *fiber.Ctx) error {
	req, uid, err := parseImport(c)
	if err != nil {
		return err
	}
	res, err := h.processor.ImportLegacy(c.UserContext(), uid, req.Data)
	return imported(c, res, err)
}

func imported(c *fiber.Ctx, res *usecase.ImportResult, err error) error {
	if err != nil {
		return toAPIError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *Handler) ListPortfolios(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return apierr.ErrBadRequest("invalid userId")
	}
	list, err := h.processor.List(c.UserContext(), uid)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(fiber.Map{"portfolios": list})
}

func (h *Handler) GetPortfolio(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	doc, err := h.processor.Get(c.UserContext(), id)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(doc)
}

type saveReq struct {
	Template string           `json:"template,omitempty"`
	Data     *model.Portfolio `json:"data"`
}

func (h *Handler) SavePortfolio(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req saveReq
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apierr.ErrBadRequest("invalid payload")
	}
	res, err := h.processor.Save(c.UserContext(), id, usecase.SaveInput{Template: req.Template, Data: req.Data})
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(res)
}

func (h *Handler) DeletePortfolio(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.processor.Delete(c.UserContext(), id); err != nil {
		return toAPIError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PublishPortfolio(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.processor.Publish(c.UserContext(), id)
	if errors.Is(err, usecase.ErrNotPublishable) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(res)
}

func (h *Handler) StoredProps(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := h.processor.Props(c.UserContext(), id, c.Params("section"))
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(out)
}

func (h *Handler) RenderStored(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := h.processor.Render(c.UserContext(), id, c.Params("template"))
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(out)
}

func pathID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apierr.ErrBadRequest("invalid id")
	}
	return id, nil
}

func bodyMap(c *fiber.Ctx) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return nil, apierr.ErrBadRequest("invalid payload")
	}
	return raw, nil
}

// bodyRecord decodes a canonical record, filling absent collections.
func bodyRecord(c *fiber.Ctx) (*model.Portfolio, error) {
	p, err := model.Decode(c.Body())
	if err != nil {
		return nil, apierr.ErrBadRequest("invalid payload")
	}
	return p, nil
}

func toAPIError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return apierr.ErrNotFound(err.Error())
	case errors.Is(err, usecase.ErrTransform):
		return apierr.ErrValidation(err.Error())
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, template.ErrUnknownTemplate):
		return apierr.ErrBadRequest(err.Error())
	case errors.Is(err, usecase.ErrNotPublishable):
		return apierr.ErrConflict(err.Error())
	case errors.Is(err, ai.ErrNonJSON), errors.Is(err, ai.ErrStatus), errors.Is(err, ai.ErrUnavailable):
		return apierr.ErrBadGateway(err.Error())
	default:
		var apiErr *apierr.APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return apierr.ErrInternalServer("")
	}
}
