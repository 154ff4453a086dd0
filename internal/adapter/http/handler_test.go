package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-builder/internal/adapter/repository"
	"portfolio-builder/internal/adapter/template"
	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/usecase"
	"portfolio-builder/pkg/ai"
)

type memRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]domain.PortfolioDocument
}

func (r *memRepo) Save(_ context.Context, d *domain.PortfolioDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[d.ID] = *d
	return nil
}

func (r *memRepo) Get(_ context.Context, id uuid.UUID) (*domain.PortfolioDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (r *memRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.PortfolioSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.PortfolioSummary{}
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, domain.PortfolioSummary{ID: d.ID, Template: d.Template, Status: d.Status})
		}
	}
	return out, nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

type stubParser struct {
	out map[string]interface{}
	err error
}

func (s stubParser) ParseResume(context.Context, string, string) (map[string]interface{}, error) {
	return s.out, s.err
}

const resumeJSON = `{
	"hero": {"title": "Jane Mary Doe", "subtitle": "Backend Engineer"},
	"contact": {"email": "jane@example.com", "location": "Austin, TX, USA", "github": "https://github.com/jane"},
	"about": {"summary": "Engineer"},
	"experience": {"jobs": [{"company": "Acme", "title": "Engineer", "duration": "Jan 2020 - Present"}]},
	"skills": {"technical": ["Go", "SQL"]},
	"projects": {"items": [{"name": "Tracer", "url": "https://tracer.dev"}]}
}`

type testApp struct {
	app *fiber.App
}

func newTestApp(parser usecase.ResumeParser) *testApp {
	repo := &memRepo{docs: map[uuid.UUID]domain.PortfolioDocument{}}
	proc := usecase.NewProcessor(repo, parser, template.Default(), zap.NewNop(), template.IDModern)
	return &testApp{app: NewApp(NewHandler(proc, zap.NewNop()), zap.NewNop(), 1)}
}

func (a *testApp) do(t *testing.T, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func importBody(userID uuid.UUID, data string) string {
	return `{"userId": "` + userID.String() + `", "data": ` + data + `}`
}

func TestHealthAndMetadataRoutes(t *testing.T) {
	a := newTestApp(nil)

	status, body := a.do(t, "GET", "/health", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["persistence"])

	status, body = a.do(t, "GET", "/schema", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "Portfolio", body["title"])

	status, body = a.do(t, "GET", "/templates", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, []interface{}{"colorful", "modern", "neo-brutalist", "space"}, body["templates"])
	assert.Equal(t, "modern", body["default"])

	status, body = a.do(t, "GET", "/portfolio-types", "")
	assert.Equal(t, 200, status)
	assert.Contains(t, body["types"], "academic")
}

func TestTransformResume(t *testing.T) {
	a := newTestApp(nil)
	status, body := a.do(t, "POST", "/transform/resume", resumeJSON)
	require.Equal(t, 200, status)

	personal := body["data"].(map[string]interface{})["personal"].(map[string]interface{})
	assert.Equal(t, "Jane", personal["firstName"])
	assert.Equal(t, "Mary Doe", personal["lastName"])
	validation := body["validation"].(map[string]interface{})
	assert.Equal(t, true, validation["isValid"])
	assert.EqualValues(t, 100, validation["completeness"])
	assert.NotContains(t, body, "error")
}

func TestTransformLegacyEmptyBody(t *testing.T) {
	a := newTestApp(nil)
	status, body := a.do(t, "POST", "/transform/legacy", `{}`)
	require.Equal(t, 200, status)
	assert.Equal(t, false, body["validation"].(map[string]interface{})["isValid"])

	status, body = a.do(t, "POST", "/transform/legacy", `not json`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Bad Request", body["message"])
}

func TestValidateRoute(t *testing.T) {
	a := newTestApp(nil)
	status, body := a.do(t, "POST", "/validate", `{"personal": {"firstName": "Jane", "lastName": "Doe", "email": "bad"}}`)
	require.Equal(t, 200, status)
	assert.Equal(t, []interface{}{usecase.MsgEmailInvalid}, body["errors"])

	status, body = a.do(t, "POST", "/validate", `{"personal": "Jane"}`)
	require.Equal(t, 200, status)
	assert.Equal(t, []interface{}{usecase.MsgUnexpectedFormat}, body["errors"])
}

func TestPropsAndRenderRoutes(t *testing.T) {
	a := newTestApp(nil)
	record := `{"personal": {"firstName": "Jane", "lastName": "Doe"}, "skills": {"technical": [
		{"category": "Backend", "skills": [{"name": "Go"}]},
		{"category": "Frontend", "skills": [{"name": "React"}]}
	]}}`

	status, body := a.do(t, "POST", "/props/skills", record)
	require.Equal(t, 200, status)
	assert.Equal(t, []interface{}{"Go", "React"}, body["technical"])
	assert.Contains(t, body, "data")

	status, body = a.do(t, "POST", "/props/unknown", record)
	require.Equal(t, 200, status)
	assert.Len(t, body, 1)
	assert.Contains(t, body, "data")

	status, body = a.do(t, "POST", "/render/neo-brutalist", record)
	require.Equal(t, 200, status)
	assert.Equal(t, "Jane Doe", body["personal_info"].(map[string]interface{})["name"])

	status, body = a.do(t, "POST", "/render/vaporwave", record)
	assert.Equal(t, 400, status)
	assert.Contains(t, body["detail"], "unknown template")
}

func TestPortfolioLifecycle(t *testing.T) {
	a := newTestApp(nil)
	userID := uuid.New()

	status, body := a.do(t, "POST", "/portfolios/import/resume", importBody(userID, resumeJSON))
	require.Equal(t, 201, status)
	doc := body["document"].(map[string]interface{})
	id := doc["id"].(string)
	assert.Equal(t, "draft", doc["status"])

	status, body = a.do(t, "GET", "/portfolios/"+id, "")
	require.Equal(t, 200, status)
	assert.Equal(t, "resume", body["source"])

	status, body = a.do(t, "GET", "/users/"+userID.String()+"/portfolios", "")
	require.Equal(t, 200, status)
	assert.Len(t, body["portfolios"], 1)

	status, body = a.do(t, "GET", "/portfolios/"+id+"/props/contact", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "Austin, TX, USA", body["location"])

	status, body = a.do(t, "GET", "/portfolios/"+id+"/render/space", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "Jane Mary Doe", body["navbar"].(map[string]interface{})["fullName"])

	status, body = a.do(t, "POST", "/portfolios/"+id+"/publish", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "published", body["document"].(map[string]interface{})["status"])

	status, body = a.do(t, "PUT", "/portfolios/"+id, `{"template": "colorful", "data": {"personal": {"firstName": "Jane"}}}`)
	require.Equal(t, 200, status)
	saved := body["document"].(map[string]interface{})
	assert.Equal(t, "colorful", saved["template"])
	assert.Equal(t, "draft", saved["status"])

	status, body = a.do(t, "POST", "/portfolios/"+id+"/publish", "")
	assert.Equal(t, 422, status)
	assert.Equal(t, false, body["validation"].(map[string]interface{})["isValid"])

	status, _ = a.do(t, "DELETE", "/portfolios/"+id, "")
	assert.Equal(t, 204, status)

	status, body = a.do(t, "GET", "/portfolios/"+id, "")
	assert.Equal(t, 404, status)
	assert.EqualValues(t, 404, body["code"])
}

func TestImportErrors(t *testing.T) {
	a := newTestApp(stubParser{err: errors.Join(ai.ErrNonJSON, errors.New("no braces"))})

	status, body := a.do(t, "POST", "/portfolios/import/resume", `{"userId": "nope", "data": {}}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "invalid userId", body["detail"])

	status, _ = a.do(t, "POST", "/portfolios/import/text", `{"userId": "`+uuid.NewString()+`", "text": ""}`)
	assert.Equal(t, 400, status)

	status, _ = a.do(t, "POST", "/portfolios/import/text", `{"userId": "`+uuid.NewString()+`", "text": "Jane Doe"}`)
	assert.Equal(t, 502, status)

	status, _ = a.do(t, "POST", "/portfolios/import/resume", importBody(uuid.New(), `{"hero": {"title": ["Jane"]}}`))
	assert.Equal(t, 201, status)

	status, _ = a.do(t, "GET", "/portfolios/not-a-uuid", "")
	assert.Equal(t, 400, status)
}

func TestImportResumeText(t *testing.T) {
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resumeJSON), &raw))
	a := newTestApp(stubParser{out: raw})

	status, body := a.do(t, "POST", "/portfolios/import/text", `{"userId": "`+uuid.NewString()+`", "text": "Jane Mary Doe", "portfolioType": "designer"}`)
	require.Equal(t, 201, status)
	doc := body["document"].(map[string]interface{})
	assert.Equal(t, "designer", doc["portfolio_type"])
	assert.Equal(t, "resume", doc["source"])
}

func TestImportResumeTextServiceDown(t *testing.T) {
	client := ai.NewClient("http://127.0.0.1:1", zap.NewNop())
	client.Attempts = 1
	a := newTestApp(client)

	status, body := a.do(t, "POST", "/portfolios/import/text", `{"userId": "`+uuid.NewString()+`", "text": "Jane Doe"}`)
	assert.Equal(t, 502, status)
	assert.Contains(t, body["detail"], "ai-service unavailable")
}

func TestHealthReportsDisabledPersistence(t *testing.T) {
	proc := usecase.NewProcessor(repository.NewPortfoliosRepo(nil, nil), nil, template.Default(), zap.NewNop(), "")
	a := &testApp{app: NewApp(NewHandler(proc, zap.NewNop()), zap.NewNop(), 1)}

	status, body := a.do(t, "GET", "/health", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["persistence"])
}
