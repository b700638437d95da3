package resumes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
)

func newUploadRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(client, nil))
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func multipartResume(t *testing.T, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="resume"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadReturnsNormalizedRecord(t *testing.T) {
	r := newUploadRouter(t, staticLLMResponse{resp: `{
		"personal": {"firstName": "Jane", "lastName": "Smith"},
		"experiences": [{"type": "intern", "title": "Engineer"}]
	}`})

	body, contentType := multipartResume(t, "resume.docx", mimeDOCX, buildDocx(t, "Jane Smith, Engineer"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data ResumeRecord `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Personal.FirstName != "Jane" {
		t.Errorf("firstName = %q", resp.Data.Personal.FirstName)
	}
	if len(resp.Data.Experiences) != 1 || resp.Data.Experiences[0].Type != "internship" {
		t.Errorf("unexpected experiences: %+v", resp.Data.Experiences)
	}
}

func TestUploadMissingFile(t *testing.T) {
	r := newUploadRouter(t, staticLLMResponse{resp: "{}"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadUnsupportedFileType(t *testing.T) {
	r := newUploadRouter(t, staticLLMResponse{resp: "{}"})

	body, contentType := multipartResume(t, "resume.png", "image/png", []byte("not a resume"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unsupported_file_type") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUploadGenerationFailureMapsToBadGateway(t *testing.T) {
	r := newUploadRouter(t, staticLLMResponse{err: llm.ErrGenerationFailed})

	body, contentType := multipartResume(t, "resume.docx", mimeDOCX, buildDocx(t, "Jane Smith"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}
