package resumes

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"resume-builder/internal/extract"
	"resume-builder/internal/llm"
)

type staticLLMResponse struct {
	resp string
	err  error
}

func (s staticLLMResponse) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return s.resp, s.err
}

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// buildDocx assembles a minimal word-processing document around the given
// paragraph texts.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":            body.String(),
		"word/_rels/document.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestImportNormalizesModelOutput(t *testing.T) {
	client := staticLLMResponse{resp: `{
		"personal": {"firstName": "John", "lastName": "Doe"},
		"experiences": [{"type": "job", "title": "Software Engineer", "organization": "Acme"}],
		"education": [{"type": "bachelors", "schoolName": "State University"}]
	}`}
	svc := NewService(client, nil)

	data := buildDocx(t, "John Doe", "Software Engineer at Acme")
	rec, err := svc.Import(context.Background(), "user-1", "resume.docx", mimeDOCX, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if rec.Personal.FirstName != "John" || rec.Personal.LastName != "Doe" {
		t.Errorf("unexpected personal: %+v", rec.Personal)
	}
	if len(rec.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(rec.Experiences))
	}
	if rec.Experiences[0].Type != "work" || rec.Experiences[0].ID != "work" {
		t.Errorf("type %q id %q, want both \"work\"", rec.Experiences[0].Type, rec.Experiences[0].ID)
	}
	if rec.Education[0].Type != "undergraduate" {
		t.Errorf("education type = %q, want undergraduate", rec.Education[0].Type)
	}
}

func TestImportRejectsUnsupportedType(t *testing.T) {
	svc := NewService(staticLLMResponse{resp: "{}"}, nil)
	_, err := svc.Import(context.Background(), "user-1", "resume.png", "image/png", []byte("data"))
	if !errors.Is(err, extract.ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestImportRejectsEmptyDocument(t *testing.T) {
	svc := NewService(staticLLMResponse{resp: "{}"}, nil)
	data := buildDocx(t)
	_, err := svc.Import(context.Background(), "user-1", "resume.docx", mimeDOCX, data)
	if !errors.Is(err, extract.ErrNoText) {
		t.Fatalf("err = %v, want ErrNoText", err)
	}
}

func TestImportPropagatesGenerationFailure(t *testing.T) {
	svc := NewService(staticLLMResponse{err: llm.ErrGenerationFailed}, nil)
	data := buildDocx(t, "John Doe")
	_, err := svc.Import(context.Background(), "user-1", "resume.docx", mimeDOCX, data)
	if !errors.Is(err, llm.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestImportRejectsUnparseableResponse(t *testing.T) {
	svc := NewService(staticLLMResponse{resp: "I could not parse that resume, sorry!"}, nil)
	data := buildDocx(t, "John Doe")
	_, err := svc.Import(context.Background(), "user-1", "resume.docx", mimeDOCX, data)
	if !errors.Is(err, llm.ErrInvalidResponse) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}
