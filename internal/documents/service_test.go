package documents

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/shared/storage/object/local"
)

func newService(t *testing.T) (*Service, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	return &Service{Store: local.New(t.TempDir()), Repo: repo}, repo
}

func TestSaveAndGet(t *testing.T) {
	svc, _ := newService(t)

	doc, err := svc.Save(context.Background(), "user-1", "resume.pdf", "application/pdf", KindResume, []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if doc.ID == "" || doc.StorageKey == "" {
		t.Fatalf("incomplete document: %+v", doc)
	}
	if doc.MimeType != "application/pdf" {
		t.Errorf("mime = %q, want declared type preserved", doc.MimeType)
	}

	got, err := svc.Get(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FileName != "resume.pdf" || got.Kind != KindResume {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestSaveRequiresFileName(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Save(context.Background(), "user-1", "", "application/pdf", KindResume, []byte("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetMissesAcrossUsers(t *testing.T) {
	svc, _ := newService(t)

	doc, err := svc.Save(context.Background(), "user-1", "resume.pdf", "application/pdf", KindResume, []byte("data"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newService(t)

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		if _, err := svc.Save(context.Background(), "user-1", name, "application/pdf", KindResume, []byte(name)); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	docs, err := svc.List(context.Background(), "user-1", 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
}
