package documents

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func mustUpload(t *testing.T, repo *MemoryRepo, id string, minute int) string {
	t.Helper()
	doc := Document{
		ID:        id,
		FileName:  id + ".txt",
		CreatedAt: time.Date(2026, 8, 1, 12, minute, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create %s: %v", id, err)
	}
	return id
}

// fakeStore keeps objects in memory and mirrors the local store behavior.
type fakeStore struct {
	objects map[string][]byte
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	key := "2026-08/fake_" + fileName
	s.objects[key] = data
	s.saves++
	return key, int64(len(data)), "text/plain; charset=utf-8", nil
}

func (s *fakeStore) SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.objects[storageKey] = data
	return int64(len(data)), nil
}

func (s *fakeStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := s.objects[storageKey]
	if !ok {
		return nil, errors.New("object not found: " + storageKey)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestServiceUpload(t *testing.T) {
	store := newFakeStore()
	svc := NewService(NewMemoryRepo(), store)

	doc, err := svc.Upload(context.Background(), "resume.txt", strings.NewReader("John Smith\nSoftware Engineer"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected a generated document id")
	}
	if doc.SizeBytes != int64(len("John Smith\nSoftware Engineer")) {
		t.Fatalf("unexpected size: %d", doc.SizeBytes)
	}
	if doc.ContentHash == "" {
		t.Fatal("expected a content hash")
	}
	if doc.StorageKey == "" {
		t.Fatal("expected a storage key")
	}

	got, err := svc.Get(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("get after upload: %v", err)
	}
	if got.FileName != "resume.txt" {
		t.Fatalf("unexpected file name: %q", got.FileName)
	}
}

func TestServiceUploadRejectsEmpty(t *testing.T) {
	svc := NewService(NewMemoryRepo(), newFakeStore())

	if _, err := svc.Upload(context.Background(), "resume.txt", strings.NewReader("")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty file, got %v", err)
	}
	if _, err := svc.Upload(context.Background(), "  ", strings.NewReader("body")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
}

func TestServiceUploadRejectsOversize(t *testing.T) {
	svc := NewService(NewMemoryRepo(), newFakeStore())

	big := bytes.Repeat([]byte("a"), MaxUploadBytes+1)
	if _, err := svc.Upload(context.Background(), "big.txt", bytes.NewReader(big)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversize file, got %v", err)
	}
}

func TestServiceTextExtractsAndCaches(t *testing.T) {
	store := newFakeStore()
	repo := NewMemoryRepo()
	svc := NewService(repo, store)

	doc, err := svc.Upload(context.Background(), "resume.txt", strings.NewReader("plain resume body"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	text, err := svc.Text(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if text != "plain resume body" {
		t.Fatalf("unexpected text: %q", text)
	}

	cached, err := repo.GetByID(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cached.ExtractedTextKey != doc.StorageKey+".extracted.txt" {
		t.Fatalf("unexpected extracted key: %q", cached.ExtractedTextKey)
	}
	if cached.ExtractedAt == nil {
		t.Fatal("expected extraction timestamp")
	}
	if _, ok := store.objects[cached.ExtractedTextKey]; !ok {
		t.Fatal("expected extracted copy in store")
	}

	// The second read serves the cached copy.
	again, err := svc.Text(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("text (cached): %v", err)
	}
	if again != text {
		t.Fatalf("cached text differs: %q vs %q", again, text)
	}
}

func TestServiceTextUnknownDocument(t *testing.T) {
	svc := NewService(NewMemoryRepo(), newFakeStore())

	if _, err := svc.Text(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	base := mustUpload(t, repo, "a", 1)
	mid := mustUpload(t, repo, "b", 2)
	newest := mustUpload(t, repo, "c", 3)

	docs, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[0].ID != newest || docs[1].ID != mid || docs[2].ID != base {
		t.Fatalf("unexpected order: %s %s %s", docs[0].ID, docs[1].ID, docs[2].ID)
	}

	page, err := repo.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 || page[0].ID != mid {
		t.Fatalf("unexpected page: %+v", page)
	}
}
