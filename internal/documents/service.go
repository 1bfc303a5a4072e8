package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-intel/internal/extract"
	"resume-intel/internal/shared/storage/object"
	"resume-intel/internal/shared/telemetry"
	"resume-intel/internal/shared/util"
)

// MaxUploadBytes caps the size of an uploaded resume file.
const MaxUploadBytes = 10 << 20

// Service coordinates document uploads, persistence and text extraction.
type Service struct {
	repo  DocumentsRepo
	store object.ObjectStore
}

func NewService(repo DocumentsRepo, store object.ObjectStore) *Service {
	return &Service{repo: repo, store: store}
}

// Upload stores the file payload and records its metadata.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return Document{}, fmt.Errorf("upload %s: read: %w", fileName, err)
	}
	if len(data) == 0 {
		return Document{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if len(data) > MaxUploadBytes {
		return Document{}, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, MaxUploadBytes)
	}

	storageKey, size, mimeType, err := s.store.Save(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("upload %s: save: %w", fileName, err)
	}

	doc := Document{
		ID:          uuid.NewString(),
		FileName:    fileName,
		MimeType:    mimeType,
		SizeBytes:   size,
		StorageKey:  storageKey,
		ContentHash: util.HashContent(data),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("upload %s: persist: %w", fileName, err)
	}

	telemetry.Info("documents.uploaded", map[string]any{
		"document_id": doc.ID,
		"mime_type":   doc.MimeType,
		"size_bytes":  doc.SizeBytes,
	})
	return doc, nil
}

// Get returns a stored document by id.
func (s *Service) Get(ctx context.Context, id string) (Document, error) {
	if strings.TrimSpace(id) == "" {
		return Document{}, fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

// List returns stored documents, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Document, error) {
	return s.repo.List(ctx, limit, offset)
}

// Text returns the extracted plain text for a document, extracting on
// first access and reusing the cached copy afterwards.
func (s *Service) Text(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if doc.ExtractedTextKey != "" {
		body, err := s.store.Open(ctx, doc.ExtractedTextKey)
		if err == nil {
			defer body.Close()
			raw, readErr := io.ReadAll(body)
			if readErr == nil {
				return string(raw), nil
			}
		}
		// Cached copy unavailable; fall through and re-extract.
	}

	text, err := extract.ExtractText(ctx, s.store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return "", fmt.Errorf("document %s: %w", doc.ID, err)
	}

	extractedAt := time.Now().UTC()
	if err := s.repo.UpdateExtraction(ctx, doc.ID, doc.StorageKey+".extracted.txt", extractedAt); err != nil {
		telemetry.Error("documents.extraction_record_failed", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
	}
	return text, nil
}
