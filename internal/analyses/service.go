package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-intel/internal/documents"
	"resume-intel/internal/parser"
	"resume-intel/internal/shared/metrics"
	"resume-intel/internal/shared/telemetry"
)

// Service runs the analysis pipeline and stores its results.
type Service struct {
	Repo Repo
	Docs *documents.Service
}

// NewService constructs a Service. Docs may be nil when only raw text
// analysis is needed.
func NewService(repo Repo, docs *documents.Service) *Service {
	return &Service{Repo: repo, Docs: docs}
}

// AnalyzeText analyzes raw resume text and stores the result.
func (s *Service) AnalyzeText(ctx context.Context, text, format, jobDescription string) (Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return Analysis{}, fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}
	return s.run(ctx, "", text, format, jobDescription)
}

// AnalyzeDocument analyzes a previously uploaded document and stores
// the result.
func (s *Service) AnalyzeDocument(ctx context.Context, documentID, jobDescription string) (Analysis, error) {
	if s.Docs == nil {
		return Analysis{}, errors.New("document analysis is not configured")
	}

	doc, err := s.Docs.Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Analysis{}, fmt.Errorf("document %s: %w", documentID, ErrNotFound)
		}
		return Analysis{}, err
	}

	text, err := s.Docs.Text(ctx, documentID)
	if err != nil {
		return Analysis{}, err
	}

	return s.run(ctx, doc.ID, text, formatFromMime(doc.MimeType), jobDescription)
}

func (s *Service) run(ctx context.Context, documentID, text, format, jobDescription string) (Analysis, error) {
	metrics.IncAnalysisStarted()
	started := time.Now()

	if format == "" {
		format = string(parser.FormatTXT)
	}
	resume := parser.Parse(text, parser.SourceFormat(format))
	report := BuildReport(resume, jobDescription)

	analysis := Analysis{
		ID:           uuid.NewString(),
		DocumentID:   documentID,
		SourceFormat: string(resume.SourceFormat),
		OverallScore: report.ResumeScore.OverallScore,
		Grade:        report.ResumeScore.Grade,
		CareerLevel:  report.ExperienceProfile.CareerLevel,
		Report:       report,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, fmt.Errorf("persist analysis: %w", err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("analyses.completed", map[string]any{
		"analysis_id":   analysis.ID,
		"document_id":   documentID,
		"overall_score": analysis.OverallScore,
		"grade":         analysis.Grade,
		"career_level":  analysis.CareerLevel,
	})
	return analysis, nil
}

// Get returns a stored analysis by id.
func (s *Service) Get(ctx context.Context, id string) (Analysis, error) {
	if strings.TrimSpace(id) == "" {
		return Analysis{}, fmt.Errorf("%w: analysis id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns stored analyses, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Quick returns the condensed view of a stored analysis.
func (s *Service) Quick(ctx context.Context, id string) (QuickReport, error) {
	analysis, err := s.Get(ctx, id)
	if err != nil {
		return QuickReport{}, err
	}
	if analysis.Report == nil {
		return QuickReport{}, fmt.Errorf("analysis %s: report payload missing", id)
	}
	return QuickView(analysis.Report), nil
}

// CompareText analyzes resume text against a job description without
// storing the run.
func (s *Service) CompareText(ctx context.Context, text, jobDescription string) (Comparison, error) {
	if err := ctx.Err(); err != nil {
		return Comparison{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Comparison{}, fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}
	if strings.TrimSpace(jobDescription) == "" {
		return Comparison{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	resume := parser.Parse(text, parser.FormatTXT)
	report := BuildReport(resume, jobDescription)
	return CompareView(report, jobDescription), nil
}

func formatFromMime(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "pdf"):
		return "pdf"
	case strings.Contains(mimeType, "wordprocessingml"):
		return "docx"
	default:
		return "txt"
	}
}
