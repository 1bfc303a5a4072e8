// Package cmd implements the resumectl command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-intel/internal/extract"
	"resume-intel/internal/parser"
)

const app = "resumectl"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "resumectl analyzes resumes: scoring, skill profiling and job matching",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadResume reads a resume file and returns the parsed structure.
// PDF and DOCX payloads go through text extraction first.
func loadResume(path string) (*parser.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}

	format := parser.FormatTXT
	text := string(data)

	ctx := context.Background()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		format = parser.FormatPDF
		text, err = extract.ExtractTextFromBytes(ctx, data, "application/pdf", path)
	case ".docx":
		format = parser.FormatDOCX
		text, err = extract.ExtractTextFromBytes(ctx, data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", path)
	}
	if err != nil {
		return nil, fmt.Errorf("extract resume text: %w", err)
	}

	return parser.Parse(text, format), nil
}
