package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resume-intel/internal/analyses"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Run the full analysis over a resume file (PDF, DOCX or TXT)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("quick", "q", false, "show the quick summary only")
	analyzeCmd.Flags().StringP("job", "j", "", "path to a job description file for comparison")
	analyzeCmd.Flags().StringP("export", "e", "", "write the full report to a file")
	analyzeCmd.Flags().StringP("format", "f", "json", "export format: json or txt")
}

func analyze(cmd *cobra.Command, resumePath string) error {
	quick, _ := cmd.Flags().GetBool("quick")
	jobPath, _ := cmd.Flags().GetString("job")
	exportPath, _ := cmd.Flags().GetString("export")
	format, _ := cmd.Flags().GetString("format")

	resume, err := loadResume(resumePath)
	if err != nil {
		return err
	}

	jobDescription := ""
	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		jobDescription = string(data)
	}

	report := analyses.BuildReport(resume, jobDescription)

	if exportPath != "" {
		return exportReport(report, exportPath, format)
	}

	out := cmd.OutOrStdout()
	if quick {
		return printJSON(out, analyses.QuickView(report))
	}
	if jobDescription != "" {
		return printJSON(out, analyses.CompareView(report, jobDescription))
	}
	return printJSON(out, report)
}

func exportReport(report *analyses.Report, path, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	case "txt":
		if err := os.WriteFile(path, []byte(analyses.RenderText(report)), 0o644); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	fmt.Printf("Report exported to: %s\n", path)
	return nil
}

func printJSON(out io.Writer, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
