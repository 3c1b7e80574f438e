package main

import (
	"fmt"
	"log"
	"os"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/domain/resume"

	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume <file>",
	Short: "Structure a PDF, DOCX or TXT resume into JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseResume,
}

var parseResumeVocabulary string

func init() {
	parseResumeCmd.Flags().StringVar(&parseResumeVocabulary, "vocabulary", os.Getenv("VOCABULARY_PATH"), "Path to a YAML vocabulary (default embedded)")

	rootCmd.AddCommand(parseResumeCmd)
}

type parsedResumeOutput struct {
	Resume            resume.Parsed `json:"resume"`
	CompletenessScore int           `json:"completeness_score"`
	ExperienceYears   float64       `json:"experience_years"`
}

func runParseResume(cmd *cobra.Command, args []string) error {
	engine, err := app.NewEngine(config.EngineConfig{VocabularyPath: parseResumeVocabulary}, log.Default())
	if err != nil {
		return err
	}

	parsed, err := engine.Structurer.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("parse resume: %w", err)
	}

	return writeJSON(cmd.OutOrStdout(), parsedResumeOutput{
		Resume:            parsed,
		CompletenessScore: resume.CompletenessScore(parsed),
		ExperienceYears:   parsed.YearsOfExperience(),
	})
}
