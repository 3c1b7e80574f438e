package main

import (
	"fmt"
	"log"
	"os"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/usecase"

	"github.com/spf13/cobra"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract skills with confidence scores from a text file",
	Long:  "Read free text from --in (or stdin) and print the recognized skills, their categories and, with --levels, the inferred proficiency levels.",
	RunE:  runExtractSkills,
}

var (
	extractInputFile  string
	extractThreshold  float64
	extractLevels     bool
	extractVocabulary string
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to a text file (default stdin)")
	extractSkillsCmd.Flags().Float64Var(&extractThreshold, "threshold", usecase.DefaultConfidenceThreshold, "Minimum confidence in [0,1]")
	extractSkillsCmd.Flags().BoolVar(&extractLevels, "levels", false, "Also infer proficiency levels")
	extractSkillsCmd.Flags().StringVar(&extractVocabulary, "vocabulary", os.Getenv("VOCABULARY_PATH"), "Path to a YAML vocabulary (default embedded)")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	text, err := readInput(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	engine, err := app.NewEngine(config.EngineConfig{VocabularyPath: extractVocabulary}, log.Default())
	if err != nil {
		return err
	}

	uc := usecase.NewSkillUsecase(nil, engine.Extractor)
	res, err := uc.ExtractSkills(cmd.Context(), usecase.ExtractSkillsInput{
		Text:       string(text),
		Threshold:  extractThreshold,
		WithLevels: extractLevels,
	})
	if err != nil {
		return fmt.Errorf("extract skills: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), res)
}
