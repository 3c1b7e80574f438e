// Command careerctl runs operator tasks against the career-compass store and
// exercises the extraction engine from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerctl",
	Short: "career-compass operator CLI",
	Long:  "careerctl applies migrations, seeds the catalog, refreshes market trends, regenerates recommendations and runs the skill and resume extractors offline.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
