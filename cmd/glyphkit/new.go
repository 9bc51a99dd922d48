package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glyphkit/glyphkit/internal/scaffold"
)

var (
	flagModule        string
	flagListTemplates bool
)

var newCmd = &cobra.Command{
	Use:   "new <template> [dir]",
	Short: "Generate a new game project from a template",
	Long: `Generate a new game project from one of the embedded templates.

The output directory name becomes the project name. The directory is
created if missing and must be empty.

Examples:
  glyphkit new --list                                 # Show available templates
  glyphkit new paddle mygame                          # Generate into ./mygame
  glyphkit new paddle mygame --module example.com/mygame`,
	Args: cobra.RangeArgs(0, 2),
	Run:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagModule, "module", "", "Go module path for the generated project (default: directory name)")
	newCmd.Flags().BoolVar(&flagListTemplates, "list", false, "List available templates")
}

func runNew(cmd *cobra.Command, args []string) {
	if flagListTemplates || len(args) == 0 {
		listTemplates()
		return
	}

	templateName := args[0]
	dir := templateName
	if len(args) > 1 {
		dir = args[1]
	}

	err := scaffold.Generate(scaffold.Options{
		Template: templateName,
		Dir:      dir,
		Module:   flagModule,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Project created in %s\n", dir)
	fmt.Printf("Next: cd %s && go mod tidy && go run .\n", dir)
}

func listTemplates() {
	infos, err := scaffold.Templates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available templates:")
	fmt.Println()
	for _, info := range infos {
		fmt.Printf("  %-10s  %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Run 'glyphkit new <template> <dir>' to generate a project.")
}
