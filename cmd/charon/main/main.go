package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/charon/cmd/charon"
	"github.com/arthur-debert/charon/pkg/ui/styles"
)

func main() {
	rootCmd := charon.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
