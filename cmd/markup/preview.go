package main

import (
	"fmt"
	"strconv"

	"github.com/markup-go/markup/pkg/render"
	"github.com/spf13/cobra"
)

func previewCmd() *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the showcase page to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := render.Pretty(showcasePage(), parseIndent(indent))
			if err != nil {
				return err
			}
			fmt.Println(html)
			return nil
		},
	}

	cmd.Flags().StringVarP(&indent, "indent", "i", "",
		`Indent unit: "tab", a space count, or a literal string (default: compact)`)

	return cmd
}

// parseIndent maps the flag value onto the renderer's indent config.
func parseIndent(flag string) any {
	switch flag {
	case "":
		return nil
	case "tab", "true":
		return true
	}
	if n, err := strconv.Atoi(flag); err == nil {
		return n
	}
	return flag
}
