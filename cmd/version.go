package cmd

import (
	"fmt"
	"io"

	"httplite/internal/version"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, nameStyle.Render("httplite")+" "+version.GetShortVersion())
	fmt.Fprintln(w, labelStyle.Render("commit:")+" "+version.Commit)
	fmt.Fprintln(w, labelStyle.Render("built: ")+" "+version.BuildDate)
}
