package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/netext/utils/stringx"
)

var (
	colorVowel = lipgloss.Color("#F59E0B") // Amber
	colorOther = lipgloss.Color("#94A3B8") // Slate 400
)

func newVowelsCmd(a *app) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "vowels TEXT",
		Short: "Count the vowels in TEXT",
		Long: `Count the ASCII vowels (a, e, i, o, u in either case) in TEXT.

With --color (or vowels.color in the config file) TEXT is printed
with its vowels highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("color") {
				color = a.cfg.GetBool("vowels.color")
			}

			count := 0
			for _, r := range args[0] {
				if stringx.IsVowel(r) {
					count++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "vowels: %d\n", count)
			if color {
				renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
				printLine(cmd, highlightVowels(renderer, args[0]))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "print TEXT with vowels highlighted")
	return cmd
}

// highlightVowels renders runs of vowels and other characters in two styles
func highlightVowels(renderer *lipgloss.Renderer, s string) string {
	vowelStyle := renderer.NewStyle().Foreground(colorVowel).Bold(true)
	otherStyle := renderer.NewStyle().Foreground(colorOther)

	var b strings.Builder
	var run strings.Builder
	runVowel := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runVowel {
			b.WriteString(vowelStyle.Render(run.String()))
		} else {
			b.WriteString(otherStyle.Render(run.String()))
		}
		run.Reset()
	}

	for _, r := range s {
		if v := stringx.IsVowel(r); v != runVowel {
			flush()
			runVowel = v
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}
