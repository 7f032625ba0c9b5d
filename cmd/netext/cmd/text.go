package cmd

import (
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	nxerrors "github.com/msto63/netext/core/errors"
	"github.com/msto63/netext/core/log"
	"github.com/msto63/netext/utils/stringx"
)

func newRightCmd(a *app) *cobra.Command {
	var pad string

	cmd := &cobra.Command{
		Use:   "right TEXT LENGTH",
		Short: "Print the last LENGTH characters of TEXT",
		Long: `Print the last LENGTH characters of TEXT.

With --pad (or right.pad in the config file) shorter input is
left-padded to exactly LENGTH characters.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return nxerrors.InvalidInput(nxerrors.ModuleCLI, "right", args[1], "integer length")
			}

			if !cmd.Flags().Changed("pad") {
				pad = a.cfg.GetString("right.pad")
			}

			var result string
			switch utf8.RuneCountInString(pad) {
			case 0:
				result, err = stringx.Right(args[0], length)
			case 1:
				r, _ := utf8.DecodeRuneInString(pad)
				result, err = stringx.RightPad(args[0], length, r)
			default:
				return nxerrors.InvalidInput(nxerrors.ModuleCLI, "right", pad, "single pad character")
			}
			if err != nil {
				return err
			}

			a.logger.Debug("right", log.Fields{"length": length, "pad": pad})
			printLine(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pad, "pad", "", "pad character for input shorter than LENGTH")
	return cmd
}

func newRemoveRightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-right TEXT VALUE",
		Short: "Remove one trailing occurrence of VALUE from TEXT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, stringx.RemoveRight(args[0], args[1]))
			return nil
		},
	}
}

func newEnsurePrefixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-prefix TEXT PREFIX",
		Short: "Prepend PREFIX to TEXT unless it already starts with it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, stringx.EnsureBeginsWith(args[0], args[1]))
			return nil
		},
	}
}

func newEnsureSuffixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-suffix TEXT SUFFIX",
		Short: "Append SUFFIX to TEXT unless it already ends with it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, stringx.EnsureEndsWith(args[0], args[1]))
			return nil
		},
	}
}

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace TEXT NEW OLD...",
		Short: "Replace every OLD value in TEXT with NEW, in argument order",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("replace", log.Fields{"values": len(args) - 2})
			printLine(cmd, stringx.Replace(args[0], args[1], args[2:]...))
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TEXT VALUE...",
		Short: "Remove every VALUE from TEXT, in argument order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("remove", log.Fields{"values": len(args) - 1})
			printLine(cmd, stringx.Remove(args[0], args[1:]...))
			return nil
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format TEMPLATE [ARG...]",
		Short: "Substitute ARGs into {index[,alignment][:verb]} placeholders",
		Long: `Substitute ARGs into TEMPLATE.

Placeholders have the form {index[,alignment][:verb]}: {0} is the first
ARG, {1,8} right-aligns the second in 8 columns, {0,-8} left-aligns.
Use {{ and }} for literal braces. ARGs that parse as integers or
floats are passed as numbers so numeric verbs like {0:x} work.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]interface{}, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, parseArg(arg))
			}

			result, err := stringx.FormatWith(args[0], values...)
			if err != nil {
				a.logger.LogError(err)
				return err
			}
			printLine(cmd, result)
			return nil
		},
	}
}

// parseArg converts numeric command line arguments
func parseArg(arg string) interface{} {
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}
