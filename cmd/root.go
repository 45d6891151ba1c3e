// Package cmd implements the kipdayo command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/icon"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/log"
	"github.com/kipdayo/kipdayo/style"
	"github.com/kipdayo/kipdayo/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (emoji, nerd, plain, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addResolveFlags(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Resolve bilibili video pages into direct stream URLs",
	Long: style.Fg(color.Pink)(constant.App) + " " +
		style.Faint("turns a bilibili video page URL into a direct, playable media URL"),
	Example: "  " + constant.App + " https://www.bilibili.com/video/BV1xx411c7mD\n" +
		"  " + constant.App + " resolve --mode multi --json BV1xx411c7mD",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionIdentifiers,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.SetContext(cmd.Context())
			versionCmd.Run(versionCmd, nil)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		handleErr(runResolve(cmd, args[0]))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		handleErr(err)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	prefix := icon.Get(icon.Fail)
	msg := util.Capitalize(strings.Trim(err.Error(), " \n"))
	if prefix != "" {
		msg = util.Wrap(prefix+" "+msg, util.TerminalWidth(), uint(len([]rune(prefix))+1))
	}
	_, _ = fmt.Fprintln(os.Stderr, style.Fg(color.Red)(msg))
	os.Exit(1)
}
