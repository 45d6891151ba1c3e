package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/kipdayo/kipdayo/auth"
	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/icon"
	"github.com/kipdayo/kipdayo/style"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authShowCmd, authClearCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the SESSDATA token stored in the OS keyring",
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store a SESSDATA token, prompting for it when omitted",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(
				&survey.Password{Message: "SESSDATA:"},
				&token,
				survey.WithValidator(survey.Required),
			))
		}

		handleErr(auth.Set(strings.TrimSpace(token)))
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s token stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Report which token source a resolution would use",
	Run: func(cmd *cobra.Command, args []string) {
		_, source := auth.Sessdata(mo.None[string]())

		stored := style.Fg(color.Red)("no")
		if auth.Stored() {
			stored = style.Fg(color.Green)("yes")
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s keyring token: %s\n%s active source: %s\n",
			icon.Get(icon.Lock), stored,
			icon.Get(icon.Question), style.Fg(color.Yellow)(string(source)),
		)
	},
}

var authClearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"logout"},
	Short:   "Remove the stored token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.Clear())
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
