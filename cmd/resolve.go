package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/kipdayo/kipdayo/auth"
	"github.com/kipdayo/kipdayo/bilibili"
	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/icon"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/log"
	"github.com/kipdayo/kipdayo/query"
	"github.com/kipdayo/kipdayo/style"
	"github.com/kipdayo/kipdayo/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	addResolveFlags(resolveCmd)
	resolveCmd.Flags().Bool("schema", false, "Print the JSON schema of the output and exit")
}

func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("sessdata", "s", "", "SESSDATA token for this request only")
	cmd.Flags().StringP("mode", "m", "", "Playback strategy (single, multi)")
	cmd.Flags().BoolP("json", "j", false, "Print raw JSON even on a terminal")

	lo.Must0(cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return bilibili.Modes(), cobra.ShellCompDirectiveNoFileComp
	}))
}

var resolveCmd = &cobra.Command{
	Use:               "resolve <url>",
	Short:             "Resolve a video page URL into a direct stream URL",
	Args:              cobra.RangeArgs(0, 1),
	ValidArgsFunction: completionIdentifiers,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(printSchema(cmd))
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		handleErr(runResolve(cmd, args[0]))
	},
}

func completionIdentifiers(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return query.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func stringFlag(flags *pflag.FlagSet, name string) mo.Option[string] {
	if !flags.Changed(name) {
		return mo.None[string]()
	}
	return mo.Some(lo.Must(flags.GetString(name)))
}

func runResolve(cmd *cobra.Command, pageURL string) error {
	if mode, ok := stringFlag(cmd.Flags(), "mode").Get(); ok {
		viper.Set(key.ResolveMode, mode)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	sessdata, source := auth.Sessdata(stringFlag(cmd.Flags(), "sessdata"))
	log.Infof("token source: %s", source)

	play, err := client.ResolvePlayURL(cmd.Context(), pageURL, sessdata)
	if err != nil {
		return err
	}

	if err := query.Remember(play.BVID.String()); err != nil {
		log.Warnf("remember %s: %s", play.BVID, err)
	}

	out, err := play.JSON()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if lo.Must(cmd.Flags().GetBool("json")) || !isTerminal(cmd) {
		_, err = fmt.Fprintln(w, out)
		return err
	}

	badge := style.Tag(color.New("230"), color.Blue)
	if play.Format == bilibili.DASH {
		badge = style.Tag(color.New("230"), color.Pink)
	}

	_, err = fmt.Fprintf(w, "%s %s\n%s\n%s\n",
		icon.Get(icon.Link),
		badge(string(play.Format)),
		play.URL,
		style.Faint(fmt.Sprintf("mode %s, %s token", client.Strategy().Name(), source)),
	)
	return err
}

// isTerminal reports whether cmd writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return util.IsTerminalFd(f.Fd())
}

func printSchema(cmd *cobra.Command) error {
	r := &jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	schema := r.Reflect(&bilibili.PlayURL{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
