package cmd

import (
	"fmt"

	"github.com/kipdayo/kipdayo/filesystem"
	"github.com/kipdayo/kipdayo/icon"
	"github.com/kipdayo/kipdayo/query"
	"github.com/kipdayo/kipdayo/util"
	"github.com/kipdayo/kipdayo/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func removeDir(location func() string) func() error {
	return func() error {
		_, err := filesystem.Remove(location())
		return err
	}
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), removeDir(where.Cache)},
	{"remembered identifiers", "queries", mo.Some("q"), query.Forget},
	{"log files", "logs", mo.Some("l"), removeDir(where.Logs)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := "clear " + target.name
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached data",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(out, fmt.Sprintf("Clearing %s...", target.name))
			err := target.clear()
			erase()
			handleErr(err)
			_, _ = fmt.Fprintf(out, "%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
