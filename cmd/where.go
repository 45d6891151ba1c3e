package cmd

import (
	"fmt"

	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/style"
	"github.com/kipdayo/kipdayo/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
	{"Cache", where.Cache, "cache", mo.None[string]()},
	{"Queries", where.Queries, "queries", mo.Some("q")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where kipdayo keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		header := style.New().Bold(true).Foreground(color.Purple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				_, _ = fmt.Fprintln(out, n.where())
				return
			}
		}

		for i, n := range wherePaths {
			_, _ = fmt.Fprintf(out, "%s %s\n%s\n", header(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong), n.where())
			if i < len(wherePaths)-1 {
				_, _ = fmt.Fprintln(out)
			}
		}
	},
}
