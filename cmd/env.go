package cmd

import (
	"os"
	"strings"

	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/config"
	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/style"
	"github.com/kipdayo/kipdayo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames lists every variable kipdayo reads, sorted.
func envNames() []string {
	names := lo.Map(append(slices.Clone(config.EnvExposed), key.AuthSessdata), func(k string, _ int) string {
		return strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(k))
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List supported environment variables and their values",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		out := cmd.OutOrStdout()
		sessdataEnv := strings.ToUpper(constant.App + "_" + key.AuthSessdata)

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			present = present && value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			name := style.New().Bold(true).Foreground(color.Purple).Render(env)
			switch {
			case !present:
				value = style.Fg(color.Red)("unset")
			case env == sessdataEnv:
				value = style.Fg(color.Green)("(set, hidden)")
			default:
				value = style.Fg(color.Green)(value)
			}

			_, _ = out.Write([]byte(name + "=" + value + "\n"))
		}
	},
}
