package cmd

import (
	"runtime"
	"strings"
	"text/template"

	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/style"
	"github.com/kipdayo/kipdayo/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Bold,
	"pink":  style.Fg(color.Pink),
}).Parse(`{{ pink "▇▇▇" }} {{ pink .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Git Commit" }}  {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if lo.Must(cmd.Flags().GetBool("short")) {
			_, _ = out.Write([]byte(constant.Version + "\n"))
			return
		}

		handleErr(versionTemplate.Execute(out, struct {
			App, Version, Revision, BuiltAt, BuiltBy, OS, Arch string
		}{
			App:      constant.App,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
		}))

		version.Notify(cmd.Context(), out)
	},
}
