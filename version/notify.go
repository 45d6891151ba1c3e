package version

import (
	"context"
	"fmt"
	"io"

	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/constant"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/style"
	"github.com/kipdayo/kipdayo/util"
	"github.com/spf13/viper"
)

// Notify prints a notice to w when a newer release exists. Lookup failures
// are silent.
func Notify(ctx context.Context, w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(w, "Checking for a new version...")
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if cmp, err := Compare(latest, constant.Version); err != nil || cmp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
