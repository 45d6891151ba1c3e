package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kipdayo/kipdayo/auth"
	"github.com/kipdayo/kipdayo/color"
	"github.com/kipdayo/kipdayo/icon"
	"github.com/kipdayo/kipdayo/key"
	"github.com/kipdayo/kipdayo/server"
	"github.com/kipdayo/kipdayo/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().StringP("sessdata", "s", "", "Fallback SESSDATA token for requests without the "+server.SessdataHeader+" header")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve resolutions and metrics over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		handleErr(err)

		sessdata, source := auth.Sessdata(stringFlag(cmd.Flags(), "sessdata"))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ready := make(chan string, 1)
		go func() {
			addr := <-ready
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s listening on %s %s\n",
				icon.Get(icon.Server),
				style.Fg(color.Yellow)("http://"+addr),
				style.Faint("(fallback token: "+string(source)+")"),
			)
		}()

		addr := fmt.Sprintf(":%d", viper.GetInt(key.ServerPort))
		handleErr(server.Run(ctx, addr, server.New(server.Options{
			Resolver: client,
			Sessdata: sessdata,
		}), ready))
	},
}
