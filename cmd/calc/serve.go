package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/server"
)

func (a *app) serveCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.Listen
			if listen != "" {
				addr = listen
			}
			srv := server.New(a.hist, a.mode)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-quit
				log.Println("Shutting down...")
				if err := srv.Shutdown(); err != nil {
					log.Printf("shutdown: %v", err)
				}
			}()

			log.Printf("calc listening on %s (angle %v, history %q)", addr, a.mode, a.hist.Path())
			return srv.Listen(addr)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (default from config)")
	return cmd
}
