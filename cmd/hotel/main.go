package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 4
	usage     = "Usage: hotel <dbname> <port> <user>"
)

func main() {
	if len(os.Args) != argLength {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	cfg.OverrideDatabase(os.Args[1], os.Args[2], os.Args[3])

	fmt.Print("Connecting to database...")

	app, cleanup, err := di.InitializeConsole()
	if err != nil {
		fmt.Println()
		log.Error().Err(err).Msg("Failed to start")
		fmt.Fprintln(os.Stderr, "Make sure you started postgres on this machine")
		os.Exit(1)
	}

	fmt.Println("Done")

	disconnect := sync.OnceFunc(func() {
		fmt.Print("Disconnecting from database...")
		cleanup()
		fmt.Println("Done\n\nBye !")
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go respondToSigterm(signals, disconnect)

	err = app.Run(context.Background(), terminal.New(os.Stdin, os.Stdout))

	disconnect()

	if err != nil {
		log.Error().Err(err).Msg("Console stopped")
		os.Exit(1)
	}
}

func respondToSigterm(done chan os.Signal, disconnect func()) {
	<-done

	defer os.Exit(0)

	fmt.Println()
	log.Warn().Msg("Received SIGTERM. Shutting down now.")

	disconnect()
}
