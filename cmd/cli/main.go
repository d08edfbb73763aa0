package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/buildinfo"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/cli"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
