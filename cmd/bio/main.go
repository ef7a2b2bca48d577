package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/eringen/bio"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	_ = godotenv.Load() // load .env if present

	switch os.Args[1] {
	case "render":
		if err := runRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("bio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	app, err := newApp()
	if err != nil {
		return err
	}
	return app.Serve(ctx)
}

func newApp() (*bio.App, error) {
	opts, err := bio.OptionsFromEnv()
	if err != nil {
		return nil, err
	}
	return bio.New(bio.ConfigFromEnv(), opts...), nil
}

func printUsage() {
	fmt.Println(`bio - render the author bio fragment for a static blog

Usage:
  bio <command> [arguments]

Commands:
  render [-o file]   Build the bio and write the fragment (default: public/bio.html, "-" for stdout)
  serve              Build once and serve a preview on BIO_ADDR
  version            Print the bio version
  help               Show this help message

Environment:
  BIO_CONTENT_DIR, BIO_SITE_FILE, BIO_OUT_DIR, BIO_PROFILE_PIC, BIO_AVATAR_PATTERN,
  BIO_ADDR, BIO_ENV,
  SITE_AUTHOR, SITE_TWITTER`)
}
