package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", "", `output file ("-" for stdout)`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	app, err := newApp()
	if err != nil {
		return err
	}

	switch *out {
	case "":
		path, err := app.WriteFragment(ctx)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	case "-":
		return app.RenderTo(ctx, os.Stdout)
	default:
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create %s: %w", *out, err)
		}
		if err := app.RenderTo(ctx, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
}
