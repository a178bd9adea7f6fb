// Package main is the entry point for the bazed backend process.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/druskus20/bazed/internal/config"
	"github.com/druskus20/bazed/internal/rpc"
	"github.com/druskus20/bazed/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	var addr string
	var configPath string

	flag.StringVar(&addr, "addr", "", "Listen address (overrides config file)")
	flag.StringVar(&configPath, "config", "", "Path to configuration file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Bazed backend - split-process editor core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: bazed [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bazed                       Serve an ephemeral buffer\n")
		fmt.Fprintf(os.Stderr, "  bazed file.txt              Serve a file\n")
		fmt.Fprintf(os.Stderr, "  bazed -addr 127.0.0.1:7000  Bind a specific address\n")
	}

	// Log to stderr unless told otherwise; there is no terminal UI in
	// this process to clobber.
	_ = flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}
	applyLogLevel(cfg.LogLevel)
	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file may be given\n")
		flag.Usage()
		return 1
	}
	if flag.NArg() == 1 {
		cfg.File = flag.Arg(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	send, calls, err := rpc.WaitForClient(ctx, cfg.ListenAddr)
	if err != nil {
		glog.Errorf("failed to accept client: %v", err)
		return 1
	}

	sess := session.New(send)
	done := make(chan struct{})
	go func() {
		defer close(done)
		sess.Run(ctx, calls)
	}()

	if cfg.File != "" {
		err = sess.OpenFile(cfg.File)
	} else {
		err = sess.OpenEphemeral()
	}
	if err != nil {
		glog.Errorf("failed to open initial document: %v", err)
		cancel()
		<-done
		return 1
	}

	<-done
	return 0
}

// applyLogLevel sets glog's verbosity from the config file unless the -v
// flag was given on the command line, which takes precedence.
func applyLogLevel(level string) {
	if level == "" {
		return
	}
	vSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "v" {
			vSet = true
		}
	})
	if !vSet {
		_ = flag.Set("v", level)
	}
}
