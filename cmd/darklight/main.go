package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/Veraticus/dark-light/pkg/config"
)

func main() {
	var (
		configPath string
		watchOnce  bool
		follow     bool
		interval   time.Duration
		timeout    time.Duration
		noNotify   bool
		verbose    bool
		noColor    bool
		format     string
		help       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVarP(&watchOnce, "watch", "w", false, "Wait for the mode to change and print the new mode")
	flag.BoolVarP(&follow, "follow", "f", false, "Print every mode change until interrupted")
	flag.DurationVar(&interval, "interval", 0, "Polling interval while watching (default from config, 500ms)")
	flag.DurationVar(&timeout, "timeout", 0, "Give up watching after this long (0 waits forever)")
	flag.BoolVar(&noNotify, "no-notify", false, "Poll only, without OS change notifications")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Log detection and watch progress to stderr")
	flag.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flag.StringVar(&format, "format", "", "Output format: text or json (default from config, text)")
	flag.BoolVarP(&help, "help", "h", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	if watchOnce && follow {
		fmt.Fprintln(os.Stderr, "Error: --watch and --follow are mutually exclusive")
		os.Exit(2)
	}

	// The config path must be known before loading
	if configPath != "" {
		if err := os.Setenv("DARKLIGHT_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if flag.CommandLine.Changed("interval") {
		if interval <= 0 {
			fmt.Fprintln(os.Stderr, "Error: --interval must be positive")
			os.Exit(2)
		}
		cfg.PollInterval = interval
	}
	if flag.CommandLine.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if format != "" {
		cfg.Format = format
	}
	if noNotify {
		cfg.Notify = false
	}
	if verbose {
		cfg.Verbose = true
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}

	color := cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))

	deps, err := NewDependencies(cfg, os.Stdout, color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dependencies: %v\n", err)
		os.Exit(1)
	}

	app := NewApplication(deps)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	switch {
	case follow:
		err = app.Follow(ctx)
	case watchOnce:
		err = app.Watch(ctx)
	default:
		err = app.Detect()
	}

	code := exitCode(err)
	if code == 1 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	deps.Close()
	os.Exit(code)
}

func printUsage() {
	fmt.Println("darklight - report whether the OS is in dark or light mode")
	fmt.Println()
	fmt.Println("Usage: darklight [OPTIONS]")
	fmt.Println()
	fmt.Println("Prints \"dark\" or \"light\". Undetectable settings are reported as light.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DARKLIGHT_CONFIG         Path to config file")
	fmt.Println("  DARKLIGHT_POLL_INTERVAL  Polling interval while watching (default: 500ms)")
	fmt.Println("  DARKLIGHT_TIMEOUT        Watch timeout (default: none)")
	fmt.Println("  DARKLIGHT_NOTIFY         Use OS change notifications (true/false)")
	fmt.Println("  DARKLIGHT_VERBOSE        Log progress to stderr (true/false)")
	fmt.Println("  DARKLIGHT_COLOR          Colored output on terminals (true/false)")
	fmt.Println("  DARKLIGHT_FORMAT         Output format: text or json (default: text)")
	fmt.Println("  NO_COLOR                 Disable colored output")
	fmt.Println()
	fmt.Println("Exit codes: 0 ok, 1 error or timeout, 2 usage, 130 interrupted")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/darklight/config.yaml")
}
