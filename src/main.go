package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/types"
	"elevsim/src/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file. Defaults are used when empty")
	envPath := flag.String("env", ".env", "Path to a .env file with ELEVSIM_* overrides")
	demo := flag.Bool("demo", false, "Run the built-in scenarios instead of reading commands from stdin")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := utils.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	utils.InitLogger(os.Stdout, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	building, err := dispatcher.New(ctx, cfg)
	if err != nil {
		slog.Error("Could not build fleet", "err", err)
		os.Exit(1)
	}

	script := io.Reader(os.Stdin)
	if *demo {
		script = strings.NewReader(demoScript)
	}
	if err := runScript(ctx, building, script, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Script failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(configPath, envPath string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}
	fileEnv, err := config.ReadEnvFile(envPath)
	if err != nil {
		return cfg, err
	}
	return config.ApplyEnv(cfg, fileEnv)
}

const demoScript = `
# Multiple requests to upper floors
request 15 up
request 8 up
request 12 up
request 5 down
wait
status
# Floor validation
request 25 up
request -1 down
# Mixed direction requests
request 10 up
request 3 down
request 18 up
wait
status
`

// runScript executes one command per line:
//   - request <floor> <up|down>
//   - wait
//   - status
//
// Blank lines and lines starting with # are skipped. Rejected requests are reported and do not stop the script.
func runScript(ctx context.Context, building *dispatcher.Dispatcher, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "request":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: usage: request <floor> <up|down>", lineNum)
			}
			floor, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: floor: %w", lineNum, err)
			}
			dir, err := types.ParseDirection(fields[2])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			id, err := building.RequestElevator(floor, dir)
			if err != nil {
				fmt.Fprintf(w, "request %d %s rejected: %v\n", floor, dir, err)
				continue
			}
			fmt.Fprintf(w, "request %d %s dispatched to elevator %d\n", floor, dir, id)
		case "wait":
			if err := building.WaitIdle(ctx); err != nil {
				return err
			}
		case "status":
			utils.PrintStatus(w, building.Status())
		default:
			return fmt.Errorf("line %d: unknown command %q", lineNum, fields[0])
		}
	}
	return scanner.Err()
}
