package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-starfield/internal/camera"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/logging"
)

// scriptFrame is the simulated executor step.
const scriptFrame = 30 * time.Millisecond

// kindWait advances the simulated clock by duration_ms.
const kindWait = "wait"

var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Replay a JSON-lines camera command script",
	Long: `Replay camera commands headlessly against a simulated executor.

Each line is a JSON camera request, for example
  {"kind":"focusStar","star_id":32349}
  {"kind":"moveTo","position":{"x":0,"y":-5,"z":1},"duration_ms":500}
  {"kind":"wait","duration_ms":1200}
Blank lines and lines starting with # are skipped. Reads stdin when no
file is given or the file is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScriptCmd,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

func runScriptCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	return runScript(in, cmd.OutOrStdout(), store, cfg.Camera(), logger)
}

// runScript applies each request in order. wait lines step the executor
// on a simulated clock and forward completions to the machine.
func runScript(r io.Reader, w io.Writer, acc catalog.Accessor, cfg camera.Config, logger *logging.Logger) error {
	start := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	stamp := func() string {
		return fmt.Sprintf("%8.3fs", now.Sub(start).Seconds())
	}

	m := camera.NewMachine(acc, cfg,
		camera.WithLogger(logger),
		camera.OnCommand(func(a camera.Active) {
			fmt.Fprintf(w, "%s  #%-3d issue     %s\n", stamp(), a.Seq, a.Command)
		}),
		camera.OnComplete(func(a camera.Active) {
			fmt.Fprintf(w, "%s  #%-3d complete  %s\n", stamp(), a.Seq, a.Command.Kind())
		}),
	)
	exec := camera.NewExecutor(camera.DefaultExecutorConfig())

	wait := func(d time.Duration) {
		end := now.Add(d)
		for now.Before(end) {
			now = now.Add(scriptFrame)
			if now.After(end) {
				now = end
			}
			if _, a, done := exec.Step(now); done {
				m.Complete(a.Seq)
			}
			pending, ok := m.Pending()
			exec.Sync(pending, ok, now)
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		req, err := camera.ParseRequest([]byte(line))
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if req.Kind == kindWait {
			if req.DurationMs == nil || *req.DurationMs < 0 {
				return fmt.Errorf("line %d: wait needs a non-negative duration_ms", lineNo)
			}
			wait(time.Duration(*req.DurationMs) * time.Millisecond)
			continue
		}

		if !m.Apply(req) {
			fmt.Fprintf(w, "%s  line %d rejected: %s\n", stamp(), lineNo, line)
			continue
		}
		pending, ok := m.Pending()
		exec.Sync(pending, ok, now)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	pose := exec.Pose()
	fmt.Fprintf(w, "%s  %s, pose %s looking at %s\n", stamp(), m.State(), pose.Position, pose.LookAt)
	return nil
}
