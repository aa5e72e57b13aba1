// Command pink is the rewrite-rule interpreter's CLI: load an optional
// entry module, then run a REPL that parses each line as an expression
// against the loaded runtime and prints its canonical minimum.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/mcgru/pink/internal/config"
	"github.com/mcgru/pink/internal/engine"
	"github.com/mcgru/pink/internal/eval"
	"github.com/mcgru/pink/internal/history"
	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/logging"
	"github.com/mcgru/pink/internal/replio"
	"github.com/mcgru/pink/internal/resolver"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := pflag.BoolP("debug", "d", false, "print the full runtime on startup and every reachable evaluation at each prompt")
	pflag.Parse()

	cfg, err := config.Load(".pinkrc.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "pink: reading .pinkrc.toml: %s\n", err)
		return 1
	}
	if *debug {
		cfg.Debug = true
	}

	logger := logging.New(cfg.Debug)

	e, err := loadEngine(pflag.Arg(0), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pink: %s\n", err)
		return 1
	}

	if cfg.Debug {
		printRuntime(os.Stdout, e.Runtime)
	}

	hist, err := history.Open(cfg.HistoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pink: opening history: %s\n", err)
		return 1
	}
	defer hist.Close()

	seed, err := hist.Recent(cfg.HistorySize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pink: reading history: %s\n", err)
		return 1
	}

	reader, err := replio.New(os.Stdin, os.Stdout, "pink> ", cfg.HistorySize, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pink: %s\n", err)
		return 1
	}
	defer reader.Close()

	return repl(e, reader, hist, cfg, logger)
}

// loadEngine builds an Engine from an optional entry path: the standard
// library resolver chained to a file resolver rooted at the entry file's
// directory, or just the intrinsic structure when path is empty.
func loadEngine(path string, logger hclogLike) (*engine.Engine, error) {
	if path == "" {
		return engine.Intrinsic(), nil
	}

	dir := filepath.Dir(path)
	root := moduleNameFromPath(path)
	chain := resolver.Chain(resolver.NewStdResolver(), resolver.NewFileResolver(dir))

	logger.Debug("loading entry module", "path", path, "root", root)
	return engine.Load(chain, root)
}

// moduleNameFromPath turns a CLI-supplied entry file path into the bare
// module name the FileResolver's own "<name>.pink" convention expects: the
// base filename with its source extension stripped, so "examples/prog.pink"
// becomes "prog".
func moduleNameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".pink")
}

// hclogLike is the narrow slice of hclog.Logger's interface main uses,
// declared locally so this file doesn't need to import hclog's full type
// just to pass a logger through loadEngine.
type hclogLike interface {
	Debug(msg string, args ...interface{})
}

func printRuntime(w io.Writer, rt *lang.Runtime) {
	fmt.Fprintln(w, "-- runtime --")
	for _, name := range rt.Names() {
		s, _ := rt.Get(name)
		fmt.Fprintf(w, "structure %s: domain=%v reserved=%v definitions=%d\n",
			name, s.Domain.Members(), s.Reserved.Members(), len(s.Definitions))
	}
	fmt.Fprintln(w, "-------------")
}

func repl(e *engine.Engine, reader replio.Reader, hist *history.Store, cfg config.REPL, logger hclogLike) int {
	for {
		line, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return 0
			}
			fmt.Fprintf(os.Stderr, "pink: %s\n", err)
			return 1
		}

		if line == "" {
			continue
		}

		if err := hist.Append(line, time.Now().Unix()); err != nil {
			logger.Debug("history append failed", "error", err)
		}

		expr, err := e.ParseExpression(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		if cfg.Debug {
			evalDebug(e, expr)
			continue
		}

		result, searchErr := evalBounded(e, expr, cfg.StepCap)
		if searchErr != nil {
			fmt.Fprintf(os.Stderr, "pink: %s\n", searchErr)
		}
		fmt.Println(result)
	}
}

// evalBounded runs the evaluator, applying a step cap when cfg.StepCap is
// positive (0 means unbounded, the default). A bound stopping the search
// early still yields the smallest expression found so far.
func evalBounded(e *engine.Engine, expr lang.Expression, stepCap int) (lang.Expression, error) {
	var observer eval.Observer
	if stepCap > 0 {
		observer = eval.WithStepCap(stepCap, nil)
	}
	result := eval.Search(e.Runtime.Definitions(), expr, observer)
	return eval.Min(result.Visited), result.Err
}

// evalDebug runs the full search, listing every reachable expression in
// discovery order - captured directly from Search's observer callback,
// since the returned Visited map has no ordering of its own - before
// printing the canonical minimum.
func evalDebug(e *engine.Engine, expr lang.Expression) {
	var order []lang.Expression
	seen := make(map[string]struct{})

	// visited is the same map instance on every call (Search mutates it in
	// place rather than copying), so membership is tracked in seen - a map
	// this closure owns independently - instead of by diffing visited
	// against a variable that would otherwise end up aliasing it.
	result := eval.Search(e.Runtime.Definitions(), expr, func(step int, elapsed time.Duration, visited map[string]lang.Expression) error {
		for key, v := range visited {
			if _, already := seen[key]; !already {
				seen[key] = struct{}{}
				order = append(order, v)
			}
		}
		return nil
	})

	for _, v := range order {
		fmt.Printf("  %s\n", v)
	}
	fmt.Printf("(%s states visited)\n", humanize.Comma(int64(len(result.Visited))))
	fmt.Println(eval.Min(result.Visited))
}
