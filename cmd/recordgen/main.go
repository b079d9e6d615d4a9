// recordgen generates record types from schema files.
//
// Run: recordgen -schema schemas.yaml -target ./record -pkg example.com/app/record
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/recordgen/compiler/gen"
	"github.com/syssam/recordgen/compiler/load"
)

// debounceDelay coalesces bursts of file events into a single regeneration.
const debounceDelay = 200 * time.Millisecond

func main() {
	var (
		schemaPaths = flag.String("schema", "", "comma-separated schema files (required)")
		target      = flag.String("target", "", "output directory (required)")
		pkg         = flag.String("pkg", "", "import path of the generated package")
		header      = flag.String("header", "", "file header comment override")
		workers     = flag.Int("workers", 0, "parallel generation workers (0 = GOMAXPROCS)")
		watch       = flag.Bool("watch", false, "watch schema files and regenerate on change")
	)
	flag.Parse()

	if *schemaPaths == "" || *target == "" {
		flag.Usage()
		os.Exit(2)
	}
	paths := strings.Split(*schemaPaths, ",")

	opts := []gen.Option{gen.WithTarget(*target), gen.WithWorkers(*workers)}
	if *pkg != "" {
		opts = append(opts, gen.WithPackage(*pkg))
	}
	if *header != "" {
		opts = append(opts, gen.WithHeader(*header))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generate(ctx, cfg, paths); err != nil {
		fail(err)
	}
	if !*watch {
		return
	}
	if err := watchAndRegenerate(ctx, cfg, paths); err != nil {
		fail(err)
	}
}

// generate loads every schema file and runs one full generation pass.
// A failure in any file aborts the pass before anything is written.
func generate(ctx context.Context, cfg *gen.Config, paths []string) error {
	var schemas []*load.Schema
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		loaded, err := load.FromFile(p)
		if err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
		schemas = append(schemas, loaded...)
	}
	set, err := gen.NewSet(cfg, schemas...)
	if err != nil {
		return err
	}
	if err := set.Generate(ctx); err != nil {
		return err
	}
	for _, t := range set.Records {
		fmt.Printf("generated %s\n", filepath.Join(cfg.Target, t.FileName()))
	}
	return nil
}

// watchAndRegenerate regenerates the target on every schema change until the
// context is canceled. Failed passes are reported and watching continues, so
// a broken intermediate save doesn't kill the loop.
func watchAndRegenerate(ctx context.Context, cfg *gen.Config, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the containing directories: editors replace files on save and
	// direct file watches are lost across the rename.
	dirs := make(map[string]struct{})
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			dirs[filepath.Dir(p)] = struct{}{}
		}
	}
	watched := make(map[string]struct{})
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			abs, err := filepath.Abs(p)
			if err != nil {
				return err
			}
			watched[abs] = struct{}{}
		}
	}
	for d := range dirs {
		if err := watcher.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}
	fmt.Println("watching for schema changes...")

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[abs]; !ok {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-pending:
			if err := generate(ctx, cfg, paths); err != nil {
				fmt.Fprintf(os.Stderr, "regeneration failed: %v\n", err)
			}
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "recordgen: %v\n", err)
	os.Exit(1)
}
