// Command ops is the operator tool for a local task store: data-dir
// backup/restore and whole-store JSON export/import.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/YugGandhi/ToDoList/internal/codec"
	"github.com/YugGandhi/ToDoList/internal/config"
	"github.com/YugGandhi/ToDoList/internal/ops"
	"github.com/YugGandhi/ToDoList/internal/reminder"
	"github.com/YugGandhi/ToDoList/internal/stats"
	"github.com/YugGandhi/ToDoList/internal/storage"
	"github.com/YugGandhi/ToDoList/internal/store"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = cmdBackup(os.Args[2:])
	case "restore":
		err = cmdRestore(os.Args[2:])
	case "export":
		err = cmdExport(os.Args[2:])
	case "import":
		err = cmdImport(os.Args[2:])
	case "stats":
		err = cmdStats(os.Args[2:])
	case "remind":
		err = cmdRemind(os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error(os.Args[1]+" failed", "err", err)
		os.Exit(1)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "todolist-"+ts+".tar.gz")
	}
	if err := ops.BackupDataDir(cfg.DataDir, *out); err != nil {
		return err
	}
	m, err := ops.ReadManifest(*out)
	if err != nil {
		return err
	}
	logger.Info("backup written", "archive", *out, "files", len(m.Files))
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	archive := fs.String("archive", "", "archive to restore (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("-archive is required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if err := ops.RestoreDataDir(*archive, cfg.DataDir); err != nil {
		return err
	}
	logger.Info("restored", "data_dir", cfg.DataDir)
	return nil
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, closeStore, err := openStore(*cfgPath)
	if err != nil {
		return err
	}
	defer closeStore()

	doc, err := codec.Export(s.Tasks(), s.Categories())
	if err != nil {
		return err
	}
	if *out == "" {
		fmt.Println(string(doc))
		return nil
	}
	if err := os.WriteFile(*out, doc, 0o644); err != nil {
		return err
	}
	logger.Info("exported", "file", *out, "tasks", len(s.Tasks()))
	return nil
}

func cmdImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	in := fs.String("in", "", "JSON document to import")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	tasks, categories, err := codec.Import(data)
	if err != nil {
		return err
	}

	s, closeStore, err := openStore(*cfgPath)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.ImportReplace(tasks, categories); err != nil {
		return err
	}
	logger.Info("imported", "tasks", len(tasks), "categories", len(categories))
	return nil
}

func cmdStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, closeStore, err := openStore(*cfgPath)
	if err != nil {
		return err
	}
	defer closeStore()

	summary := stats.Calculate(s.Tasks(), s.Categories(), time.Now())
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

type logNotifier struct{ log *log.Logger }

func (n logNotifier) Notify(r reminder.Notification) {
	n.log.Info("reminder", "task", r.Title, "id", r.TaskID)
}

// cmdRemind watches the store and logs each reminder as it comes due,
// until interrupted.
func cmdRemind(args []string) error {
	fs := flag.NewFlagSet("remind", flag.ContinueOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	s, closeStore, err := openStore(*cfgPath)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sched := reminder.New(reminder.Config{
		Source:   s,
		Notifier: logNotifier{log: logger},
		Interval: cfg.PollInterval(),
		Logger:   logger,
	})
	sched.Start(ctx)
	logger.Info("watching for reminders", "interval", cfg.PollInterval())
	<-ctx.Done()
	sched.Stop()
	return nil
}

func openStore(cfgPath string) (*store.Store, func(), error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	adapter, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.New(adapter, nil, logger)
	if err != nil {
		adapter.Close()
		return nil, nil, err
	}
	return s, func() { adapter.Close() }, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: ops <command> [flags]

commands:
  backup   archive the data directory to a .tar.gz
  restore  unpack an archive into the data directory
  export   print the store as a JSON document
  import   replace the store from a JSON document
  stats    print summary statistics for the store
  remind   watch the store and log reminders as they come due`)
}
