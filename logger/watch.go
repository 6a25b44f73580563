package logger

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file at path whenever it is written or
// replaced, and applies it to l. Each override runs on the reloaded config
// before it is validated, so settings that do not come from the file (such
// as command-line flags) survive a reload. Reload failures are written as
// error lines on the console and leave the running configuration in place.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, l *Logger, overrides ...func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors that save by renaming a temp file over
	// the original drop a watch placed on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := reloadConfig(path, overrides)
			if err != nil {
				l.report(fmt.Errorf("reloading %s: %w", path, err))
				continue
			}
			l.Apply(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.report(fmt.Errorf("config watcher: %w", err))
		}
	}
}

func reloadConfig(path string, overrides []func(*Config)) (Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	if len(overrides) == 0 {
		return cfg, nil
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
