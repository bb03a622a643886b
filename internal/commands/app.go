package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/fdkeep-dev/fdkeep/internal/activitylog"
	"github.com/fdkeep-dev/fdkeep/internal/config"
	"github.com/fdkeep-dev/fdkeep/internal/gitops"
	"github.com/fdkeep-dev/fdkeep/internal/vault"
)

// app bundles the loaded config and vault for one command invocation.
type app struct {
	dataDir string
	cfg     *config.Config
	store   *vault.Store
	env     *vault.Envelope
}

// openApp loads the config and decrypts the vault. Commands that mutate
// state call app.persist when done.
func openApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(config.Path(opts.dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no fdkeep data at %s (run fdkeep init)", opts.dataDir)
		}
		return nil, err
	}

	if opts.pin == "" {
		return nil, fmt.Errorf("a PIN is required (--pin or $FDKEEP_PIN)")
	}

	store := vault.NewStore(config.VaultPath(opts.dataDir), opts.pin)
	env, err := store.Load()
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, fmt.Errorf("no vault at %s (run fdkeep init)", store.Path())
	}
	log.Debug("vault loaded", "records", len(env.Records), "holders", len(env.AccountHolders))

	return &app{dataDir: opts.dataDir, cfg: cfg, store: store, env: env}, nil
}

// persist writes the vault back, logs the action to the activity trail,
// and snapshots the data dir when auto-commit is on. Log and snapshot
// failures warn rather than fail; the vault write is the one that matters.
func (a *app) persist(action, details, recordID string) error {
	if err := a.store.Save(a.env); err != nil {
		return err
	}

	if err := activitylog.Record(a.dataDir, action, details, recordID); err != nil {
		log.Warn("activity log write failed", "err", err)
	}

	if a.cfg.Git.AutoCommit {
		hash, err := gitops.Snapshot(a.dataDir, "fdkeep: "+details, a.cfg.Git.AuthorName, a.cfg.Git.AuthorEmail)
		if err != nil {
			log.Warn("git snapshot failed", "err", err)
		} else if hash != "" {
			log.Debug("snapshot committed", "hash", hash)
		}
	}

	return nil
}

// currency returns the configured display symbol.
func (a *app) currency() string {
	if a.env.Settings.CurrencySymbol != "" {
		return a.env.Settings.CurrencySymbol
	}
	return a.cfg.Display.Currency
}
