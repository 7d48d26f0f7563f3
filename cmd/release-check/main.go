package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eivindveg/go-releasemanager"
	"github.com/eivindveg/go-releasemanager/cmd"
	"github.com/spf13/pflag"
)

func usage() {
	fmt.Fprint(os.Stderr, `Usage: release-check [flags] {repo}

  {repo} must be URL to the repository or in 'owner/name' format.

Flags:
`)
	pflag.PrintDefaults()
}

func main() {
	var (
		verbose, list     bool
		current, cvsType  string
		urlTemplate, home string
		constraint        string
		modelVersion      int64
		timeout           time.Duration
	)
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Display debugging information")
	pflag.BoolVarP(&list, "list", "l", false, "List all the published releases, newest first")
	pflag.StringVarP(&current, "current", "c", "0.0.0", "Version of the running application")
	pflag.StringVarP(&cvsType, "type", "t", "auto", `Version control: "github", "gitea", "gitlab" or "http"`)
	pflag.StringVar(&urlTemplate, "url", "", "URL of the list of releases for the http type, with {maintainer} and {repository} placeholders")
	pflag.StringVar(&constraint, "constraint", "", "Only consider releases matching this semantic version constraint")
	pflag.StringVar(&home, "home", "", "Application home directory holding the model version marker")
	pflag.Int64Var(&modelVersion, "model-version", 0, "Model version expected by the application (needs --home)")
	pflag.DurationVar(&timeout, "timeout", releasemanager.DefaultTimeout, "Maximum time to wait for the list of releases")

	pflag.Usage = usage
	pflag.Parse()

	if pflag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "release-check",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		releasemanager.SetLogger(debugLogger{logger})
	}

	domain, slug, err := cmd.SplitDomainSlug(pflag.Arg(0))
	if err != nil {
		logger.Fatal("invalid repository", "err", err)
	}
	source, err := cmd.GetSource(cvsType, domain, urlTemplate)
	if err != nil {
		logger.Fatal("cannot create release source", "err", err)
	}
	repo := releasemanager.ParseSlug(slug)
	owner, name, _ := repo.GetSlug()

	if home != "" {
		checkModel(logger, home, modelVersion)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if list {
		if err := listReleases(ctx, source, repo); err != nil {
			logger.Fatal("cannot list releases", "err", err)
		}
		return
	}

	updater, err := releasemanager.NewUpdater(releasemanager.Config{
		Maintainer:     owner,
		Repository:     name,
		CurrentVersion: current,
		Source:         source,
		Constraint:     constraint,
	})
	if err != nil {
		logger.Fatal("cannot create updater", "err", err)
	}

	result := updater.Check(ctx)
	switch result.Status {
	case releasemanager.StatusFound:
		fmt.Printf("Newer version: %s\n", result.Release.Version())
		fmt.Printf("Release URL: %s\n", result.Release.URL)
		if result.Release.Prerelease {
			fmt.Println("This is a pre-release")
		}
	case releasemanager.StatusUnavailable:
		logger.Warn("no update information available", "err", result.Err)
		fmt.Printf("Current version %s is assumed up to date\n", updater.CurrentVersion())
	default:
		fmt.Printf("Current version %s is up to date\n", updater.CurrentVersion())
	}
}

func checkModel(logger *log.Logger, home string, expected int64) {
	home, err := filepath.Abs(home)
	if err != nil {
		logger.Fatal("invalid home directory", "err", err)
	}
	guard, err := releasemanager.NewModelGuard(releasemanager.ModelGuardConfig{
		Home:     home,
		Expected: expected,
	})
	if err != nil {
		logger.Fatal("cannot check model version", "err", err)
	}
	result := guard.Run()
	switch result.State {
	case releasemanager.ModelUnavailable:
		logger.Warn("model version unavailable", "path", guard.Path(), "err", result.Err)
	case releasemanager.ModelStale:
		logger.Warn("local data needs migration", "stored", result.Stored, "expected", result.Expected)
	default:
		logger.Info("model version", "state", result.State, "stored", result.Stored)
	}
}

// debugLogger sends the library logs at debug level
type debugLogger struct {
	logger *log.Logger
}

func (l debugLogger) Print(v ...interface{}) {
	l.logger.Debug(fmt.Sprint(v...))
}

func (l debugLogger) Printf(format string, v ...interface{}) {
	l.logger.Debugf(format, v...)
}
