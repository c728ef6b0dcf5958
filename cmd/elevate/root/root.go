// Package root holds the offline companion CLI. It works only against the
// local profile document: streak, roadmap progress, task toggles, and the
// local strategy engine. No network calls.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	filestore "github.com/NARENN143/Career/internal/adapters/storage/file"
	profileapp "github.com/NARENN143/Career/internal/app/profile"
	"github.com/NARENN143/Career/internal/domain"
	"github.com/NARENN143/Career/internal/ui"
)

const Version = "0.1.0"

var (
	flagDataDir string
	flagUser    string
)

var rootCmd = &cobra.Command{
	Use:           "elevate",
	Short:         "ElevateAI offline strategist (local career feed)",
	Long:          "Elevate is the offline companion to the ElevateAI mentor: streaks, roadmap progress and the local strategy engine, straight from your profile file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "profile directory (default ~/.elevate)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "default", "profile to operate on")

	rootCmd.AddCommand(
		newStatusCmd(),
		newAskCmd(),
		newDoneCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// openStore resolves the data dir and opens the JSON-file profile store.
func openStore() (*filestore.ProfileStore, domain.UserID, error) {
	dir := flagDataDir
	if dir == "" {
		var err error
		dir, err = filestore.DefaultDir()
		if err != nil {
			return nil, "", err
		}
	}
	store, err := filestore.NewProfileStore(dir)
	if err != nil {
		return nil, "", err
	}
	return store, domain.UserID(flagUser), nil
}

// openService wraps the store in the profile service (advisor/roadmap stay
// nil offline; loading still advances the streak).
func openService() (*profileapp.Service, *filestore.ProfileStore, domain.UserID, error) {
	store, userID, err := openStore()
	if err != nil {
		return nil, nil, "", err
	}
	return profileapp.NewService(store, nil, nil), store, userID, nil
}
