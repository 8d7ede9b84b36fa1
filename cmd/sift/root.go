package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	redisclient "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atelier-tools/sift/internal/adapters/fileprefs"
	"github.com/atelier-tools/sift/internal/logging"
	"github.com/atelier-tools/sift/pkg/adapters/memory"
	redisprefs "github.com/atelier-tools/sift/pkg/adapters/redis"
	"github.com/atelier-tools/sift/pkg/adapters/yamldoc"
	"github.com/atelier-tools/sift/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Sift filters and batch-edits design document elements",
	Long: `Sift evaluates attribute filters over a design document tree and
applies bulk actions (select, rename, duplicate, delete, export) to the
matched elements.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("doc", "document.yaml", "Path to the YAML document file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	viper.SetConfigName("sift")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.sift")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("SIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	_ = viper.ReadInConfig()

	_ = viper.BindPFlag("doc", rootCmd.PersistentFlags().Lookup("doc"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// newLogger builds the application logger from the configured level.
func newLogger() *slog.Logger {
	return logging.New(logging.ParseLevel(viper.GetString("log-level")))
}

// loadTree opens the configured document into an in-process tree.
func loadTree() (*memory.DocumentTree, error) {
	path := viper.GetString("doc")
	doc, err := yamldoc.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return memory.NewDocumentTree(doc)
}

// newPreferenceStore picks the preference backend: Redis when an address
// is configured, a locked JSON file otherwise.
func newPreferenceStore() ports.PreferenceStore {
	if addr := viper.GetString("prefs.redis"); addr != "" {
		client := redisclient.NewClient(&redisclient.Options{Addr: addr})
		return redisprefs.New(client)
	}
	path := viper.GetString("prefs.path")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, ".sift", "prefs.json")
	}
	return fileprefs.New(path)
}
