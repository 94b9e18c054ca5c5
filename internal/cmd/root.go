package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/isim/sbsearch/internal/config"
	"github.com/isim/sbsearch/internal/logging"
	"github.com/isim/sbsearch/internal/search"
	"github.com/isim/sbsearch/internal/tui"
)

var (
	bundlePath string
	keyword    string
	logLevel   string
	pageSize   int
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "sbsearch",
	Short: "Search and browse logs in a support bundle",
	Long: `sbsearch scans an unpacked support bundle for log lines containing a
keyword and presents the matches in an interactive terminal viewer,
sorted chronologically across files and nested archives.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&bundlePath, "support-bundle-path", "p", "", "path to the unpacked support bundle (required)")
	rootCmd.Flags().StringVarP(&keyword, "keyword", "k", "", "keyword to search for (required)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "enable diagnostic logging at this level (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&pageSize, "page-size", config.DefaultPageSize, "matches shown per page")

	viper.SetEnvPrefix("SBSEARCH")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("support-bundle-path", rootCmd.Flags().Lookup("support-bundle-path"))
	_ = viper.BindPFlag("keyword", rootCmd.Flags().Lookup("keyword"))
	_ = viper.BindPFlag("log-level", rootCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag("page-size", rootCmd.Flags().Lookup("page-size"))
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		BundlePath: viper.GetString("support-bundle-path"),
		Keyword:    viper.GetString("keyword"),
		PageSize:   viper.GetInt("page-size"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.DefaultPath, viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	engine := search.NewEngine(afero.NewOsFs(), logger)
	app := tui.NewApp(cfg, engine)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
