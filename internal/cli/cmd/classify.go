package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/appshell/internal/cli/styles"
	domainurl "github.com/bnema/appshell/internal/domain/url"
)

var (
	classifyBase  string
	classifyAllow []string
)

var classifyCmd = &cobra.Command{
	Use:   "classify <url>...",
	Short: "Show whether URLs stay inside the app or open in the browser",
	Long: `Classify each URL against the target URL and internal_urls patterns of
the configuration, the same way navigation is routed at runtime.

Use --base to test against another target and --allow to try extra patterns.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyBase, "base", "", "target URL to classify against (default: app.target_url)")
	classifyCmd.Flags().StringSliceVar(&classifyAllow, "allow", nil, "extra internal URL patterns")
}

// ClassifyResult is the routing class of one URL.
type ClassifyResult struct {
	URL            string
	Classification domainurl.Classification
}

func runClassify(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	base := classifyBase
	patterns := append([]string(nil), classifyAllow...)
	if cfg, err := app.RequireConfig(); err == nil {
		if base == "" {
			base = cfg.App.TargetURL
		}
		patterns = append(patterns, cfg.App.InternalURLs...)
	}
	if base == "" {
		return errors.New("no target URL: pass --base or set app.target_url")
	}

	renderClassify(cmd.OutOrStdout(), app.Theme, classifyURLs(base, patterns, args))
	return nil
}

func classifyURLs(base string, patterns, urls []string) []ClassifyResult {
	classifier := domainurl.NewClassifier(domainurl.Normalize(base), patterns)
	results := make([]ClassifyResult, 0, len(urls))
	for _, u := range urls {
		results = append(results, ClassifyResult{URL: u, Classification: classifier.Classify(u)})
	}
	return results
}

func renderClassify(w io.Writer, theme *styles.Theme, results []ClassifyResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s %s\n", theme.ClassificationBadge(r.Classification), r.URL)
	}
}
