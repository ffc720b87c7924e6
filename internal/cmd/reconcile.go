package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openfauna/zoolist/pkg/enrich"
	"github.com/openfauna/zoolist/pkg/errors"
	"github.com/openfauna/zoolist/pkg/export"
	"github.com/openfauna/zoolist/pkg/logging"
	"github.com/openfauna/zoolist/pkg/reconcile"
	"github.com/openfauna/zoolist/pkg/sources"
	"github.com/openfauna/zoolist/pkg/zoos"
)

func newReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Merge source dumps into a ranked canonical zoo set",
		Long: `Reconcile reads record dumps from the configured sources, folds them
into a deduplicated canonical set, ranks the set by confidence, and
writes it to the chosen output target.`,
		RunE: runReconcile,
	}

	cmd.Flags().String("wiki", "", "path to the wiki listing dump (json or yaml)")
	cmd.Flags().String("directory", "", "path to the membership directory dump (json or yaml)")
	cmd.Flags().String("websearch", "", "path to the web-search dump (json or yaml)")
	cmd.Flags().String("format", "table", "output format (table, json, sql)")
	cmd.Flags().String("out", "", "write output to file instead of stdout")
	cmd.Flags().String("db", "", "also apply the set to a SQLite database at this path")
	cmd.Flags().Int("limit", 0, "keep only the top N ranked zoos (0 = all)")
	cmd.Flags().String("filter", "", "keep only zoos whose name contains this substring")
	cmd.Flags().Bool("provenance", false, "track field-level provenance in the JSON report")
	cmd.Flags().Bool("enrich", false, "look up animal lists for each zoo (needs GEMINI_API_KEY)")
	cmd.Flags().String("enrich-cache", "", "path to the enrichment cache file")
	cmd.Flags().Int("match-containment-min", 0, "override containment length guard")
	cmd.Flags().Int("match-edit-distance", -1, "override maximum edit distance")

	return cmd
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := logging.WithLogger(cmd.Context(), logging.Default())
	log := logging.FromContext(ctx)

	srcs := configuredSources()
	if len(srcs) == 0 {
		return errors.New("no sources configured: pass at least one of --wiki, --directory, --websearch")
	}

	records, err := sources.FetchAll(ctx, srcs)
	if err != nil {
		return err
	}

	rec, err := reconcile.New(
		reconcile.WithMatchConfig(matchConfigFromFlags()),
		reconcile.WithLogger(log),
		reconcile.WithProvenance(viper.GetBool("provenance")),
	)
	if err != nil {
		return err
	}

	result := rec.Reconcile(records)
	log.Info().Msg(result.Summary())

	ranked := reconcile.Rank(result.Zoos)
	ranked = applyFilters(ranked, viper.GetString("filter"), viper.GetInt("limit"))

	if db := viper.GetString("db"); db != "" {
		if err := export.ApplySQLite(ctx, db, ranked); err != nil {
			return err
		}
		log.Info().Str("db", db).Int("zoos", len(ranked)).Msg("Applied canonical set to SQLite")
	}

	out, closeOut, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	switch format := viper.GetString("format"); format {
	case "json":
		report := export.NewReport(ranked, result)
		if viper.GetBool("enrich") {
			if err := enrichReport(ctx, report); err != nil {
				return err
			}
		}
		return export.WriteJSON(out, report)
	case "sql":
		return export.WriteSQL(out, ranked)
	case "table":
		return writeTable(out, ranked)
	default:
		return errors.NewValidationError("format", format, "must be table, json, or sql")
	}
}

// configuredSources builds file sources for every flag that was set.
// FetchAll orders the streams, so registration order here is irrelevant.
func configuredSources() []sources.Source {
	var srcs []sources.Source
	for tag, key := range map[zoos.Source]string{
		zoos.SourceWiki:      "wiki",
		zoos.SourceDirectory: "directory",
		zoos.SourceWebSearch: "websearch",
	} {
		if path := viper.GetString(key); path != "" {
			srcs = append(srcs, sources.NewFileSource(tag, path))
		}
	}
	return srcs
}

// matchConfigFromFlags starts from the defaults and applies any explicit
// threshold overrides.
func matchConfigFromFlags() reconcile.MatchConfig {
	cfg := reconcile.DefaultMatchConfig()
	if v := viper.GetInt("match-containment-min"); v > 0 {
		cfg.MinContainmentLength = v
	}
	if v := viper.GetInt("match-edit-distance"); v >= 0 {
		cfg.MaxEditDistance = v
	}
	return cfg
}

func applyFilters(ranked []*zoos.Zoo, filter string, limit int) []*zoos.Zoo {
	if filter != "" {
		kept := ranked[:0]
		needle := strings.ToLower(filter)
		for _, z := range ranked {
			if strings.Contains(strings.ToLower(z.Name), needle) {
				kept = append(kept, z)
			}
		}
		ranked = kept
	}
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

func outputWriter(cmd *cobra.Command) (io.Writer, func(), error) {
	path := viper.GetString("out")
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.WrapIO("create", path, err)
	}
	return f, func() { f.Close() }, nil
}

func enrichReport(ctx context.Context, report *export.Report) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	base, err := enrich.NewGenAIEnricher(ctx, apiKey, "")
	if err != nil {
		return err
	}

	var store enrich.Store = enrich.NewMemoryStore()
	if path := viper.GetString("enrich-cache"); path != "" {
		fs, err := enrich.NewFileStore(path)
		if err != nil {
			return err
		}
		store = fs
	}
	enricher := enrich.Cached(base, store)

	log := logging.FromContext(ctx)
	for i := range report.Zoos {
		animals, err := enricher.Animals(ctx, report.Zoos[i].Name)
		if err != nil {
			// Enrichment is additive; one failed lookup should not sink
			// the whole export.
			log.Warn().Err(err).Str("zoo", report.Zoos[i].Name).Msg("Enrichment failed")
			continue
		}
		report.Zoos[i].Animals = animals
	}
	return nil
}

func writeTable(out io.Writer, ranked []*zoos.Zoo) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tREGION\tSOURCES\tHOMEPAGE")
	for _, z := range ranked {
		region := z.Region
		if region == "" {
			region = z.Locality
		}
		tags := make([]string, 0, z.SourceCount())
		for _, src := range z.Sources() {
			tags = append(tags, src.String())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", z.Name, region, strings.Join(tags, ","), z.Homepage)
	}
	return w.Flush()
}
