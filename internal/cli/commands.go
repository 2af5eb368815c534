package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/xab-mack/quorum/internal/adapters"
	"github.com/xab-mack/quorum/internal/config"
	"github.com/xab-mack/quorum/internal/engine"
	"github.com/xab-mack/quorum/internal/logging"
	"github.com/xab-mack/quorum/internal/model"
	"github.com/xab-mack/quorum/internal/predicate"
	"github.com/xab-mack/quorum/internal/report"
	"github.com/xab-mack/quorum/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newMergeCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newContextsCmd())
}

func newMergeCmd() *cobra.Command {
	var (
		contextLabel    string
		format          string
		inputFormat     string
		outputFile      string
		resolutionsPath string
		stubsPath       string
		predicatePath   string
		failOn          string
		tolerance       int
		useTUI          bool
		debugMode       bool
	)
	cmd := &cobra.Command{
		Use:   "merge [files...]",
		Short: "Merge analyzer output files into one prioritized consensus report",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(debugMode)
			if err != nil {
				return err
			}
			defer logger.Sync()
			logger = logger.With("run_id", uuid.NewString())

			start := time.Now()
			cfg, cfgPath, err := config.Load(".")
			if err != nil {
				return err
			}
			if cfgPath != "" {
				logger.Debugw("loaded config", "path", cfgPath)
			}

			if tolerance < 0 {
				tolerance = cfg.LineTolerance
			}
			pctx, known := cfg.ProjectContext(contextLabel)
			if !known {
				logger.Warnw("unknown context type, no category filtering applied", "context", pctx.Type)
			}

			pred := predicate.Phrases(cfg.Contradictions)
			if path := firstNonEmpty(predicatePath, cfg.PredicatePath); path != "" {
				loaded, err := predicate.LoadFile(path)
				if err != nil {
					return err
				}
				pred = predicate.Combine(pred, loaded)
			}

			resolutions, err := engine.LoadResolutions(resolutionsPath)
			if err != nil {
				return err
			}

			batches, inputErrs := readBatches(args, inputFormat)
			logger.Infow("inputs parsed", "files", len(args), "batches", len(batches), "unreadable", len(inputErrs))

			eng := engine.New(engine.Options{
				Context:      pctx,
				Tolerance:    tolerance,
				Predicate:    pred,
				Resolutions:  resolutions,
				Suppressions: cfg.Suppressions,
			})
			res, err := eng.Run(cmd.Context(), batches)
			if err != nil {
				return err
			}
			res.Errors = append(inputErrs, res.Errors...)

			rep := report.Assemble(pctx.Type, res.Groups, res.Errors)
			logger.Infow("consensus complete",
				"findings", rep.Summary.TotalFindings,
				"groups", rep.Summary.Groups,
				"disputed", rep.Summary.Disputed,
				"excluded", rep.Summary.Excluded,
				"malformed", rep.Summary.Malformed,
				"defaulted", res.Stats.Defaulted,
				"elapsed", time.Since(start),
			)
			if res.Stats.Defaulted > 0 {
				logger.Warnw("substituted defaults for unknown severity/confidence values",
					"records", res.Stats.Defaulted)
			}

			if stubsPath != "" {
				if err := engine.WriteResolutionStubs(stubsPath, res.Groups); err != nil {
					return err
				}
			}

			if useTUI {
				return tui.Run(rep)
			}
			if err := render(cmd, rep, format, outputFile); err != nil {
				return err
			}
			return checkFailOn(rep, failOn)
		},
	}
	cmd.Flags().StringVarP(&contextLabel, "context", "c", "", "Project context type (defaults to config, then GENERAL)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|markdown|sarif")
	cmd.Flags().StringVar(&inputFormat, "input", "", "Force input format for all files: native|sarif|review (default: sniff)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write the rendered report to a file")
	cmd.Flags().StringVar(&resolutionsPath, "resolutions", "", "JSON file with dispute adjudications")
	cmd.Flags().StringVar(&stubsPath, "write-stubs", "", "Write pending resolution stubs for still-disputed groups")
	cmd.Flags().StringVar(&predicatePath, "predicate", "", "Go file exporting a Contradicts predicate")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Exit non-zero if any group lands at or above this priority")
	cmd.Flags().IntVar(&tolerance, "tolerance", -1, "Line tolerance for same-location grouping (default: config)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Browse the report interactively")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	return cmd
}

// readBatches parses each input file with its adapter. An unreadable or
// unrecognized file becomes a side-channel error, never fatal to the rest.
func readBatches(files []string, forced string) ([]model.Batch, []model.RecordError) {
	var batches []model.Batch
	var errs []model.RecordError
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, model.RecordError{Batch: path, Reason: err.Error()})
			continue
		}
		format := adapters.Format(forced)
		if forced == "" {
			format, err = adapters.Detect(raw)
			if err != nil {
				errs = append(errs, model.RecordError{Batch: path, Reason: err.Error()})
				continue
			}
		}
		records, err := adapters.Parse(format, raw)
		if err != nil {
			errs = append(errs, model.RecordError{Batch: path, Reason: err.Error()})
			continue
		}
		batches = append(batches, model.Batch{Name: path, Records: records})
	}
	return batches, errs
}

func render(cmd *cobra.Command, rep *report.Report, format, outputFile string) error {
	var data []byte
	switch format {
	case "json":
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		data = append(b, '\n')
	case "markdown":
		data = []byte(report.ToMarkdown(rep))
	case "sarif":
		b, err := report.ToSARIF(rep)
		if err != nil {
			return err
		}
		data = append(b, '\n')
	default:
		data = []byte(renderTable(rep))
	}
	if outputFile != "" {
		return os.WriteFile(outputFile, data, 0o644)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func renderTable(rep *report.Report) string {
	var b strings.Builder
	if rep.Summary.TotalFindings == 0 {
		fmt.Fprintf(&b, "No findings (context %s).\n", rep.Context)
		return b.String()
	}
	fmt.Fprintf(&b, "Findings: %d in %d groups (context %s)\n",
		rep.Summary.TotalFindings, rep.Summary.Groups, rep.Context)
	for _, sec := range rep.Sections {
		fmt.Fprintf(&b, "\n%s\n", sec.Priority)
		for _, g := range sec.Groups {
			fmt.Fprintf(&b, "- %s [%s/%s] %s (sources: %s)\n",
				locationOf(g), g.Severity, g.Consensus, g.Title, strings.Join(g.Sources, ","))
		}
	}
	if len(rep.Disputes) > 0 {
		b.WriteString("\nDISPUTED (needs adjudication)\n")
		for _, g := range rep.Disputes {
			fmt.Fprintf(&b, "- %s %s (sources: %s)\n", locationOf(g), g.Title, strings.Join(g.Sources, ","))
		}
	}
	if len(rep.Excluded) > 0 {
		fmt.Fprintf(&b, "\nExcluded: %d (see markdown/json output for reasons)\n", len(rep.Excluded))
	}
	if len(rep.Errors) > 0 {
		fmt.Fprintf(&b, "Malformed records: %d\n", len(rep.Errors))
	}
	return b.String()
}

func locationOf(g report.Group) string {
	if g.Artifact == "" {
		return g.Key
	}
	if g.Line > 0 {
		return fmt.Sprintf("%s:%d", g.Artifact, g.Line)
	}
	return g.Artifact
}

func checkFailOn(rep *report.Report, failOn string) error {
	if failOn == "" {
		return nil
	}
	threshold, ok := model.ParsePriority(failOn)
	if !ok {
		return fmt.Errorf("unknown --fail-on priority %q", failOn)
	}
	for _, sec := range rep.Sections {
		if model.PriorityGTE(sec.Priority, threshold) && len(sec.Groups) > 0 {
			return fmt.Errorf("fail-on threshold met: %s", sec.Priority)
		}
	}
	return nil
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
