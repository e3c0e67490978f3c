package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/export"
	"aisg/internal/domain/scoring"
)

var errInvalidSubmission = errors.New("submission has validation issues")

type scoreOptions struct {
	input string
	now   string
	seed  uint64
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "auditctl",
		Short:         "Score AISG performance audits from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd(), newPDFCmd(), newValidateCmd())
	return root
}

func (o *scoreOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "-", "submission JSON file, - for stdin")
	cmd.Flags().StringVar(&o.now, "now", "", "evaluation time, RFC3339 or YYYY-MM-DD (default: current time)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for the quote pick (default: random)")
}

func newScoreCmd() *cobra.Command {
	var opts scoreOptions
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the audit result for a submission and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.run(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.Result)
		},
	}
	opts.bind(cmd)
	return cmd
}

func newPDFCmd() *cobra.Command {
	var (
		opts scoreOptions
		out  string
	)
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Score a submission and render the audit report as PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.run(cmd)
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = export.FileName(a, a.CreatedAt)
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := export.RenderPDF(f, a, a.CreatedAt); err != nil {
				f.Close()
				return fmt.Errorf("render pdf: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: audit-<nama>-<date>.pdf)")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a submission and list every validation issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub, err := readSubmission(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			issues := audit.Validate(sub.Input())
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			}
			printIssues(cmd.OutOrStdout(), issues)
			return fmt.Errorf("%w: %d found", errInvalidSubmission, len(issues))
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "submission JSON file, - for stdin")
	return cmd
}

// run reads, validates and scores the submission.
func (o *scoreOptions) run(cmd *cobra.Command) (audit.Audit, error) {
	now, err := parseNow(o.now)
	if err != nil {
		return audit.Audit{}, err
	}
	sub, err := readSubmission(cmd.InOrStdin(), o.input)
	if err != nil {
		return audit.Audit{}, err
	}
	in := sub.Input()
	if issues := audit.Validate(in); len(issues) > 0 {
		printIssues(cmd.ErrOrStderr(), issues)
		return audit.Audit{}, fmt.Errorf("%w: %d found", errInvalidSubmission, len(issues))
	}
	in = audit.Normalize(in)

	rnd := scoring.NewRandomSource()
	if cmd.Flags().Changed("seed") {
		rnd = scoring.NewSeededSource(o.seed)
	}
	return audit.Audit{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Input:     in,
		Result:    scoring.Compute(in, now, rnd),
	}, nil
}

func readSubmission(stdin io.Reader, path string) (audit.Submission, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return audit.Submission{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var sub audit.Submission
	if err := json.NewDecoder(r).Decode(&sub); err != nil {
		return audit.Submission{}, fmt.Errorf("decode submission: %w", err)
	}
	return sub, nil
}

func parseNow(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be RFC3339 or YYYY-MM-DD: %q", value)
	}
	return parsed, nil
}

func printIssues(w io.Writer, issues []audit.Issue) {
	for _, issue := range issues {
		fmt.Fprintf(w, "%s: %s\n", issue.Field, issue.Reason)
	}
}
