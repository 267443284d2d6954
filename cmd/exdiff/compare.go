package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/exdiff-go/pkg/exdiff"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/models"
	"github.com/ukaji3/exdiff-go/pkg/exdiff/output"
)

const summaryBaseName = "comparison_summary"

func newCompareCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "compare <a.xlsx> <b.xlsx>",
		Short: "Compare two workbooks",
		Long: `Compare reads both workbooks and reports sheets present in only one of
them and every cell whose cached value or formula text differs.`,
		Example: `  exdiff compare before.xlsx after.xlsx
  exdiff compare before.xlsx after.xlsx --equality display --format json
  EXDIFF_SPARSE=true exdiff compare a.xlsx b.xlsx --output-dir out`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1], v)
		},
	}

	addReadFlags(cmd.Flags())
	cmd.Flags().String("equality", string(exdiff.EqualityTyped), "Value equality: typed or display")
	cmd.Flags().String("output-dir", "", "Also write contents dumps and the summary to this directory")
	cmd.Flags().Int("limit", 0, "Maximum differing cells listed per sheet (0 lists all)")
	cmd.Flags().Bool("fail-on-diff", false, "Exit with status 2 when the workbooks differ")

	return cmd
}

func runCompare(cmd *cobra.Command, pathA, pathB string, v *viper.Viper) error {
	s, err := loadSettings(cmd, v)
	if err != nil {
		return err
	}
	logger := s.logger(cmd)
	opts, err := s.options(logger)
	if err != nil {
		return err
	}

	result, err := exdiff.Compare(cmd.Context(), pathA, pathB, opts)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	summary := output.SummaryOptions{
		Limit: s.Limit,
		Color: !s.NoColor && !color.NoColor,
	}
	if err := writeComparison(cmd.OutOrStdout(), result, s.Format, summary); err != nil {
		return err
	}

	if s.OutputDir != "" {
		if err := writeOutputDir(s.OutputDir, result, s.Format, s.Limit); err != nil {
			return fmt.Errorf("failed to write output files: %w", err)
		}
		logger.WithField("dir", s.OutputDir).Info("wrote comparison files")
	}

	if s.FailOnDiff && result.Report.HasDifferences() {
		return errDifferences
	}
	return nil
}

func writeComparison(w io.Writer, result *exdiff.Result, format string, summary output.SummaryOptions) error {
	if format == formatJSON {
		data, err := output.ToJSON(output.NewComparison(result.A, result.B, result.Report), true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return output.WriteSummary(w, result.Report, result.A.BookName, result.B.BookName, summary)
}

// writeOutputDir writes one contents dump per workbook and the summary.
func writeOutputDir(dir string, result *exdiff.Result, format string, limit int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	nameA, nameB := contentsFileNames(result.A.BookName, result.B.BookName)
	for _, item := range []struct {
		name string
		wb   *models.WorkbookData
	}{{nameA, result.A}, {nameB, result.B}} {
		err := writeFile(filepath.Join(dir, item.name), func(w io.Writer) error {
			return output.WriteContents(w, item.wb)
		})
		if err != nil {
			return err
		}
	}

	summaryName := summaryBaseName + ".txt"
	if format == formatJSON {
		summaryName = summaryBaseName + ".json"
	}
	return writeFile(filepath.Join(dir, summaryName), func(w io.Writer) error {
		return writeComparison(w, result, format, output.SummaryOptions{Limit: limit})
	})
}

// contentsFileNames derives "<book>_contents.txt" for both workbooks, keeping
// the names apart when both books share a file name.
func contentsFileNames(bookA, bookB string) (string, string) {
	stemA := strings.TrimSuffix(bookA, filepath.Ext(bookA))
	stemB := strings.TrimSuffix(bookB, filepath.Ext(bookB))
	if stemA == stemB {
		stemA, stemB = stemA+"_1", stemB+"_2"
	}
	return stemA + "_contents.txt", stemB + "_contents.txt"
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return render(f)
}
