package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"go.keploy.io/protodiff/config"
	"go.keploy.io/protodiff/pkg/difftree"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type Report struct {
	logger *zap.Logger
	config *config.Config
	out    io.Writer
}

func New(logger *zap.Logger, cfg *config.Config, out io.Writer) *Report {
	return &Report{
		logger: logger,
		config: cfg,
		out:    out,
	}
}

func (r *Report) Render(ctx context.Context, root *difftree.Section) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	root.Trim()
	r.logger.Debug("rendering report", zap.String("format", string(r.config.Report.Format)),
		zap.Bool("empty", root.IsEmpty()))

	var err error
	switch r.config.Report.Format {
	case config.FormatText, "":
		err = r.renderText(root)
	case config.FormatYAML:
		err = r.renderYAML(root)
	case config.FormatJSON:
		err = r.renderJSON(root)
	default:
		return fmt.Errorf("unknown report format %q", r.config.Report.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s report: %w", r.config.Report.Format, err)
	}

	if r.config.Report.Summary {
		if err := r.renderSummary(root); err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
	}
	return nil
}

func (r *Report) renderText(root *difftree.Section) error {
	if !r.colorEnabled() {
		return root.Render(r.out)
	}
	return newColorPrinter().Print(r.out, root)
}

func (r *Report) renderYAML(root *difftree.Section) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(root)); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Report) renderJSON(root *difftree.Section) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(root))
}

func (r *Report) renderSummary(root *difftree.Section) error {
	counts := root.CountItems()
	var rows [][]string
	total := 0
	for _, kind := range difftree.ItemKinds {
		if n := counts[kind]; n > 0 {
			rows = append(rows, []string{kind.Text(), fmt.Sprint(n)})
			total += n
		}
	}
	rows = append(rows, []string{"Total", fmt.Sprint(total)})

	table := tablewriter.NewWriter(r.out)
	table.Header("Finding", "Count")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// colorEnabled resolves the configured color mode. In auto mode the output
// is colored only when it is a terminal.
func (r *Report) colorEnabled() bool {
	if r.config.DisableANSI {
		return false
	}
	switch r.config.Report.Color {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	default:
		f, ok := r.out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

func newColorPrinter() difftree.Printer {
	header := color.New(color.Bold)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	changed := color.New(color.FgYellow)
	for _, c := range []*color.Color{header, added, removed, changed} {
		c.EnableColor()
	}

	return difftree.Printer{
		DecorateHeader: func(_ *difftree.Section, line string) string {
			return header.Sprint(line)
		},
		DecorateItem: func(item difftree.Item, line string) string {
			switch item.Kind {
			case difftree.EnumValueAdded, difftree.FieldAdded, difftree.MessageAdded, difftree.EnumAdded:
				return added.Sprint(line)
			case difftree.EnumValueRemoved, difftree.FieldRemoved, difftree.MessageRemoved,
				difftree.EnumRemoved, difftree.NameMissing:
				return removed.Sprint(line)
			default:
				return changed.Sprint(line)
			}
		},
	}
}
