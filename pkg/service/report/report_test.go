package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.keploy.io/protodiff/config"
	"go.keploy.io/protodiff/pkg/difftree"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"
)

// Helper function to create a test config
func createTestConfig(format config.Format, color config.ColorMode) *config.Config {
	return &config.Config{
		Report: config.Report{
			Format: format,
			Color:  color,
		},
	}
}

// sampleTree builds a tree with one changed field, one added field and an
// unchanged field comparison that trim removes.
func sampleTree() *difftree.Section {
	root := difftree.NewRoot()
	msg := root.AddSubsection(difftree.MessageComparison, "geo.Point", "geo.Point")
	msg.AddSubsection(difftree.FieldComparison, "geo.Point.x", "geo.Point.x")
	field := msg.AddSubsection(difftree.FieldComparison, "geo.Point.y", "geo.Point.y")
	field.AddItem(difftree.FieldIDChanged, "2", "3")
	msg.AddItem(difftree.FieldAdded, "", "z")
	root.AddItem(difftree.EnumRemoved, "geo.Unit", "")
	return root
}

const sampleText = "/\n" +
	"  * Enum removed: geo.Unit -> \n" +
	"  Comparing messages: geo.Point -> geo.Point\n" +
	"    * Field added:  -> z\n" +
	"    Comparing message fields: geo.Point.y -> geo.Point.y\n" +
	"      * ID changed: 2 -> 3\n"

func render(t *testing.T, cfg *config.Config, root *difftree.Section) string {
	var buf bytes.Buffer
	r := New(zaptest.NewLogger(t), cfg, &buf)
	require.NoError(t, r.Render(context.Background(), root))
	return buf.String()
}

func TestRender_Text(t *testing.T) {
	out := render(t, createTestConfig(config.FormatText, config.ColorAuto), sampleTree())
	assert.Equal(t, sampleText, out)
}

func TestRender_EmptyRoot(t *testing.T) {
	root := difftree.NewRoot()
	root.AddSubsection(difftree.MessageComparison, "a.M", "a.M").
		AddSubsection(difftree.FieldComparison, "a.M.f", "a.M.f")

	out := render(t, createTestConfig(config.FormatText, config.ColorOff), root)
	assert.Equal(t, "/\n", out)
}

func TestRender_Colors(t *testing.T) {
	out := render(t, createTestConfig(config.FormatText, config.ColorOn), sampleTree())

	assert.Contains(t, out, "\x1b[1m/")
	assert.Contains(t, out, "\x1b[31mEnum removed: geo.Unit -> ")
	assert.Contains(t, out, "\x1b[32mField added:  -> z")
	assert.Contains(t, out, "\x1b[33mID changed: 2 -> 3")
}

func TestRender_DisableANSIWins(t *testing.T) {
	cfg := createTestConfig(config.FormatText, config.ColorOn)
	cfg.DisableANSI = true

	out := render(t, cfg, sampleTree())
	assert.Equal(t, sampleText, out)
}

func TestRender_AutoColorOffForNonTerminal(t *testing.T) {
	out := render(t, createTestConfig(config.FormatText, config.ColorAuto), sampleTree())
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_JSON(t *testing.T) {
	out := render(t, createTestConfig(config.FormatJSON, config.ColorOn), sampleTree())

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "root", doc.Kind)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, item{Kind: "enum_removed", Text: "Enum removed", Before: "geo.Unit"}, doc.Items[0])
	require.Len(t, doc.Sections, 1)

	msg := doc.Sections[0]
	assert.Equal(t, "message_comparison", msg.Kind)
	assert.Equal(t, "geo.Point", msg.Before)
	require.Len(t, msg.Sections, 1, "trimmed field comparison must not be rendered")
	assert.Equal(t, "geo.Point.y", msg.Sections[0].Before)
	assert.Equal(t, []item{{Kind: "field_id_changed", Text: "ID changed", Before: "2", After: "3"}}, msg.Sections[0].Items)
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_YAML(t *testing.T) {
	out := render(t, createTestConfig(config.FormatYAML, config.ColorAuto), sampleTree())

	var doc document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "root", doc.Kind)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []item{{Kind: "field_added", Text: "Field added", After: "z"}}, doc.Sections[0].Items)
	assert.Len(t, doc.Sections[0].Sections, 1)
}

func TestRender_Summary(t *testing.T) {
	cfg := createTestConfig(config.FormatText, config.ColorOff)
	cfg.Report.Summary = true

	out := render(t, cfg, sampleTree())
	assert.True(t, len(out) > len(sampleText))
	assert.Equal(t, sampleText, out[:len(sampleText)])

	summary := out[len(sampleText):]
	assert.Contains(t, summary, "Field added")
	assert.Contains(t, summary, "ID changed")
	assert.Contains(t, summary, "Enum removed")
	assert.Contains(t, summary, "3")
	assert.NotContains(t, summary, "Name missing")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New(zaptest.NewLogger(t), createTestConfig("xml", config.ColorOff), &buf)
	assert.Error(t, r.Render(context.Background(), sampleTree()))
}

func TestRender_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	r := New(zaptest.NewLogger(t), createTestConfig(config.FormatText, config.ColorOff), &buf)
	assert.ErrorIs(t, r.Render(ctx, sampleTree()), context.Canceled)
	assert.Empty(t, buf.String())
}
