package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/rbright/yabai"
	"github.com/rbright/yabai/internal/config"
)

// ResolveFormat turns "auto" into table on a terminal and JSON everywhere else.
func ResolveFormat(format string, out io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return config.FormatTable
		}
	}
	return config.FormatJSON
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderDisplays renders displays as a table.
func RenderDisplays(displays []yabai.DisplayInfo) string {
	rows := make([][]string, 0, len(displays))
	for _, d := range displays {
		rows = append(rows, []string{
			num(d.Index),
			num(d.ID),
			d.UUID,
			frame(d.Frame),
			uints(d.Spaces),
		})
	}
	return renderTable(
		[]string{"Index", "ID", "UUID", "Frame", "Spaces"},
		rows,
		[]text.Align{text.AlignRight, text.AlignRight},
	)
}

// RenderSpaces renders spaces as a table.
func RenderSpaces(spaces []yabai.SpaceInfo) string {
	rows := make([][]string, 0, len(spaces))
	for _, s := range spaces {
		rows = append(rows, []string{
			num(s.Index),
			num(s.ID),
			s.Label,
			s.Type,
			num(s.Display),
			strconv.Itoa(len(s.Windows)),
			flag(s.HasFocus),
			flag(s.IsVisible),
		})
	}
	return renderTable(
		[]string{"Index", "ID", "Label", "Type", "Display", "Windows", "Focus", "Visible"},
		rows,
		[]text.Align{text.AlignRight, text.AlignRight, text.AlignLeft, text.AlignLeft, text.AlignRight, text.AlignRight},
	)
}

// RenderWindows renders windows as a table.
func RenderWindows(windows []yabai.WindowInfo) string {
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, []string{
			num(w.ID),
			w.App,
			truncate(w.Title, 40),
			num(w.Space),
			num(w.Display),
			frame(w.Frame),
			flag(w.IsFloating),
			flag(w.HasFocus),
		})
	}
	return renderTable(
		[]string{"ID", "App", "Title", "Space", "Display", "Frame", "Float", "Focus"},
		rows,
		[]text.Align{text.AlignRight, text.AlignLeft, text.AlignLeft, text.AlignRight, text.AlignRight},
	)
}

// renderTable draws rows under headers; columns without an explicit alignment are left-aligned.
func renderTable(headers []string, rows [][]string, aligns []text.Align) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] != text.AlignDefault {
			align = aligns[i]
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func num(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func uints(vs []uint32) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, num(v))
	}
	return strings.Join(parts, ",")
}

func frame(f yabai.Frame) string {
	return fmt.Sprintf("%gx%g+%g+%g", f.W, f.H, f.X, f.Y)
}

func flag(v bool) string {
	if v {
		return "yes"
	}
	return ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
