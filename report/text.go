// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/spath/dijkstra"
)

// Palette for styled output.
var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
)

const (
	unreachableLabel = "unreachable"
	noPathLabel      = "no path"
	arrow            = " -> "
)

// Text writes one line per vertex:
//
//	source 0
//	0: distance 0, path 0
//	1: distance 4, path 0 -> 1
//	2: unreachable, no path
//
// With WithStyle(true) the same data is drawn as a lipgloss table.
func Text(w io.Writer, res *dijkstra.Result, opts ...Option) error {
	doc, err := Build(res, opts...)
	if err != nil {
		return err
	}
	if gather(opts).styled {
		return styled(w, doc)
	}

	if _, err := fmt.Fprintf(w, "source %d\n", doc.Source); err != nil {
		return err
	}
	for _, r := range doc.Routes {
		var line string
		if r.Reachable {
			line = fmt.Sprintf("%d: distance %d, path %s\n", r.Vertex, *r.Distance, joinPath(r.Path))
		} else {
			line = fmt.Sprintf("%d: %s, %s\n", r.Vertex, unreachableLabel, noPathLabel)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	return nil
}

func styled(w io.Writer, doc Document) error {
	rows := make([][]string, 0, len(doc.Routes))
	unreachable := make(map[int]bool)
	for i, r := range doc.Routes {
		if !r.Reachable {
			unreachable[i] = true
			rows = append(rows, []string{strconv.Itoa(r.Vertex), unreachableLabel, noPathLabel})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Vertex),
			strconv.FormatInt(*r.Distance, 10),
			joinPath(r.Path),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("VERTEX", "DISTANCE", "PATH").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case unreachable[row]:
				return mutedStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(fmt.Sprintf("Shortest paths from %d", doc.Source)), t.Render())

	return err
}

// JSON writes the Document as indented JSON.
func JSON(w io.Writer, res *dijkstra.Result, opts ...Option) error {
	doc, err := Build(res, opts...)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, arrow)
}
