// SPDX-License-Identifier: MIT

// Package report renders a dijkstra.Result for humans (plain or styled text)
// and machines (JSON).
//
// Unreachable vertices are rendered as "unreachable" / "no path"; that is a
// normal outcome. A corrupt predecessor chain is returned as an error wrapping
// dijkstra.ErrCorruptPredecessors, since it means the engine misbehaved.
package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spath/dijkstra"
)

// ErrNilResult indicates a nil *dijkstra.Result was passed to a renderer.
var ErrNilResult = errors.New("report: result is nil")

// Option configures a renderer.
type Option func(*options)

type options struct {
	target   int // -1 = every vertex
	oneBased bool
	styled   bool
}

// WithTarget restricts the report to a single (zero-based) target vertex.
func WithTarget(t int) Option {
	return func(o *options) { o.target = t }
}

// WithOneBased prints vertex labels starting at 1.
func WithOneBased() Option {
	return func(o *options) { o.oneBased = true }
}

// WithStyle toggles the lipgloss table rendering of Text.
func WithStyle(on bool) Option {
	return func(o *options) { o.styled = on }
}

func gather(opts []Option) options {
	o := options{target: -1}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Document is the rendered form of a Result, shared by every output format.
type Document struct {
	Source int     `json:"source"`
	Routes []Route `json:"routes"`
}

// Route describes one target vertex. Distance and Path are nil when the
// vertex is unreachable.
type Route struct {
	Vertex    int    `json:"vertex"`
	Reachable bool   `json:"reachable"`
	Distance  *int64 `json:"distance"`
	Path      []int  `json:"path"`
}

// Build converts res into a Document, applying the label base and target filter.
func Build(res *dijkstra.Result, opts ...Option) (Document, error) {
	if res == nil {
		return Document{}, ErrNilResult
	}
	o := gather(opts)
	base := 0
	if o.oneBased {
		base = 1
	}

	targets := make([]int, 0, res.Order())
	if o.target >= 0 {
		if _, err := res.Distance(o.target); err != nil {
			return Document{}, err
		}
		targets = append(targets, o.target)
	} else {
		for v := 0; v < res.Order(); v++ {
			targets = append(targets, v)
		}
	}

	doc := Document{Source: res.Source + base, Routes: make([]Route, 0, len(targets))}
	for _, v := range targets {
		route := Route{Vertex: v + base}
		path, err := res.PathTo(v)
		switch {
		case errors.Is(err, dijkstra.ErrNoPath):
			// unreachable: leave Distance and Path nil
		case err != nil:
			return Document{}, fmt.Errorf("report: vertex %d: %w", v, err)
		default:
			d := res.Dist[v]
			route.Reachable = true
			route.Distance = &d
			route.Path = make([]int, len(path))
			for i, p := range path {
				route.Path[i] = p + base
			}
		}
		doc.Routes = append(doc.Routes, route)
	}

	return doc, nil
}
