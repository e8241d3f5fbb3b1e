// Package editor turns click commands into graph edits on a spatial.Graph.
//
// It carries the selection state of an interactive editor and nothing else:
// callers translate their input events into Primary, Secondary and Drag calls
// with world positions.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/internal/logging"
	"github.com/katalvlaran/navgraph/spatial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("editor: graph is nil")
	// ErrNilNodeFactory indicates New was called without a node factory.
	ErrNilNodeFactory = errors.New("editor: node factory is nil")
)

// Action reports what a command did.
type Action int

const (
	// ActionNone: the command hit nothing actionable.
	ActionNone Action = iota
	// ActionNodeAdded: a new node was placed.
	ActionNodeAdded
	// ActionNodeSelected: a node became the selection.
	ActionNodeSelected
	// ActionDeselected: the selection was cleared without an edit.
	ActionDeselected
	// ActionConnected: the selection was connected to the clicked node.
	ActionConnected
	// ActionNodeRemoved: a node and its connections were removed.
	ActionNodeRemoved
	// ActionConnectionRemoved: a connection was removed.
	ActionConnectionRemoved
	// ActionNodeMoved: the selected node was moved.
	ActionNodeMoved
)

var actionNames = [...]string{
	ActionNone:              "none",
	ActionNodeAdded:         "node-added",
	ActionNodeSelected:      "node-selected",
	ActionDeselected:        "deselected",
	ActionConnected:         "connected",
	ActionNodeRemoved:       "node-removed",
	ActionConnectionRemoved: "connection-removed",
	ActionNodeMoved:         "node-moved",
}

// String returns the action name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}

	return actionNames[a]
}

// Option configures an Editor.
type Option func(*config)

type config struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger receiving one debug entry per command.
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// Editor applies click commands to a spatial graph.
type Editor[N core.Positioned] struct {
	g        *spatial.Graph[N]
	newNode  func(pos orb.Point) N
	selected int
	log      logrus.FieldLogger
}

// New returns an editor over g; newNode creates payloads for placed nodes.
func New[N core.Positioned](g *spatial.Graph[N], newNode func(pos orb.Point) N, opts ...Option) (*Editor[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if newNode == nil {
		return nil, ErrNilNodeFactory
	}
	cfg := config{log: logging.Logger(context.Background())}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Editor[N]{g: g, newNode: newNode, selected: core.InvalidNodeIndex, log: cfg.log}, nil
}

// Graph returns the edited graph.
func (e *Editor[N]) Graph() *spatial.Graph[N] { return e.g }

// Selected returns the selected node, or core.InvalidNodeIndex.
// A selection removed behind the editor's back reads as no selection.
func (e *Editor[N]) Selected() int {
	if !e.g.IsNodeValid(e.selected) {
		e.selected = core.InvalidNodeIndex
	}

	return e.selected
}

// ClearSelection drops the selection.
func (e *Editor[N]) ClearSelection() { e.selected = core.InvalidNodeIndex }

// Primary handles a primary click at pos.
//
// With a selection: clicking another node connects selection→node (cost =
// distance) unless the pair already exists; any click clears the selection.
// Without one: clicking a node selects it, clicking empty space places a node.
func (e *Editor[N]) Primary(pos orb.Point) (Action, error) {
	hit := e.g.NodeIdxAtWorldPos(pos)
	sel := e.Selected()

	if sel != core.InvalidNodeIndex {
		e.selected = core.InvalidNodeIndex
		if hit == core.InvalidNodeIndex || hit == sel || !e.g.IsUniqueConnection(sel, hit) {
			return e.done(ActionDeselected, sel), nil
		}
		cost := planar.Distance(e.g.NodePos(sel), e.g.NodePos(hit))
		if _, err := e.g.AddConnection(sel, hit, cost); err != nil {
			return ActionNone, fmt.Errorf("editor: connect %d→%d: %w", sel, hit, err)
		}

		return e.done(ActionConnected, hit), nil
	}

	if hit != core.InvalidNodeIndex {
		e.selected = hit
		return e.done(ActionNodeSelected, hit), nil
	}

	return e.done(ActionNodeAdded, e.g.AddNode(e.newNode(pos))), nil
}

// Secondary handles a secondary click at pos: it removes the node under pos,
// otherwise the connection under pos.
func (e *Editor[N]) Secondary(pos orb.Point) (Action, error) {
	if hit := e.g.NodeIdxAtWorldPos(pos); hit != core.InvalidNodeIndex {
		if err := e.g.RemoveNode(hit); err != nil {
			return ActionNone, err
		}
		if hit == e.selected {
			e.selected = core.InvalidNodeIndex
		}

		return e.done(ActionNodeRemoved, hit), nil
	}
	if c := e.g.ConnectionAtPosition(pos); c != nil {
		if err := e.g.RemoveConnectionRef(c); err != nil {
			return ActionNone, err
		}

		return e.done(ActionConnectionRemoved, c.From()), nil
	}

	return ActionNone, nil
}

// Drag moves the selected node to pos and re-costs its connections.
// The payload must implement spatial.Mover; otherwise spatial.ErrNotMovable.
func (e *Editor[N]) Drag(pos orb.Point) (Action, error) {
	sel := e.Selected()
	if sel == core.InvalidNodeIndex {
		return ActionNone, nil
	}
	if err := e.g.SetNodePosition(sel, pos); err != nil {
		return ActionNone, err
	}
	for _, c := range e.g.NodeConnections(sel) {
		_ = c.SetCost(planar.Distance(e.g.NodePos(c.From()), e.g.NodePos(c.To())))
	}
	if e.g.Directed() {
		for _, idx := range e.g.ActiveNodes() {
			for _, c := range e.g.NodeConnections(idx) {
				if c.To() == sel {
					_ = c.SetCost(planar.Distance(e.g.NodePos(idx), pos))
				}
			}
		}
	}

	return e.done(ActionNodeMoved, sel), nil
}

func (e *Editor[N]) done(a Action, node int) Action {
	e.log.WithFields(logrus.Fields{"action": a.String(), "node": node}).Debug("editor: command")
	return a
}
