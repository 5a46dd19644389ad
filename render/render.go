// Package render draws an automaton as a Graphviz graph. It consumes only
// the core package's public query surface and performs no automaton
// algorithm of its own.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	fsm "github.com/quint-t/Finite-State-Machine"
)

var rankDirs = map[string]cgraph.RankDir{
	"TB": cgraph.TBRank,
	"BT": cgraph.BTRank,
	"LR": cgraph.LRRank,
	"RL": cgraph.RLRank,
}

// Render writes a to w as a Graphviz PNG, mirroring
// original_source/fsm_lib/utils.py:fsm_plot's layout: a synthetic "start"
// point node with an edge into every initial state, doublecircle shapes for
// final states, and — per (source, target) pair, including self-loops — a
// single edge labelled with every symbol that leads from source to target.
func Render(a *fsm.Automaton, w io.Writer, rankdir string) error {
	rd, ok := rankDirs[rankdir]
	if !ok {
		return fmt.Errorf("render: unknown rankdir %q", rankdir)
	}

	gv := graphviz.New()
	defer gv.Close()
	graph, err := gv.Graph()
	if err != nil {
		return err
	}
	defer graph.Close()
	graph.SetRankDir(rd)

	start, err := graph.CreateNode("start")
	if err != nil {
		return err
	}
	start.SetShape(cgraph.PointShape)

	states := a.GetStates()
	sort.Slice(states, func(i, j int) bool { return states[i].Less(states[j]) })

	nodes := make(map[string]*cgraph.Node, len(states))
	for _, s := range states {
		node, err := graph.CreateNode(s.String())
		if err != nil {
			return err
		}
		if a.IsFinal(s) {
			node.SetShape(cgraph.DoubleCircleShape)
		} else {
			node.SetShape(cgraph.CircleShape)
		}
		nodes[s.Key()] = node
	}

	for _, s := range states {
		if a.IsInitial(s) {
			if _, err := graph.CreateEdge("start->"+s.String(), start, nodes[s.Key()]); err != nil {
				return err
			}
		}
	}

	byKey := make(map[string]fsm.State, len(states))
	for _, s := range states {
		byKey[s.Key()] = s
	}

	alphabet := a.Alphabet()
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i].Less(alphabet[j]) })

	for _, from := range states {
		labelsByTarget := make(map[string][]string)
		var order []string
		for _, sym := range alphabet {
			for _, to := range a.Targets(from, sym) {
				if _, ok := labelsByTarget[to.Key()]; !ok {
					order = append(order, to.Key())
				}
				labelsByTarget[to.Key()] = append(labelsByTarget[to.Key()], sym.String())
			}
		}
		for _, toKey := range order {
			to := byKey[toKey]
			label := strings.Join(labelsByTarget[toKey], ",")
			id := from.String() + "->" + to.String()
			edge, err := graph.CreateEdge(id, nodes[from.Key()], nodes[toKey])
			if err != nil {
				return err
			}
			edge.SetLabel(label)
		}
	}

	return gv.Render(graph, graphviz.PNG, w)
}
