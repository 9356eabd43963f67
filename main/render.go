package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hexakin/hexapod"
	"github.com/hexakin/hexapod/gait"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func render(c *cli.Context, v interface{}, tbl func() string) error {
	w := c.App.Writer

	if c.String("format") == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	_, err := fmt.Fprintln(w, tbl())
	return err
}

type pointView struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

func newPointView(p math3d.Point3D) pointView {
	return pointView{p.Name, p.X, p.Y, p.Z}
}

func newPointViews(ps []math3d.Point3D) []pointView {
	out := make([]pointView, len(ps))
	for i, p := range ps {
		out[i] = newPointView(p)
	}
	return out
}

type hexapodView struct {
	Info       hexapod.Info                `json:"info"`
	Height     float64                     `json:"height"`
	GroundLegs []legs.Position             `json:"groundLegs"`
	Body       []pointView                 `json:"body"`
	Legs       map[string][]pointView      `json:"legs"`
	Pose       map[legs.Position]legs.Pose `json:"pose"`
}

func newHexapodView(h *hexapod.Hexapod) hexapodView {
	v := hexapodView{
		Info:       h.Info(),
		GroundLegs: h.GroundLegs,
		Pose:       h.Pose,
	}
	if !h.FoundSolution {
		return v
	}

	v.Height = h.DistanceFromGround()
	v.Body = newPointViews(h.Body.AllPoints())
	v.Legs = make(map[string][]pointView, legs.NumLegs)
	for _, l := range h.Legs {
		v.Legs[l.Position.String()] = newPointViews(l.Points[:])
	}

	return v
}

func hexapodTable(h *hexapod.Hexapod) string {
	info := h.Info()
	if !h.FoundSolution {
		return info.Subject + "\n" + info.Body
	}

	t := table.NewWriter()
	t.SetTitle("%s height=%.2f", info.Subject, h.DistanceFromGround())
	t.AppendHeader(table.Row{"Point", "X", "Y", "Z"})
	for _, l := range h.Legs {
		for _, p := range l.Points {
			t.AppendRow(pointRow(p))
		}
		t.AppendSeparator()
	}
	for _, p := range h.Body.AllPoints() {
		t.AppendRow(pointRow(p))
	}

	return t.Render()
}

func pointRow(p math3d.Point3D) table.Row {
	return table.Row{p.Name, fmt.Sprintf("%.2f", p.X), fmt.Sprintf("%.2f", p.Y), fmt.Sprintf("%.2f", p.Z)}
}

type solutionView struct {
	FoundSolution bool                        `json:"foundSolution"`
	Subject       string                      `json:"subject"`
	Body          string                      `json:"body"`
	Pose          map[legs.Position]legs.Pose `json:"pose"`
	LegsOffGround []legs.Position             `json:"legsOffGround"`
	Hexapod       *hexapodView                `json:"hexapod,omitempty"`
}

func newSolutionView(s *hexapod.Solution) solutionView {
	v := solutionView{
		FoundSolution: s.Result.FoundSolution,
		Subject:       s.Result.Message.Subject,
		Body:          s.Result.Message.Body,
		Pose:          s.Pose,
		LegsOffGround: s.Result.LegsOffGround,
	}
	if s.Hexapod != nil {
		hv := newHexapodView(s.Hexapod)
		v.Hexapod = &hv
	}
	return v
}

func solutionTable(s *hexapod.Solution) string {
	t := table.NewWriter()
	t.SetTitle("%s", s.Result.Message.Subject)
	t.AppendHeader(table.Row{"Leg", "Alpha", "Beta", "Gamma", "On ground"})

	for _, pos := range legs.Positions() {
		p, ok := s.Pose[pos]
		if !ok {
			continue
		}
		on := "yes"
		for _, off := range s.Result.LegsOffGround {
			if off == pos {
				on = "no"
			}
		}
		t.AppendRow(table.Row{pos, angle(p.Alpha), angle(p.Beta), angle(p.Gamma), on})
	}

	var sb strings.Builder
	sb.WriteString(t.Render())
	if body := strings.TrimSpace(s.Result.Message.Body); body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
	}
	return sb.String()
}

func gaitTable(g *gait.Gait) string {
	t := table.NewWriter()

	header := table.Row{"Tick"}
	for _, pos := range legs.Positions() {
		header = append(header, pos)
	}
	t.AppendHeader(header)

	for n, ps := range g.Frames() {
		row := table.Row{n}
		for _, pos := range legs.Positions() {
			p := ps[pos]
			row = append(row, fmt.Sprintf("%s / %s / %s", angle(p.Alpha), angle(p.Beta), angle(p.Gamma)))
		}
		t.AppendRow(row)
	}

	return t.Render()
}

func angle(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
