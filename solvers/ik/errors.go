package ik

import (
	"fmt"
	"strings"

	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/pkg/errors"
)

// Reasons a solve can fail. These are wrapped with the leg (or point) which
// caused the failure, so use errors.Is to test for them.
var (
	ErrBadVertex       = errors.New("body contact point below the ground")
	ErrBadPoint        = errors.New("coxia point below the ground")
	ErrAlphaNotInRange = errors.New("alpha not within range")
	ErrFemurTooLong    = errors.New("femur too long")
	ErrTibiaTooLong    = errors.New("tibia too long")
	ErrBlocked         = errors.New("ground is blocking the path")
	ErrNoSupport       = errors.New("no support")
)

// Message is a human readable summary of a solve.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (m Message) String() string {
	return fmt.Sprintf("%s\n%s", m.Subject, m.Body)
}

var (
	msgInitialized = Message{"Initialized", "Has not solved for anything yet."}
	msgSuccess     = Message{"Success.", "All legs are on the floor."}
)

func msgSuccessLegsOnAir(ps []legs.Position) Message {
	return Message{
		Subject: "Success.",
		Body:    fmt.Sprintf("But some legs won't reach target points on the ground:\n%s", bulletPoints(ps)),
	}
}

func msgNoSupport(reason string) Message {
	return Message{"Failure: No Support.", reason + "\n"}
}

func msgBadPoint(p math3d.Point3D) Message {
	return Message{"Failure: Bad Point.", fmt.Sprintf("At least one point would be shoved to the ground:\n%s", p.Markdown())}
}

func msgBadLeg(body string) Message {
	return Message{"Failure: Bad leg.", body}
}

func msgAlphaNotInRange(pos legs.Position, alpha, max float64) Message {
	return Message{
		Subject: "Failure: Alpha not within range",
		Body:    fmt.Sprintf("The alpha (%.2f) computed for %s leg is not within -%g < alpha < %g", alpha, pos, max, max),
	}
}

func bulletPoints(ps []legs.Position) string {
	var b strings.Builder
	for _, p := range ps {
		fmt.Fprintf(&b, " - %s\n", p)
	}
	return b.String()
}
