package legs

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/math3d"
)

// Segment is one link of a kinematic chain. Its matrix positions the end of
// the segment relative to the end of its parent.
type Segment struct {
	Name   string
	parent *Segment
	Child  *Segment
	m      math3d.Matrix44
}

func MakeSegment(name string, parent *Segment, m math3d.Matrix44) *Segment {
	s := &Segment{
		Name:   name,
		parent: parent,
		m:      m,
	}

	if parent != nil {
		parent.Child = s
	}

	return s
}

func MakeRootSegment() *Segment {
	return MakeSegment("root", nil, math3d.IdentityMatrix)
}

func (s Segment) String() string {
	var childStr string

	if s.Child != nil {
		childStr = s.Child.String()
	} else {
		childStr = "nil"
	}

	return fmt.Sprintf("&Seg{%s: %s %s}", s.Name, s.m, childStr)
}

// WorldMatrix returns a matrix which can be applied to a vector in this
// segment's coordinate space to convert it to the space of the root.
func (s *Segment) WorldMatrix() math3d.Matrix44 {
	if s.parent != nil {
		return s.parent.WorldMatrix().Multiply(s.m)
	}
	return s.m
}

// End returns the end of this segment, in the root coordinate space.
func (s *Segment) End() r3.Vector {
	return s.WorldMatrix().Translation()
}
