// Package quiz defines the personality axes, type codes, and the built-in
// question bank.
package quiz

// Axis is one of the four bipolar dimensions measured by the quiz.
type Axis string

const (
	AxisInitiative Axis = "initiative"
	AxisTempo      Axis = "tempo"
	AxisExpression Axis = "expression"
	AxisAdventure  Axis = "adventure"
)

// AxisCount is the number of axes, and the length of a type code.
const AxisCount = 4

var axisOrder = [AxisCount]Axis{AxisInitiative, AxisTempo, AxisExpression, AxisAdventure}

type axisInfo struct {
	positive, negative           byte
	positiveTrait, negativeTrait string
	label                        string
}

var axes = map[Axis]axisInfo{
	AxisInitiative: {'L', 'F', "Lead", "Follow", "Initiative"},
	AxisTempo:      {'S', 'Q', "Slow", "Quick", "Tempo"},
	AxisExpression: {'V', 'A', "Verbal", "Atmosphere", "Expression"},
	AxisAdventure:  {'T', 'C', "Thrill", "Comfort", "Adventure"},
}

// Axes returns the axes in type-code order.
func Axes() []Axis {
	out := make([]Axis, AxisCount)
	copy(out, axisOrder[:])
	return out
}

func (a Axis) Valid() bool {
	_, ok := axes[a]
	return ok
}

// Index returns the axis position within a type code, or -1.
func (a Axis) Index() int {
	for i, x := range axisOrder {
		if x == a {
			return i
		}
	}
	return -1
}

// Positive returns the letter chosen when the axis sum is zero or above.
func (a Axis) Positive() byte { return axes[a].positive }

// Negative returns the letter chosen when the axis sum is below zero.
func (a Axis) Negative() byte { return axes[a].negative }

// Label returns the display name of the axis.
func (a Axis) Label() string { return axes[a].label }

// Traits returns the display names of the positive and negative poles.
func (a Axis) Traits() (positive, negative string) {
	info := axes[a]
	return info.positiveTrait, info.negativeTrait
}

// Letter returns the letter for an accumulated axis sum.
// A zero sum is a tie and resolves to the positive letter.
func (a Axis) Letter(sum int) byte {
	if sum >= 0 {
		return a.Positive()
	}
	return a.Negative()
}
