// Package check runs labelled example assertions and collects their results.
//
// Running never prints anything: Run returns a Report, and presenting it is
// left to the report package.
package check

import (
	"typeprobe/deep"
)

// Outcome is the result of a single case.
type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeFail
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "OK"
	case OutcomeFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Case is one labelled assertion: what was computed and what was expected.
type Case struct {
	Name     string
	Actual   any
	Expected any
}

// Block groups cases under a heading.
type Block struct {
	Name  string
	Cases []Case
}

// Case appends a case to the block and returns the block for chaining.
func (b *Block) Case(name string, actual, expected any) *Block {
	b.Cases = append(b.Cases, Case{Name: name, Actual: actual, Expected: expected})
	return b
}

// Suite is an ordered list of blocks.
type Suite struct {
	blocks []*Block
}

// Block opens a new block. Cases added to it keep their order in the report.
func (s *Suite) Block(name string) *Block {
	b := &Block{Name: name}
	s.blocks = append(s.blocks, b)

	return b
}

// Len returns the number of cases across all blocks.
func (s *Suite) Len() int {
	n := 0
	for _, b := range s.blocks {
		n += len(b.Cases)
	}

	return n
}

// Record is the result of running one case.
type Record struct {
	Block    string       `yaml:"block"`
	Name     string       `yaml:"name"`
	Outcome  Outcome      `yaml:"outcome"`
	Verdict  deep.Verdict `yaml:"verdict"`
	Expected any          `yaml:"-"`
	Actual   any          `yaml:"-"`
}

// Run evaluates every case of the suite in order.
// A case passes only when actual and expected are structurally the same;
// incomparable values fail.
func Run(s *Suite) Report {
	report := Report{Records: make([]Record, 0, s.Len())}

	for _, b := range s.blocks {
		for _, c := range b.Cases {
			v := deep.Compare(c.Actual, c.Expected)

			outcome := OutcomeFail
			if v == deep.Same {
				outcome = OutcomePass
			}

			report.Records = append(report.Records, Record{
				Block:    b.Name,
				Name:     c.Name,
				Outcome:  outcome,
				Verdict:  v,
				Expected: c.Expected,
				Actual:   c.Actual,
			})
		}
	}

	return report
}
