// Package report presents check reports. Printers only describe results:
// failing cases never turn into errors, only write failures do.
package report

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"typeprobe/check"
	"typeprobe/internal/logger"
)

// Printer writes a report somewhere.
type Printer interface {
	Print(r check.Report) error
}

// dumper renders expected and actual values. Pointer addresses are left out
// so that output is stable between runs.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Text prints one line per case, grouped under "# block" headings. Failing
// cases are followed by dumps of the expected and actual values.
type Text struct {
	W io.Writer
}

func (p Text) Print(r check.Report) error {
	ew := &errWriter{w: p.W}

	block, first := "", true
	for _, rec := range r.Records {
		if first || rec.Block != block {
			if !first {
				ew.printf("\n")
			}

			block, first = rec.Block, false
			ew.printf("# %s\n\n", block)
		}

		ew.printf("[%s] %s\n", rec.Outcome, rec.Name)

		if rec.Outcome == check.OutcomeFail {
			ew.printf("Verdict: %s\n", rec.Verdict)
			ew.printf("Expected:\n%s", dumper.Sdump(rec.Expected))
			ew.printf("Actual:\n%s", dumper.Sdump(rec.Actual))
		}
	}

	ew.printf("\n%d passed, %d failed\n", r.Passed(), r.Failed())

	return ew.err
}

// YAML writes the report as a single YAML document.
type YAML struct {
	W io.Writer
}

type yamlRecord struct {
	check.Record `yaml:",inline"`
	Expected     string `yaml:"expected,omitempty"`
	Actual       string `yaml:"actual,omitempty"`
}

type yamlReport struct {
	Passed  int          `yaml:"passed"`
	Failed  int          `yaml:"failed"`
	Records []yamlRecord `yaml:"records"`
}

func (p YAML) Print(r check.Report) error {
	doc := yamlReport{
		Passed:  r.Passed(),
		Failed:  r.Failed(),
		Records: make([]yamlRecord, 0, len(r.Records)),
	}

	for _, rec := range r.Records {
		yr := yamlRecord{Record: rec}
		if rec.Outcome == check.OutcomeFail {
			yr.Expected = dumper.Sprintf("%#v", rec.Expected)
			yr.Actual = dumper.Sprintf("%#v", rec.Actual)
		}

		doc.Records = append(doc.Records, yr)
	}

	enc := yaml.NewEncoder(p.W)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return enc.Close()
}

// Log emits one structured log entry per case: info for passes, error for failures.
type Log struct {
	Logger logger.Logger
}

func (p Log) Print(r check.Report) error {
	for _, rec := range r.Records {
		if rec.Outcome == check.OutcomePass {
			p.Logger.Infow(rec.Name, "block", rec.Block, "outcome", rec.Outcome.String())
			continue
		}

		p.Logger.Errorw(rec.Name,
			"block", rec.Block,
			"outcome", rec.Outcome.String(),
			"verdict", rec.Verdict.String(),
			"expected", dumper.Sprintf("%#v", rec.Expected),
			"actual", dumper.Sprintf("%#v", rec.Actual),
		)
	}

	p.Logger.Infow("run finished", "passed", r.Passed(), "failed", r.Failed())

	return nil
}

// errWriter keeps the first write error and skips writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}

	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
