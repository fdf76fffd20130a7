package check

// Report holds the records of a run in suite order.
type Report struct {
	Records []Record
}

// Passed returns the number of passing records.
func (r Report) Passed() int {
	return r.count(OutcomePass)
}

// Failed returns the number of failing records.
func (r Report) Failed() int {
	return r.count(OutcomeFail)
}

// HasFailures returns true if any record failed.
func (r Report) HasFailures() bool {
	return r.Failed() > 0
}

// Failures returns the failing records only.
func (r Report) Failures() []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.Outcome == OutcomeFail {
			out = append(out, rec)
		}
	}

	return out
}

// Blocks returns block names in first-seen order.
func (r Report) Blocks() []string {
	var names []string

	seen := make(map[string]struct{})
	for _, rec := range r.Records {
		if _, ok := seen[rec.Block]; ok {
			continue
		}

		seen[rec.Block] = struct{}{}
		names = append(names, rec.Block)
	}

	return names
}

func (r Report) count(o Outcome) int {
	n := 0
	for _, rec := range r.Records {
		if rec.Outcome == o {
			n++
		}
	}

	return n
}
