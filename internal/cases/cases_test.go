package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeprobe/check"
	"typeprobe/kind"
	"typeprobe/tally"
)

func TestSuitePasses(t *testing.T) {
	t.Parallel()

	report := check.Run(Suite())
	require.NotEmpty(t, report.Records)

	for _, rec := range report.Failures() {
		t.Errorf("[%s] %s: verdict %s, expected %#v, actual %#v", rec.Block, rec.Name, rec.Verdict, rec.Expected, rec.Actual)
	}

	assert.Equal(t, len(report.Records), report.Passed())
}

func TestKnownValuesCoverEveryKind(t *testing.T) {
	t.Parallel()

	seen := make(map[kind.RealEnum]bool)
	for _, tag := range tally.RealTypes(KnownValues()) {
		seen[tag] = true
	}

	for k := kind.RealEnum(1); int(k) < kind.RealTotal; k++ {
		if k == kind.RealOther {
			continue
		}

		assert.True(t, seen[k], "missing %s", k)
	}
}

func TestMixedCountsSumToLength(t *testing.T) {
	t.Parallel()

	items := Mixed()
	assert.Equal(t, len(items), tally.Total(tally.CountRealTypes(items)))
}
