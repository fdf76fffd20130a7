package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"typeprobe/check"
	"typeprobe/internal/logger"
)

func sampleReport() check.Report {
	var s check.Suite
	s.Block("getType").
		Case("Boolean", "boolean", "boolean").
		Case("Number", "string", "number")
	s.Block("countRealTypes").
		Case("Single", []any{1}, []any{1})

	return check.Run(&s)
}

func TestText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Text{W: &buf}.Print(sampleReport()))

	expected := "# getType\n\n" +
		"[OK] Boolean\n" +
		"[FAIL] Number\n" +
		"Verdict: different\n" +
		"Expected:\n(string) (len=6) \"number\"\n" +
		"Actual:\n(string) (len=6) \"string\"\n" +
		"\n# countRealTypes\n\n" +
		"[OK] Single\n" +
		"\n2 passed, 1 failed\n"

	assert.Equal(t, expected, buf.String())
}

func TestTextEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Text{W: &buf}.Print(check.Report{}))
	assert.Equal(t, "\n0 passed, 0 failed\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextWriteError(t *testing.T) {
	t.Parallel()

	err := Text{W: failingWriter{}}.Print(sampleReport())
	require.EqualError(t, err, "disk full")
}

func TestYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, YAML{W: &buf}.Print(sampleReport()))

	var doc struct {
		Passed  int `yaml:"passed"`
		Failed  int `yaml:"failed"`
		Records []struct {
			Block    string `yaml:"block"`
			Name     string `yaml:"name"`
			Outcome  string `yaml:"outcome"`
			Verdict  string `yaml:"verdict"`
			Expected string `yaml:"expected"`
			Actual   string `yaml:"actual"`
		} `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 2, doc.Passed)
	assert.Equal(t, 1, doc.Failed)
	require.Len(t, doc.Records, 3)

	assert.Equal(t, "getType", doc.Records[0].Block)
	assert.Equal(t, "OK", doc.Records[0].Outcome)
	assert.Equal(t, "same", doc.Records[0].Verdict)
	assert.Empty(t, doc.Records[0].Expected)

	assert.Equal(t, "FAIL", doc.Records[1].Outcome)
	assert.Equal(t, "different", doc.Records[1].Verdict)
	assert.Contains(t, doc.Records[1].Expected, `"number"`)
	assert.Contains(t, doc.Records[1].Actual, `"string"`)
}

func TestLog(t *testing.T) {
	t.Parallel()

	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	require.NoError(t, Log{Logger: lggr}.Print(sampleReport()))

	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.InfoLevel).Len())

	failures := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, failures, 1)
	assert.Equal(t, "Number", failures[0].Message)
	assert.Equal(t, "getType", failures[0].ContextMap()["block"])
	assert.Equal(t, "different", failures[0].ContextMap()["verdict"])

	summary := logs.FilterMessage("run finished").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 2, summary[0].ContextMap()["passed"])
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lggr := logger.Nop()

	p, err := ForFormat("text", &buf, lggr)
	require.NoError(t, err)
	assert.IsType(t, Text{}, p)

	p, err = ForFormat("yaml", &buf, lggr)
	require.NoError(t, err)
	assert.IsType(t, YAML{}, p)

	p, err = ForFormat("log", &buf, lggr)
	require.NoError(t, err)
	assert.IsType(t, Log{}, p)

	_, err = ForFormat("xml", &buf, lggr)
	require.Error(t, err)
}
