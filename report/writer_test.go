// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmarkov/markov"
	"github.com/katalvlaran/lvmarkov/matrix"
	"github.com/katalvlaran/lvmarkov/report"
)

const referenceReport = "After step 1:\n" +
	"p1(1) = 0.4000 p2(1) = 0.2500 p3(1) = 0.2000 p4(1) = 0.1000 p5(1) = 0.0500 \n\n" +
	"After step 2:\n" +
	"p1(2) = 0.1600 p2(2) = 0.2125 p3(2) = 0.2025 p4(2) = 0.2150 p5(2) = 0.2100 \n\n" +
	"After step 3:\n" +
	"p1(3) = 0.0640 p2(3) = 0.1356 p3(3) = 0.1459 p4(3) = 0.2249 p5(3) = 0.4296 \n\n" +
	"After step 4:\n" +
	"p1(4) = 0.0256 p2(4) = 0.0770 p3(4) = 0.0905 p4(4) = 0.1779 p5(4) = 0.6290 \n\n" +
	"After step 5:\n" +
	"p1(5) = 0.0102 p2(5) = 0.0411 p3(5) = 0.0515 p4(5) = 0.1209 p5(5) = 0.7762 \n\n" +
	"Verification p(5) = p(0) * P⁵:\n" +
	"p(1) = 0.0102 p(2) = 0.0411 p(3) = 0.0515 p(4) = 0.1209 p(5) = 0.7762 \n"

func referenceChain(t *testing.T, opts ...markov.Option) *markov.Chain {
	t.Helper()
	p, err := matrix.NewDenseFromRows([][]float64{
		{0.4, 0.25, 0.20, 0.10, 0.05},
		{0, 0.45, 0.25, 0.20, 0.10},
		{0, 0, 0.3, 0.45, 0.25},
		{0, 0, 0, 0.35, 0.65},
		{0, 0, 0, 0, 1},
	})
	require.NoError(t, err)
	c, err := markov.New(p, []float64{1, 0, 0, 0, 0}, opts...)
	require.NoError(t, err)

	return c
}

func TestRun_ReferenceScenario(t *testing.T) {
	var buf bytes.Buffer
	res, err := report.NewWriter(&buf).Run(referenceChain(t), 5)
	require.NoError(t, err)
	assert.Equal(t, referenceReport, buf.String())

	assert.Equal(t, 5, res.Steps)
	assert.LessOrEqual(t, res.Deviation, 1e-12)
	assert.InDelta(t, 0.7762440625, res.Iterated[4], 1e-12)
	assert.InDelta(t, 0.7762440625, res.Direct[4], 1e-12)
}

func TestRun_ZeroSteps(t *testing.T) {
	var buf bytes.Buffer
	res, err := report.NewWriter(&buf).Run(referenceChain(t), 0)
	require.NoError(t, err)
	assert.Equal(t, "Verification p(0) = p(0) * P⁰:\np(1) = 1.0000 p(2) = 0.0000 p(3) = 0.0000 p(4) = 0.0000 p(5) = 0.0000 \n", buf.String())
	assert.Equal(t, markov.StateVector{1, 0, 0, 0, 0}, res.Iterated)
	assert.Zero(t, res.Deviation)
}

func TestRun_UkrainianLabels(t *testing.T) {
	labels, err := report.LabelsFor("uk")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = report.NewWriter(&buf, report.WithLabels(labels)).Run(referenceChain(t), 5)
	require.NoError(t, err)

	want := strings.NewReplacer(
		"After step 1:", "Після 1-го тесту:",
		"After step 2:", "Після 2-го тесту:",
		"After step 3:", "Після 3-го тесту:",
		"After step 4:", "Після 4-го тесту:",
		"After step 5:", "Після 5-го тесту:",
		"Verification", "Перевірка",
	).Replace(referenceReport)
	assert.Equal(t, want, buf.String())
}

func TestStep_SingleBlock(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf)
	require.NoError(t, w.Step(12, markov.StateVector{0.123456, 0.876544}))
	assert.Equal(t, "After step 12:\np1(12) = 0.1235 p2(12) = 0.8765 \n\n", buf.String())
}

func TestColor(t *testing.T) {
	var plain, colored bytes.Buffer
	_, err := report.NewWriter(&plain, report.WithColor(termenv.Ascii)).Run(referenceChain(t), 2)
	require.NoError(t, err)
	_, err = report.NewWriter(&colored, report.WithColor(termenv.TrueColor)).Run(referenceChain(t), 2)
	require.NoError(t, err)

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	// Value lines are never styled.
	assert.Contains(t, colored.String(), "\np1(1) = 0.4000 p2(1) = 0.2500 ")
	assert.NotEqual(t, plain.String(), colored.String())
}

// failWriter accepts n writes and then fails.
type failWriter struct{ n int }

var errWrite = errors.New("disk full")

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errWrite
	}
	f.n--

	return len(p), nil
}

func TestWriter_StickyError(t *testing.T) {
	w := report.NewWriter(&failWriter{n: 3})
	_, err := w.Run(referenceChain(t), 5)
	require.ErrorIs(t, err, errWrite)
	require.ErrorIs(t, w.Err(), errWrite)
	require.ErrorIs(t, w.Step(1, markov.StateVector{1}), errWrite)
}

// flakyBackend fails its third vector product only; later calls succeed.
type flakyBackend struct {
	markov.DenseBackend
	calls int
}

var errBackend = errors.New("backend failed")

func (b *flakyBackend) VecMul(x []float64, m matrix.Matrix) ([]float64, error) {
	b.calls++
	if b.calls == 3 {
		return nil, errBackend
	}

	return b.DenseBackend.VecMul(x, m)
}

func TestIterate_TransientBackendError(t *testing.T) {
	var buf bytes.Buffer
	fb := &flakyBackend{}
	c := referenceChain(t, markov.WithBackend(fb))

	_, err := report.NewWriter(&buf).Iterate(c, 5)
	require.ErrorIs(t, err, errBackend)
	assert.Equal(t, 3, fb.calls, "the chain is walked once")
	assert.Contains(t, buf.String(), "After step 2:")
	assert.NotContains(t, buf.String(), "After step 3:")
}

func TestRun_StopsOnBackendError(t *testing.T) {
	var buf bytes.Buffer
	c := referenceChain(t, markov.WithBackend(&flakyBackend{}))
	_, err := report.NewWriter(&buf).Run(c, 5)
	require.ErrorIs(t, err, errBackend)
	assert.NotContains(t, buf.String(), "Verification")
}

func TestSteps_DrainsSequence(t *testing.T) {
	var buf bytes.Buffer
	last, n, err := report.NewWriter(&buf).Steps(referenceChain(t).Steps(2))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 0.21, last[4], 1e-12)
	assert.Equal(t, 2, strings.Count(buf.String(), "After step"))
}

func TestConverge_WritesLimit(t *testing.T) {
	var buf bytes.Buffer
	v, k, err := report.NewWriter(&buf).Converge(referenceChain(t), 1e-6, 1000)
	require.NoError(t, err)
	assert.Equal(t, 23, k)
	assert.InDelta(t, 1.0, v[4], 1e-6)
	assert.Equal(t, "\nConverged after 23 steps:\n"+
		"p(1) = 0.0000 p(2) = 0.0000 p(3) = 0.0000 p(4) = 0.0000 p(5) = 1.0000 \n", buf.String())

	buf.Reset()
	labels, err := report.LabelsFor("uk")
	require.NoError(t, err)
	_, _, err = report.NewWriter(&buf, report.WithLabels(labels)).Converge(referenceChain(t), 1e-6, 1000)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Збіжність після 23 кроків:\n")
}

func TestConverge_NoConvergenceWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	_, k, err := report.NewWriter(&buf).Converge(referenceChain(t), 1e-12, 4)
	require.ErrorIs(t, err, markov.ErrNoConvergence)
	assert.Equal(t, 4, k)
	assert.Empty(t, buf.String())
}

func TestLimit_CustomLabelsFallBackToEnglish(t *testing.T) {
	var buf bytes.Buffer
	custom := report.Labels{
		Step:         func(k int) string { return "step" },
		Verification: func(n int) string { return "check" },
	}
	w := report.NewWriter(&buf, report.WithLabels(custom))
	require.NoError(t, w.Limit(7, markov.StateVector{0.5, 0.5}))
	assert.Equal(t, "\nConverged after 7 steps:\np(1) = 0.5000 p(2) = 0.5000 \n", buf.String())
}

func TestLabelsFor(t *testing.T) {
	for _, name := range []string{"", "en", "EN", "english"} {
		l, err := report.LabelsFor(name)
		require.NoError(t, err, name)
		assert.Equal(t, "After step 3:", l.Step(3))
	}
	for _, name := range []string{"uk", "ua", "Ukrainian"} {
		l, err := report.LabelsFor(name)
		require.NoError(t, err, name)
		assert.Equal(t, "Перевірка p(12) = p(0) * P¹²:", l.Verification(12))
	}
	_, err := report.LabelsFor("fr")
	assert.ErrorIs(t, err, report.ErrUnknownLocale)
}

func TestSuperscript(t *testing.T) {
	cases := map[int]string{0: "⁰", 5: "⁵", 10: "¹⁰", 1234567890: "¹²³⁴⁵⁶⁷⁸⁹⁰", -3: "⁻³"}
	for n, want := range cases {
		assert.Equal(t, want, report.Superscript(n), "n=%d", n)
	}
}
