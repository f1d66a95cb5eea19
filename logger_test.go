package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Station-Manager/diag/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapDefault installs svc as the process default for the duration of t.
func swapDefault(t *testing.T, svc *Service) {
	t.Helper()
	prev := Default()
	SetDefault(svc)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestDefaultService(t *testing.T) {
	svc := Default()
	require.NotNil(t, svc)
	assert.True(t, svc.isInitialized.Load())

	SetDefault(nil)
	assert.Same(t, svc, Default())
}

func TestPackageLevelPrinting(t *testing.T) {
	svc, buf := newTestService(t, nil)
	svc.debugOutput = forceOn
	swapDefault(t, svc)

	SetColoringEnabled(false)
	Debug("d {}", 1)
	DebugColored(ColorGreen, "dc")
	Print("p")
	Println("pl")
	Log("l")
	Success("s")
	Warn("w")
	Error("e {}", format.Escaped("\x1b"))

	want := "[ DEBUG ] d 1\n" +
		"[ DEBUG ] dc\n" +
		"ppl\n" +
		"[  LOG  ] l\n" +
		"[SUCCESS] s\n" +
		"[WARNING] w\n" +
		"[ ERROR ] e 0x1B\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	SetColoringEnabled(true)
	Log("c")
	assert.Equal(t, "[  LOG  ] \033[1;37mc\033[0m\n", buf.String())
}

func TestPackageLevelChecks(t *testing.T) {
	svc, buf := newFailService(t, nil)
	svc.assertions = forceOn
	swapDefault(t, svc)

	assert.NotPanics(t, func() {
		Assert(true)
		Assertf(true, "x")
		Check(true)
		Checkf(true, "x")
	})

	var here Location
	assert.PanicsWithValue(t, exitCalled{code: AbortExitCode}, func() {
		here = Caller(0)
		Check(false)
	})
	assert.Equal(t, expectedLine(here, defaultFailMessage), buf.String())

	buf.Reset()
	assert.PanicsWithValue(t, exitCalled{code: AbortExitCode}, func() {
		here = Caller(0)
		Assert(false)
	})
	assert.Equal(t, expectedLine(here, defaultFailMessage), buf.String())

	cases := map[string]func(){
		"assertf":      func() { Assertf(false, "a {}", 1) },
		"checkf":       func() { Checkf(false, "a {}", 1) },
		"unreachable":  func() { Unreachable() },
		"unreachablef": func() { Unreachablef("a {}", 1) },
	}
	for name, fn := range cases {
		buf.Reset()
		assert.Panics(t, fn, name)
		assert.Contains(t, buf.String(), "[ ERROR ] file: logger_test.go(", name)
	}
}

func TestDumpOutputs(t *testing.T) {
	type inner struct {
		Label string
	}
	type person struct {
		Name    string
		Age     int
		Tags    []string
		Raw     []byte
		Inner   *inner
		Missing *inner
		secret  string
	}

	svc, buf := newTestService(t, &Config{NoColor: true})
	svc.debugOutput = forceOn
	swapDefault(t, svc)

	p := person{Name: "Ada", Age: 37, Tags: []string{"x", "y"}, Raw: []byte("a\x00"), Inner: &inner{Label: "in"}, secret: "hidden"}

	Dump(nil)
	svc.Dump(map[string]int{"a": 1})
	svc.Dump(&p)
	svc.Dump(42)

	out := buf.String()
	assert.Contains(t, out, "[ DEBUG ] Dump: [nullptr]\n")
	assert.Contains(t, out, "[a]: 1\n")
	assert.Contains(t, out, "Struct: person\n")
	assert.Contains(t, out, "Name: Ada\n")
	assert.Contains(t, out, "Age: 37\n")
	assert.Contains(t, out, "Tags[1]: y\n")
	assert.Contains(t, out, "Raw: a0x00\n")
	assert.Contains(t, out, "Inner.Label: in\n")
	assert.Contains(t, out, "Missing: [nullptr]\n")
	assert.Contains(t, out, "[ DEBUG ] 42\n")
	assert.NotContains(t, out, "hidden")
}

func TestDumpLimits(t *testing.T) {
	type node struct {
		Next *node
	}
	svc, buf := newTestService(t, &Config{NoColor: true})
	svc.debugOutput = forceOn

	n := &node{}
	n.Next = n
	svc.Dump(n)
	assert.Contains(t, buf.String(), "<circular reference>")

	buf.Reset()
	svc.Dump(make([]int, 25))
	assert.Contains(t, buf.String(), "... (15 more elements)")
	assert.Equal(t, 1, strings.Count(buf.String(), "[9]: 0"))
	assert.NotContains(t, buf.String(), "[10]: 0")
}

func TestDumpUninitialized(t *testing.T) {
	buf := &bytes.Buffer{}
	svc := &Service{Out: buf, debugOutput: forceOn}
	svc.Dump(map[string]int{"a": 1})
	assert.Zero(t, buf.Len())
}
