package argxsio

import (
	"bytes"
	"strings"
	"testing"
)

func TestIOManager_FluentRedirects(t *testing.T) {
	var in, out, errOut bytes.Buffer
	m := New().WithIn(&in).WithOut(&out).WithErr(&errOut)

	if m.In() != &in || m.Out() != &out || m.Err() != &errOut {
		t.Fatalf("redirects were not applied")
	}
	if m.IsTTY() {
		t.Errorf("a buffer is never a terminal")
	}
	if !m.IsPiped() {
		t.Errorf("a buffer input must count as piped")
	}
}

func TestIOManager_WidthFallback(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{})

	t.Setenv("COLUMNS", "101")
	if m.Width() != 101 {
		t.Fatalf("want 101, got %d", m.Width())
	}

	t.Setenv("COLUMNS", "wide")
	if m.Width() != 80 {
		t.Fatalf("want default 80, got %d", m.Width())
	}
}

func TestIOManager_ColorOverrides(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	m := New().WithOut(&bytes.Buffer{})

	if m.SupportsColor() {
		t.Fatalf("non-terminal output should not support color")
	}
	if !m.ForceColor().SupportsColor() {
		t.Fatalf("ForceColor should enable")
	}
	if m.NoColor().SupportsColor() {
		t.Fatalf("NoColor should disable")
	}

	m.ForceColor()
	t.Setenv("NO_COLOR", "1")
	if m.SupportsColor() {
		t.Fatalf("NO_COLOR should win over ForceColor")
	}

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	if !m.ColorAuto().SupportsColor() {
		t.Fatalf("FORCE_COLOR should enable")
	}
}

func TestLogger_TaggedPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()
	log := NewLogger(m).WithFormat(LogFormatTagged)

	log.Info("parsed %d flags", 3)
	log.Success("done")
	log.Error("unknown flag: %s", "-z")
	log.Warning("careful")
	log.Debug("hidden below the default level")

	if got := out.String(); got != "[INFO] parsed 3 flags\n[SUCCESS] done\n" {
		t.Errorf("unexpected stdout: %q", got)
	}
	if got := errOut.String(); got != "[ERROR] unknown flag: -z\n[WARN] careful\n" {
		t.Errorf("unexpected stderr: %q", got)
	}
}

func TestLogger_LevelsAndRouting(t *testing.T) {
	var out bytes.Buffer
	m := New().WithOut(&out).WithErr(&out).NoColor()
	log := NewLogger(m).WithFormat(LogFormatPlain).WithLevel(LevelDebug).ErrorsToStderr(false)

	log.Debug("one")
	log.Error("two")
	log.Info("   ")

	if got := out.String(); got != "one\ntwo\n   \n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestLogger_Symbols(t *testing.T) {
	var out bytes.Buffer
	log := NewLogger(New().WithOut(&out).NoColor())

	log.Success("ok")
	if got := out.String(); got != "✓ ok\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestLogger_Timestamp(t *testing.T) {
	var out bytes.Buffer
	log := NewLogger(New().WithOut(&out).NoColor()).
		WithFormat(LogFormatTagged).
		WithTimestamp(true).
		WithTimeFormat("2006")

	log.Info("x")
	got := out.String()
	if !strings.HasPrefix(got, "[INFO] [") || !strings.HasSuffix(got, "] x\n") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestLogger_Color(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var out bytes.Buffer
	log := NewLogger(New().WithOut(&out).ForceColor()).WithFormat(LogFormatPlain)

	log.Info("colored")
	got := out.String()
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "colored") || !strings.Contains(got, "\x1b[0m") {
		t.Fatalf("missing ANSI sequences: %q", got)
	}
}
