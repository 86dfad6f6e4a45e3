package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/fluix/internal/config"
	"github.com/aretw0/fluix/internal/logging"
	"github.com/aretw0/fluix/internal/presentation/tui"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/scheduler"
	"github.com/aretw0/fluix/pkg/spring"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.True(t, strings.HasPrefix(out, "fluix version "))
}

func TestSpringCommand(t *testing.T) {
	out := execute(t, "spring", "--format", "text")
	assert.Contains(t, out, "transition-duration: 967ms;")
	assert.Contains(t, out, "transition-timing-function: linear(0 0%")

	out = execute(t, "spring", "--stiffness", "100", "--damping", "10", "--mass", "1", "--format", "json")
	var css spring.CSS
	require.NoError(t, json.Unmarshal([]byte(out), &css))
	assert.Equal(t, spring.ToCSS(spring.DefaultConfig).Easing, css.Easing)

	out = execute(t, "spring", "--keyframes", "0,100", "--format", "yaml")
	var set spring.KeyframeSet
	require.NoError(t, yaml.Unmarshal([]byte(out), &set))
	require.NotEmpty(t, set.Frames)
	assert.Equal(t, 0.0, set.Frames[0].Value)
}

func TestSpringCommand_Errors(t *testing.T) {
	rootCmd.SetArgs([]string{"spring", "--format", "xml"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer rootCmd.SetArgs(nil)
	assert.Error(t, rootCmd.Execute())
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	r := tui.New(tui.WithProfile(termenv.Ascii), tui.WithMarkdown(nil))

	err := runDemo(context.Background(), &out, r, domain.Config{}, false)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "── 1. show a toast with the default id ──")
	assert.Contains(t, text, "✔ success  Saved!  (fluix-default)")
	assert.Contains(t, text, "i info  Updated  (fluix-default)")
	assert.Contains(t, text, "… loading  Uploading files  (upload)")
	assert.Contains(t, text, "✔ success  Uploaded 3 files  (upload)")
	assert.Contains(t, text, "[ Retry ]")
	assert.Contains(t, text, "(sync) exiting")
	assert.True(t, strings.HasSuffix(text, "(no toasts)\n\n"))
}

func TestNewMCPMachine_AutoDismiss(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		clock := scheduler.NewManual()
		m := newMCPMachine(config.Server{AutoDismiss: enabled}, &config.File{}, logging.NewNop(), machine.WithScheduler(clock))
		m.Create(domain.Options{ID: "agent", Duration: domain.DurationOf(time.Second)})

		clock.Advance(time.Second)
		item := m.Snapshot().Toasts[0]
		assert.Equal(t, enabled, item.Exiting, "auto-dismiss %v", enabled)
		m.Destroy()
	}
}
