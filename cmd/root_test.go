package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/formatfield/internal/format"
)

func TestApplyOnce_FormatsText(t *testing.T) {
	out, diags := applyOnce(format.RawConfig{Rules: "snake,lower"}, "Hello World", false)
	require.Empty(t, diags)
	require.Equal(t, "hello_world", out)
}

func TestApplyOnce_NumericClamp(t *testing.T) {
	two := 2
	min := 0.0
	max := 100.0
	raw := format.RawConfig{
		Rules:       "onlynumbers",
		MaxDecimals: &two,
		MinValue:    &min,
		MaxValue:    &max,
	}

	out, diags := applyOnce(raw, "150", false)
	require.Empty(t, diags)
	require.Equal(t, "100", out)
}

func TestApplyOnce_ReportsDiagnosticsButFormats(t *testing.T) {
	out, diags := applyOnce(format.RawConfig{Rules: "upper,bogus"}, "abc", false)
	require.Len(t, diags, 1)
	require.Equal(t, "ABC", out)
}

func TestApplyOnce_AllRulesRejectedFallsBackToIdentity(t *testing.T) {
	out, diags := applyOnce(format.RawConfig{Rules: "bogus,nonsense"}, "Abc 123", false)
	require.Len(t, diags, 2)
	require.Equal(t, "Abc 123", out, "fully rejected sequence leaves text unchanged")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"demo", "apply", "rules", "init"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}
