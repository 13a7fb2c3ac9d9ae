package hints

// ForBrowserConnect tests cannot use t.Parallel() because they use
// t.Setenv() and swap the package-level IsInContainer variable.

import (
	"strings"
	"testing"
)

// ---- TestForBrowserConnect - Environment-dependent suggestions ----

func TestForBrowserConnectInCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv("CI", "true")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserConnect()
	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Error("expected ROD_NO_SANDBOX suggestion in CI")
	}
	if !strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Error("expected ROD_BROWSER_BIN suggestion")
	}
}

func TestForBrowserConnectInDocker(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
	t.Setenv("JENKINS_URL", "")
	t.Setenv("ROD_NO_SANDBOX", "")

	if hint := ForBrowserConnect(); !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Error("expected ROD_NO_SANDBOX suggestion in container")
	}
}

func TestForBrowserConnectSandboxAlreadySet(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("ROD_NO_SANDBOX", "1")
	t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

	if hint := ForBrowserConnect(); hint != "" {
		t.Errorf("ForBrowserConnect() = %q, want empty", hint)
	}
}

// ---- TestStaticHints - Fixed hint texts ----

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func() string
		want string
	}{
		{name: "config not found", fn: ForConfigNotFound, want: "seps.yaml"},
		{name: "deploy target", fn: ForDeployTarget, want: "deploy.host"},
		{name: "bad sep argument", fn: ForBadSEPArg, want: "SEP number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.fn()
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("%s hint = %q, want \"\\n  hint: \" prefix", tt.name, got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("%s hint = %q, want substring %q", tt.name, got, tt.want)
			}
		})
	}
}
