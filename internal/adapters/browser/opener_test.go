package browser

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_RejectsInvalidTargets(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"empty", ""},
		{"file scheme", "file:///etc/passwd"},
		{"shell injection attempt", "; rm -rf /"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opened []string
			o := &Opener{openDefault: func(u string) error {
				opened = append(opened, u)
				return nil
			}}

			assert.Error(t, o.Open(tt.target))
			assert.Empty(t, opened)
		})
	}
}

func TestConfiguredBrowser_EnvPrecedence(t *testing.T) {
	t.Setenv("PRINBOX_BROWSER", "firefox")
	t.Setenv("BROWSER", "chromium")

	name, ok := configuredBrowser()
	assert.True(t, ok)
	assert.Equal(t, "firefox", name)

	t.Setenv("PRINBOX_BROWSER", "")
	name, _ = configuredBrowser()
	assert.Equal(t, "chromium", name)

	t.Setenv("BROWSER", "")
	_, ok = configuredBrowser()
	assert.False(t, ok)
}

func TestOpen_UsesPlatformDefaultWithoutOverride(t *testing.T) {
	t.Setenv("PRINBOX_BROWSER", "")
	t.Setenv("BROWSER", "")

	var opened []string
	o := &Opener{openDefault: func(u string) error {
		opened = append(opened, u)
		return nil
	}}

	require.NoError(t, o.Open("https://github.com/acme/api/pull/1"))
	assert.Equal(t, []string{"https://github.com/acme/api/pull/1"}, opened)
}

func TestOpen_PlatformDefaultFailure(t *testing.T) {
	t.Setenv("PRINBOX_BROWSER", "")
	t.Setenv("BROWSER", "")

	o := &Opener{openDefault: func(string) error { return errors.New("xdg-open not found") }}

	err := o.Open("https://github.com/acme/api/pull/1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xdg-open not found")
}

func TestOpen_StartsConfiguredBrowser(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the unix true command")
	}
	t.Setenv("PRINBOX_BROWSER", "true")

	o := &Opener{openDefault: func(string) error {
		t.Fatal("platform default must not be used when a browser is configured")
		return nil
	}}
	require.NoError(t, o.Open("https://github.com/acme/api/pull/1"))
}
