//go:build darwin

package monitor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alexanderramin/drift/internal/domain"
)

// chromeAppName is the frontmost-process name that prompts a tab lookup.
const chromeAppName = "Google Chrome"

type darwinObserver struct{}

func newPlatformObserver() Observer {
	return &darwinObserver{}
}

const frontmostScript = `tell application "System Events" to get name of first process whose frontmost is true`

const chromeTabScript = `tell application "Google Chrome"
	if (count of windows) is 0 then return ""
	set w to front window
	set t to active tab of w
	return (title of t) & "|||" & (URL of t)
end tell`

// CurrentActivity asks System Events for the frontmost process; when Chrome
// is frontmost it also fetches the active tab title and URL so the identity
// distinguishes tabs, not just the browser.
func (o *darwinObserver) CurrentActivity(ctx context.Context) (*domain.ActivityIdentity, error) {
	name, err := runOsascript(ctx, frontmostScript)
	if err != nil {
		return nil, fmt.Errorf("querying frontmost process: %w", err)
	}
	if name == "" {
		return nil, nil
	}

	if name == chromeAppName {
		if tab, err := o.chromeTab(ctx); err == nil && tab != nil {
			return tab, nil
		}
		// Tab lookup failed (no window, script error): fall back to the
		// plain application identity rather than dropping the tick.
	}

	id := domain.SimpleActivity(name)
	return &id, nil
}

func (o *darwinObserver) chromeTab(ctx context.Context) (*domain.ActivityIdentity, error) {
	out, err := runOsascript(ctx, chromeTabScript)
	if err != nil {
		return nil, fmt.Errorf("querying chrome tab: %w", err)
	}
	title, url, ok := strings.Cut(out, "|||")
	if !ok {
		return nil, nil
	}
	id := domain.BrowserActivity(chromeAppName, title, url)
	return &id, nil
}

func runOsascript(ctx context.Context, script string) (string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
