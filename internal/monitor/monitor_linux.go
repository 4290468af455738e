//go:build linux

package monitor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alexanderramin/drift/internal/domain"
)

type linuxObserver struct{}

func newPlatformObserver() Observer {
	return &linuxObserver{}
}

// CurrentActivity resolves the active window's WM_CLASS via xdotool and
// xprop. Wayland sessions without XWayland will fail here, which the poll
// loop treats as no activity.
func (o *linuxObserver) CurrentActivity(ctx context.Context) (*domain.ActivityIdentity, error) {
	winID, err := output(ctx, "xdotool", "getactivewindow")
	if err != nil {
		return nil, fmt.Errorf("querying active window: %w", err)
	}
	if winID == "" {
		return nil, nil
	}

	class, err := output(ctx, "xprop", "-id", winID, "WM_CLASS")
	if err != nil {
		return nil, fmt.Errorf("querying window class: %w", err)
	}

	name := parseWMClass(class)
	if name == "" {
		return nil, nil
	}
	id := domain.SimpleActivity(name)
	return &id, nil
}

// parseWMClass extracts the class name from xprop output of the form
// WM_CLASS(STRING) = "instance", "Class".
func parseWMClass(out string) string {
	_, value, ok := strings.Cut(out, "=")
	if !ok {
		return ""
	}
	parts := strings.Split(value, ",")
	last := strings.TrimSpace(parts[len(parts)-1])
	return strings.Trim(last, `"`)
}

func output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
