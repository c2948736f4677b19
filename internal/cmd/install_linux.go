//go:build linux

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/allyctl/allyctl/device/ally"
)

const (
	autostartFile = "allyctl.desktop"
	udevRulePath  = "/etc/udev/rules.d/99-allyctl.rules"
)

func install(logger *slog.Logger) error {
	exePath, err := currentExecutable()
	if err != nil {
		return err
	}

	dir, err := autostartDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	entry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=Allyctl
Comment=ROG Ally controller configuration agent
Exec=%s tray
X-GNOME-Autostart-enabled=true
`, exePath)
	path := filepath.Join(dir, autostartFile)
	if err := os.WriteFile(path, []byte(entry), 0o644); err != nil {
		return err
	}
	logger.Info("autostart entry installed", "path", path)

	if os.Geteuid() == 0 {
		if err := installUdevRule(logger); err != nil {
			return err
		}
	} else {
		logger.Info("run install as root to add the hidraw udev rule")
	}

	if err := exec.Command(exePath, "tray").Start(); err != nil {
		return fmt.Errorf("failed to start tray agent: %w", err)
	}
	return nil
}

func uninstall(logger *slog.Logger) error {
	dir, err := autostartDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, autostartFile)
	if err := os.Remove(path); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		logger.Info("autostart entry removed", "path", path)
	}

	if os.Geteuid() == 0 {
		if err := os.Remove(udevRulePath); err != nil {
			if !os.IsNotExist(err) {
				return err
			}
		} else {
			logger.Info("udev rule removed", "path", udevRulePath)
		}
	}
	return nil
}

func autostartDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "autostart"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "autostart"), nil
}

// installUdevRule grants console users access to the configuration
// interface's hidraw node.
func installUdevRule(logger *slog.Logger) error {
	var b strings.Builder
	for _, pid := range []uint16{ally.ProductAllyRC71L, ally.ProductAllyX} {
		fmt.Fprintf(&b, "KERNEL==\"hidraw*\", ATTRS{idVendor}==\"%04x\", ATTRS{idProduct}==\"%04x\", MODE=\"0660\", TAG+=\"uaccess\"\n",
			ally.VendorASUS, pid)
	}
	if err := os.WriteFile(udevRulePath, []byte(b.String()), 0o644); err != nil {
		return err
	}
	logger.Info("udev rule installed", "path", udevRulePath)

	if out, err := exec.Command("udevadm", "control", "--reload-rules").CombinedOutput(); err != nil {
		logger.Warn("udevadm reload failed", "error", err, "output", strings.TrimSpace(string(out)))
	}
	return nil
}
