package cmd

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/systray"
	"github.com/ncruces/zenity"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/allyctl/allyctl/hidio"
	"github.com/allyctl/allyctl/internal/log"
)

// Tray runs the resident agent: a system tray menu plus a hotplug
// monitor that primes controllers as they appear.
type Tray struct {
	PollInterval time.Duration `default:"2s" help:"Hotplug poll interval"`
	Notify       bool          `default:"true" negatable:"" help:"Show desktop notifications for controller events"`
}

func (c *Tray) Run(logger *slog.Logger, rawLogger log.RawLogger, flags *DeviceFlags) error {
	if err := hidio.Init(); err != nil {
		return ally.NewError(ally.KindOutOfResources, "hid init", err)
	}
	defer func() { _ = hidio.Exit() }()

	app := &trayApp{
		flags:    flags,
		logger:   logger,
		raw:      rawLogger,
		notify:   c.Notify,
		registry: ally.NewRegistry(),
		monitor:  hidio.NewMonitor(flags.Match, c.PollInterval, logger),
		stop:     make(chan struct{}),
	}
	systray.Run(app.onReady, app.onExit)
	return nil
}

type trayApp struct {
	flags  *DeviceFlags
	logger *slog.Logger
	raw    log.RawLogger
	notify bool

	registry *ally.Registry
	monitor  *hidio.Monitor

	stop     chan struct{}
	stopOnce sync.Once

	status    *systray.MenuItem
	modeItems map[ally.Mode]*systray.MenuItem
	apply     *systray.MenuItem
	quit      *systray.MenuItem
}

func (a *trayApp) onReady() {
	systray.SetTitle("allyctl")
	systray.SetTooltip("ROG Ally controller configuration")

	a.status = systray.AddMenuItem("No controller", "Connected controllers")
	a.status.Disable()
	systray.AddSeparator()

	a.modeItems = map[ally.Mode]*systray.MenuItem{
		ally.ModeGame:  systray.AddMenuItemCheckbox("Game mode", "Switch to the gamepad profile", false),
		ally.ModeWASD:  systray.AddMenuItemCheckbox("WASD mode", "Switch to the keyboard profile", false),
		ally.ModeMouse: systray.AddMenuItemCheckbox("Mouse mode", "Switch to the mouse profile", false),
	}
	systray.AddSeparator()
	a.apply = systray.AddMenuItem("Re-apply profile", "Push the active profile again")
	systray.AddSeparator()
	a.quit = systray.AddMenuItem("Quit", "Stop the agent")

	a.monitor.Start()
	go a.loop()
	a.logger.Info("tray agent started")
}

func (a *trayApp) onExit() {
	a.stopOnce.Do(func() { close(a.stop) })
	a.monitor.Close()
	if err := a.registry.Close(); err != nil {
		a.logger.Debug("registry close", "error", err)
	}
	a.logger.Info("tray agent stopped")
}

func (a *trayApp) loop() {
	for {
		select {
		case <-a.stop:
			return
		case ev := <-a.monitor.Events():
			switch ev.Kind {
			case hidio.Arrived:
				a.attach(ev.Info)
			case hidio.Departed:
				a.detach(ev.Info)
			}
		case <-a.modeItems[ally.ModeGame].ClickedCh:
			a.setMode(ally.ModeGame)
		case <-a.modeItems[ally.ModeWASD].ClickedCh:
			a.setMode(ally.ModeWASD)
		case <-a.modeItems[ally.ModeMouse].ClickedCh:
			a.setMode(ally.ModeMouse)
		case <-a.apply.ClickedCh:
			a.applyAll()
		case <-a.quit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

// attach opens a newly arrived interface and primes it with the stored
// configuration.
func (a *trayApp) attach(info hidio.DeviceInfo) {
	t, err := hidio.OpenPath(info.Path)
	if err != nil {
		a.logger.Warn("controller open failed", "path", info.Path, "error", err)
		a.notifyError(fmt.Sprintf("Could not open %s: %v", displayName(info), err))
		return
	}
	d := ally.New(t, ally.Config{StrictReady: a.flags.StrictReady}, a.logger, a.raw)
	if err := d.Init(); err != nil {
		a.logger.Warn("controller init failed", "path", info.Path, "error", err)
		_ = d.Close()
		a.notifyError(fmt.Sprintf("Could not initialize %s: %v", displayName(info), err))
		return
	}
	if replaced := a.registry.Add(info.Path, d); replaced != nil {
		_ = replaced.Close()
	}
	a.logger.Info("controller attached", "path", info.Path, "product", info.Product)
	a.refresh()
	a.notifyInfo(displayName(info) + " connected")
}

func (a *trayApp) detach(info hidio.DeviceInfo) {
	d := a.registry.Remove(info.Path)
	if d == nil {
		return
	}
	if err := d.Close(); err != nil {
		a.logger.Debug("detached device close", "error", err)
	}
	a.logger.Info("controller detached", "path", info.Path)
	a.refresh()
	a.notifyInfo(displayName(info) + " disconnected")
}

func (a *trayApp) setMode(m ally.Mode) {
	for _, path := range a.registry.Paths() {
		d, ok := a.registry.Get(path)
		if !ok {
			continue
		}
		if err := d.SetMode(m); err != nil {
			a.logger.Warn("mode switch failed", "path", path, "mode", m, "error", err)
			a.notifyError(fmt.Sprintf("Mode switch failed: %v", err))
			continue
		}
		a.logger.Info("mode switched", "path", path, "mode", m)
	}
	a.refresh()
}

func (a *trayApp) applyAll() {
	for _, path := range a.registry.Paths() {
		d, ok := a.registry.Get(path)
		if !ok {
			continue
		}
		n, err := d.Apply()
		if err != nil {
			a.logger.Warn("profile push failed", "path", path, "error", err)
			a.notifyError(fmt.Sprintf("Profile push failed: %v", err))
			continue
		}
		a.logger.Info("profile applied", "path", path, "packets", n)
	}
}

// refresh syncs the status line and mode checkmarks with the registry.
// With several controllers attached, the first path's mode wins.
func (a *trayApp) refresh() {
	paths := a.registry.Paths()
	switch len(paths) {
	case 0:
		a.status.SetTitle("No controller")
	case 1:
		a.status.SetTitle("1 controller connected")
	default:
		a.status.SetTitle(fmt.Sprintf("%d controllers connected", len(paths)))
	}

	var mode ally.Mode
	if len(paths) > 0 {
		if d, ok := a.registry.Get(paths[0]); ok {
			mode = d.Mode()
		}
	}
	for m, item := range a.modeItems {
		if m == mode {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
}

func (a *trayApp) notifyInfo(text string) {
	if !a.notify {
		return
	}
	if err := zenity.Notify(text, zenity.Title("allyctl"), zenity.Icon(zenity.InfoIcon)); err != nil {
		a.logger.Debug("notification failed", "error", err)
	}
}

func (a *trayApp) notifyError(text string) {
	if !a.notify {
		return
	}
	if err := zenity.Notify(text, zenity.Title("allyctl"), zenity.Icon(zenity.ErrorIcon)); err != nil {
		a.logger.Debug("notification failed", "error", err)
	}
}

func displayName(info hidio.DeviceInfo) string {
	if info.Product != "" {
		return info.Product
	}
	return fmt.Sprintf("controller %04x:%04x", info.VendorID, info.ProductID)
}
