package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
)

func (a *App) ShowSettings(ctx context.Context, _ []string) error {
	s, err := a.settings.Get(ctx)
	if err != nil {
		return err
	}
	a.printSettings(s)
	return nil
}

func (a *App) printSettings(s models.Settings) {
	a.printf("  %-20s %t\n", "darkMode", s.DarkMode)
	a.printf("  %-20s %s\n", "language", s.Language)
	a.printf("  %-20s %t\n", "notifications", s.Notifications)
	a.printf("  %-20s %t\n", "injectionReminders", s.InjectionReminders)
	a.printf("  %-20s %t\n", "pinEnabled", s.PinEnabled)
	a.printf("  %-20s %t\n", "biometricsEnabled", s.BiometricsEnabled)
	a.printf("  %-20s %d\n", "autoLockMinutes", s.AutoLockMinutes)
}

// Set changes one setting: set <key> <value>.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.println("Usage: set <key> <value>")
		return nil
	}

	patch, err := parseSetting(args[0], args[1])
	if err != nil {
		return err
	}
	s, err := a.settings.Update(ctx, patch)
	if err != nil {
		return err
	}
	a.printSettings(s)
	return nil
}

func (a *App) ResetSettings(ctx context.Context, _ []string) error {
	if err := a.settings.Reset(ctx); err != nil {
		return err
	}
	a.println("Settings restored to defaults.")
	return nil
}

func parseSetting(key, value string) (models.SettingsPatch, error) {
	var p models.SettingsPatch

	if strings.EqualFold(key, "language") {
		p.Language = &value
		return p, nil
	}
	if strings.EqualFold(key, "autoLockMinutes") {
		n, err := strconv.Atoi(value)
		if err != nil {
			return p, models.NewValidationError(fmt.Sprintf("%s expects a number", key))
		}
		p.AutoLockMinutes = &n
		return p, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		b, err = parseOnOff(value)
	}

	var target **bool
	switch strings.ToLower(key) {
	case "darkmode":
		target = &p.DarkMode
	case "notifications":
		target = &p.Notifications
	case "injectionreminders":
		target = &p.InjectionReminders
	case "pin", "pinenabled":
		target = &p.PinEnabled
	case "biometrics", "biometricsenabled":
		target = &p.BiometricsEnabled
	default:
		return p, models.NewValidationError(fmt.Sprintf("Unknown setting %q", key))
	}
	if err != nil {
		return p, models.NewValidationError(fmt.Sprintf("%s expects on or off", key))
	}
	*target = &b
	return p, nil
}

func parseOnOff(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return false, strconv.ErrSyntax
}
