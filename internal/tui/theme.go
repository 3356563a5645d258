package tui

import (
	"github.com/charmbracelet/lipgloss"

	"expoBooths/internal/models"
)

// Theme is the palette of the terminal floor plan, in ANSI 256 colors.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	StatusAvailable lipgloss.Color
	StatusReserved  lipgloss.Color
	StatusSold      lipgloss.Color

	PackageBasic    lipgloss.Color
	PackageSilver   lipgloss.Color
	PackageGold     lipgloss.Color
	PackagePlatinum lipgloss.Color

	ActiveFilterBackground lipgloss.Color
	BorderColor            lipgloss.Color

	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		NormalText: lipgloss.Color("252"),
		FaintText:  lipgloss.Color("243"),

		StatusAvailable: lipgloss.Color("28"),
		StatusReserved:  lipgloss.Color("136"),
		StatusSold:      lipgloss.Color("124"),

		PackageBasic:    lipgloss.Color("250"),
		PackageSilver:   lipgloss.Color("153"),
		PackageGold:     lipgloss.Color("220"),
		PackagePlatinum: lipgloss.Color("183"),

		ActiveFilterBackground: lipgloss.Color("24"),
		BorderColor:            lipgloss.Color("240"),

		TooltipForeground: lipgloss.Color("255"),
		TooltipBackground: lipgloss.Color("237"),
	}
}

// StatusColor returns FaintText for statuses outside the known set.
func (theme Theme) StatusColor(status models.Status) lipgloss.Color {
	switch status {
	case models.StatusAvailable:
		return theme.StatusAvailable
	case models.StatusReserved:
		return theme.StatusReserved
	case models.StatusSold:
		return theme.StatusSold
	}
	return theme.FaintText
}

func (theme Theme) PackageColor(pkg models.Package) lipgloss.Color {
	switch pkg {
	case models.PackageBasic:
		return theme.PackageBasic
	case models.PackageSilver:
		return theme.PackageSilver
	case models.PackageGold:
		return theme.PackageGold
	case models.PackagePlatinum:
		return theme.PackagePlatinum
	}
	return theme.NormalText
}
