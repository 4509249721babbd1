package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/shellingo/shellingo/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗  ██╗███████╗██╗     ██╗     ██╗███╗   ██╗ ██████╗  ██████╗
 ██╔════╝██║  ██║██╔════╝██║     ██║     ██║████╗  ██║██╔════╝ ██╔═══██╗
 ███████╗███████║█████╗  ██║     ██║     ██║██╔██╗ ██║██║  ███╗██║   ██║
 ╚════██║██╔══██║██╔══╝  ██║     ██║     ██║██║╚██╗██║██║   ██║██║   ██║
 ███████║██║  ██║███████╗███████╗███████╗██║██║ ╚████║╚██████╔╝╚██████╔╝
 ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝╚═╝  ╚═══╝ ╚═════╝  ╚═════╝`

const bannerCompact = "S H E L L I N G O"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 72

// RenderBanner returns the banner styled in the primary color, or a compact
// one-line version when width cannot fit the full art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
