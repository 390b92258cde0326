package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/designlab/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███████╗███████╗██╗ ██████╗ ███╗   ██╗██╗      █████╗ ██████╗
 ██╔══██╗██╔════╝██╔════╝██║██╔════╝ ████╗  ██║██║     ██╔══██╗██╔══██╗
 ██║  ██║█████╗  ███████╗██║██║  ███╗██╔██╗ ██║██║     ███████║██████╔╝
 ██║  ██║██╔══╝  ╚════██║██║██║   ██║██║╚██╗██║██║     ██╔══██║██╔══██╗
 ██████╔╝███████╗███████║██║╚██████╔╝██║ ╚████║███████╗██║  ██║██████╔╝
 ╚═════╝ ╚══════╝╚══════╝╚═╝ ╚═════╝ ╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝╚═════╝`

const bannerCompact = "D E S I G N L A B"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 74

// RenderBanner returns the styled banner, or a compact one for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
