package display

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styling for the table renderer.
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	SubHeader   lipgloss.Style
	CardRed     lipgloss.Style
	CardBlack   lipgloss.Style
	HumanName   lipgloss.Style
	NPCName     lipgloss.Style
	ChipsRich   lipgloss.Style
	ChipsOK     lipgloss.Style
	ChipsLow    lipgloss.Style
	ChipsBroke  lipgloss.Style
	Bust        lipgloss.Style
	TwentyOne   lipgloss.Style
	Status      lipgloss.Style
	Pot         lipgloss.Style
	Achievement lipgloss.Style
	Dealer      lipgloss.Style
	DealerSnark lipgloss.Style
	Separator   lipgloss.Style
	Muted       lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C8C8C8")).
			Bold(true),
		HumanName: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		NPCName: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4C430")),
		ChipsRich: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		ChipsOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		ChipsLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4C430")),
		ChipsBroke: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Bust: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		TwentyOne: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Achievement: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Dealer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		DealerSnark: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
