package app

import "charm.land/lipgloss/v2"

const (
	panelPaddingVertical   = 0
	panelPaddingHorizontal = 1
)

var (
	headerStyle              = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	subtitleStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle                = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	mutedStyle               = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	activityStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	noteTitleStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	noteSnippetStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noteDeletingStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true)
	selectedStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	dividerStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	menuDropStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	dialogHeaderStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	confirmDialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208"))
	fieldLabelStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	fieldErrorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	buttonStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true).Underline(true)
	buttonDisabledStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Underline(true)
	panelStyle               = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color("238")).
					Padding(panelPaddingVertical, panelPaddingHorizontal)
	errorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(panelPaddingVertical, panelPaddingHorizontal)
	errorTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true)
	toastSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
