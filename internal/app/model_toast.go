package app

import (
	"strings"

	"charm.land/lipgloss/v2"

	"notes/internal/types"
)

const toastMaxWidth = 48

func (m *Model) toastLines(width int) []string {
	if m.toasts == nil || width <= 0 {
		return nil
	}
	current := m.toasts.Toasts()
	if len(current) == 0 {
		return nil
	}
	maxTextWidth := max(1, min(toastMaxWidth, width)-2)
	lines := make([]string, 0, len(current))
	// Oldest on top so the newest sits closest to the bottom edge.
	for i := len(current) - 1; i >= 0; i-- {
		t := current[i]
		text := truncateToWidth(strings.Join(strings.Fields(t.Message), " "), maxTextWidth)
		pill := toastStyle(t.Kind).Render(" " + text + " ")
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, pill))
	}
	return lines
}

func toastStyle(kind types.ToastKind) lipgloss.Style {
	switch kind {
	case types.ToastSuccess:
		return toastSuccessStyle
	case types.ToastError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}

func (m *Model) notifySuccess(message string) {
	if m.toasts != nil {
		m.toasts.Success(message)
	}
}

func (m *Model) notifyError(message string) {
	if m.toasts != nil {
		m.toasts.Error(message)
	}
}

func (m *Model) notifyInfo(message string) {
	if m.toasts != nil {
		m.toasts.Info(message)
	}
}

func (m *Model) dismissNewestToast() bool {
	return m.toasts != nil && m.toasts.DismissNewest()
}
