package tui

import "github.com/charmbracelet/huh"

// Confirm shows a yes/no confirmation prompt and returns the answer.
func Confirm(title, description string) (bool, error) {
	var value bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return value, nil
}
