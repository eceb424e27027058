package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"signin-front/internal/form"
	"signin-front/internal/i18n"
)

// Run shows the form until the user signs in or quits and returns the final
// model.
func Run(ctx context.Context, ctrl *form.Controller, cat *i18n.Catalog, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(New(ctx, ctrl, cat), opts...).Run()
	if err != nil {
		return Model{}, err
	}
	return final.(Model), nil
}
