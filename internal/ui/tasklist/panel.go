package tasklist

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomotask/internal/i18n"
	"pomotask/internal/tasks"
)

// Service is the task API the panel edits through.
type Service interface {
	Add(ctx context.Context, title string) (tasks.Task, error)
	Toggle(ctx context.Context, id string) (tasks.Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]tasks.Task, error)
}

// Panel lists tasks with an entry for adding new ones.
type Panel struct {
	service Service
	items   []tasks.Task
	content fyne.CanvasObject
	list    *widget.List
	entry   *widget.Entry
	counter *widget.Label
	empty   *widget.Label
}

// New builds the task panel and loads the current tasks.
func New(service Service) *Panel {
	panel := &Panel{service: service}

	panel.entry = widget.NewEntry()
	panel.entry.SetPlaceHolder(i18n.T("New task"))
	panel.entry.OnSubmitted = func(string) { panel.handleAdd() }
	addButton := widget.NewButtonWithIcon(i18n.T("Add"), theme.ContentAddIcon(), panel.handleAdd)

	panel.list = widget.NewList(
		func() int { return len(panel.items) },
		func() fyne.CanvasObject {
			remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			remove.Importance = widget.LowImportance
			return container.NewBorder(nil, nil, nil, remove, widget.NewCheck("", nil))
		},
		panel.updateRow,
	)

	panel.counter = widget.NewLabel("")
	panel.empty = widget.NewLabelWithStyle(i18n.T("No tasks yet"), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	header := container.NewBorder(nil, nil, nil, addButton, panel.entry)
	body := container.NewStack(panel.list, container.NewCenter(panel.empty))
	panel.content = container.NewBorder(header, panel.counter, nil, nil, body)

	panel.Reload()
	return panel
}

// Content returns the panel root object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Reload fetches tasks from the service and redraws the list.
func (panel *Panel) Reload() {
	list, err := panel.service.List(context.Background())
	if err != nil {
		log.Printf("tasklist: %v", err)
		return
	}
	panel.items = list
	panel.counter.SetText(counterText(list))
	if len(list) == 0 {
		panel.empty.Show()
	} else {
		panel.empty.Hide()
	}
	panel.list.Refresh()
}

func (panel *Panel) updateRow(id widget.ListItemID, object fyne.CanvasObject) {
	if id < 0 || id >= len(panel.items) {
		return
	}
	task := panel.items[id]
	row := object.(*fyne.Container)
	check := row.Objects[0].(*widget.Check)
	remove := row.Objects[1].(*widget.Button)

	check.OnChanged = nil
	check.SetText(task.Title)
	check.SetChecked(task.Completed)
	check.OnChanged = func(bool) {
		if _, err := panel.service.Toggle(context.Background(), task.ID); err != nil {
			log.Printf("tasklist: %v", err)
		}
		panel.Reload()
	}
	remove.OnTapped = func() {
		if err := panel.service.Delete(context.Background(), task.ID); err != nil {
			log.Printf("tasklist: %v", err)
		}
		panel.Reload()
	}
}

func (panel *Panel) handleAdd() {
	_, err := panel.service.Add(context.Background(), panel.entry.Text)
	if errors.Is(err, tasks.ErrEmptyTitle) {
		return
	}
	if err != nil {
		log.Printf("tasklist: %v", err)
		return
	}
	panel.entry.SetText("")
	panel.Reload()
}

func counterText(list []tasks.Task) string {
	return fmt.Sprintf(i18n.T("%d open"), tasks.Pending(list))
}
