package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
)

var errNoProjectOpened = errors.New("no project opened; use 'open <id>' first")

// NewTask creates a task under the currently opened project and reloads it.
func (a *App) NewTask(ctx context.Context) error {
	if a.current == nil {
		fmt.Println(errNoProjectOpened)
		return errNoProjectOpened
	}

	title, err := getSimpleText(a.reader, "Enter task title", os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := getSimpleText(a.reader, "Enter due date YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.projectService.AddTask(ctx, a.current.ID, title, dueDate); err != nil {
		log.Printf("Failed to create task: %v", err)
		return err
	}

	a.reloadCurrent(ctx)
	return nil
}

// Toggle flips the completion state of a task in the currently opened
// project, then reloads the project so the view reflects the server's state.
func (a *App) Toggle(ctx context.Context, args []string) error {
	if a.current == nil {
		fmt.Println(errNoProjectOpened)
		return errNoProjectOpened
	}

	id, err := a.resolveID(args, "Enter task id")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	task, ok := a.findTask(id)
	if !ok {
		err := fmt.Errorf("no task #%d in the opened project", id)
		log.Printf("error: %v", err)
		return err
	}

	if _, err := a.projectService.Toggle(ctx, task); err != nil {
		log.Printf("Failed to update task: %v", err)
		return err
	}

	a.reloadCurrent(ctx)
	return nil
}

// RemoveTask deletes a task after explicit confirmation and reloads the
// opened project. Declining issues no request.
func (a *App) RemoveTask(ctx context.Context, args []string) error {
	if a.current == nil {
		fmt.Println(errNoProjectOpened)
		return errNoProjectOpened
	}

	id, err := a.resolveID(args, "Enter task id to delete")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ok, err := getConfirmation(a.reader, "Delete this task?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.projectService.DeleteTask(ctx, id); err != nil {
		log.Printf("Failed to delete task: %v", err)
		return err
	}

	a.reloadCurrent(ctx)
	return nil
}
