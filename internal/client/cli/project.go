package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dpolyakov/planmate/internal/client/models"
)

// resolveID takes the numeric id either from the command arguments or, when
// absent, from an interactive prompt.
func (a *App) resolveID(args []string, prompt string) (int64, error) {
	s := ""
	if len(args) > 0 {
		s = args[0]
	} else {
		var err error
		s, err = getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return 0, err
		}
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// Projects lists all projects of the current user. Load failures are logged
// and leave whatever was previously displayed.
func (a *App) Projects(ctx context.Context) error {
	projects, err := a.projectService.List(ctx)
	if err != nil {
		log.Printf("Failed to load projects: %v", err)
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects yet. Create your first project!")
		return nil
	}
	for _, p := range projects {
		completed := 0
		for _, t := range p.Tasks {
			if t.IsCompleted {
				completed++
			}
		}
		description := p.Description
		if description == "" {
			description = "No description"
		}
		fmt.Printf("#%d %s — %s (%d tasks, %d completed)\n", p.ID, p.Title, description, len(p.Tasks), completed)
	}
	return nil
}

// Open fetches one project and makes it the current one for task commands.
func (a *App) Open(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Enter project id")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	project, err := a.projectService.Get(ctx, id)
	if err != nil {
		log.Printf("Failed to load project: %v", err)
		return err
	}

	a.current = &project
	a.printCurrent()
	return nil
}

func (a *App) printCurrent() {
	p := a.current
	description := p.Description
	if description == "" {
		description = "No description"
	}
	fmt.Printf("#%d %s — %s\n", p.ID, p.Title, description)

	if len(p.Tasks) == 0 {
		fmt.Println("No tasks yet. Add your first task!")
		return
	}
	for _, t := range p.Tasks {
		mark := " "
		if t.IsCompleted {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] #%d %s", mark, t.ID, t.Title)
		if t.DueDate != "" {
			line += " (due " + t.DueDate + ")"
		}
		fmt.Println(line)
	}
}

// reloadCurrent re-fetches the opened project after a task mutation. On a
// read failure the previous state stays on screen.
func (a *App) reloadCurrent(ctx context.Context) {
	if a.current == nil {
		return
	}
	project, err := a.projectService.Get(ctx, a.current.ID)
	if err != nil {
		log.Printf("Failed to reload project: %v", err)
		return
	}
	a.current = &project
	a.printCurrent()
}

// NewProject prompts for a title and optional description and creates the
// project. The full project list is reloaded afterwards.
func (a *App) NewProject(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.projectService.Create(ctx, title, description); err != nil {
		log.Printf("Failed to create project: %v", err)
		return err
	}

	return a.Projects(ctx)
}

// RemoveProject deletes a project after explicit confirmation. Declining
// issues no request at all.
func (a *App) RemoveProject(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "Enter project id to delete")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ok, err := getConfirmation(a.reader, "Delete this project and all its tasks?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.projectService.Delete(ctx, id); err != nil {
		log.Printf("Failed to delete project: %v", err)
		return err
	}
	if a.current != nil && a.current.ID == id {
		a.current = nil
	}

	return a.Projects(ctx)
}

func (a *App) findTask(id int64) (models.Task, bool) {
	if a.current == nil {
		return models.Task{}, false
	}
	for _, t := range a.current.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}
