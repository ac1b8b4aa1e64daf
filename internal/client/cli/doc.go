// Package cli provides the interactive planmate command-line client.
//
// It wires configuration, the persisted session, API services, and an
// interactive REPL. Typical flow: restore the session from disk (or prompt
// for credentials), then execute user commands against the backend.
//
// Key commands:
//   - register / login / logout / whoami
//   - projects — list projects
//   - open <id> — fetch a project and make it current
//   - newproject / rmproject <id>
//   - newtask / toggle <taskId> / rmtask <taskId> (on the current project)
//   - ping — server liveness check
//
// Every write is followed by a full reload of the affected view (the project
// list or the current project); nothing is updated optimistically.
// Destructive commands ask for confirmation before any request is issued.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
