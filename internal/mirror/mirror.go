// Package mirror pushes the local task store into a remote task list.
//
// Each local task owns one remote task, tagged with a marker in the remote
// notes. Remote tasks without a marker belong to the user and are never
// modified.
package mirror

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"taskcli/internal/service"
)

// DefaultListTitle is the remote list used when none is given.
const DefaultListTitle = "task-cli"

const markerPrefix = "task-cli:"

// Result counts what a push changed.
type Result struct {
	Created   int
	Updated   int
	Deleted   int
	Unchanged int
}

// Marker returns the notes marker for a local task id.
func Marker(id string) string {
	return markerPrefix + id
}

// localID extracts the local id from remote notes, if tagged.
func localID(notes string) (string, bool) {
	first, _, _ := strings.Cut(notes, "\n")
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(first, markerPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(first, markerPrefix)
	return id, id != ""
}

// keepNotesTail replaces the first line of notes with marker and keeps the
// lines the user wrote below it.
func keepNotesTail(marker, notes string) string {
	if _, tail, ok := strings.Cut(notes, "\n"); ok {
		return marker + "\n" + tail
	}
	return marker
}

// desired returns the remote form of a local task.
func desired(t service.Task) service.RemoteTask {
	return service.RemoteTask{
		Title:     t.Description,
		Notes:     Marker(t.ID),
		Completed: t.Status == service.StatusDone,
	}
}

// Push makes the remote list titled listTitle mirror tasks.
// Operations stop at the first remote error; the returned Result reflects what
// was applied before it.
func Push(ctx context.Context, remote service.Remote, listTitle string, tasks []service.Task, log logrus.FieldLogger) (Result, error) {
	var res Result

	if strings.TrimSpace(listTitle) == "" {
		listTitle = DefaultListTitle
	}

	list, err := remote.EnsureList(ctx, listTitle)
	if err != nil {
		return res, fmt.Errorf("resolve list %q: %w", listTitle, err)
	}

	existing, err := remote.ListTasks(ctx, list.ID)
	if err != nil {
		return res, fmt.Errorf("list remote tasks: %w", err)
	}

	owned := make(map[string]service.RemoteTask, len(existing))
	for _, rt := range existing {
		id, ok := localID(rt.Notes)
		if !ok {
			continue
		}
		if _, dup := owned[id]; dup {
			// A second copy of the same local task; drop it.
			if err := remote.DeleteTask(ctx, list.ID, rt.ID); err != nil {
				return res, fmt.Errorf("delete duplicate %s: %w", rt.ID, err)
			}
			res.Deleted++
			continue
		}
		owned[id] = rt
	}

	for _, t := range tasks {
		want := desired(t)
		have, ok := owned[t.ID]
		delete(owned, t.ID)

		switch {
		case !ok:
			if err := remote.CreateTask(ctx, list.ID, want); err != nil {
				return res, fmt.Errorf("create %s: %w", t.ID, err)
			}
			log.WithField("id", t.ID).Debug("mirror: created")
			res.Created++
		case have.Title != want.Title || have.Completed != want.Completed:
			want.ID = have.ID
			want.Notes = keepNotesTail(want.Notes, have.Notes)
			if err := remote.UpdateTask(ctx, list.ID, want); err != nil {
				return res, fmt.Errorf("update %s: %w", t.ID, err)
			}
			log.WithField("id", t.ID).Debug("mirror: updated")
			res.Updated++
		default:
			res.Unchanged++
		}
	}

	// Whatever is left was deleted locally.
	for id, rt := range owned {
		if err := remote.DeleteTask(ctx, list.ID, rt.ID); err != nil {
			return res, fmt.Errorf("delete %s: %w", id, err)
		}
		log.WithField("id", id).Debug("mirror: deleted")
		res.Deleted++
	}

	return res, nil
}
