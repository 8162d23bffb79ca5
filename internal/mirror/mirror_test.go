package mirror_test

import (
	"context"
	"errors"
	"testing"

	"taskcli/internal/logger"
	"taskcli/internal/mirror"
	"taskcli/internal/service"
	"taskcli/internal/testutil"
)

func localTasks() []service.Task {
	return []service.Task{
		{ID: "a", Description: "Buy milk", Status: service.StatusTodo},
		{ID: "b", Description: "Write report", Status: service.StatusInProgress},
		{ID: "c", Description: "File taxes", Status: service.StatusDone},
	}
}

func push(t *testing.T, remote *testutil.FakeRemote, tasks []service.Task) mirror.Result {
	t.Helper()
	res, err := mirror.Push(context.Background(), remote, "", tasks, logger.Discard())
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	return res
}

func TestPush_CreatesListAndTasks(t *testing.T) {
	remote := testutil.NewFakeRemote()

	res := push(t, remote, localTasks())
	if res != (mirror.Result{Created: 3}) {
		t.Errorf("unexpected result: %+v", res)
	}

	lists := remote.Lists()
	if len(lists) != 1 || lists[0].Title != mirror.DefaultListTitle {
		t.Fatalf("expected list %q, got %+v", mirror.DefaultListTitle, lists)
	}

	got := remote.Tasks(lists[0].ID)
	if len(got) != 3 {
		t.Fatalf("expected 3 remote tasks, got %d", len(got))
	}
	if got[0].Title != "Buy milk" || got[0].Notes != mirror.Marker("a") || got[0].Completed {
		t.Errorf("unexpected first task: %+v", got[0])
	}
	if got[1].Completed {
		t.Error("in-progress task should not be completed remotely")
	}
	if !got[2].Completed {
		t.Error("done task should be completed remotely")
	}
}

func TestPush_Idempotent(t *testing.T) {
	remote := testutil.NewFakeRemote()
	push(t, remote, localTasks())

	res := push(t, remote, localTasks())
	if res != (mirror.Result{Unchanged: 3}) {
		t.Errorf("unexpected result on second push: %+v", res)
	}
	if remote.Creates != 3 || remote.Updates != 0 || remote.Deletes != 0 {
		t.Errorf("unexpected calls: creates=%d updates=%d deletes=%d", remote.Creates, remote.Updates, remote.Deletes)
	}
}

func TestPush_UpdatesAndDeletes(t *testing.T) {
	remote := testutil.NewFakeRemote()
	push(t, remote, localTasks())

	tasks := localTasks()
	tasks[0].Status = service.StatusDone
	tasks[1].Description = "Write final report"
	tasks = append(tasks[:2], service.Task{ID: "d", Description: "New", Status: service.StatusTodo})

	res := push(t, remote, tasks)
	expected := mirror.Result{Created: 1, Updated: 2, Deleted: 1}
	if res != expected {
		t.Errorf("expected %+v, got %+v", expected, res)
	}

	got := remote.Tasks(remote.Lists()[0].ID)
	byMarker := map[string]service.RemoteTask{}
	for _, rt := range got {
		byMarker[rt.Notes] = rt
	}
	if _, ok := byMarker[mirror.Marker("c")]; ok {
		t.Error("task c should have been deleted remotely")
	}
	if !byMarker[mirror.Marker("a")].Completed {
		t.Error("task a should be completed remotely")
	}
	if byMarker[mirror.Marker("b")].Title != "Write final report" {
		t.Errorf("task b title not updated: %q", byMarker[mirror.Marker("b")].Title)
	}
}

func TestPush_UpdateKeepsUserNotes(t *testing.T) {
	remote := testutil.NewFakeRemote()
	remote.AddList("list1", mirror.DefaultListTitle)
	remote.AddTask("list1", service.RemoteTask{
		ID:    "r1",
		Title: "Buy milk",
		Notes: mirror.Marker("a") + "\noat, not dairy\nfrom the corner shop",
	})

	tasks := []service.Task{{ID: "a", Description: "Buy oat milk", Status: service.StatusTodo}}
	if res := push(t, remote, tasks); res != (mirror.Result{Updated: 1}) {
		t.Fatalf("unexpected result: %+v", res)
	}

	got := remote.Tasks("list1")
	if len(got) != 1 {
		t.Fatalf("expected one remote task, got %+v", got)
	}
	want := mirror.Marker("a") + "\noat, not dairy\nfrom the corner shop"
	if got[0].Notes != want {
		t.Errorf("expected notes %q, got %q", want, got[0].Notes)
	}
	if got[0].Title != "Buy oat milk" {
		t.Errorf("title not updated: %q", got[0].Title)
	}
}

func TestPush_LeavesForeignTasksAlone(t *testing.T) {
	remote := testutil.NewFakeRemote()
	remote.AddList("list1", "Task-CLI")
	remote.AddTask("list1", service.RemoteTask{ID: "mine", Title: "Handwritten", Notes: "call mom"})

	res := push(t, remote, nil)
	if res != (mirror.Result{}) {
		t.Errorf("unexpected result: %+v", res)
	}
	if got := remote.Tasks("list1"); len(got) != 1 || got[0].ID != "mine" {
		t.Errorf("foreign task was touched: %+v", got)
	}
	if len(remote.Lists()) != 1 {
		t.Error("existing list should be reused case-insensitively")
	}
}

func TestPush_RemovesDuplicates(t *testing.T) {
	remote := testutil.NewFakeRemote()
	remote.AddList("l", "task-cli")
	remote.AddTask("l", service.RemoteTask{ID: "x1", Title: "Buy milk", Notes: mirror.Marker("a")})
	remote.AddTask("l", service.RemoteTask{ID: "x2", Title: "Buy milk", Notes: mirror.Marker("a")})

	res := push(t, remote, localTasks()[:1])
	expected := mirror.Result{Deleted: 1, Unchanged: 1}
	if res != expected {
		t.Errorf("expected %+v, got %+v", expected, res)
	}
}

func TestPush_NamedList(t *testing.T) {
	remote := testutil.NewFakeRemote()
	_, err := mirror.Push(context.Background(), remote, "Work", localTasks(), logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if lists := remote.Lists(); len(lists) != 1 || lists[0].Title != "Work" {
		t.Errorf("expected list Work, got %+v", lists)
	}
}

func TestPush_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		inject func(*testutil.FakeRemote)
	}{
		{"ensure list", func(f *testutil.FakeRemote) { f.EnsureListErr = boom }},
		{"list tasks", func(f *testutil.FakeRemote) { f.ListTasksErr = boom }},
		{"create", func(f *testutil.FakeRemote) { f.CreateTaskErr = boom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := testutil.NewFakeRemote()
			tt.inject(remote)
			_, err := mirror.Push(context.Background(), remote, "", localTasks(), logger.Discard())
			if !errors.Is(err, boom) {
				t.Errorf("expected wrapped boom, got %v", err)
			}
		})
	}
}
