// Package lib provides a Go SDK to manage todo task lists programmatically.
//
// It uses the same storage as the todo CLI, so lists managed with the SDK are
// visible from the CLI and the other way around.
//
// # Quick Start
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	task, _ := client.AddTask(ctx, "Buy milk")
//	client.ToggleTask(ctx, task.ID)
//	client.SortTasks(ctx, lib.SortCompleted)
//
//	client.SetFilter(lib.FilterActive)
//	for _, t := range client.VisibleTasks() {
//	    fmt.Println(t.ID, t.Text)
//	}
//
// # Storage
//
// Every change is written to the storage before the call returns. The
// available backends are [StorageFile] (default, one JSON file per list),
// [StorageSQLite] and [StorageMemory] (nothing survives the process, useful
// for tests).
//
// # Errors
//
// Invalid arguments (empty text, unknown IDs) are no-ops, not errors. Errors
// are only returned when the storage fails, and can be checked with
// [errors.Is] against [ErrNotValid] and [ErrNotFound].
package lib
