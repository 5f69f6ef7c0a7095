package restore

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store"
	"tableflip.dev/resolution/pkg/store/storetest"
	"tableflip.dev/resolution/pkg/validate"
)

func init() {
	color.NoColor = true
}

func newStore(t *testing.T) (store.Persistence, *store.Snapshots, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := storetest.Config{
		File:       filepath.Join(dir, "files", "resolutions.csv"),
		Snapshots:  true,
		SnapshotAt: filepath.Join(dir, "files", ".backups"),
		Keep:       10,
	}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, store.NewSnapshots(cfg.SnapshotAt, cfg.Keep), cfg.File
}

func TestRestoreSnapshot(t *testing.T) {
	p, snaps, path := newStore(t)
	storetest.Seed(t, p, storetest.Entry("Learn Rust", 5, "2999-01-01"), storetest.Entry("Read more", 3, ""))
	storetest.Seed(t, p, storetest.Entry("Read more", 3, ""))

	keys := snaps.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected one snapshot, got %v", keys)
	}

	var out bytes.Buffer
	r := Restore{Key: keys[0], Snapshots: snaps, Persistence: p, Printer: printers.PrettyPrint{Out: &out}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := storetest.Read(t, path), "Learn Rust,5,2999-01-01\nRead more,3,-\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !strings.Contains(out.String(), "Restored 2 New Year's resolutions") {
		t.Fatalf("unexpected report %q", out.String())
	}
}

func TestRestoreList(t *testing.T) {
	p, snaps, _ := newStore(t)
	storetest.Seed(t, p, storetest.Entry("a", 1, ""))
	storetest.Seed(t, p, storetest.Entry("a", 1, ""), storetest.Entry("b", 2, ""))

	var out bytes.Buffer
	r := Restore{Snapshots: snaps, Persistence: p, Printer: printers.PrettyPrint{Out: &out}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), snaps.Keys()[0]) {
		t.Fatalf("expected snapshot key in output:\n%s", out.String())
	}
}

func TestRestoreMissingKey(t *testing.T) {
	p, snaps, path := newStore(t)
	storetest.Seed(t, p, storetest.Entry("a", 1, ""))
	before := storetest.Read(t, path)

	r := Restore{Key: "nope", Snapshots: snaps, Persistence: p, Printer: printers.PrettyPrint{Out: &bytes.Buffer{}}}
	err := r.Do(context.Background())
	if !validate.IsUserError(err) {
		t.Fatalf("expected a user error, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "The snapshot nope does not exist.") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if after := storetest.Read(t, path); after != before {
		t.Fatalf("expected no write, file changed to %q", after)
	}
}

func TestRestoreDisabled(t *testing.T) {
	p, _ := storetest.New(t)
	var out bytes.Buffer
	r := Restore{Persistence: p, Printer: printers.PrettyPrint{Out: &out}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Snapshots are disabled") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
