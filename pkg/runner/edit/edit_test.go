package edit

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store/storetest"
	"tableflip.dev/resolution/pkg/validate"
)

func init() {
	color.NoColor = true
}

func strptr(s string) *string { return &s }
func intptr(i int) *int { return &i }

func TestEditOnlySuppliedFields(t *testing.T) {
	p, path := storetest.New(t)
	storetest.Seed(t, p,
		storetest.Entry("Learn Rust", 5, "2999-01-01"),
		storetest.Entry("Read more", 3, ""),
	)
	var out bytes.Buffer

	e := Edit{
		Position:    1,
		Changes:     Changes{Text: strptr("Learn Go")},
		Persistence: p,
		Printer:     printers.PrettyPrint{Out: &out},
	}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := storetest.Read(t, path), "Learn Go,5,2999-01-01\nRead more,3,-\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	want := "The New Year's resolution has been updated with the following properties:\n" +
		" - Old Text: Learn Rust -> New Text: Learn Go\n" +
		" - Unchanged Priority: 5\n" +
		" - Unchanged Deadline: 2999-01-01\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestEditDoesNotValidate(t *testing.T) {
	for _, priority := range []int{0, 999} {
		p, path := storetest.New(t)
		storetest.Seed(t, p, storetest.Entry("Learn Rust", 5, ""))

		e := Edit{
			Position:    1,
			Changes:     Changes{Priority: intptr(priority), Deadline: strptr("1999-01-01")},
			Persistence: p,
			Printer:     printers.PrettyPrint{Out: &bytes.Buffer{}},
		}
		if err := e.Do(context.Background()); err != nil {
			t.Fatalf("priority %d: unexpected error: %v", priority, err)
		}

		all, err := p.LoadAll(context.Background())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if all[0].Priority != priority {
			t.Fatalf("expected priority %d to be stored, got %d", priority, all[0].Priority)
		}
		if all[0].DeadlineOr("") != "1999-01-01" {
			t.Fatalf("expected past deadline to be stored, got %q (%s)", all[0].DeadlineOr(""), storetest.Read(t, path))
		}
	}
}

func TestEditAddsDeadline(t *testing.T) {
	p, _ := storetest.New(t)
	storetest.Seed(t, p, storetest.Entry("Learn Rust", 5, ""))
	var out bytes.Buffer

	e := Edit{Position: 1, Changes: Changes{Deadline: strptr("2999-01-01")}, Persistence: p, Printer: printers.PrettyPrint{Out: &out}}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte(" - Old Deadline: none -> New Deadline: 2999-01-01\n")) {
		t.Fatalf("unexpected report %q", out.String())
	}
}

func TestEditInvalidPosition(t *testing.T) {
	for _, pos := range []int{0, 2, -1} {
		p, path := storetest.New(t)
		storetest.Seed(t, p, storetest.Entry("Learn Rust", 5, ""))
		before := storetest.Read(t, path)

		e := Edit{Position: pos, Changes: Changes{Text: strptr("x")}, Persistence: p, Printer: printers.PrettyPrint{Out: &bytes.Buffer{}}}
		err := e.Do(context.Background())
		if !validate.IsUserError(err) {
			t.Fatalf("position %d: expected validation error, got %v", pos, err)
		}
		if after := storetest.Read(t, path); after != before {
			t.Fatalf("position %d: file changed from %q to %q", pos, before, after)
		}
	}
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	all := []*entry.Entry{storetest.Entry("a", 1, ""), storetest.Entry("b", 2, "")}
	sel, err := Select(all, 2)
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	updated, before, after, err := Apply(all, sel, Changes{Text: strptr("c")})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if all[1].Text != "b" {
		t.Fatalf("input list was modified")
	}
	if updated[1].Text != "c" || before.Text != "b" || after.Text != "c" {
		t.Fatalf("unexpected result: %v %v %v", updated[1], before, after)
	}
}

func TestSelectionZeroValue(t *testing.T) {
	var sel Selection
	if sel.IsSet() {
		t.Fatalf("expected zero selection to be unset")
	}
	if _, _, _, err := Apply(nil, sel, Changes{}); err != validate.ErrPositionNotSet {
		t.Fatalf("expected ErrPositionNotSet, got %v", err)
	}
}
