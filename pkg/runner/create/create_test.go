package create

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/resolution/pkg/printers"
	"tableflip.dev/resolution/pkg/store/storetest"
	"tableflip.dev/resolution/pkg/validate"
)

func init() {
	color.NoColor = true
}

var now = func() time.Time {
	return time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
}

func strptr(s string) *string {
	return &s
}

func TestCreateOnEmptyStore(t *testing.T) {
	p, path := storetest.New(t)
	var out bytes.Buffer

	c := Create{
		Text:        "Learn Rust",
		Priority:    5,
		Deadline:    strptr("2999-01-01"),
		Persistence: p,
		Printer:     printers.PrettyPrint{Out: &out},
		Now:         now,
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data := storetest.Read(t, path); data != "Learn Rust,5,2999-01-01\n" {
		t.Fatalf("unexpected file contents %q", data)
	}

	want := "The following New Year's resolution has been created:\n" +
		" - Text: Learn Rust\n" +
		" - Priority: 5\n" +
		" - Deadline: 2999-01-01\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestCreateWithoutDeadline(t *testing.T) {
	p, path := storetest.New(t)
	var out bytes.Buffer

	c := Create{Text: "Drink water", Priority: 1, Persistence: p, Printer: printers.PrettyPrint{Out: &out}, Now: now}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data := storetest.Read(t, path); data != "Drink water,1,-\n" {
		t.Fatalf("unexpected file contents %q", data)
	}
	if strings.Contains(out.String(), "Deadline") {
		t.Fatalf("expected no deadline in report, got %q", out.String())
	}
}

func TestCreatePriorityRange(t *testing.T) {
	for p := -1; p <= 12; p++ {
		s, _ := storetest.New(t)
		c := Create{Text: "x", Priority: p, Persistence: s, Printer: printers.PrettyPrint{Out: &bytes.Buffer{}}, Now: now}
		err := c.Do(context.Background())
		valid := p >= 1 && p <= 10
		if valid && err != nil {
			t.Fatalf("priority %d: unexpected error %v", p, err)
		}
		if !valid && !validate.IsUserError(err) {
			t.Fatalf("priority %d: expected validation error, got %v", p, err)
		}
	}
}

func TestCreateRejectsWithoutWriting(t *testing.T) {
	tests := map[string]Create{
		"past deadline":  {Text: "x", Priority: 1, Deadline: strptr("2020-01-01")},
		"bad format":     {Text: "x", Priority: 1, Deadline: strptr("01.01.2999")},
		"priority high":  {Text: "x", Priority: 11},
		"blank text":     {Text: " ", Priority: 1},
		"deadline today": {Text: "x", Priority: 1, Deadline: strptr("2026-10-17")},
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			p, path := storetest.New(t)
			var out bytes.Buffer
			c.Persistence = p
			c.Printer = printers.PrettyPrint{Out: &out}
			c.Now = now

			err := c.Do(context.Background())
			if !validate.IsUserError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Fatalf("expected no file to be written")
			}
			if out.Len() != 0 {
				t.Fatalf("expected no report, got %q", out.String())
			}
		})
	}
}
