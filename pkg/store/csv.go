package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"tableflip.dev/resolution/pkg/entry"
)

// NoDeadline is written in place of an absent deadline.
const NoDeadline = "-"

// Persistence defines the persistence contract for resolutions. Every mutation
// rewrites the whole file; there is no locking, so a reader racing a writer can
// see an empty or partial file.
type Persistence interface {
	LoadAll(ctx context.Context) ([]*entry.Entry, error)
	SaveAll(ctx context.Context, entries []*entry.Entry) error
	AppendOne(ctx context.Context, e *entry.Entry) error
	Path() string
}

// Load creates a Persistence backed by a CSV file using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig(nil)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Path() == "" {
		return nil, errors.New("store: path required")
	}

	p := &persistence{path: cfg.Path()}
	if cfg.Backups() {
		p.snapshots = NewSnapshots(cfg.BackupPath(), cfg.BackupKeep())
	}
	return p, nil
}

type persistence struct {
	path      string
	snapshots *Snapshots
}

func (p *persistence) Path() string {
	return p.path
}

func (p *persistence) LoadAll(_ context.Context) ([]*entry.Entry, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("store: no file yet", "path", p.path)
			return []*entry.Entry{}, nil
		}
		return nil, &Error{Op: "open", Path: p.path, Err: err}
	}
	defer f.Close()

	all, err := Decode(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = p.path
		}
		return nil, err
	}
	log.Debug("store: loaded", "path", p.path, "entries", len(all))
	return all, nil
}

func (p *persistence) SaveAll(_ context.Context, entries []*entry.Entry) error {
	if err := p.ensure(); err != nil {
		return err
	}
	if p.snapshots != nil {
		p.snapshot()
	}

	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return &Error{Op: "encode", Path: p.path, Err: err}
	}
	// Truncate then write, the file is briefly empty.
	if err := os.WriteFile(p.path, buf.Bytes(), 0o644); err != nil {
		return &Error{Op: "write", Path: p.path, Err: err}
	}
	log.Debug("store: saved", "path", p.path, "entries", len(entries))
	return nil
}

func (p *persistence) AppendOne(_ context.Context, e *entry.Entry) error {
	if err := p.ensure(); err != nil {
		return err
	}
	f, err := os.OpenFile(p.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &Error{Op: "open", Path: p.path, Err: err}
	}
	defer f.Close()

	if err := Encode(f, []*entry.Entry{e}); err != nil {
		return &Error{Op: "append", Path: p.path, Err: err}
	}
	log.Debug("store: appended", "path", p.path, "text", e.Text)
	return nil
}

// ensure creates the file and its parent directory if either is missing.
func (p *persistence) ensure() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return &Error{Op: "create directory", Path: filepath.Dir(p.path), Err: err}
	}
	f, err := os.OpenFile(p.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Error{Op: "create", Path: p.path, Err: err}
	}
	return f.Close()
}

// snapshot copies the current contents aside. Failing to snapshot never blocks a save.
func (p *persistence) snapshot() {
	data, err := os.ReadFile(p.path)
	if err != nil {
		log.Warn("store: read for snapshot", "path", p.path, "err", err)
		return
	}
	if len(data) == 0 {
		return
	}
	key, err := p.snapshots.Save(data)
	if err != nil {
		log.Warn("store: snapshot", "err", err)
		return
	}
	log.Debug("store: snapshot", "key", key)
}

// Encode writes one CSV record per entry: text, priority, deadline or NoDeadline.
func Encode(w io.Writer, entries []*entry.Entry) error {
	cw := csv.NewWriter(w)
	for _, e := range entries {
		record := []string{e.Text, strconv.Itoa(e.Priority), e.DeadlineOr(NoDeadline)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode parses every record from r. Any malformed record fails the whole decode.
// Whitespace around fields is ignored, also after a closing quote.
func Decode(r io.Reader) ([]*entry.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bytes.NewReader(trimAfterQuotes(data)))
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	all := make([]*entry.Entry, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var ce *csv.ParseError
			if errors.As(err, &ce) {
				line = ce.Line
			}
			return nil, &ParseError{Line: line, Err: err}
		}
		line, _ := cr.FieldPos(0)

		priority, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("priority %q: %w", record[1], err)}
		}

		e := &entry.Entry{
			Text:     strings.TrimSpace(record[0]),
			Priority: priority,
		}
		if d := strings.TrimSpace(record[2]); d != NoDeadline {
			e.SetDeadline(d)
		}
		all = append(all, e)
	}
	return all, nil
}

// trimAfterQuotes drops blanks between a closing quote and the following comma or
// line end, which csv.Reader rejects. Newlines are kept so line numbers still match.
func trimAfterQuotes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	fieldStart, quoted := true, false
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case quoted:
			out = append(out, c)
			if c != '"' {
				continue
			}
			if i+1 < len(data) && data[i+1] == '"' {
				out = append(out, '"')
				i++
				continue
			}
			quoted = false
			j := i + 1
			for j < len(data) && (data[j] == ' ' || data[j] == '\t') {
				j++
			}
			if j == len(data) || data[j] == ',' || data[j] == '\n' || data[j] == '\r' {
				i = j - 1
			}
		case c == ',' || c == '\n':
			out = append(out, c)
			fieldStart = true
		case fieldStart && c == '"':
			out = append(out, c)
			fieldStart, quoted = false, true
		case fieldStart && (c == ' ' || c == '\t' || c == '\r'):
			out = append(out, c)
		default:
			out = append(out, c)
			fieldStart = false
		}
	}
	return out
}
