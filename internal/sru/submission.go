package sru

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/sietosru/internal/buildinfo"
	"github.com/cleared-dev/sietosru/internal/model"
)

// FileEnd closes BLANKETTER.sru.
const FileEnd = "#FIL_SLUT"

// FormType is one of the three forms in the INK2 set.
type FormType int

const (
	FormINK2 FormType = iota
	FormINK2R
	FormINK2S
)

// formOrder is the order forms appear in BLANKETTER.sru.
var formOrder = []FormType{FormINK2, FormINK2R, FormINK2S}

func (t FormType) String() string {
	switch t {
	case FormINK2:
		return "INK2"
	case FormINK2R:
		return "INK2R"
	case FormINK2S:
		return "INK2S"
	default:
		return fmt.Sprintf("FormType(%d)", int(t))
	}
}

func (t FormType) build(l *model.Ledger) ([]Entry, error) {
	switch t {
	case FormINK2:
		return INK2(l)
	case FormINK2R:
		return INK2R(l)
	case FormINK2S:
		return INK2S(l)
	default:
		return nil, fmt.Errorf("unknown form %s", t)
	}
}

// FormIDs are the #BLANKETT identifiers, which carry the form version.
type FormIDs struct {
	INK2  string
	INK2R string
	INK2S string
}

// DefaultFormIDs returns the identifiers used when none are configured.
func DefaultFormIDs() FormIDs {
	return FormIDs{
		INK2:  "INK2-2017P4",
		INK2R: "INK2R-2017P4",
		INK2S: "INK2S-2014P4",
	}
}

func (ids FormIDs) get(t FormType) string {
	switch t {
	case FormINK2:
		return ids.INK2
	case FormINK2R:
		return ids.INK2R
	default:
		return ids.INK2S
	}
}

// Options control rendering.
type Options struct {
	Forms       FormIDs
	Program     string    // #PROGRAM value
	GeneratedAt time.Time // #SKAPAD and #IDENTITET timestamp
	LineEnding  string
}

// DefaultOptions returns CRLF-terminated output stamped with the current time.
func DefaultOptions() Options {
	return Options{
		Forms:       DefaultFormIDs(),
		Program:     buildinfo.Program,
		GeneratedAt: time.Now(),
		LineEnding:  CRLF,
	}
}

// withDefaults fills the zero fields of o from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Forms.INK2 == "" {
		o.Forms.INK2 = def.Forms.INK2
	}
	if o.Forms.INK2R == "" {
		o.Forms.INK2R = def.Forms.INK2R
	}
	if o.Forms.INK2S == "" {
		o.Forms.INK2S = def.Forms.INK2S
	}
	if o.Program == "" {
		o.Program = def.Program
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = def.GeneratedAt
	}
	if o.LineEnding == "" {
		o.LineEnding = def.LineEnding
	}
	return o
}

// Form is one rendered form.
type Form struct {
	Type    FormType
	ID      string
	Entries []Entry // ordered by code
	Text    string
}

// Submission is the complete output of a conversion.
type Submission struct {
	FiscalYear string
	Forms      []Form
	Info       string // INFO.sru
	Blanketter string // BLANKETTER.sru
}

// Build computes and renders all forms for a ledger. The forms only read
// the ledger, so they are built concurrently; any error aborts the whole
// submission.
func Build(l *model.Ledger, opts Options) (*Submission, error) {
	opts = opts.withDefaults()

	forms := make([]Form, len(formOrder))
	var g errgroup.Group
	for i, t := range formOrder {
		i, t := i, t
		g.Go(func() error {
			entries, err := t.build(l)
			if err != nil {
				return fmt.Errorf("building %s: %w", t, err)
			}
			id := opts.Forms.get(t)
			entries = sortEntries(entries)
			forms[i] = Form{
				Type:    t,
				ID:      id,
				Entries: entries,
				Text:    Render(id, l, entries, opts.GeneratedAt, opts.LineEnding),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	blocks := make([]string, 0, len(forms)+1)
	for _, f := range forms {
		blocks = append(blocks, f.Text)
	}
	blocks = append(blocks, FileEnd)

	return &Submission{
		FiscalYear: l.FiscalYear(),
		Forms:      forms,
		Info:       RenderInfo(l, opts.Program, opts.GeneratedAt, opts.LineEnding),
		Blanketter: strings.Join(blocks, opts.LineEnding),
	}, nil
}

// Form returns the form of the given type.
func (s *Submission) Form(t FormType) (Form, bool) {
	for _, f := range s.Forms {
		if f.Type == t {
			return f, true
		}
	}
	return Form{}, false
}
