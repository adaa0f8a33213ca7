// Package notify sends desktop notifications when a drawing is exported or
// copied.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/easel/internal/platform"
)

// DefaultTitle heads every notification unless EASEL_NOTIFY_TITLE is set.
const DefaultTitle = "Easel"

const titleEnv = "EASEL_NOTIFY_TITLE"

// Event identifies a notification trigger.
type Event int

const (
	// EventExport fires after a drawing is written to disk. The detail is the
	// absolute path.
	EventExport Event = iota
	// EventCopy fires after the canvas is copied to the clipboard. The detail
	// describes the copied canvas.
	EventCopy
)

var events = map[Event]struct {
	name, env, template string
}{
	EventExport: {"export", "EASEL_NOTIFY_EXPORT_TEXT", "Exported %s"},
	EventCopy:   {"copy", "EASEL_NOTIFY_COPY_TEXT", "Copied %s to clipboard"},
}

func (e Event) String() string {
	if info, ok := events[e]; ok {
		return info.name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Preferences holds the title and the body template of each event. A
// template receives the event detail through a single %s verb.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built-in title and templates.
func DefaultPreferences() Preferences {
	p := Preferences{Title: DefaultTitle, Templates: make(map[Event]string, len(events))}
	for ev, info := range events {
		p.Templates[ev] = info.template
	}
	return p
}

// LoadPreferences starts from the defaults and applies the
// EASEL_NOTIFY_TITLE, EASEL_NOTIFY_EXPORT_TEXT and EASEL_NOTIFY_COPY_TEXT
// overrides found through lookup. Blank values are ignored.
func LoadPreferences(lookup func(string) (string, bool)) Preferences {
	p := DefaultPreferences()
	if lookup == nil {
		return p
	}
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}
	if v := get(titleEnv); v != "" {
		p.Title = v
	}
	for ev, info := range events {
		if v := get(info.env); v != "" {
			p.Templates[ev] = v
		}
	}
	return p
}

// Message is a rendered notification ready for the platform layer.
type Message struct {
	Title   string
	Body    string
	Options platform.Options
}

// sendFn delivers a message. Tests replace it.
var sendFn = func(m Message) error { return platform.Notify(m.Title, m.Body, m.Options) }

// Notifier renders and sends notifications for the events enabled on it.
// A nil Notifier is valid and silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New returns a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	n := &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: make(map[Event]string, len(prefs.Templates))},
		enabled: make(map[Event]bool),
	}
	for ev, tmpl := range prefs.Templates {
		n.prefs.Templates[ev] = tmpl
	}
	return n
}

// Enable turns notifications for ev on or off.
func (n *Notifier) Enable(ev Event, on bool) {
	if n == nil {
		return
	}
	n.enabled[ev] = on
}

// Export announces a file written to path. A PNG that exists on disk is
// attached as the notification image.
func (n *Notifier) Export(path string) {
	if !n.on(EventExport) {
		return
	}
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		if _, err := os.Stat(path); err == nil {
			opts.IconPath = path
		}
	}
	n.send(EventExport, path, opts)
}

// Copy announces a clipboard copy of img, attaching a temporary PNG preview
// that is removed once the notification has been handed off.
func (n *Notifier) Copy(img image.Image) {
	if !n.on(EventCopy) {
		return
	}
	detail := "drawing"
	opts := platform.Options{}
	if img != nil {
		size := img.Bounds().Size()
		detail = fmt.Sprintf("%dx%d drawing", size.X, size.Y)
		path, err := writePreview(img)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer removePreview(path)
			opts.IconPath = path
		}
	}
	n.send(EventCopy, detail, opts)
}

func (n *Notifier) on(ev Event) bool {
	return n != nil && n.enabled[ev]
}

// render fills the template for ev. It reports false when the template is
// blank or renders to nothing.
func (n *Notifier) render(ev Event, detail string, opts platform.Options) (Message, bool) {
	tmpl := strings.TrimSpace(n.prefs.Templates[ev])
	if tmpl == "" {
		return Message{}, false
	}
	body := strings.TrimSpace(fmt.Sprintf(tmpl, strings.TrimSpace(detail)))
	if body == "" {
		return Message{}, false
	}
	return Message{Title: n.prefs.Title, Body: body, Options: opts}, true
}

func (n *Notifier) send(ev Event, detail string, opts platform.Options) {
	m, ok := n.render(ev, detail, opts)
	if !ok {
		return
	}
	if err := sendFn(m); err != nil {
		log.Printf("notification %s: %v", ev, err)
	}
}

func writePreview(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "easel-preview-*.png")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func removePreview(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("remove preview: %v", err)
	}
}
