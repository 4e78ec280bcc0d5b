// Package share builds the share text for a result and hands it to a
// platform share target or the clipboard.
package share

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/dshills/nighttype/internal/archetype"
)

// Title heads the share text and names the share sheet.
const Title = "Night Personality"

// Hashtags close every share text.
var Hashtags = []string{"#NightPersonality", "#NightType"}

const intentBase = "https://twitter.com/intent/tweet"

// Fields are the profile values a share text is built from.
type Fields struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	Subtitle string `json:"subtitle"`
}

// FieldsOf extracts share fields from a profile.
func FieldsOf(p archetype.Profile) Fields {
	return Fields{Name: p.Name, Emoji: p.Emoji, Subtitle: p.Subtitle}
}

// Text formats the share text.
func Text(f Fields) string {
	var b strings.Builder
	fmt.Fprintf(&b, "【%s】\n", Title)
	fmt.Fprintf(&b, "My night type is \"%s\" %s!\n", f.Name, f.Emoji)
	if f.Subtitle != "" {
		fmt.Fprintf(&b, "%s\n", f.Subtitle)
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(Hashtags, " "))
	return b.String()
}

// IntentURL returns a post-composer URL prefilled with text.
func IntentURL(text string) string {
	return intentBase + "?" + url.Values{"text": {text}}.Encode()
}

// Outcome reports how a share request was handled.
type Outcome int

const (
	// OutcomeShared means the text went to the share target. A cancelled
	// or failed share still counts as shared.
	OutcomeShared Outcome = iota
	// OutcomeCopied means no target was available and the text was
	// offered to the clipboard.
	OutcomeCopied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeShared:
		return "shared"
	case OutcomeCopied:
		return "copied"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Target is a platform share sheet.
type Target interface {
	Share(title, text string) error
}

// Clipboard receives text when no share target is available.
type Clipboard interface {
	WriteAll(text string) error
}

// Sharer implements share-or-copy. Failures are logged, never returned.
type Sharer struct {
	target    Target
	clipboard Clipboard
	log       *zap.Logger
}

// NewSharer returns a sharer. target may be nil, in which case every
// request goes to the clipboard. A nil logger discards logs.
func NewSharer(target Target, cb Clipboard, log *zap.Logger) *Sharer {
	if cb == nil {
		cb = SystemClipboard{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sharer{target: target, clipboard: cb, log: log}
}

// ShareOrCopy sends text to the target when there is one and to the
// clipboard otherwise.
func (s *Sharer) ShareOrCopy(text string) Outcome {
	if s.target != nil {
		if err := s.target.Share(Title, text); err != nil {
			s.log.Debug("share target failed", zap.Error(err))
		}
		return OutcomeShared
	}
	if err := s.clipboard.WriteAll(text); err != nil {
		s.log.Warn("clipboard write failed", zap.Error(err))
	}
	return OutcomeCopied
}

// WriterTarget shares by writing the text to W.
type WriterTarget struct {
	W io.Writer
}

func (t WriterTarget) Share(_, text string) error {
	_, err := fmt.Fprintln(t.W, text)
	return err
}

var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboardWriteAll(text)
}
