package share

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/nighttype/internal/archetype"
)

type fakeTarget struct {
	title, text string
	err         error
}

func (f *fakeTarget) Share(title, text string) error {
	f.title, f.text = title, text
	return f.err
}

type fakeClipboard struct {
	text  string
	calls int
	err   error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.calls++
	f.text = text
	return f.err
}

func TestText(t *testing.T) {
	p := archetype.Builtin().Lookup("LSVT")
	text := Text(FieldsOf(p))

	assert.True(t, strings.HasPrefix(text, "【Night Personality】\n"))
	assert.Contains(t, text, `My night type is "`+p.Name+`" `+p.Emoji+"!")
	assert.Contains(t, text, p.Subtitle)
	assert.True(t, strings.HasSuffix(text, "#NightPersonality #NightType"))
}

func TestTextNoSubtitle(t *testing.T) {
	text := Text(Fields{Name: "X", Emoji: "🌙"})
	assert.Equal(t, "【Night Personality】\nMy night type is \"X\" 🌙!\n\n#NightPersonality #NightType", text)
}

func TestIntentURL(t *testing.T) {
	text := "a & b #tag\nline"
	u, err := url.Parse(IntentURL(text))
	require.NoError(t, err)
	assert.Equal(t, "twitter.com", u.Host)
	assert.Equal(t, "/intent/tweet", u.Path)
	assert.Equal(t, text, u.Query().Get("text"))
}

func TestShareOrCopyTarget(t *testing.T) {
	target := &fakeTarget{}
	cb := &fakeClipboard{}
	s := NewSharer(target, cb, nil)

	assert.Equal(t, OutcomeShared, s.ShareOrCopy("hello"))
	assert.Equal(t, Title, target.title)
	assert.Equal(t, "hello", target.text)
	assert.Zero(t, cb.calls)
}

func TestShareOrCopyTargetErrorSwallowed(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	target := &fakeTarget{err: errors.New("cancelled")}
	cb := &fakeClipboard{}
	s := NewSharer(target, cb, zap.New(core))

	assert.Equal(t, OutcomeShared, s.ShareOrCopy("hello"))
	assert.Zero(t, cb.calls)
	assert.Equal(t, 1, logs.FilterMessage("share target failed").Len())
}

func TestShareOrCopyClipboard(t *testing.T) {
	cb := &fakeClipboard{}
	s := NewSharer(nil, cb, nil)

	assert.Equal(t, OutcomeCopied, s.ShareOrCopy("hello"))
	assert.Equal(t, "hello", cb.text)
}

func TestShareOrCopyClipboardError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cb := &fakeClipboard{err: errors.New("no clipboard")}
	s := NewSharer(nil, cb, zap.New(core))

	assert.Equal(t, OutcomeCopied, s.ShareOrCopy("hello"))
	assert.Equal(t, 1, logs.FilterMessage("clipboard write failed").Len())
}

func TestSystemClipboard(t *testing.T) {
	var got string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		got = text
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	s := NewSharer(nil, nil, nil)
	assert.Equal(t, OutcomeCopied, s.ShareOrCopy("copied text"))
	assert.Equal(t, "copied text", got)
}

func TestWriterTarget(t *testing.T) {
	var buf bytes.Buffer
	s := NewSharer(WriterTarget{W: &buf}, &fakeClipboard{}, nil)
	assert.Equal(t, OutcomeShared, s.ShareOrCopy("line"))
	assert.Equal(t, "line\n", buf.String())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "shared", OutcomeShared.String())
	assert.Equal(t, "copied", OutcomeCopied.String())
	assert.Equal(t, "Outcome(7)", Outcome(7).String())
}
