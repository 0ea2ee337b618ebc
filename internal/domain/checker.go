package domain

import (
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mouse-blink/lintel/internal/adapter"
	"github.com/mouse-blink/lintel/internal/domain/rules"
	m "github.com/mouse-blink/lintel/internal/model"
)

const resultCacheSize = 1024

var errNoSettings = errors.New("no settings resolved")

// Checker produces the diagnostics of a single file.
type Checker interface {
	// Lint checks the file at path. In AutofixApply mode applied fixes are
	// written back and counted in Diagnostics.Fixed.
	Lint(path m.Path, settings *m.Settings, cache m.CachePolicy, autofix m.AutofixMode) (m.Diagnostics, error)

	// LintText checks in-memory content under filename. Nothing is written.
	LintText(filename string, content []byte, settings *m.Settings, autofix m.AutofixMode) (m.Diagnostics, error)
}

type cacheKey struct {
	path        m.Path
	hash        string
	fingerprint string
}

type checker struct {
	fs     adapter.SourceFSAdapter
	engine engine
	cache  *lru.Cache[cacheKey, m.Diagnostics]
}

// NewChecker returns a Checker reading files through fs. Results of
// unchanged files are reused within the process when caching is enabled.
func NewChecker(fs adapter.SourceFSAdapter, parser adapter.GoFileAdapter) Checker {
	cache, err := lru.New[cacheKey, m.Diagnostics](resultCacheSize)
	if err != nil {
		panic(err)
	}

	return &checker{fs: fs, engine: engine{parser: parser}, cache: cache}
}

func (c *checker) Lint(path m.Path, settings *m.Settings, cache m.CachePolicy, autofix m.AutofixMode) (m.Diagnostics, error) {
	content, err := c.fs.ReadFile(path)
	if err != nil {
		return m.Diagnostics{}, err
	}

	if settings == nil {
		return m.Diagnostics{}, errNoSettings
	}

	cacheable := cache == m.CacheReadWrite && autofix == m.AutofixNone
	key := cacheKey{path: path, hash: adapter.HashContent(content), fingerprint: settings.Fingerprint}

	if cacheable {
		if hit, ok := c.cache.Get(key); ok {
			return m.Diagnostics{Messages: slices.Clone(hit.Messages), Fixed: hit.Fixed}, nil
		}
	}

	diagnostics, fixed := c.engine.lint(string(path), content, settings, autofix)

	if diagnostics.Fixed > 0 {
		if err := c.fs.WriteFile(path, fixed); err != nil {
			return m.Diagnostics{}, fmt.Errorf("write fixes: %w", err)
		}
	}

	if cacheable {
		c.cache.Add(key, m.Diagnostics{Messages: slices.Clone(diagnostics.Messages), Fixed: diagnostics.Fixed})
	}

	return diagnostics, nil
}

func (c *checker) LintText(filename string, content []byte, settings *m.Settings, autofix m.AutofixMode) (m.Diagnostics, error) {
	if settings == nil {
		return m.Diagnostics{}, errNoSettings
	}

	if autofix == m.AutofixApply {
		autofix = m.AutofixGenerate
	}

	diagnostics, _ := c.engine.lint(filename, content, settings, autofix)

	return diagnostics, nil
}

// engine runs the rules over one file's content. It holds no mutable state
// and is shared by concurrent tasks.
type engine struct {
	parser adapter.GoFileAdapter
}

// lint returns the unsuppressed findings for content. In AutofixApply mode
// the fixed content is returned as well and fixed findings are dropped.
// settings must not be nil.
func (e engine) lint(filename string, content []byte, settings *m.Settings, autofix m.AutofixMode) (m.Diagnostics, []byte) {
	path := m.Path(filename)
	fset, file, parseErr := e.parser.Parse(filename, content)
	src := rules.NewSource(filename, content, fset, file, settings)

	var messages []m.Message

	if parseErr != nil && settings.EnabledFor(path, m.CodeE999) {
		loc, text, ok := adapter.SyntaxErrorLocation(parseErr)
		if !ok {
			text = parseErr.Error()
		}

		messages = append(messages, m.Message{
			Kind:        m.SyntaxError(text),
			Location:    loc,
			EndLocation: loc,
			Filename:    filename,
		})
	}

	for _, rule := range rules.All() {
		if settings.EnabledFor(path, rule.Code) {
			messages = append(messages, rule.Check(src)...)
		}
	}

	noqa := noqaIndexFor(src.Lines, fset, file, parseErr)
	messages = slices.DeleteFunc(messages, noqa.suppressed)

	for i := range messages {
		if messages[i].Fix != nil && (autofix == m.AutofixNone || !settings.IsFixable(messages[i].Kind.Code)) {
			messages[i].Fix = nil
		}
	}

	fixed := content
	count := 0

	if autofix == m.AutofixApply {
		var applied []bool

		fixed, applied = applyFixes(content, messages)

		kept := messages[:0]

		for i, msg := range messages {
			if applied[i] {
				count++
				continue
			}

			msg.Fix = nil
			kept = append(kept, msg)
		}

		messages = kept
	}

	if settings.ShowSource {
		for i := range messages {
			if row := messages[i].Location.Row; row > 0 && row <= len(src.Lines) {
				messages[i].Source = &m.Snippet{Line: src.Lines[row-1]}
			}
		}
	}

	return m.Diagnostics{Messages: messages, Fixed: count}, fixed
}
