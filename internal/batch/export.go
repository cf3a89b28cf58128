package batch

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"kino/internal/game"
)

const outputExt = ".json"

// ErrOutputLocked is returned when another run holds the output lock.
var ErrOutputLocked = errors.New("output file is locked by another run")

// OutputFilename appends .json when name lacks it.
func OutputFilename(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, outputExt) {
		return name
	}
	return name + outputExt
}

// OutputPath resolves a bare file name against dir. Names that are absolute
// or carry a directory are used as given. The .json suffix is applied.
func OutputPath(dir, name string) string {
	name = OutputFilename(name)
	if dir == "" || filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(dir, name)
}

// Encode renders games as an indented JSON array. Keys follow the declared
// field order of the game types, which is sorted. <, > and & are always
// escaped; escapeHTML additionally entity-escapes every string value.
func Encode(games []game.Game, escapeHTML bool) ([]byte, error) {
	out := make([]game.Game, 0, len(games))
	for _, g := range games {
		if escapeHTML {
			g = EscapeGame(g)
		}
		out = append(out, g)
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode games: %w", err)
	}
	return append(data, '\n'), nil
}

// LockPath returns the advisory lock file guarding path. It lives in the
// system temp dir, keyed on the absolute output path, so nothing is left
// next to the exported file.
func LockPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "kino-"+hex.EncodeToString(sum[:8])+".lock")
}

// Export writes games to path, replacing any existing file. The write goes
// through a temp file in the same directory under an advisory lock on
// LockPath(path).
func Export(path string, games []game.Game, escapeHTML bool) error {
	data, err := Encode(games, escapeHTML)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutputLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	return writeFileAtomic(path, data, 0o644)
}

// EscapeGame returns a copy of g with every string value entity-escaped.
func EscapeGame(g game.Game) game.Game {
	out := game.Game{
		Answer: game.Answer{
			URL:   html.EscapeString(g.Answer.URL),
			ID:    g.Answer.ID,
			Image: escapePtr(g.Answer.Image),
			Title: escapePtr(g.Answer.Title),
		},
		Hints:  make([]game.Hint, len(g.Hints)),
		Trivia: make([]game.Trivia, len(g.Trivia)),
	}
	for i, hint := range g.Hints {
		out.Hints[i] = game.Hint{
			Image: html.EscapeString(hint.Image),
			Link:  html.EscapeString(hint.Link),
			Title: html.EscapeString(hint.Title),
			Year:  hint.Year,
		}
	}
	for i, trivia := range g.Trivia {
		out.Trivia[i] = game.Trivia{
			Label: html.EscapeString(trivia.Label),
			Value: escapePtr(trivia.Value),
		}
	}
	return out
}

func escapePtr(s *string) *string {
	if s == nil {
		return nil
	}
	escaped := html.EscapeString(*s)
	return &escaped
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
