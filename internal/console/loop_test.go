package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/hangman/internal/hangman"
)

func newGame(secret string) func() (*hangman.Game, error) {
	return func() (*hangman.Game, error) {
		return hangman.New(secret)
	}
}

func run(t *testing.T, secret, input string, opts Options) (*hangman.Game, hangman.Status, string, error) {
	t.Helper()
	var out bytes.Buffer
	l := New(strings.NewReader(input), &out, opts)

	g, err := l.Menu(newGame(secret))
	if err != nil {
		return nil, hangman.InProgress, out.String(), err
	}
	status, err := l.Play(g)
	return g, status, out.String(), err
}

func TestLoopWin(t *testing.T) {
	g, status, out, err := run(t, "hangman", "1\nh\nA\nn\ng\nm\n", Options{})
	if err != nil {
		t.Fatalf("Play failed: %v\n%s", err, out)
	}
	if status != hangman.Won || g.WrongGuesses() != 0 {
		t.Errorf("status = %s, wrong = %d; expected a clean win", status, g.WrongGuesses())
	}
	if !strings.Contains(out, "Congratulations, you found the word!!") {
		t.Errorf("missing win message:\n%s", out)
	}
	if !strings.Contains(out, "|        h a n g m a n         |") {
		t.Errorf("final board should show the whole word:\n%s", out)
	}
}

func TestLoopLose(t *testing.T) {
	input := "1\nx\nq\nw\nk\nv\ny\nj\nb\nf\nc\n"
	_, status, out, err := run(t, "puzzle", input, Options{})
	if err != nil {
		t.Fatalf("Play failed: %v\n%s", err, out)
	}
	if status != hangman.Lost {
		t.Errorf("status = %s, expected lost", status)
	}
	if !strings.Contains(out, "Sorry, you've been hung!! The secret word was 'puzzle'") {
		t.Errorf("missing loss message:\n%s", out)
	}
	if !strings.Contains(out, "Guesses left: 0") {
		t.Errorf("final board should show zero guesses left:\n%s", out)
	}
}

func TestLoopWordGuess(t *testing.T) {
	_, status, out, err := run(t, "puzzle", "1\nmuzzle\nPuzzle\n", Options{})
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if status != hangman.Won {
		t.Errorf("status = %s, expected won", status)
	}
	if !strings.Contains(out, "Guesses left: 9") {
		t.Errorf("wrong word should cost one guess:\n%s", out)
	}
}

func TestLoopRejectsBadInput(t *testing.T) {
	g, status, out, err := run(t, "puzzle", "1\n5\nz\nz\npuz zle\npuzzle\n", Options{})
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if status != hangman.Won {
		t.Errorf("status = %s, expected won", status)
	}
	if g.WrongGuesses() != 0 {
		t.Errorf("rejected input counted as wrong guesses: %d", g.WrongGuesses())
	}
	for _, msg := range []string{
		"That wasn't a valid letter choice. Try again!",
		"You already guessed 'z'. Try again!",
		"That's not even a word. Try again!",
	} {
		if !strings.Contains(out, msg) {
			t.Errorf("missing message %q:\n%s", msg, out)
		}
	}
}

func TestLoopSaveUnavailable(t *testing.T) {
	g, _, out, err := run(t, "puzzle", "1\n\npuzzle\n", Options{})
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if !strings.Contains(out, "Saving is not available yet.") {
		t.Errorf("missing save message:\n%s", out)
	}
	if g.WrongGuesses() != 0 {
		t.Error("a save request must not count as a guess")
	}
}

type memoryPersistence struct {
	saved *hangman.Snapshot
}

func (m *memoryPersistence) Save(s hangman.Snapshot) error {
	m.saved = &s
	return nil
}

func (m *memoryPersistence) Load() (hangman.Snapshot, error) {
	if m.saved == nil {
		return hangman.Snapshot{}, hangman.ErrPersistenceUnavailable
	}
	return *m.saved, nil
}

func TestLoopSaveAndLoad(t *testing.T) {
	p := &memoryPersistence{}

	// Save mid-game, then abandon the session
	_, _, out, err := run(t, "puzzle", "1\np\nx\n\n", Options{Persistence: p})
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if !strings.Contains(out, "Game saved.") || p.saved == nil {
		t.Fatalf("game was not saved:\n%s", out)
	}

	// Load it back and finish
	g, status, out, err := run(t, "ignored", "2\nuzzle\npuzzle\n", Options{Persistence: p})
	if err != nil {
		t.Fatalf("Play failed: %v\n%s", err, out)
	}
	if g.Secret() != "puzzle" || status != hangman.Won {
		t.Fatalf("loaded game = %q status %s", g.Secret(), status)
	}
	if g.WrongGuesses() != 2 {
		t.Errorf("wrong = %d, expected restored 1 plus one wrong word", g.WrongGuesses())
	}
}

func TestMenu(t *testing.T) {
	var out bytes.Buffer
	l := New(strings.NewReader("9\n2\n1\n"), &out, Options{})

	g, err := l.Menu(newGame("puzzle"))
	if err != nil {
		t.Fatalf("Menu failed: %v", err)
	}
	if g.Secret() != "puzzle" {
		t.Errorf("Menu started %q", g.Secret())
	}
	for _, msg := range []string{
		"*** Welcome to Hangman ***",
		"Sorry, I didn't quite catch that...",
		"Sorry, there is no saved game to load.",
	} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("missing %q:\n%s", msg, out.String())
		}
	}
}

func TestMenuPropagatesNewGameError(t *testing.T) {
	l := New(strings.NewReader("1\n"), &bytes.Buffer{}, Options{})
	boom := errors.New("no words")

	_, err := l.Menu(func() (*hangman.Game, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Menu err = %v, expected the newGame error", err)
	}
}

func TestPlayInputClosed(t *testing.T) {
	g, _ := hangman.New("puzzle")
	l := New(strings.NewReader("x\n"), &bytes.Buffer{}, Options{})

	status, err := l.Play(g)
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Play err = %v, expected ErrInputClosed", err)
	}
	if status != hangman.InProgress {
		t.Errorf("status = %s, expected in_progress", status)
	}
}
