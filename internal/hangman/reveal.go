package hangman

// Placeholder marks a reveal slot that has not been uncovered yet.
const Placeholder = '_'

// Reveal tracks which positions of the secret word are visible.
// Slots only ever go from Placeholder to the secret's letter.
type Reveal struct {
	secret []rune
	slots  []rune
}

// NewReveal creates a tracker for secret with every slot hidden.
func NewReveal(secret string) *Reveal {
	runes := []rune(secret)
	slots := make([]rune, len(runes))
	for i := range slots {
		slots[i] = Placeholder
	}
	return &Reveal{
		secret: runes,
		slots:  slots,
	}
}

// RevealAll uncovers every position holding letter.
// Returns the number of positions that matched; zero means the letter is not
// in the secret.
func (r *Reveal) RevealAll(letter rune) int {
	n := 0
	for i, c := range r.secret {
		if c == letter {
			r.slots[i] = c
			n++
		}
	}
	return n
}

// IsFullyRevealed reports whether no placeholders remain.
func (r *Reveal) IsFullyRevealed() bool {
	for _, c := range r.slots {
		if c == Placeholder {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the slots for display.
func (r *Reveal) Snapshot() []rune {
	out := make([]rune, len(r.slots))
	copy(out, r.slots)
	return out
}
