package rules

import "github.com/roach88/sandhi/internal/phonetic"

// FillEndingSounds returns a copy of snap in which every root word with an
// unset ending sound carries the sound decoded from its spelling. The words
// that were filled are returned in table order. snap itself is unchanged.
func FillEndingSounds(snap *Snapshot) (*Snapshot, []string, error) {
	t := snap.Tables()

	var filled []string
	for i, w := range t.RootWords {
		if w.EndingSound != "" {
			continue
		}
		sound := phonetic.DecodeEndingSound(w.Text)
		if sound == "" {
			continue
		}
		t.RootWords[i].EndingSound = sound
		filled = append(filled, w.Text)
	}
	if len(filled) == 0 {
		return snap, nil, nil
	}

	out, err := NewBuilder().AddTables(t).Build()
	if err != nil {
		return nil, nil, err
	}
	return out, filled, nil
}

// UnsetEndingSounds lists root words whose ending sound is unset.
func UnsetEndingSounds(snap *Snapshot) []string {
	var words []string
	for _, w := range snap.tables.RootWords {
		if w.EndingSound == "" {
			words = append(words, w.Text)
		}
	}
	return words
}
