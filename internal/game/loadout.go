package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadoutFile represents the top-level YAML structure.
type LoadoutFile struct {
	Loadouts []LoadoutEntry `yaml:"loadouts"`
}

// LoadoutEntry represents a single robot loadout in the YAML file. Bonus
// cards are appended once per difficulty tier above zero.
type LoadoutEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
	Bonus []CardEntry `yaml:"bonus,omitempty"`
}

// CardEntry represents a card and its count in a loadout.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func (e LoadoutEntry) build(tier int) []*Card {
	var cards []*Card
	for _, entry := range e.Cards {
		for i := 0; i < entry.Count; i++ {
			cards = append(cards, LookupCard(entry.Name))
		}
	}
	for t := 0; t < tier; t++ {
		for _, entry := range e.Bonus {
			for i := 0; i < entry.Count; i++ {
				cards = append(cards, LookupCard(entry.Name))
			}
		}
	}
	return cards
}

// ParseLoadoutFile parses a YAML loadout file and returns a map of loadout
// name → card slice at tier zero.
func ParseLoadoutFile(path string) (map[string][]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lf LoadoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse loadout YAML: %w", err)
	}

	loadouts := make(map[string][]*Card)
	for _, l := range lf.Loadouts {
		loadouts[l.Name] = l.build(0)
	}
	return loadouts, nil
}

// LoadoutByName returns the named loadout scaled to the given difficulty
// tier. Tier 0 is the base card list; each tier above adds the bonus cards
// one more time.
func LoadoutByName(path, name string, tier int) ([]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lf LoadoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse loadout YAML: %w", err)
	}

	for _, l := range lf.Loadouts {
		if l.Name == name {
			return l.build(tier), nil
		}
	}
	return nil, fmt.Errorf("loadout %q not found", name)
}

// LoadoutByNumber returns the Nth loadout (1-indexed) from the loadout file.
func LoadoutByNumber(path string, n, tier int) (string, []*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var lf LoadoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return "", nil, fmt.Errorf("parse loadout YAML: %w", err)
	}

	if n < 1 || n > len(lf.Loadouts) {
		return "", nil, fmt.Errorf("loadout %d not found (have %d loadouts)", n, len(lf.Loadouts))
	}
	l := lf.Loadouts[n-1]
	return l.Name, l.build(tier), nil
}
