package game

import (
	"os"
	"path/filepath"
	"testing"
)

const testLoadoutYAML = `loadouts:
  - name: Tester
    cards:
      - { name: Scrap Chassis, count: 1 }
      - { name: Junk Cell, count: 2 }
    bonus:
      - { name: Nail Driver, count: 1 }
  - name: Sparring Dummy
    cards:
      - { name: Recon Shell, count: 1 }
`

func writeLoadoutFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loadouts.yaml")
	if err := os.WriteFile(path, []byte(testLoadoutYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseLoadoutFile(t *testing.T) {
	path := writeLoadoutFile(t)
	loadouts, err := ParseLoadoutFile(path)
	must(t, err)

	cards, ok := loadouts["Tester"]
	if !ok {
		t.Fatal("Tester loadout missing")
	}
	if len(cards) != 3 {
		t.Fatalf("Tester = %d cards, want 3", len(cards))
	}
	if cards[0].Name != "Scrap Chassis" {
		t.Errorf("first card = %s", cards[0].Name)
	}
}

func TestLoadoutScalingTiers(t *testing.T) {
	path := writeLoadoutFile(t)

	base, err := LoadoutByName(path, "Tester", 0)
	must(t, err)
	scaled, err := LoadoutByName(path, "Tester", 2)
	must(t, err)

	if len(scaled)-len(base) != 2 {
		t.Errorf("tier 2 added %d cards, want 2", len(scaled)-len(base))
	}

	if _, err := LoadoutByName(path, "Nonexistent", 0); err == nil {
		t.Error("expected an error for an unknown loadout")
	}
}

func TestLoadoutByNumber(t *testing.T) {
	path := writeLoadoutFile(t)
	name, cards, err := LoadoutByNumber(path, 2, 0)
	must(t, err)
	if name != "Sparring Dummy" || len(cards) != 1 {
		t.Errorf("loadout 2 = %q with %d cards", name, len(cards))
	}
	if _, _, err := LoadoutByNumber(path, 9, 0); err == nil {
		t.Error("expected an error for an out-of-range index")
	}
}

// TestRegistryConstructorsAreConsistent: every registered constructor builds
// a card whose name matches its key and whose category props line up.
func TestRegistryConstructorsAreConsistent(t *testing.T) {
	for name, ctor := range CardRegistry {
		card := ctor()
		if card.Name != name {
			t.Errorf("registry key %q builds card named %q", name, card.Name)
		}
		var props bool
		switch card.Category {
		case CategoryBattery:
			props = card.Battery != nil
		case CategoryWeapon:
			props = card.Weapon != nil
		case CategoryArmor:
			props = card.Armor != nil
		case CategoryCPU:
			props = card.CPU != nil
		case CategoryChassis:
			props = card.Chassis != nil
		case CategoryCapacitor:
			props = card.Capacitor != nil
		case CategoryUtility:
			props = card.Utility != nil
		case CategoryLocomotion:
			props = card.Locomotion != nil
		}
		if !props {
			t.Errorf("%s: category %v has no matching props", name, card.Category)
		}
	}
}
