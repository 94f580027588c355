package onstep

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// BlockDamage describes the harm dealt for standing on one block kind.
type BlockDamage struct {
	// Damage is subtracted from the player's health per hit.
	Damage float64 `yaml:"damage"`
	// Cooldown is the time in seconds before the same block kind hits the
	// same player again. Zero means every tick.
	Cooldown float64 `yaml:"cooldown"`
}

// DamageTable maps block names to the standing damage they deal.
type DamageTable map[string]BlockDamage

// LoadDamageTable reads a YAML damage table:
//
//	minecraft:lava:
//	    damage: 4
//	    cooldown: 1.0
//	minecraft:magma:
//	    damage: 1
//	    cooldown: 0.5
func LoadDamageTable(r io.Reader) (DamageTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read damage table: %w", err)
	}
	var table DamageTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse damage table: %w", err)
	}
	for name, bd := range table {
		if name == "" {
			return nil, fmt.Errorf("damage table: empty block name")
		}
		if bd.Damage <= 0 {
			return nil, fmt.Errorf("damage table: block %q: damage must be positive, got %v", name, bd.Damage)
		}
		if bd.Cooldown < 0 {
			return nil, fmt.Errorf("damage table: block %q: negative cooldown %v", name, bd.Cooldown)
		}
	}
	return table, nil
}
