// Package boards holds the hardware profiles code generation targets: for
// each supported board, the bus instance name and the fixed pin assignments
// of the SPI roles. Stock profiles ship embedded as YAML; custom profiles
// load from any reader.
package boards

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles/*.yaml
var profilesFS embed.FS

// PinRole names one fixed hardware role and the physical pin serving it.
type PinRole struct {
	Role string `yaml:"role"`
	Pin  string `yaml:"pin"`
}

// Board describes one code-generation target. SPIPins lists the fixed SPI
// role pins in clock, data-in, data-out order; reservations preserve that
// order.
type Board struct {
	Name    string    `yaml:"name"`
	SPIBus  string    `yaml:"spi_bus"`
	SPIPins []PinRole `yaml:"spi_pins"`
}

// Parse reads one board profile. Unknown fields are rejected; the bus
// instance name defaults to SPI.
func Parse(r io.Reader) (*Board, error) {
	var b Board

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("boards: decode profile: %w", err)
	}

	if b.Name == "" {
		return nil, errors.New("boards: profile has no name")
	}

	if b.SPIBus == "" {
		b.SPIBus = "SPI"
	}

	return &b, nil
}

// ByName returns the embedded profile with the given name.
func ByName(name string) (*Board, error) {
	data, err := profilesFS.ReadFile("profiles/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("boards: unknown board %q", name)
	}

	return Parse(bytes.NewReader(data))
}

// Names lists the embedded profiles in alphabetical order.
func Names() []string {
	entries, err := profilesFS.ReadDir("profiles")
	if err != nil {
		panic(err)
	}

	res := make([]string, len(entries))
	for i, e := range entries {
		res[i] = strings.TrimSuffix(e.Name(), ".yaml")
	}

	sort.Strings(res)

	return res
}
