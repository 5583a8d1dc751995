package verify

import "encoding/json"

// PPU is a parsed vehicle plate. It is immutable once constructed and its
// verifier always equals Checksum(Numeric()); ParsePPU fails rather than
// returning an inconsistent value.
type PPU struct {
	raw        string
	format     Format
	plate      string
	normalized string
	numeric    uint32
	verifier   Verifier
}

// ParsePPU detects, normalizes and checksums a raw plate.
func ParsePPU(raw string) (PPU, error) {
	p, err := parsePlate(raw)
	if err != nil {
		return PPU{}, err
	}
	normalized, err := p.canonical()
	if err != nil {
		return PPU{}, err
	}
	numeric, err := ParseNumeric(normalized)
	if err != nil {
		return PPU{}, err
	}
	verifier, err := Checksum(uint64(numeric))
	if err != nil {
		return PPU{}, err
	}
	return PPU{
		raw:        raw,
		format:     p.format,
		plate:      p.padded(),
		normalized: normalized,
		numeric:    numeric,
		verifier:   verifier,
	}, nil
}

// Raw returns the input exactly as given to ParsePPU.
func (p PPU) Raw() string { return p.raw }

func (p PPU) Format() Format { return p.format }

// Plate returns the upper-cased plate without separators and with the
// padding of its layout, e.g. "BBC012" for "bbc-12".
func (p PPU) Plate() string { return p.plate }

// Normalized returns the canonical six-digit form.
func (p PPU) Normalized() string { return p.normalized }

func (p PPU) Numeric() uint32 { return p.numeric }

func (p PPU) Verifier() Verifier { return p.verifier }

// Complete returns "normalized-verifier", e.g. "069455-K".
func (p PPU) Complete() string {
	return p.normalized + "-" + p.verifier.String()
}

func (p PPU) String() string { return p.Complete() }

// PPUView is the flat, serializable form of a PPU.
type PPUView struct {
	Raw        string   `json:"raw" yaml:"raw"`
	Format     string   `json:"format" yaml:"format"`
	Plate      string   `json:"plate" yaml:"plate"`
	Normalized string   `json:"normalized" yaml:"normalized"`
	Numeric    uint32   `json:"numeric" yaml:"numeric"`
	Verifier   Verifier `json:"verifier" yaml:"verifier"`
	Complete   string   `json:"complete" yaml:"complete"`
}

// View returns the serializable form of p.
func (p PPU) View() PPUView {
	return PPUView{
		Raw:        p.raw,
		Format:     p.format.String(),
		Plate:      p.plate,
		Normalized: p.normalized,
		Numeric:    p.numeric,
		Verifier:   p.verifier,
		Complete:   p.Complete(),
	}
}

func (p PPU) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.View())
}
