package card

// Petal and burst cardinalities are fixed for the lifetime of the process.
const (
	PetalCount         = 18
	BurstParticleCount = 24
	BurstStagger       = 0.04 // seconds between consecutive burst particles
)

// Field ranges for generated decorations.
var (
	PetalPosition = Range{0, 100} // percent of viewport width
	PetalDelay    = Range{0, 8}   // seconds
	PetalDuration = Range{6, 12}  // seconds
	PetalSize     = Range{12, 28} // pixels
	PetalOpacity  = Range{0.4, 0.9}
	PetalRotation = Range{0, 360} // degrees

	BurstFontSize = Range{14, 36}    // pixels
	BurstOffset   = Range{-250, 250} // pixels, per axis
)

// Symbol identifies one of the burst glyphs.
type Symbol int

const (
	SymbolSparklingHeart Symbol = iota
	SymbolTwoHearts
	SymbolGrowingHeart
	SymbolBeatingHeart
	SymbolSparkle
	SymbolRose
	SymbolRevolvingHearts
	SymbolGiftHeart

	SymbolCount = 8
)

// Petal describes one falling petal. Values are fixed once generated.
type Petal struct {
	ID                 int
	HorizontalPosition float64
	FallDelay          float64
	FallDuration       float64
	Size               float64
	Opacity            float64
	Rotation           float64
}

// BurstParticle describes one glyph of a celebratory burst.
type BurstParticle struct {
	SymbolIndex Symbol
	FontSize    float64
	StartDelay  float64
	TranslateX  float64
	TranslateY  float64
}

// GeneratePetals draws PetalCount petals, each field independently and
// uniformly from its range.
func GeneratePetals(src Source) []Petal {
	petals := make([]Petal, PetalCount)
	for i := range petals {
		petals[i] = Petal{
			ID:                 i,
			HorizontalPosition: PetalPosition.Draw(src),
			FallDelay:          PetalDelay.Draw(src),
			FallDuration:       PetalDuration.Draw(src),
			Size:               PetalSize.Draw(src),
			Opacity:            PetalOpacity.Draw(src),
			Rotation:           PetalRotation.Draw(src),
		}
	}
	return petals
}

// GenerateBurst draws a fresh set of BurstParticleCount particles. Every call
// is independent of previous ones.
func GenerateBurst(src Source) []BurstParticle {
	particles := make([]BurstParticle, BurstParticleCount)
	for i := range particles {
		particles[i] = BurstParticle{
			SymbolIndex: Symbol(i % SymbolCount),
			FontSize:    BurstFontSize.Draw(src),
			StartDelay:  float64(i) * BurstStagger,
			TranslateX:  BurstOffset.Draw(src),
			TranslateY:  BurstOffset.Draw(src),
		}
	}
	return particles
}
