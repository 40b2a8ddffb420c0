package domain

// Wall types recognized by the TV mounting surcharge.
const (
	WallDrywall  = "drywall"
	WallBrick    = "brick"
	WallConcrete = "concrete"
	WallStone    = "stone"
	WallTile     = "tile"
)

// Cable concealment options for TV mounting.
const (
	ConcealNone    = "none"
	ConcealOnWall  = "on_wall"
	ConcealRaceway = "raceway"
	ConcealInWall  = "in_wall"
)

// ServiceRequest describes one customer visit's selections across all service
// categories. It is the sole input to the pricing engine.
type ServiceRequest struct {
	// TV mounting
	TVSizes       []int // diagonal inches per TV; preferred over TVSize/TVCount
	TVSize        int   // fallback single size, used with TVCount when TVSizes is empty
	TVCount       int
	WallType      string
	ConcealType   string
	Soundbar      bool
	LED           bool
	TVRemoveCount int

	// Picture & art hanging
	PictureCount      int
	PictureLargeCount int  // items at or above the large-width threshold
	GalleryWall       bool // informational, no price effect

	// Floating shelves
	ShelvesCount       int
	ShelvesRemoveCount int

	// Closet shelving
	ClosetShelfCount     int
	ClosetRemoveCount    int
	ClosetNeedsMaterials bool // informational, no price effect

	// Curtains / blinds / decor
	DecorCount       int
	DecorRemoveCount int

	// Visit modifiers
	ZIPCode          string
	SameDay          bool // informational at quote time, surcharged at booking
	AfterHours       bool // informational at quote time, surcharged at booking
	LadderRequired   bool
	ParkingNotes     string
	PreferredContact string
}

// Normalize clamps every count to zero or above and drops non-positive TV
// sizes. Pricing assumes a normalized request; no category may go negative.
func (r *ServiceRequest) Normalize() {
	sizes := make([]int, 0, len(r.TVSizes))
	for _, size := range r.TVSizes {
		if size > 0 {
			sizes = append(sizes, size)
		}
	}
	r.TVSizes = sizes

	r.TVSize = clampNonNegative(r.TVSize)
	r.TVCount = clampNonNegative(r.TVCount)
	r.TVRemoveCount = clampNonNegative(r.TVRemoveCount)
	r.PictureCount = clampNonNegative(r.PictureCount)
	r.PictureLargeCount = clampNonNegative(r.PictureLargeCount)
	r.ShelvesCount = clampNonNegative(r.ShelvesCount)
	r.ShelvesRemoveCount = clampNonNegative(r.ShelvesRemoveCount)
	r.ClosetShelfCount = clampNonNegative(r.ClosetShelfCount)
	r.ClosetRemoveCount = clampNonNegative(r.ClosetRemoveCount)
	r.DecorCount = clampNonNegative(r.DecorCount)
	r.DecorRemoveCount = clampNonNegative(r.DecorRemoveCount)
}

// TVUnits resolves the per-TV size list for the visit. The explicit size list
// wins; otherwise the single size is repeated TVCount times.
func (r *ServiceRequest) TVUnits() []int {
	if len(r.TVSizes) > 0 {
		return r.TVSizes
	}
	if r.TVSize > 0 && r.TVCount > 0 {
		sizes := make([]int, r.TVCount)
		for i := range sizes {
			sizes[i] = r.TVSize
		}
		return sizes
	}
	return nil
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
