package gallery

// Pager holds the ordered image set discovered in the source directory
// and a cursor into it. The set is fixed for the session; navigation
// clamps at both ends.
type Pager struct {
	images []string
	cursor int
}

// NewPager wraps an already-discovered image list.
func NewPager(images []string) *Pager {
	return &Pager{images: images}
}

// Load scans sourceDir and returns a pager positioned at the first
// image. An empty source directory yields a valid, empty pager.
func Load(sourceDir string) (*Pager, error) {
	images, err := ScanImages(sourceDir)
	if err != nil {
		return nil, err
	}
	return NewPager(images), nil
}

// Len returns the number of images in the set.
func (p *Pager) Len() int { return len(p.images) }

// Cursor returns the current index.
func (p *Pager) Cursor() int { return p.cursor }

// Current returns the image under the cursor, or "" for an empty set.
func (p *Pager) Current() string {
	if len(p.images) == 0 {
		return ""
	}
	return p.images[p.cursor]
}

// Advance moves the cursor n images forward (negative n moves back),
// clamped to [0, len-1]. On an empty set it is a no-op.
func (p *Pager) Advance(n int) {
	p.cursor = clamp(p.cursor+n, 0, len(p.images)-1)
}

// Window returns up to count images starting at the cursor. When the
// cursor sits too close to the end, the start shifts left so the last
// count images are returned; the cursor itself never moves, and its
// image is always inside the returned window.
func (p *Pager) Window(count int) []string {
	if count <= 0 || len(p.images) == 0 {
		return nil
	}
	if count > len(p.images) {
		count = len(p.images)
	}
	start := p.cursor
	if start+count > len(p.images) {
		start = len(p.images) - count
	}
	return p.images[start : start+count]
}

// Progress reports how far through the set the cursor is, in percent.
// An empty set reports 0.
func (p *Pager) Progress() float64 {
	if len(p.images) == 0 {
		return 0
	}
	return 100 * float64(p.cursor+1) / float64(len(p.images))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
