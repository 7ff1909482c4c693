package obj

import "github.com/milk9111/platformer/common"

// Platform is a static solid rectangle.
type Platform struct {
	Rect common.Rect
}

func NewPlatform(x, y, w, h float64) *Platform {
	return &Platform{Rect: common.Rect{X: x, Y: y, Width: w, Height: h}}
}

func (p *Platform) Bounds() common.Rect { return p.Rect }
