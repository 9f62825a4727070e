package invite

import (
	"context"
	"sync"
	"time"
)

// SwipeThreshold is the horizontal displacement, in pixels, a drag must
// cover before it counts as a swipe.
const SwipeThreshold = 50.0

// Keyboard keys recognized by the lightbox variant.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEscape     = "Escape"
)

// Carousel is the shared engine behind the hero slideshow, the card slider,
// the lightbox and the gallery. It holds an ordered image list, the current
// index and the direction of the last navigation (used only to pick the
// transition animation).
type Carousel struct {
	mu        sync.Mutex
	images    []string
	index     int
	direction int
}

func NewCarousel(images []string) *Carousel {
	return &Carousel{images: images}
}

// Current returns the active image, or false for an empty list.
func (c *Carousel) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return "", false
	}
	return c.images[c.index], true
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Direction reports the last navigation direction: 1 forward, -1 backward,
// 0 before any navigation.
func (c *Carousel) Direction() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// CanNavigate reports whether navigation affordances should be shown.
// A single image disables them entirely.
func (c *Carousel) CanNavigate() bool {
	return c.Len() > 1
}

// Next advances circularly, wrapping from the last image to the first.
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) <= 1 {
		return
	}
	c.direction = 1
	c.index = (c.index + 1) % len(c.images)
}

// Previous retreats circularly, wrapping from the first image to the last.
func (c *Carousel) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) <= 1 {
		return
	}
	c.direction = -1
	c.index = (c.index - 1 + len(c.images)) % len(c.images)
}

// GoTo jumps straight to i. Out-of-range targets are a no-op.
func (c *Carousel) GoTo(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.images) || i == c.index {
		return
	}
	if i > c.index {
		c.direction = 1
	} else {
		c.direction = -1
	}
	c.index = i
}

// Swipe applies a horizontal drag. displacement is startX minus endX, so a
// positive value is a drag to the left and advances; below the threshold
// the gesture is ignored.
func (c *Carousel) Swipe(displacement float64) {
	if displacement > SwipeThreshold {
		c.Next()
	} else if displacement < -SwipeThreshold {
		c.Previous()
	}
}

// HandleKey maps lightbox keyboard input: arrows navigate, escape invokes
// the close callback. Unknown keys are ignored.
func (c *Carousel) HandleKey(key string, onClose func()) {
	switch key {
	case KeyArrowLeft:
		c.Previous()
	case KeyArrowRight:
		c.Next()
	case KeyEscape:
		if onClose != nil {
			onClose()
		}
	}
}

// AutoAdvance calls Next on a fixed interval until ctx is canceled,
// emitting each new index. Lists of one image or fewer never auto-advance;
// the returned channel closes immediately.
func (c *Carousel) AutoAdvance(ctx context.Context, interval time.Duration) <-chan int {
	out := make(chan int, 1)

	if !c.CanNavigate() {
		close(out)
		return out
	}

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Next()
				select {
				case out <- c.Index():
				default:
				}
			}
		}
	}()

	return out
}
