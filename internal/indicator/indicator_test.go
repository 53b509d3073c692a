package indicator

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pin struct{ high bool }

func (p *pin) Set(high bool) { p.high = high }

type strip struct {
	writes [][]color.RGBA
}

func (s *strip) WriteColors(buf []color.RGBA) error {
	s.writes = append(s.writes, append([]color.RGBA(nil), buf...))
	return nil
}

func TestPins(t *testing.T) {
	r, g, b := &pin{}, &pin{}, &pin{}
	led := Pins{R: r, G: g, B: b}

	Recording(led)
	assert.Equal(t, []bool{true, false, false}, []bool{r.high, g.high, b.high})

	Playing(led)
	assert.Equal(t, []bool{false, true, false}, []bool{r.high, g.high, b.high})

	led.Set(true, true, true)
	Off(led)
	assert.Equal(t, []bool{false, false, false}, []bool{r.high, g.high, b.high})
}

func TestPixel(t *testing.T) {
	s := &strip{}
	led := NewPixel(s, 32)

	Recording(led)
	Playing(led)
	Off(led)

	assert.Equal(t, [][]color.RGBA{
		{{R: 32}},
		{{G: 32}},
		{{}},
	}, s.writes)
}
