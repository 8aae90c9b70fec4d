package ppu

const maxObjectsPerLine = 10

type object struct {
	oamIndex              int
	y, x, tileIndex, attr uint8
}

func newObject(oam []uint8, index int) *object {
	base := index * 4
	return &object{
		oamIndex:  index,
		y:         oam[base],
		x:         oam[base+1],
		tileIndex: oam[base+2],
		attr:      oam[base+3],
	}
}

func (o *object) screenY() int {
	return int(o.y) - 16
}

func (o *object) screenX() int {
	return int(o.x) - 8
}

func (o *object) paletteNumber() bool {
	return ((o.attr >> 4) & 1) != 0
}

func (o *object) xFlip() bool {
	return ((o.attr >> 5) & 1) != 0
}

func (o *object) yFlip() bool {
	return ((o.attr >> 6) & 1) != 0
}

func (o *object) behindBG() bool {
	return ((o.attr >> 7) & 1) != 0
}

// vramBank is only meaningful on the color model.
func (o *object) vramBank() int {
	return int((o.attr >> 3) & 1)
}

// covers reports whether the object has a row on line ly.
func (o *object) covers(ly, height int) bool {
	row := ly - o.screenY()
	return 0 <= row && row < height
}

type byXAndOAMIndex []*object

func (o byXAndOAMIndex) Len() int {
	return len(o)
}
func (o byXAndOAMIndex) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
}
func (o byXAndOAMIndex) Less(i, j int) bool {
	return o[i].x < o[j].x || (o[i].x == o[j].x && o[i].oamIndex < o[j].oamIndex)
}

// byOAMIndex is the priority order of the color model.
type byOAMIndex []*object

func (o byOAMIndex) Len() int {
	return len(o)
}
func (o byOAMIndex) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
}
func (o byOAMIndex) Less(i, j int) bool {
	return o[i].oamIndex < o[j].oamIndex
}
