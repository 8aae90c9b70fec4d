package bus

// Lock identifies who claims a region. The order of the constants is the
// arbitration priority.
type Lock uint8

const (
	NoLock Lock = iota
	LockPPU
	LockDMA
	LockDebugger
)

func (l Lock) String() string {
	switch l {
	case NoLock:
		return "none"
	case LockPPU:
		return "ppu"
	case LockDMA:
		return "dma"
	case LockDebugger:
		return "debugger"
	}
	return "unknown"
}

// Locks tracks the holder of every region. The zero value has every region
// free.
type Locks struct {
	held [numAreas]Lock
}

// Permitted reports whether requester may access area right now.
func (l *Locks) Permitted(area Area, requester Lock) bool {
	holder := l.held[area]
	return holder == NoLock || holder == requester || requester > holder
}

// Claim marks area as held by claimant. It fails when the claimant would not
// be permitted to access the region.
func (l *Locks) Claim(area Area, claimant Lock) bool {
	if claimant == NoLock || !l.Permitted(area, claimant) {
		return false
	}
	l.held[area] = claimant
	return true
}

func (l *Locks) Release(area Area) {
	l.held[area] = NoLock
}

func (l *Locks) Holder(area Area) Lock {
	return l.held[area]
}
