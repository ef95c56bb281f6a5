package game

// RNG is a splitmix64 generator carried inside GameState as a plain value,
// so cloning a state clones the cursor and replays stay bit-identical.
type RNG struct {
	State uint64
}

// NewRNG seeds a generator. A zero seed is valid; the first mix step moves
// it off zero.
func NewRNG(seed uint64) RNG {
	return RNG{State: seed}
}

// Next advances the generator and returns the next 64-bit value.
func (r *RNG) Next() uint64 {
	r.State += 0x9e3779b97f4a7c15
	z := r.State
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Intn returns a value in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("game: Intn called with non-positive n")
	}
	return int(r.Next() % uint64(n))
}

// Shuffle performs a Fisher-Yates shuffle over n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// DeriveSeed mixes a base seed with an offset into an independent stream
// seed. Batch runs give every game its own derived seed so results are
// reproducible regardless of worker scheduling.
func DeriveSeed(base uint64, offset uint64) uint64 {
	x := base + offset + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
