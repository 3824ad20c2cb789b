package sdf

// far stands in for infinity. It is finite so that parabola intersections
// stay well defined.
const far = 1e20

// squaredDistance returns, for every pixel, the squared Euclidean distance
// to the nearest pixel whose inside state equals target. If no such pixel
// exists every distance is at least far.
//
// It is the separable linear-time transform of Felzenszwalb and
// Huttenlocher: a 1D lower envelope of parabolas per column, then per row.
func squaredDistance(inside []bool, w, h int, target bool) []float64 {
	grid := make([]float64, w*h)
	for i, in := range inside {
		if in != target {
			grid[i] = far
		}
	}

	n := max(w, h)
	f := make([]float64, n)
	d := make([]float64, n)
	v := make([]int, n)
	z := make([]float64, n+1)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f[y] = grid[y*w+x]
		}
		envelope(f[:h], d[:h], v, z)
		for y := 0; y < h; y++ {
			grid[y*w+x] = d[y]
		}
	}

	for y := 0; y < h; y++ {
		row := grid[y*w : (y+1)*w]
		copy(f, row)
		envelope(f[:w], d[:w], v, z)
		copy(row, d[:w])
	}

	return grid
}

// envelope computes the 1D squared distance transform of f into d.
// v and z are scratch buffers of at least len(f) and len(f)+1 elements.
func envelope(f, d []float64, v []int, z []float64) {
	n := len(f)
	if n == 0 {
		return
	}

	k := 0
	v[0] = 0
	z[0] = -far
	z[1] = far

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = far
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the position where the parabolas rooted at q and p meet.
func intersect(f []float64, q, p int) float64 {
	fq, fp := float64(q), float64(p)
	return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
}
