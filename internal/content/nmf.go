package content

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	nmfMaxIter = 200
	nmfEps     = 1e-10
	nmfSeed    = 42
)

// factorize decomposes a non-negative doc-term matrix X into W*H with k
// components using multiplicative updates, and returns H. Each row of H
// weights the vocabulary for one latent topic.
func factorize(x *mat.Dense, k int) *mat.Dense {
	n, m := x.Dims()
	rng := rand.New(rand.NewSource(nmfSeed))

	// Scale the random init to the magnitude of the data so the first
	// updates do not collapse to zero.
	avg := math.Sqrt(mat.Sum(x) / float64(n*m) / float64(k))
	w := randDense(n, k, avg, rng)
	h := randDense(k, m, avg, rng)

	var wtx, wtw, wtwh mat.Dense
	var xht, hht, whht mat.Dense
	for iter := 0; iter < nmfMaxIter; iter++ {
		// H <- H * (W'X) / (W'WH)
		wtx.Mul(w.T(), x)
		wtw.Mul(w.T(), w)
		wtwh.Mul(&wtw, h)
		updateFactor(h, &wtx, &wtwh)

		// W <- W * (XH') / (WHH')
		xht.Mul(x, h.T())
		hht.Mul(h, h.T())
		whht.Mul(w, &hht)
		updateFactor(w, &xht, &whht)
	}
	return h
}

func randDense(r, c int, scale float64, rng *rand.Rand) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = scale * rng.Float64()
	}
	return mat.NewDense(r, c, data)
}

func updateFactor(f, num, den *mat.Dense) {
	r, c := f.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			f.Set(i, j, f.At(i, j)*num.At(i, j)/(den.At(i, j)+nmfEps))
		}
	}
}
