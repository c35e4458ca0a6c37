// Copyright 2025 jxl-oxide Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dct

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The reference transforms evaluate the cosine-sum definitions directly in
// float64. They are O(n^2) and exist to validate the fast kernels.

// ReferenceForward returns the DCT-II of in with the package's scaling.
func ReferenceForward(in []float64) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	mat.NewVecDense(len(out), out).MulVec(forwardBasis(len(in)), mat.NewVecDense(len(in), clone(in)))
	return out
}

// ReferenceInverse returns the DCT-III of in with the package's scaling.
func ReferenceInverse(in []float64) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	mat.NewVecDense(len(out), out).MulVec(inverseBasis(len(in)), mat.NewVecDense(len(in), clone(in)))
	return out
}

// Reference2D returns the 2D DCT-II of a height x width row-major block in
// the layout Forward2D produces.
func Reference2D(pixels []float64, width, height int) []float64 {
	x := mat.NewDense(height, width, clone(pixels[:width*height]))

	var tmp, c mat.Dense
	tmp.Mul(forwardBasis(height), x)
	c.Mul(&tmp, forwardBasis(width).T())

	// c is indexed by (vertical frequency, horizontal frequency).
	out := make([]float64, width*height)
	if width > height {
		for v := range height {
			for u := range width {
				out[v*width+u] = c.At(v, u)
			}
		}
		return out
	}
	for u := range width {
		for v := range height {
			out[u*height+v] = c.At(v, u)
		}
	}
	return out
}

// ReferenceInverse2D returns the targetHeight x targetWidth block whose
// Forward2D layout is coeffs.
func ReferenceInverse2D(coeffs []float64, targetWidth, targetHeight int) []float64 {
	c := mat.NewDense(targetHeight, targetWidth, nil)
	for v := range targetHeight {
		for u := range targetWidth {
			if targetWidth > targetHeight {
				c.Set(v, u, coeffs[v*targetWidth+u])
			} else {
				c.Set(v, u, coeffs[u*targetHeight+v])
			}
		}
	}

	var tmp, x mat.Dense
	tmp.Mul(inverseBasis(targetHeight), c)
	x.Mul(&tmp, inverseBasis(targetWidth).T())

	out := make([]float64, targetWidth*targetHeight)
	for y := range targetHeight {
		for i := range targetWidth {
			out[y*targetWidth+i] = x.At(y, i)
		}
	}
	return out
}

// forwardBasis returns D with D[k][i] = scale(k) * cos((2i+1)k*pi / 2n),
// scale(0) = 1/n and scale(k) = sqrt2/n.
func forwardBasis(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for k := range n {
		scale := math.Sqrt2 / float64(n)
		if k == 0 {
			scale = 1 / float64(n)
		}
		for i := range n {
			d.Set(k, i, scale*cosTerm(i, k, n))
		}
	}
	return d
}

// inverseBasis returns the inverse of forwardBasis(n):
// [i][k] = w(k) * cos((2i+1)k*pi / 2n), w(0) = 1 and w(k) = sqrt2.
func inverseBasis(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := range n {
		for k := range n {
			w := math.Sqrt2
			if k == 0 {
				w = 1
			}
			d.Set(i, k, w*cosTerm(i, k, n))
		}
	}
	return d
}

func cosTerm(i, k, n int) float64 {
	return math.Cos(float64((2*i+1)*k) * math.Pi / float64(2*n))
}

func clone(s []float64) []float64 {
	return append([]float64(nil), s...)
}
