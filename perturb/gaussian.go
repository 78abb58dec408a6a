package perturb

import "github.com/chewxy/math32"

// gaussianKernel builds a normalized 1-D Gaussian kernel truncated at 4
// standard deviations. A nil kernel means the axis is not blurred.
func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return nil
	}
	radius := int(4*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}

	kernel := make([]float32, 2*radius+1)
	twoSigmaSq := float32(2 * sigma * sigma)
	var sum float32
	for i := range kernel {
		x := float32(i - radius)
		w := math32.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// gaussianBlur2D applies a separable Gaussian blur to a row-major height x
// width plane and returns a new slice. Sampling outside the plane reflects
// across the border (d c b a | a b c d | d c b a), which preserves edge
// energy on masks clipped at the image borders.
func gaussianBlur2D(data []float32, height, width int, sigmaY, sigmaX float64) []float32 {
	kernelY := gaussianKernel(sigmaY)
	kernelX := gaussianKernel(sigmaX)

	tmp := append([]float32(nil), data...)

	// Horizontal pass (row-wise).
	if kernelX != nil {
		out := make([]float32, len(tmp))
		radius := len(kernelX) / 2
		for y := 0; y < height; y++ {
			row := tmp[y*width : (y+1)*width]
			for x := 0; x < width; x++ {
				var acc float32
				for k, w := range kernelX {
					acc += w * row[reflectIndex(x+k-radius, width)]
				}
				out[y*width+x] = acc
			}
		}
		tmp = out
	}

	// Vertical pass (column-wise).
	if kernelY != nil {
		out := make([]float32, len(tmp))
		radius := len(kernelY) / 2
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				var acc float32
				for k, w := range kernelY {
					acc += w * tmp[reflectIndex(y+k-radius, height)*width+x]
				}
				out[y*width+x] = acc
			}
		}
		tmp = out
	}

	return tmp
}

// reflectIndex maps an out-of-range index back into [0, n) by reflecting
// across the borders, edge element included.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - 1 - i
		}
	}
	return i
}
