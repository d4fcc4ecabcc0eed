// Package kernel samples the Gaussian weights used by separable blur passes.
//
// Kernels are one-sided: index 0 is the center tap and index i is the
// weight applied at distance i on both sides of it. A shader applies
// w[0] once and every other weight twice.
//
// Besides plain sampling the package provides:
//   - Normalize: rescale a one-sided kernel so the two-sided sum is 1.0
//   - LinearSample: fold adjacent taps into bilinear fetches, halving the
//     number of texture reads (rastergrid.com, "Efficient Gaussian blur
//     with linear sampling")
package kernel
