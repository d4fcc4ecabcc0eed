// Package kernelgen generates convolution kernel snippets for shader code.
//
// # Overview
//
// kernelgen is a pair of small code generators used when writing blur
// passes by hand:
//
//   - cmd/kernel samples a normalized Gaussian and prints a WGSL
//     array<f32, N>(...) literal ready to paste into a shader.
//   - cmd/kern2glsl reads numbers from stdin and prints a GLSL
//     KERNEL_SIZE macro, an array declaration and one assignment per value.
//
// # Quick Start
//
//	$ kernel 3 1
//	array<f32, 3>(0.398942, 0.241971, 0.053991, )
//
//	$ echo "1.0 2.0 3.0" | kern2glsl
//	#define KERNEL_SIZE 3
//	float KERNEL[KERNEL_SIZE];
//	KERNEL[0] = 1.0;
//	KERNEL[1] = 2.0;
//	KERNEL[2] = 3.0;
//
// # Architecture
//
// The repository is organized into:
//   - internal/kernel: Gaussian sampling, normalization, linear sampling
//   - internal/shadergen: WGSL and GLSL formatting, stdin parsing,
//     WGSL validation through gogpu/naga
//   - cmd/: thin command wrappers
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package kernelgen
