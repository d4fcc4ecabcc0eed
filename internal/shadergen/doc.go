// Package shadergen formats kernel weights as shader source snippets.
//
// Two output forms are supported:
//
//	// WGSL expression, paste into a const or let declaration
//	array<f32, 3>(0.398942, 0.241971, 0.053991, )
//
//	// GLSL ES 2 declaration with per-index assignments
//	#define KERNEL_SIZE 3
//	float KERNEL[KERNEL_SIZE];
//	KERNEL[0] = 0.398942;
//	...
//
// ParseValues reads whitespace-separated numbers (optionally preceded by a
// byte-order mark) and ValidateWGSL checks generated WGSL by compiling it
// with gogpu/naga.
package shadergen
