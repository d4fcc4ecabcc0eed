package shadergen

import (
	"fmt"

	"github.com/gogpu/naga"
)

// validationShader embeds an array expression in the smallest compute
// shader naga accepts, so the literal is type-checked and lowered.
const validationShader = `@compute @workgroup_size(1)
fn main() {
    var weights = %s;
    let center = weights[0];
}
`

// WGSLModule returns a complete compute shader that declares expr as a
// local variable. It is the source ValidateWGSL compiles.
func WGSLModule(expr string) string {
	return fmt.Sprintf(validationShader, expr)
}

// ValidateWGSL compiles an array expression produced by WGSLArray to
// SPIR-V with naga and reports any error. The SPIR-V is discarded.
func ValidateWGSL(expr string) error {
	spirv, err := naga.Compile(WGSLModule(expr))
	if err != nil {
		return fmt.Errorf("shadergen: generated WGSL rejected: %w", err)
	}
	if len(spirv) < 4 {
		return fmt.Errorf("shadergen: generated WGSL produced %d bytes of SPIR-V", len(spirv))
	}
	return nil
}
