package passes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadfield/quadfield/engine/contract"
	"github.com/quadfield/quadfield/engine/renderer/pipeline"
	"github.com/quadfield/quadfield/engine/tiling"
)

func TestPipelineKeysAreDistinct(t *testing.T) {
	keys := []string{KeyExpansion, KeyShadow, KeyPrepass, KeyPrimary, KeySSAO, KeyCubeFromSphere}
	seen := make(map[string]bool)
	for _, k := range keys {
		assert.Falsef(t, seen[k], "duplicate pipeline key %q", k)
		seen[k] = true
	}
}

func TestEntryPointsExistInSources(t *testing.T) {
	pipelines := []pipeline.Pipeline{
		NewExpansionPipeline(),
		NewShadowPipeline(),
		NewPrepassPipeline(),
		NewPrimaryPipeline(),
		NewSSAOPipeline(),
		NewCubeFromSpherePipeline(),
	}
	for _, p := range pipelines {
		require.NotEmptyf(t, p.Source(), "%s has no WGSL source", p.PipelineKey())
		for _, entry := range []string{p.VertexEntry(), p.FragmentEntry(), p.ComputeEntry()} {
			if entry == "" {
				continue
			}
			assert.Containsf(t, p.Source(), "fn "+entry,
				"%s: entry point %q not declared in source", p.PipelineKey(), entry)
		}
	}
}

func TestShadowPipelineIsDepthOnly(t *testing.T) {
	p := NewShadowPipeline()
	assert.Equal(t, pipeline.TargetDepthOnly, p.Target())
	assert.Empty(t, p.FragmentEntry())
	assert.NotEmpty(t, p.VertexEntry())
}

func TestPipelineLayoutsMatchContract(t *testing.T) {
	assert.Len(t, NewExpansionPipeline().Layouts(), len(contract.ExpansionLayouts()))
	assert.Len(t, NewShadowPipeline().Layouts(), len(contract.ShadowLayouts()))
	assert.Len(t, NewPrepassPipeline().Layouts(), len(contract.PrepassLayouts()))
	assert.Len(t, NewPrimaryPipeline().Layouts(), len(contract.PrimaryLayouts()))
	assert.Len(t, NewSSAOPipeline().Layouts(), len(contract.SSAOLayouts()))
	assert.Len(t, NewCubeFromSpherePipeline().Layouts(), len(contract.CubeFromSphereLayouts()))
}

func TestSourcesBindContractSlots(t *testing.T) {
	// The uniform declarations inside each WGSL module must sit at the
	// contract's buffer slots; drift here renders silently wrong.
	assert.Contains(t, NewPrimaryPipeline().Source(),
		fmt.Sprintf("@binding(%d) var<uniform> uniforms", contract.BufferIndexUniforms))
	assert.Contains(t, NewPrimaryPipeline().Source(),
		fmt.Sprintf("@binding(%d) var<uniform> shadow_light", contract.BufferIndexShadowLight))
	assert.Contains(t, NewPrimaryPipeline().Source(),
		fmt.Sprintf("@binding(%d) var<uniform> noise_samples", contract.BufferIndexNoise))
	assert.Contains(t, NewPrimaryPipeline().Source(),
		fmt.Sprintf("@binding(%d) var<uniform> ssao_kernel", contract.BufferIndexSSAOSamples))
	assert.Contains(t, NewShadowPipeline().Source(),
		fmt.Sprintf("@binding(%d) var<uniform> shadow_light", contract.BufferIndexShadowLight))
	assert.Contains(t, NewCubeFromSpherePipeline().Source(),
		fmt.Sprintf("@binding(%d) var<uniform> face", contract.BufferIndexCubeFromSphere))

	// Sample pattern array lengths are baked into the shader text.
	assert.Contains(t, NewPrimaryPipeline().Source(),
		fmt.Sprintf("array<vec4<f32>, %d>", contract.NumNoiseSamples))
	assert.Contains(t, NewPrimaryPipeline().Source(),
		fmt.Sprintf("array<vec4<f32>, %d>", contract.NumSSAOSamples))
}

func TestStreamSizingMatchesTiling(t *testing.T) {
	def := tiling.Default()

	assert.Equal(t, uint64(def.NumGroups*def.MaxVerts*StreamVertexSize), StreamBufferSize(def))
	assert.Equal(t, uint32(def.TotalShapes*tiling.PrimsPerShape*3), DrawVertexCount(def))

	// The WGSL stream vertex is three vec4s.
	assert.Equal(t, 3*16, StreamVertexSize)
}

func TestStreamStructConsistentAcrossSources(t *testing.T) {
	// Every pass that touches the stream must declare the same struct.
	want := "struct StreamVertex {"
	for _, p := range []pipeline.Pipeline{NewExpansionPipeline(), NewShadowPipeline(), NewPrepassPipeline(), NewPrimaryPipeline()} {
		assert.Truef(t, strings.Contains(p.Source(), want),
			"%s does not declare the stream vertex struct", p.PipelineKey())
	}
}
