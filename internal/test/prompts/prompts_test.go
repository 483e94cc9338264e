package prompts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juraijvu/furn-newyear/internal/prompts"
)

func TestGenerateInpaintingPrompt_Deterministic(t *testing.T) {
	first := prompts.GenerateInpaintingPrompt("cushion", "leather", "red")
	second := prompts.GenerateInpaintingPrompt("cushion", "leather", "red")

	assert.Equal(t, first, second)
	assert.Contains(t, first, "red")
	assert.Contains(t, first, "seat cushion")
	assert.Contains(t, first, "leather")
}

func TestGenerateInpaintingPrompt_KnownHexResolvesToName(t *testing.T) {
	prompt := prompts.GenerateInpaintingPrompt("seat", "velvet", "#FF0000")

	assert.Contains(t, prompt, "vibrant red")
	assert.NotContains(t, prompt, "#FF0000")
}

func TestGenerateInpaintingPrompt_UnknownHexDegradesToLiteral(t *testing.T) {
	prompt := prompts.GenerateInpaintingPrompt("seat", "velvet", "#123456")

	assert.Contains(t, prompt, "color #123456")
}

func TestGenerateInpaintingPrompt_UnknownMaterialAndPartFallBack(t *testing.T) {
	prompt := prompts.GenerateInpaintingPrompt("spoiler", "carbon", "blue")

	assert.Contains(t, prompt, "premium material")
	assert.Contains(t, prompt, "furniture part")
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "deep blue", prompts.ColorName("#0000FF"))
	assert.Equal(t, "color #ABCDEF", prompts.ColorName("#ABCDEF"))
	assert.Equal(t, "crimson", prompts.ColorName("crimson"))
}

func TestEnumeratedOptions(t *testing.T) {
	assert.Len(t, prompts.Materials(), 8)
	assert.Len(t, prompts.FurnitureParts(), 9)
	assert.Contains(t, prompts.Materials(), "microfiber")
	assert.Contains(t, prompts.FurnitureParts(), "table_top")
}
