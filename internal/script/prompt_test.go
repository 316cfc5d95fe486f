package script

import (
	"strings"
	"testing"
)

func TestBlenderPrompt(t *testing.T) {
	p := BlenderPrompt("wooden chair")
	if !strings.Contains(p, "wooden chair") {
		t.Error("prompt missing object name")
	}
	if !strings.Contains(p, "duck.stl") {
		t.Error("prompt missing export target")
	}
}

func TestBlenderPromptWithDescription(t *testing.T) {
	p := BlenderPromptWithDescription("chair", "four legs and a backrest")
	if !strings.Contains(p, "chair") || !strings.Contains(p, "four legs and a backrest") {
		t.Error("prompt missing name or description")
	}
}

func TestExtractCodeFenced(t *testing.T) {
	response := "Here is the script:\n```python\nimport bpy\nbpy.ops.mesh.primitive_cube_add()\n```\nDone."
	got := ExtractCode(response)
	want := "import bpy\nbpy.ops.mesh.primitive_cube_add()"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractCodeBareFence(t *testing.T) {
	response := "```\nimport bpy\n```"
	if got := ExtractCode(response); got != "import bpy" {
		t.Errorf("expected bare fence stripped, got %q", got)
	}
}

func TestExtractCodeNoFence(t *testing.T) {
	response := "import bpy\nbpy.ops.mesh.primitive_cube_add()\n"
	got := ExtractCode(response)
	if got != strings.TrimSpace(response) {
		t.Errorf("unfenced response should pass through, got %q", got)
	}
}

func TestExtractCodeMultipleBlocks(t *testing.T) {
	response := "```python\nimport bpy\n```\ntext between\n```python\nprint('x')\n```"
	got := ExtractCode(response)
	if !strings.Contains(got, "import bpy") || !strings.Contains(got, "print('x')") {
		t.Errorf("expected both blocks kept, got %q", got)
	}
	if strings.Contains(got, "text between") {
		t.Errorf("expected prose dropped, got %q", got)
	}
}
