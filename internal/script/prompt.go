package script

import (
	"fmt"
	"strings"
)

// BlenderPrompt builds the fixed prompt used to request a Blender Python
// script for one object name.
func BlenderPrompt(objectName string) string {
	return fmt.Sprintf("Create a Blender Python script that constructs a simple 3D model of %s "+
		"using only primitive meshes (bpy.ops.mesh.primitive_uv_sphere_add, primitive_cube_add, "+
		"primitive_cone_add, primitive_cylinder_add, etc.), positions and scales them into "+
		"reasonable proportions, deletes any default objects at the start, groups the parts "+
		"together, and then exports the model as an ASCII STL file named duck.stl. "+
		"Return only the runnable Python code, no explanations.", objectName)
}

// BlenderPromptWithDescription builds the richer prompt used when an
// entity description is available for the object.
func BlenderPromptWithDescription(objectName, description string) string {
	return fmt.Sprintf(`Create a Blender Python script that constructs a detailed 3D model of %s.

Description: %s

Requirements:
- Use primitive meshes (bpy.ops.mesh.primitive_uv_sphere_add, primitive_cube_add, primitive_cone_add, primitive_cylinder_add, etc.)
- Position and scale them into reasonable proportions based on the description
- Delete any default objects at the start
- Group the parts together
- Export the model as an ASCII STL file named duck.stl

Return only the runnable Python code, no explanations.`, objectName, description)
}

// DescribePrompt asks for a short physical description of one object.
func DescribePrompt(objectName string) string {
	return fmt.Sprintf("Describe the physical appearance of a %s in under 50 words: overall shape, "+
		"major parts, and rough proportions. Plain text only, no lists, no markdown.", objectName)
}

// ExtractCode strips markdown code fences from a model response and
// returns the bare script. Responses without fences pass through intact.
func ExtractCode(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	var code []string
	inBlock := false
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inBlock = !inBlock
			continue
		}
		if inBlock {
			code = append(code, line)
		}
	}
	return strings.TrimSpace(strings.Join(code, "\n"))
}
