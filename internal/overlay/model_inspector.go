package overlay

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/gui"
	"github.com/Faultbox/sceneview/pkg/scene"
)

// transformHeader starts the body of every rendered node.
const transformHeader = "Transform:"

// ShowModelInspector draws the model inspector window.
func ShowModelInspector(v gui.View, open *bool, models []scene.Model) {
	if v.BeginWindow(titleModels, open) {
		RenderModelTree(v, models)
	}
	v.EndWindow()
}

// RenderModelTree draws one expandable entry per model with its materials,
// meshes and node tree. Only expanded branches are walked.
func RenderModelTree(v gui.View, models []scene.Model) {
	if len(models) == 0 {
		v.TextDisabled("No models loaded")
		return
	}

	for i := range models {
		m := &models[i]
		if !v.TreeNode(strconv.Itoa(i), fmt.Sprintf("Model %d: %s", i, m.Name)) {
			continue
		}

		if m.Path != "" {
			v.Text("Path: " + m.Path)
		}
		v.TextDisabled("ID: " + m.ID.String())

		if len(m.Materials) > 0 {
			if v.TreeNode("materials", fmt.Sprintf("Materials (%d)", len(m.Materials))) {
				for j := range m.Materials {
					mat := &m.Materials[j]
					if v.TreeNode(strconv.Itoa(j), fmt.Sprintf("Material %d: %s", j, mat.Name)) {
						RenderMaterial(v, mat)
						v.TreePop()
					}
				}
				v.TreePop()
			}
		}

		if len(m.Meshes) > 0 {
			if v.TreeNode("meshes", fmt.Sprintf("Meshes (%d)", len(m.Meshes))) {
				for j := range m.Meshes {
					mesh := &m.Meshes[j]
					if v.TreeNode(strconv.Itoa(j), fmt.Sprintf("Mesh %d: %s", j, mesh.ID)) {
						renderMesh(v, mesh)
						v.TreePop()
					}
				}
				v.TreePop()
			}
		}

		if v.TreeNode("root", "RootNode") {
			RenderNode(v, &m.Root, "0")
			v.TreePop()
		}

		v.TreePop()
	}
}

// RenderNode draws a node's transform, mesh instances and metadata, then
// recurses into its children. path labels the node for display; a child's
// label is path plus its position. Tree IDs are positional, so siblings
// never share expansion state.
func RenderNode(v gui.View, node *scene.Node, path string) {
	v.Text(transformHeader)
	renderMatrix(v, node.Transform)

	for k, ref := range node.Meshes {
		label := fmt.Sprintf("Instance %d of mesh %d", ref.Instance, ref.Mesh)
		if v.TreeNode("mesh"+strconv.Itoa(k), label) {
			v.Text(fmt.Sprintf("Instance: %d", ref.Instance))
			v.Text(fmt.Sprintf("Mesh: %d", ref.Mesh))
			v.TreePop()
		}
	}

	if len(node.Metadata) > 0 {
		if v.TreeNode("metadata", fmt.Sprintf("Metadata (%d)", len(node.Metadata))) {
			for _, md := range node.Metadata {
				v.Text(md.Key + ": " + md.Value)
			}
			v.TreePop()
		}
	}

	for c := range node.Children {
		child := &node.Children[c]
		childPath := path + "." + strconv.Itoa(c)
		if v.TreeNode(strconv.Itoa(c), childPath+" "+child.Name) {
			RenderNode(v, child, childPath)
			v.TreePop()
		}
	}
}

// RenderMaterial draws one header per non-empty texture slot, in slot order,
// followed by the meshes using the material.
func RenderMaterial(v gui.View, mat *scene.Material) {
	for k := scene.TextureKind(0); k < scene.TextureKindCount; k++ {
		textures := mat.Textures[k]
		if len(textures) == 0 {
			continue
		}
		if v.TreeNode("slot"+strconv.Itoa(int(k)), fmt.Sprintf("%s (%d)", k.Title(), len(textures))) {
			for i, tex := range textures {
				v.Text(fmt.Sprintf("%d: %s (id %d)", i, tex.Path, tex.ID))
			}
			v.TreePop()
		}
	}

	if len(mat.MeshIndices) > 0 {
		if v.TreeNode("users", fmt.Sprintf("Used by meshes (%d)", len(mat.MeshIndices))) {
			for _, idx := range mat.MeshIndices {
				v.Text(fmt.Sprintf("Mesh %d", idx))
			}
			v.TreePop()
		}
	}
}

func renderMesh(v gui.View, mesh *scene.Mesh) {
	if mesh.Name != "" {
		v.Text("Name: " + mesh.Name)
	}
	v.Text(fmt.Sprintf("Vertices: %d", mesh.VertexCount))
	v.Text(fmt.Sprintf("Faces: %d", mesh.FaceCount))
	v.Text(fmt.Sprintf("Material: %d", mesh.MaterialIndex))

	if len(mesh.Instances) > 0 {
		if v.TreeNode("instances", fmt.Sprintf("Instances (%d)", len(mesh.Instances))) {
			for i, inst := range mesh.Instances {
				v.Text(fmt.Sprintf("Instance %d:", i))
				renderMatrix(v, inst)
			}
			v.TreePop()
		}
	}

	if len(mesh.Bones) > 0 {
		if v.TreeNode("bones", fmt.Sprintf("Bones (%d)", len(mesh.Bones))) {
			for i := range mesh.Bones {
				b := &mesh.Bones[i]
				if v.TreeNode(strconv.Itoa(i), b.Name) {
					v.Text(fmt.Sprintf("Weights: %d", b.Weights))
					renderMatrix(v, b.Offset)
					v.TreePop()
				}
			}
			v.TreePop()
		}
	}
}

// renderMatrix prints m row by row.
func renderMatrix(v gui.View, m mgl32.Mat4) {
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		v.Text(fmt.Sprintf("%.3f %.3f %.3f %.3f", row[0], row[1], row[2], row[3]))
	}
}
