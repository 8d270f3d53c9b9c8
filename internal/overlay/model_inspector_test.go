package overlay

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sceneview/internal/gui/guitest"
	"github.com/Faultbox/sceneview/pkg/scene"
)

// buildTree returns a tree of the given depth where every node has
// branching children. All children share a name to check that expansion
// is keyed by position, not by label.
func buildTree(depth, branching int) scene.Node {
	n := scene.Node{Name: "node", Transform: mgl32.Ident4()}
	if depth == 0 {
		return n
	}
	for i := 0; i < branching; i++ {
		n.Children = append(n.Children, buildTree(depth-1, branching))
	}
	return n
}

func modelWithRoot(name string, root scene.Node) scene.Model {
	m := scene.NewModel(name)
	m.Root = root
	return *m
}

func visits(rec *guitest.Recorder) int {
	n := 0
	for _, text := range rec.Texts() {
		if text == transformHeader {
			n++
		}
	}
	return n
}

func TestRenderModelTreeVisitsEveryNodeOnce(t *testing.T) {
	shapes := []struct{ depth, branching int }{
		{0, 0}, {1, 3}, {3, 2}, {2, 5}, {5, 1},
	}

	for _, sh := range shapes {
		t.Run(fmt.Sprintf("depth%d_branch%d", sh.depth, sh.branching), func(t *testing.T) {
			models := []scene.Model{
				modelWithRoot("a", buildTree(sh.depth, sh.branching)),
				modelWithRoot("b", buildTree(1, 2)),
			}
			want := models[0].NodeCount() + models[1].NodeCount()

			rec := guitest.New()
			rec.OpenAll = true
			RenderModelTree(rec, models)

			assert.Equal(t, want, visits(rec))
			assert.True(t, rec.Balanced())

			ids := map[string]bool{}
			for _, e := range rec.Find(guitest.KindTreeNode) {
				assert.False(t, ids[e.ID], "duplicate tree id %s", e.ID)
				ids[e.ID] = true
			}
		})
	}
}

func TestRenderModelTreeIsLazy(t *testing.T) {
	models := []scene.Model{modelWithRoot("a", buildTree(3, 2))}

	rec := guitest.New()
	RenderModelTree(rec, models)
	assert.Zero(t, visits(rec))
	assert.Equal(t, 1, len(rec.Find(guitest.KindTreeNode)))

	// Open the model and its root: only the root is walked; its two
	// children are drawn as collapsed headers.
	rec.NewFrame()
	rec.Open["0"] = true
	rec.Open["0/root"] = true
	RenderModelTree(rec, models)
	assert.Equal(t, 1, visits(rec))
	assert.True(t, rec.Has(guitest.KindTreeNode, "0.0 node"))
	assert.True(t, rec.Has(guitest.KindTreeNode, "0.1 node"))
	assert.False(t, rec.Has(guitest.KindTreeNode, "0.0.0 node"))

	// Expanding the second child does not expand its sibling.
	rec.NewFrame()
	rec.Open["0/root/1"] = true
	RenderModelTree(rec, models)
	assert.Equal(t, 2, visits(rec))
	assert.True(t, rec.Has(guitest.KindTreeNode, "0.1.0 node"))
	assert.False(t, rec.Has(guitest.KindTreeNode, "0.0.0 node"))
}

func TestRenderNodeIsIdempotent(t *testing.T) {
	root := buildTree(3, 3)
	root.Meshes = []scene.MeshRef{{Mesh: 0, Instance: 1}}
	root.Metadata = []scene.Metadata{{Key: "k", Value: "v"}}

	rec := guitest.New()
	rec.Open["0"] = true
	rec.Open["2"] = true
	rec.Open["2/1"] = true
	rec.Open["mesh0"] = true

	RenderNode(rec, &root, "0")
	first := append([]guitest.Event(nil), rec.Events...)

	rec.NewFrame()
	RenderNode(rec, &root, "0")
	assert.Equal(t, first, rec.Events)
}

func TestRenderNodeTransformRowMajor(t *testing.T) {
	node := scene.Node{Name: "moved", Transform: mgl32.Translate3D(1, 2, 3)}

	rec := guitest.New()
	RenderNode(rec, &node, "0")

	require.GreaterOrEqual(t, len(rec.Texts()), 5)
	assert.Equal(t, []string{
		transformHeader,
		"1.000 0.000 0.000 1.000",
		"0.000 1.000 0.000 2.000",
		"0.000 0.000 1.000 3.000",
		"0.000 0.000 0.000 1.000",
	}, rec.Texts()[:5])
}

func TestRenderNodeMeshRefs(t *testing.T) {
	node := scene.Node{
		Transform: mgl32.Ident4(),
		Meshes:    []scene.MeshRef{{Mesh: 2, Instance: 0}, {Mesh: 2, Instance: 1}},
	}

	rec := guitest.New()
	rec.Open["mesh1"] = true
	RenderNode(rec, &node, "0")

	assert.True(t, rec.Has(guitest.KindTreeNode, "Instance 0 of mesh 2"))
	assert.True(t, rec.Has(guitest.KindTreeNode, "Instance 1 of mesh 2"))
	assert.Contains(t, rec.Texts(), "Instance: 1")
	assert.NotContains(t, rec.Texts(), "Instance: 0")
	assert.True(t, rec.Balanced())
}

func TestRenderMaterialSkipsEmptySlots(t *testing.T) {
	rec := guitest.New()
	rec.OpenAll = true

	var mat scene.Material
	RenderMaterial(rec, &mat)

	assert.Empty(t, rec.Find(guitest.KindTreeNode))
	assert.Empty(t, rec.Texts())
}

func TestRenderMaterialSlotsInOrder(t *testing.T) {
	var mat scene.Material
	mat.Textures[scene.TextureNormals] = []scene.Texture{{Path: "n.png", ID: 7}}
	mat.Textures[scene.TextureDiffuse] = []scene.Texture{{Path: "d0.png"}, {Path: "d1.png"}}
	mat.MeshIndices = []int{0, 3}

	rec := guitest.New()
	rec.OpenAll = true
	RenderMaterial(rec, &mat)

	var headers []string
	for _, e := range rec.Find(guitest.KindTreeNode) {
		headers = append(headers, e.Label)
	}
	assert.Equal(t, []string{"Diffuse (2)", "Normals (1)", "Used by meshes (2)"}, headers)
	assert.Contains(t, rec.Texts(), "0: n.png (id 7)")
	assert.Contains(t, rec.Texts(), "Mesh 3")
}

// Every optional substructure can be absent independently.
func TestRenderModelTreeOptionalSections(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		hasMaterials := mask&1 != 0
		hasMeshes := mask&2 != 0
		hasChildren := mask&4 != 0
		hasMetadata := mask&8 != 0
		hasBones := mask&16 != 0

		t.Run(fmt.Sprintf("mask%02d", mask), func(t *testing.T) {
			m := scene.NewModel("m")
			if hasMaterials {
				m.Materials = []scene.Material{{Name: "empty"}}
			}
			if hasMeshes {
				mesh := scene.Mesh{ID: "mesh-0", Instances: []mgl32.Mat4{mgl32.Ident4()}}
				if hasBones {
					mesh.Bones = []scene.Bone{{Name: "spine", Offset: mgl32.Ident4()}}
				}
				m.Meshes = []scene.Mesh{mesh}
				m.Root.Meshes = []scene.MeshRef{{Mesh: 0}}
			}
			if hasChildren {
				m.Root.Children = []scene.Node{{Name: "child", Transform: mgl32.Ident4()}}
			}
			if hasMetadata {
				m.Root.Metadata = []scene.Metadata{{Key: "author", Value: "test"}}
			}

			rec := guitest.New()
			rec.OpenAll = true
			RenderModelTree(rec, []scene.Model{*m})

			assert.True(t, rec.Balanced())
			assert.Equal(t, hasMaterials, rec.Has(guitest.KindTreeNode, "Materials (1)"))
			assert.Equal(t, hasMeshes, rec.Has(guitest.KindTreeNode, "Meshes (1)"))
			assert.Equal(t, hasMeshes && hasBones, rec.Has(guitest.KindTreeNode, "Bones (1)"))
			assert.Equal(t, hasMetadata, rec.Has(guitest.KindTreeNode, "Metadata (1)"))
			assert.True(t, rec.Has(guitest.KindTreeNode, "RootNode"))
			assert.Equal(t, m.NodeCount(), visits(rec))
		})
	}
}

func TestRenderModelTreeEmpty(t *testing.T) {
	rec := guitest.New()
	RenderModelTree(rec, nil)
	assert.Equal(t, []string{"No models loaded"}, rec.Texts())
}

func TestShowModelInspectorCloseBox(t *testing.T) {
	rec := guitest.New()
	open := true
	rec.CloseWindow(titleModels)

	ShowModelInspector(rec, &open, []scene.Model{modelWithRoot("a", buildTree(1, 1))})

	assert.False(t, open)
	assert.True(t, rec.Balanced())
	// Tree IDs are scoped by the window.
	assert.Equal(t, titleModels+"/0", rec.Find(guitest.KindTreeNode)[0].ID)
}

// Labels from scene files reach the view unchanged, format verbs included.
func TestRenderModelTreeKeepsPercentVerbatim(t *testing.T) {
	m := scene.NewModel("100%s")
	m.Path = "scenes/%n.yaml"
	m.Root.Metadata = []scene.Metadata{{Key: "note", Value: "50%d off"}}
	m.Root.Children = []scene.Node{{Name: "%x%x", Transform: mgl32.Ident4()}}

	rec := guitest.New()
	rec.OpenAll = true
	RenderModelTree(rec, []scene.Model{*m})

	assert.True(t, rec.Has(guitest.KindTreeNode, "Model 0: 100%s"))
	assert.True(t, rec.Has(guitest.KindTreeNode, "0.0 %x%x"))
	assert.Contains(t, rec.Texts(), "Path: scenes/%n.yaml")
	assert.Contains(t, rec.Texts(), "note: 50%d off")
}
