// Package scene describes the in-memory scene data the viewer draws and the
// debug overlay inspects: models, their materials, meshes and node trees.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// MeshRef places one instance of a model mesh under a node.
type MeshRef struct {
	Mesh     int // index into Model.Meshes
	Instance int // index into Mesh.Instances
}

// Metadata is a free-form key/value pair attached to a node by the importer.
type Metadata struct {
	Key   string
	Value string
}

// Node is one transform node of a model's scene graph.
// Children are stored by value; the graph is a tree.
type Node struct {
	Name      string
	Transform mgl32.Mat4
	Meshes    []MeshRef
	Children  []Node
	Metadata  []Metadata
}

// Bone is a skinning bone bound to a mesh.
type Bone struct {
	Name    string
	Offset  mgl32.Mat4
	Weights int
}

// Mesh is a renderable mesh, placed zero or more times in the scene.
type Mesh struct {
	ID            string
	Name          string
	VertexCount   int
	FaceCount     int
	MaterialIndex int
	Instances     []mgl32.Mat4
	Bones         []Bone
}

// Texture references an image bound to a material slot.
type Texture struct {
	Path string
	ID   uint32 // GL texture name, 0 if not uploaded
}

// Material groups textures per slot kind and lists the meshes using it.
type Material struct {
	Name        string
	Textures    [TextureKindCount][]Texture
	MeshIndices []int
}

// TextureCount returns the number of textures across all slots.
func (m *Material) TextureCount() int {
	n := 0
	for _, slot := range m.Textures {
		n += len(slot)
	}
	return n
}

// Model is a loaded asset: materials, meshes and the root of its node tree.
type Model struct {
	ID        uuid.UUID
	Name      string
	Path      string
	Materials []Material
	Meshes    []Mesh
	Root      Node
}

// NewModel creates an empty model with a fresh identifier and an identity root.
func NewModel(name string) *Model {
	return &Model{
		ID:   uuid.New(),
		Name: name,
		Root: Node{Name: "RootNode", Transform: mgl32.Ident4()},
	}
}

// CountNodes returns the number of nodes in the tree rooted at n, n included.
func CountNodes(n *Node) int {
	count := 1
	for i := range n.Children {
		count += CountNodes(&n.Children[i])
	}
	return count
}

// NodeCount returns the number of nodes in the model's scene graph.
func (m *Model) NodeCount() int {
	return CountNodes(&m.Root)
}
