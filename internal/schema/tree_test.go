package schema

import (
	"testing"

	"github.com/rdapconformance/rdapcv/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRootID = "http://rdapcv.example/root.json"

func buildTestTree(t *testing.T) *Tree {
	t.Helper()

	data := map[string]interface{}{
		"$id":  testRootID,
		"type": "object",
		"properties": map[string]interface{}{
			"handle": map[string]interface{}{
				"type":      "string",
				"errorCode": -12345,
			},
			"entities": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"$ref": "#/definitions/entity",
				},
			},
		},
		"definitions": map[string]interface{}{
			"entity": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": map[string]interface{}{
						"type": "string",
					},
				},
				"errorCode": -200,
			},
		},
	}

	c := validator.NewSanthoshCompiler()
	require.NoError(t, c.AddSchema(testRootID, data))
	v, err := c.Compile(testRootID)
	require.NoError(t, err)

	tree, err := New(testRootID, v, map[string]map[string]any{testRootID: data})
	require.NoError(t, err)
	return tree
}

func TestNew_BuildsObjectRoot(t *testing.T) {
	t.Parallel()
	tree := buildTestTree(t)
	_, ok := tree.Root.(*ObjectNode)
	assert.True(t, ok)
}

func TestFindChild_ResolvesProperty(t *testing.T) {
	t.Parallel()
	tree := buildTestTree(t)

	child, ok := FindChild(tree.Root, "handle")
	require.True(t, ok)
	assert.Equal(t, -12345, child.Annotations()["errorCode"])
}

func TestSearchBottomMostErrorCode(t *testing.T) {
	t.Parallel()
	tree := buildTestTree(t)

	code, err := tree.SearchBottomMostErrorCode("#/handle", "errorCode")
	require.NoError(t, err)
	assert.Equal(t, -12345, code)
}

func TestSearchBottomMostErrorCode_NotFound(t *testing.T) {
	t.Parallel()
	tree := buildTestTree(t)

	_, err := tree.SearchBottomMostErrorCode("#/entities", "errorCode")
	assert.Error(t, err)
}

func TestFindAssociatedSchema_ThroughArrayAndRef(t *testing.T) {
	t.Parallel()
	tree := buildTestTree(t)

	node, ok := tree.FindAssociatedSchema("#/entities/0/handle")
	require.True(t, ok)
	assert.Equal(t, KindSimple, node.Kind())
}

func TestSearchBottomMostErrorCode_ThroughArrayAndRef(t *testing.T) {
	t.Parallel()
	tree := buildTestTree(t)

	code, err := tree.SearchBottomMostErrorCode("#/entities/0/handle", "errorCode")
	require.NoError(t, err)
	assert.Equal(t, -200, code)
}
