package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkden/linkden/internal/domain"
)

func TestNewCollectionTrimsName(t *testing.T) {
	collection, err := domain.NewCollection(7, "  reading list  ", "articles", "#ff8800", nil)
	require.NoError(t, err)

	assert.Equal(t, "reading list", collection.Name)
	assert.Equal(t, "articles", collection.Description)
	assert.Equal(t, "#ff8800", collection.Color)
	assert.Equal(t, int64(7), collection.OwnerID)
	assert.Nil(t, collection.ParentID)
	assert.False(t, collection.CreatedAt.IsZero())
}

func TestNewCollectionKeepsParent(t *testing.T) {
	parentID := int64(3)
	collection, err := domain.NewCollection(7, "long reads", "", "", &parentID)
	require.NoError(t, err)

	require.NotNil(t, collection.ParentID)
	assert.Equal(t, int64(3), *collection.ParentID)
}

func TestNewCollectionRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := domain.NewCollection(7, name, "", "", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyCollectionName, "name %q", name)
	}
}

func TestCollectionValidateRequiresOwner(t *testing.T) {
	collection := domain.Collection{Name: "reading"}
	assert.ErrorIs(t, collection.Validate(), domain.ErrMissingOwner)
}
