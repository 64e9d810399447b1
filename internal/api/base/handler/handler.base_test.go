// Package basehdl - Test transform DTO sang model và build map partial update.
package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sampleInput struct {
	Name     string  `json:"name"`
	OwnerID  string  `json:"ownerId"`
	Price    float64 `json:"price,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
}

type sampleModel struct {
	Name     string             `json:"name" bson:"name"`
	OwnerID  primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	Price    float64            `json:"price" bson:"price"`
	Quantity int                `json:"quantity" bson:"quantity"`
	Status   string             `json:"status" bson:"status"`
}

func TestTransformViaJSON_DecodesObjectIDHex(t *testing.T) {
	ownerID := primitive.NewObjectID()
	input := sampleInput{
		Name:    "Deep Sea Hoodie",
		OwnerID: ownerID.Hex(),
		Price:   3200,
	}

	model, err := transformViaJSON[sampleModel](input)
	require.NoError(t, err)
	assert.Equal(t, "Deep Sea Hoodie", model.Name)
	assert.Equal(t, ownerID, model.OwnerID, "chuỗi hex 24 ký tự phải decode thành ObjectID")
	assert.Equal(t, float64(3200), model.Price)
	assert.Empty(t, model.Status, "field không có trong DTO giữ zero value")
}

func TestTransformViaJSON_InvalidObjectIDHex(t *testing.T) {
	input := sampleInput{Name: "x", OwnerID: "zzz"}
	_, err := transformViaJSON[sampleModel](input)
	assert.Error(t, err, "hex ObjectID sai phải trả lỗi unmarshal")
}

func TestModelToSetMap_DropsZeroFields(t *testing.T) {
	model := sampleModel{
		Name:  "Cap",
		Price: 1500,
		// Quantity và Status để zero
	}

	setMap, err := ModelToSetMap(model)
	require.NoError(t, err)

	assert.Equal(t, "Cap", setMap["name"])
	assert.NotContains(t, setMap, "quantity", "field zero không được vào $set")
	assert.NotContains(t, setMap, "status", "field zero không được vào $set")
	assert.NotContains(t, setMap, "ownerId", "ObjectID zero không được vào $set")
	if price, ok := setMap["price"]; assert.True(t, ok) {
		assert.EqualValues(t, 1500, price)
	}
}
