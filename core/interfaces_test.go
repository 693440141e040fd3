package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func marshalRecord(t *testing.T, p Product) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	return keys
}

func TestProductListingShape(t *testing.T) {
	price := "$49.00"
	keys := marshalRecord(t, Product{
		Name:     "VB-7400",
		PageLink: "https://www.example.com/attenuators/vb-7400",
		Price:    &price,
		PageType: PageListing,
	})

	require.Contains(t, keys, "price")
	require.JSONEq(t, `"$49.00"`, string(keys["price"]))
	require.NotContains(t, keys, "specifications")
	require.JSONEq(t, `null`, string(keys["description"]))
	require.JSONEq(t, `null`, string(keys["pdf_link"]))
}

func TestProductListingMissingPriceIsNull(t *testing.T) {
	keys := marshalRecord(t, Product{
		Name:     "VB-7400",
		PageType: PageListing,
	})

	require.Contains(t, keys, "price")
	require.JSONEq(t, `null`, string(keys["price"]))
}

func TestProductDetailShape(t *testing.T) {
	keys := marshalRecord(t, Product{
		Name:           "VB-7400",
		Specifications: map[string]string{"Impedance": "50 ohms"},
		PageType:       PageDetail,
	})

	require.Contains(t, keys, "specifications")
	require.JSONEq(t, `{"Impedance": "50 ohms"}`, string(keys["specifications"]))
	require.NotContains(t, keys, "price")
}

func TestProductDetailNoSpecificationsIsNull(t *testing.T) {
	keys := marshalRecord(t, Product{
		Name:     "VB-7400",
		PageType: PageDetail,
	})

	require.Contains(t, keys, "specifications")
	require.JSONEq(t, `null`, string(keys["specifications"]))
}

func TestProductDefaultShapeIsDetail(t *testing.T) {
	keys := marshalRecord(t, Product{Name: "VB-7400"})

	require.Contains(t, keys, "specifications")
	require.NotContains(t, keys, "price")
}
