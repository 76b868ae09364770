package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/categorias-api/internal/application/dto"
)

func TestUpdateCategoryRequest_Description(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantSet bool
		want    *string
	}{
		{"ausente", `{"name":"x"}`, false, nil},
		{"null", `{"description":null}`, true, nil},
		{"valor", `{"description":"d"}`, true, strPtr("d")},
		{"vacío", `{"description":""}`, true, strPtr("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var in dto.UpdateCategoryRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))
			assert.Equal(t, tc.wantSet, in.Description.Set)
			assert.Equal(t, tc.want, in.Description.Value)
		})
	}
}

func TestNullableString_TipoInvalido(t *testing.T) {
	var in dto.UpdateCategoryRequest
	assert.Error(t, json.Unmarshal([]byte(`{"description":12}`), &in))
}

func TestPaginationOutput_Collection(t *testing.T) {
	out := dto.CategoryListResponse{Total: 0, CurrentPage: 1, PerPage: 15}
	body, err := json.Marshal(out.Collection())
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"meta":{"current_page":1,"per_page":15,"last_page":0,"total":0}}`, string(body))
}

func strPtr(s string) *string { return &s }
