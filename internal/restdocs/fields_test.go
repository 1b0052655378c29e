package restdocs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseOp(body string) *Operation {
	return &Operation{
		Request:  Get("/api/v2/beer/{beerId}", "1"),
		Response: Response{Status: http.StatusOK, Header: http.Header{}, Body: []byte(body)},
	}
}

func TestResponseFields(t *testing.T) {
	op := responseOp(`{"id":"abc","beerName":"Beer1","beerStyle":"ALE","upc":123456789012}`)

	t.Run("all documented", func(t *testing.T) {
		out, err := ResponseFields(
			FieldWithPath("id").Description("Beers ID"),
			FieldWithPath("beerName").Description("Beers name"),
			FieldWithPath("beerStyle").Description("Beers style"),
			FieldWithPath("upc").Description("Beers UPC"),
		).Render(op)

		require.NoError(t, err)
		s := string(out)
		assert.Contains(t, s, "|Path|Type|Description\n")
		assert.Contains(t, s, "|`+upc+`\n|`+Number+`\n|Beers UPC\n")
		assert.Contains(t, s, "|`+beerName+`\n|`+String+`\n")
	})

	t.Run("undocumented field", func(t *testing.T) {
		_, err := ResponseFields(
			FieldWithPath("id"),
			FieldWithPath("beerName"),
			FieldWithPath("beerStyle"),
		).Render(op)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not documented: upc")
	})

	t.Run("missing documented field", func(t *testing.T) {
		_, err := ResponseFields(
			FieldWithPath("id"),
			FieldWithPath("beerName"),
			FieldWithPath("beerStyle"),
			FieldWithPath("upc"),
			FieldWithPath("createdDate"),
		).Render(op)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found in the payload: createdDate")
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := ResponseFields(
			FieldWithPath("id"),
			FieldWithPath("beerName"),
			FieldWithPath("beerStyle"),
			FieldWithPath("upc").OfType(TypeString),
		).Render(op)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "upc (documented String, actual Number)")
	})
}

func TestRequestFields_OptionalAndAttributes(t *testing.T) {
	op := &Operation{Request: Post("/api/v2/beer/", []byte(`{"beerName":"Beer1","upc":1}`))}

	t.Run("absent optional needs a type", func(t *testing.T) {
		_, err := RequestFields(
			FieldWithPath("id").Optional(),
			FieldWithPath("beerName"),
			FieldWithPath("upc"),
		).Render(op)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OfType: id")
	})

	t.Run("constraints column", func(t *testing.T) {
		out, err := RequestFields(
			FieldWithPath("id").Optional().OfType(TypeString).Attributes(Key("constraints").Value("Must be null")),
			FieldWithPath("beerName").Attributes(Key("constraints").Value("Must not be blank")),
			FieldWithPath("upc"),
		).Render(op)

		require.NoError(t, err)
		s := string(out)
		assert.Contains(t, s, "|Path|Type|Description|Constraints\n")
		assert.Contains(t, s, "|`+id+`\n|`+String+`\n|\n|Must be null\n")
		assert.Contains(t, s, "|`+upc+`\n|`+Number+`\n|\n|\n")
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := RequestFields(FieldWithPath("id")).Render(&Operation{Request: Get("/x")})
		assert.ErrorContains(t, err, "empty payload")
	})
}

func TestFields_NestedAndSubsection(t *testing.T) {
	op := responseOp(`{"beers":[{"beerName":"a","upc":1},{"beerName":"b","upc":2}],"page":{"size":2,"links":{"next":null}}}`)

	_, err := ResponseFields(
		FieldWithPath("beers[].beerName"),
		FieldWithPath("beers[].upc"),
		SubsectionWithPath("page"),
	).Render(op)
	assert.NoError(t, err)

	_, err = ResponseFields(
		FieldWithPath("beers[].beerName"),
		SubsectionWithPath("page"),
	).Render(op)
	assert.ErrorContains(t, err, "beers[].upc")
}

func TestCollectLeaves(t *testing.T) {
	var leaves []string
	collectLeaves("", map[string]any{
		"a":     "x",
		"tags":  []any{"ipa", "hazy"},
		"empty": map[string]any{},
		"n":     nil,
	}, &leaves)

	assert.ElementsMatch(t, []string{"a", "tags", "empty", "n"}, leaves)
}

func TestTypeOfValues(t *testing.T) {
	assert.Equal(t, TypeNumber, typeOfValues([]any{int64(1), 2.5}, false))
	assert.Equal(t, TypeVaries, typeOfValues([]any{"a", int64(1)}, false))
	assert.Equal(t, TypeString, typeOfValues([]any{nil, "a"}, true))
	assert.Equal(t, TypeNull, typeOfValues([]any{nil}, false))
}
