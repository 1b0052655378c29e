package restdocs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathParameters(t *testing.T) {
	op := &Operation{Request: Get("/api/v2/beer/{beerId}", "42")}

	t.Run("documented", func(t *testing.T) {
		out, err := PathParameters(
			ParameterWithName("beerId").Description("ID of desired beer to get."),
		).Render(op)

		require.NoError(t, err)
		assert.Equal(t, "./api/v2/beer/{beerId}\n|===\n|Parameter|Description\n\n|`+beerId+`\n|ID of desired beer to get.\n\n|===\n", string(out))
	})

	t.Run("undocumented", func(t *testing.T) {
		_, err := PathParameters().Render(op)
		assert.ErrorContains(t, err, "not documented: beerId")
	})

	t.Run("not in template", func(t *testing.T) {
		_, err := PathParameters(
			ParameterWithName("beerId"),
			ParameterWithName("breweryId"),
		).Render(op)
		assert.ErrorContains(t, err, "not found in the request: breweryId")
	})

	t.Run("optional absent", func(t *testing.T) {
		_, err := PathParameters(
			ParameterWithName("beerId"),
			ParameterWithName("breweryId").Optional(),
		).Render(op)
		assert.NoError(t, err)
	})
}
