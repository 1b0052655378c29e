package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brewery/internal/http/middleware"
	"brewery/internal/model"
	"brewery/internal/restdocs"
	"brewery/internal/service"
	serviceMocks "brewery/internal/service/mocks"
	"brewery/internal/validation"
)

const beerTemplate = BeerPath + "/{beerId}"

func validBeer() *model.Beer {
	id := uuid.New()
	return &model.Beer{
		ID:        &id,
		BeerName:  "Beer1",
		BeerStyle: model.BeerStyleAle,
		UPC:       123456789012,
	}
}

// documenter writes snippets to SNIPPETS_DIR when set so a test run can feed
// the published API guide.
func documenter(t *testing.T) *restdocs.Documenter {
	dir := os.Getenv("SNIPPETS_DIR")
	if dir == "" {
		dir = t.TempDir()
	}
	return restdocs.New(restdocs.NewDirStore(dir), restdocs.WithPrettyPrint())
}

func newBeerApp(svc service.BeerService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, nil, svc, validation.New())
	return app
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetBeer(t *testing.T) {
	mockSvc := new(serviceMocks.MockBeerService)
	app := newBeerApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		beer := validBeer()
		mockSvc.On("GetBeerByID", mock.Anything, *beer.ID).Return(beer, nil).Once()

		req := restdocs.Get(beerTemplate, beer.ID).Accept(fiber.MIMEApplicationJSON)
		resp, err := app.Test(req.HTTP())
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))

		err = documenter(t).Document(t.Context(), "v2/beers-get", req, resp,
			restdocs.PathParameters(
				restdocs.ParameterWithName("beerId").Description("ID of desired beer to get."),
			),
			restdocs.ResponseFields(
				restdocs.FieldWithPath("id").Description("Beers ID"),
				restdocs.FieldWithPath("beerName").Description("Beers name"),
				restdocs.FieldWithPath("beerStyle").Description("Beers style"),
				restdocs.FieldWithPath("upc").Description("Beers UPC"),
			),
		)
		require.NoError(t, err)

		var got model.Beer
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, beer.ID.String(), got.ID.String())
		assert.Equal(t, "Beer1", got.BeerName)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, BeerPath+"/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("nil id", func(t *testing.T) {
		mockSvc.On("GetBeerByID", mock.Anything, uuid.Nil).Return(nil, service.ErrIDRequired).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, BeerPath+"/"+uuid.Nil.String(), nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("GetBeerByID", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, BeerPath+"/"+id.String(), nil)
		req.Header.Set(middleware.RequestIDHeader, "req-404")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		assert.Equal(t, "req-404", res.RequestID)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("GetBeerByID", mock.Anything, id).Return(nil, errors.New("connection reset")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, BeerPath+"/"+id.String(), nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.NotContains(t, res.Error.Message, "connection reset")
	})
}

func TestSaveNewBeer(t *testing.T) {
	mockSvc := new(serviceMocks.MockBeerService)
	app := newBeerApp(mockSvc)

	t.Run("created", func(t *testing.T) {
		beer := validBeer()
		beer.ID = nil
		body, err := json.Marshal(beer)
		require.NoError(t, err)

		savedID := uuid.New()
		mockSvc.On("SaveNewBeer", mock.Anything, *beer).
			Return(&model.Beer{ID: &savedID, BeerName: "New Beer"}, nil).Once()

		req := restdocs.Post(BeerPath+"/", body).ContentType(fiber.MIMEApplicationJSON)
		resp, err := app.Test(req.HTTP())
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, BeerPath+"/"+savedID.String(), resp.Header.Get(fiber.HeaderLocation))

		fields := restdocs.NewConstrainedFields(model.Beer{})
		err = documenter(t).Document(t.Context(), "v2/beers-new", req, resp,
			restdocs.RequestFields(
				fields.WithPath("id").Optional().OfType(restdocs.TypeString).Description("Beer ID"),
				fields.WithPath("beerName").Description("Beers name"),
				fields.WithPath("beerStyle").Description("Beers style"),
				fields.WithPath("upc").Description("Beers UPC"),
			),
		)
		require.NoError(t, err)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, BeerPath+"/", strings.NewReader(`{"beerName":`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("validation failed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, BeerPath+"/", strings.NewReader(`{"beerName":"ab","beerStyle":"BOCK","upc":0}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)

		var names []string
		for _, f := range res.Error.Fields {
			names = append(names, f.Field)
			assert.NotEmpty(t, f.Message)
		}
		assert.ElementsMatch(t, []string{"beerName", "beerStyle", "upc"}, names)
	})

	t.Run("whitespace name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, BeerPath+"/", strings.NewReader(`{"beerName":"     ","beerStyle":"ALE","upc":1}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		require.Len(t, res.Error.Fields, 1)
		assert.Equal(t, "beerName", res.Error.Fields[0].Field)
		assert.Equal(t, "Must not be blank", res.Error.Fields[0].Message)
	})

	t.Run("id not allowed", func(t *testing.T) {
		body, _ := json.Marshal(validBeer())
		req := httptest.NewRequest(http.MethodPost, BeerPath+"/", strings.NewReader(string(body)))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		require.Len(t, res.Error.Fields, 1)
		assert.Equal(t, "id", res.Error.Fields[0].Field)
		assert.Equal(t, "Must be null", res.Error.Fields[0].Message)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("SaveNewBeer", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed")).Once()

		req := httptest.NewRequest(http.MethodPost, BeerPath+"/", strings.NewReader(`{"beerName":"Beer1","beerStyle":"ALE","upc":1}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateBeer(t *testing.T) {
	mockSvc := new(serviceMocks.MockBeerService)
	app := newBeerApp(mockSvc)

	beer := validBeer()
	beer.ID = nil
	body, err := json.Marshal(beer)
	require.NoError(t, err)

	t.Run("no content", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("UpdateBeer", mock.Anything, id, *beer).Return(nil).Once()

		req := restdocs.Put(beerTemplate, body, id).ContentType(fiber.MIMEApplicationJSON)
		resp, err := app.Test(req.HTTP())
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		fields := restdocs.NewConstrainedFields(model.Beer{})
		err = documenter(t).Document(t.Context(), "v2/beers-update", req, resp,
			restdocs.PathParameters(
				restdocs.ParameterWithName("beerId").Description("ID of desired beer to update."),
			),
			restdocs.RequestFields(
				fields.WithPath("id").Optional().OfType(restdocs.TypeString).Description("Beer ID"),
				fields.WithPath("beerName").Description("Beers name"),
				fields.WithPath("beerStyle").Description("Beers style"),
				fields.WithPath("upc").Description("Beers UPC"),
			),
		)
		require.NoError(t, err)
		mockSvc.AssertCalled(t, "UpdateBeer", mock.Anything, id, *beer)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("UpdateBeer", mock.Anything, id, *beer).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(restdocs.Put(beerTemplate, body, id).ContentType(fiber.MIMEApplicationJSON).HTTP())

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(restdocs.Put(beerTemplate, body, "42").HTTP())

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("whitespace name", func(t *testing.T) {
		blank := []byte(`{"beerName":"   ","beerStyle":"ALE","upc":1}`)
		resp, _ := app.Test(restdocs.Put(beerTemplate, blank, uuid.New()).ContentType(fiber.MIMEApplicationJSON).HTTP())

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, resp).Error.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		resp, _ := app.Test(restdocs.Put(beerTemplate, nil, uuid.New()).HTTP())

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestDeleteBeer(t *testing.T) {
	mockSvc := new(serviceMocks.MockBeerService)
	app := newBeerApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("DeleteByID", mock.Anything, id).Return(nil).Once()

		resp, _ := app.Test(restdocs.Delete(beerTemplate, id).HTTP())

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New()
		mockSvc.On("DeleteByID", mock.Anything, id).Return(errors.New("delete error")).Once()

		resp, _ := app.Test(restdocs.Delete(beerTemplate, id).HTTP())

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := newBeerApp(new(serviceMocks.MockBeerService))

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("openapi document", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
