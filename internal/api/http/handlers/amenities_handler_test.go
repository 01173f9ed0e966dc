package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/api/http/handlers"
	"github.com/spec-kit/hotel-booking-service/internal/auth"
	"github.com/spec-kit/hotel-booking-service/internal/domain"
	"github.com/spec-kit/hotel-booking-service/internal/events"
)

type fakeAmenityRepo struct {
	fetchResult  dto.AmenityFetchResult
	amenity      *domain.Amenity
	addResult    dto.AmenityInsertResult
	updateResult dto.AmenityUpdateResult
	deleteResult dto.AmenityDeleteResult
	bulkResult   dto.AmenityBulkResult
	err          error

	lastCreatedBy string
}

func (f *fakeAmenityRepo) Fetch(ctx context.Context, isActive *bool) (dto.AmenityFetchResult, error) {
	return f.fetchResult, f.err
}

func (f *fakeAmenityRepo) FetchByID(ctx context.Context, id int) (*domain.Amenity, error) {
	return f.amenity, f.err
}

func (f *fakeAmenityRepo) Add(ctx context.Context, in dto.AmenityInsertRequest, createdBy string) (dto.AmenityInsertResult, error) {
	f.lastCreatedBy = createdBy
	return f.addResult, f.err
}

func (f *fakeAmenityRepo) Update(ctx context.Context, in dto.AmenityUpdateRequest, modifiedBy string) (dto.AmenityUpdateResult, error) {
	return f.updateResult, f.err
}

func (f *fakeAmenityRepo) Delete(ctx context.Context, id int) (dto.AmenityDeleteResult, error) {
	return f.deleteResult, f.err
}

func (f *fakeAmenityRepo) BulkInsert(ctx context.Context, in []dto.AmenityInsertRequest, createdBy string) (dto.AmenityBulkResult, error) {
	f.lastCreatedBy = createdBy
	return f.bulkResult, f.err
}

func (f *fakeAmenityRepo) BulkUpdate(ctx context.Context, in []dto.AmenityUpdateRequest) (dto.AmenityBulkResult, error) {
	return f.bulkResult, f.err
}

func (f *fakeAmenityRepo) BulkUpdateStatus(ctx context.Context, in []dto.AmenityStatusRequest) (dto.AmenityBulkResult, error) {
	return f.bulkResult, f.err
}

func newAmenityApp(repo *fakeAmenityRepo, tm *auth.TokenManager) *fiber.App {
	app := fiber.New()
	if tm != nil {
		app.Use(auth.Identity(tm))
	}
	h := handlers.NewAmenitiesHandler(repo, events.NewInMemoryDispatcher(), zap.NewNop())
	grp := app.Group("/api/Amenity")
	grp.Get("/Fetch", h.Fetch)
	grp.Get("/Fetch/:id", h.FetchByID)
	grp.Post("/Add", h.Add)
	grp.Put("/Update/:id", h.Update)
	grp.Delete("/Delete/:id", h.Delete)
	grp.Post("/BulkInsert", h.BulkInsert)
	grp.Post("/BulkUpdate", h.BulkUpdate)
	grp.Put("/BulkUpdateStatus", h.BulkUpdateStatus)
	return app
}

func TestAmenitiesFetch_Success(t *testing.T) {
	repo := &fakeAmenityRepo{fetchResult: dto.AmenityFetchResult{
		Amenities: []domain.Amenity{{AmenityID: 1, Name: "WiFi"}},
		IsSuccess: true,
		Message:   "Amenities Fetched Successfully.",
	}}
	app := newAmenityApp(repo, nil)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/Amenity/Fetch", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Sucess)
	assert.Equal(t, "Retrieved all Room Amenity Successfully.", envelope.Message)
}

func TestAmenitiesFetch_BadQueryValue(t *testing.T) {
	app := newAmenityApp(&fakeAmenityRepo{}, nil)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/Amenity/Fetch?isActive=banana", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Data in the Query String", envelope.Message)
}

func TestAmenitiesFetchByID_NotFound(t *testing.T) {
	app := newAmenityApp(&fakeAmenityRepo{}, nil)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/Amenity/Fetch/42", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Amenity ID not found.", envelope.Message)
}

// The X-Actor header identifies the caller for the createdBy audit field;
// without it the write is attributed to System.
func TestAmenitiesAdd_ActorThreadedToRepository(t *testing.T) {
	repo := &fakeAmenityRepo{addResult: dto.AmenityInsertResult{AmenityID: 7, IsCreated: true, Message: "Amenity Created Successfully."}}
	tm := auth.NewTokenManager("test-secret", 60)
	app := newAmenityApp(repo, tm)

	req := newJSONRequest(t, http.MethodPost, "/api/Amenity/Add", `{"Name":"Spa","Description":"Day spa"}`)
	req.Header.Set("X-Actor", "manager@hotel.test")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "manager@hotel.test", repo.lastCreatedBy)
}

func TestAmenitiesAdd_DefaultActorIsSystem(t *testing.T) {
	repo := &fakeAmenityRepo{addResult: dto.AmenityInsertResult{AmenityID: 7, IsCreated: true, Message: "Amenity Created Successfully."}}
	tm := auth.NewTokenManager("test-secret", 60)
	app := newAmenityApp(repo, tm)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/Amenity/Add", `{"Name":"Spa","Description":"Day spa"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, auth.DefaultActor, repo.lastCreatedBy)
}

func TestAmenitiesUpdate_MismatchedID(t *testing.T) {
	app := newAmenityApp(&fakeAmenityRepo{}, nil)

	body := `{"AmenityID":8,"Name":"Spa","Description":"Day spa","IsActive":true}`
	resp, envelope := doJSON(t, app, http.MethodPut, "/api/Amenity/Update/9", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Mismatched Amenity ID.", envelope.Message)
}

func TestAmenitiesDelete_NotFound(t *testing.T) {
	app := newAmenityApp(&fakeAmenityRepo{}, nil)

	resp, envelope := doJSON(t, app, http.MethodDelete, "/api/Amenity/Delete/42", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Amenity not found.", envelope.Message)
}

func TestAmenitiesBulkInsert_RowValidationRejectsWholeBatch(t *testing.T) {
	repo := &fakeAmenityRepo{bulkResult: dto.AmenityBulkResult{IsSuccess: true, Message: "ok"}}
	app := newAmenityApp(repo, nil)

	body := `[{"Name":"WiFi","Description":"Wireless internet"},{"Name":"","Description":"missing name"}]`
	resp, envelope := doJSON(t, app, http.MethodPost, "/api/Amenity/BulkInsert", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Data in the Request Body", envelope.Message)
}

func TestAmenitiesBulkUpdateStatus_Success(t *testing.T) {
	repo := &fakeAmenityRepo{bulkResult: dto.AmenityBulkResult{IsSuccess: true, Message: "2 Amenity Statuses Updated Successfully."}}
	app := newAmenityApp(repo, nil)

	body := `[{"AmenityID":1,"IsActive":false},{"AmenityID":2,"IsActive":true}]`
	resp, envelope := doJSON(t, app, http.MethodPut, "/api/Amenity/BulkUpdateStatus", body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Sucess)
	assert.Equal(t, "2 Amenity Statuses Updated Successfully.", envelope.Message)
}
