package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festivalhub/festivalhub-api/internal/api/middleware"
	"github.com/festivalhub/festivalhub-api/internal/domain"
	"github.com/festivalhub/festivalhub-api/internal/service"
)

// sessionFor mimics the auth middleware by stashing the user's claims in
// the request context. A nil user leaves the context empty, like an
// unauthenticated request that slipped past the middleware.
func sessionFor(user *domain.User) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user != nil {
			ctx.Set(middleware.ContextKeyUserID, user.ID)
			ctx.Set(middleware.ContextKeyRole, user.Role)
			ctx.Set(middleware.ContextKeyUniversity, user.University)
		}
		ctx.Next()
	}
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

type fakeAdminFestivalService struct {
	listForAdminFunc        func(ctx context.Context, user domain.User, universityFilter string) ([]domain.Festival, error)
	createFestivalFunc      func(ctx context.Context, user domain.User, festival domain.Festival) (domain.Festival, error)
	getFestivalForAdminFunc func(ctx context.Context, user domain.User, id uint) (domain.Festival, error)
	updateFestivalFunc      func(ctx context.Context, user domain.User, id uint, update domain.FestivalUpdate) (domain.Festival, error)
	deleteFestivalFunc      func(ctx context.Context, user domain.User, id uint) error
}

func (f *fakeAdminFestivalService) ListForAdmin(ctx context.Context, user domain.User, universityFilter string) ([]domain.Festival, error) {
	return f.listForAdminFunc(ctx, user, universityFilter)
}

func (f *fakeAdminFestivalService) CreateFestival(ctx context.Context, user domain.User, festival domain.Festival) (domain.Festival, error) {
	return f.createFestivalFunc(ctx, user, festival)
}

func (f *fakeAdminFestivalService) GetFestivalForAdmin(ctx context.Context, user domain.User, id uint) (domain.Festival, error) {
	return f.getFestivalForAdminFunc(ctx, user, id)
}

func (f *fakeAdminFestivalService) UpdateFestival(ctx context.Context, user domain.User, id uint, update domain.FestivalUpdate) (domain.Festival, error) {
	return f.updateFestivalFunc(ctx, user, id, update)
}

func (f *fakeAdminFestivalService) DeleteFestival(ctx context.Context, user domain.User, id uint) error {
	return f.deleteFestivalFunc(ctx, user, id)
}

func newAdminRouter(svc AdminFestivalService, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAdminFestivalHandler(svc)

	router := gin.New()
	admin := router.Group("/admin", sessionFor(user))
	admin.GET("/festivals", handler.HandleListFestivals)
	admin.POST("/festivals", handler.HandleCreateFestival)
	admin.GET("/festivals/:festivalID", handler.HandleGetFestival)
	admin.PUT("/festivals/:festivalID", handler.HandleUpdateFestival)
	admin.DELETE("/festivals/:festivalID", handler.HandleDeleteFestival)

	return router
}

var testAdmin = domain.User{ID: 10, Role: domain.RoleUniversityAdmin, University: "건국대학교"}

func TestAdminFestivalHandler_HandleListFestivals(t *testing.T) {
	t.Run("no session yields 401", func(t *testing.T) {
		router := newAdminRouter(&fakeAdminFestivalService{}, nil)

		recorder := performRequest(router, http.MethodGet, "/admin/festivals", nil)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "로그인이 필요합니다.", body["error"])
	})

	t.Run("plain user yields 403", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			listForAdminFunc: func(ctx context.Context, user domain.User, universityFilter string) ([]domain.Festival, error) {
				return nil, service.ErrAdminRequired
			},
		}
		user := domain.User{ID: 1, Role: domain.RoleUser}
		router := newAdminRouter(svc, &user)

		recorder := performRequest(router, http.MethodGet, "/admin/festivals", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("lists the admin's festivals", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			listForAdminFunc: func(ctx context.Context, user domain.User, universityFilter string) ([]domain.Festival, error) {
				assert.Equal(t, testAdmin.University, user.University)
				return []domain.Festival{{ID: 1, Name: "녹색지대", University: "건국대학교"}}, nil
			},
		}
		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodGet, "/admin/festivals", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, true, body["success"])
	})
}

func TestAdminFestivalHandler_HandleCreateFestival(t *testing.T) {
	validPayload := map[string]interface{}{
		"name":       "녹색지대",
		"university": "건국대학교",
		"region":     "서울",
		"start_date": "2026-05-20",
		"end_date":   "2026-05-22",
		"location":   "서울특별시 광진구",
	}

	t.Run("creates and returns 201", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			createFestivalFunc: func(ctx context.Context, user domain.User, festival domain.Festival) (domain.Festival, error) {
				assert.Equal(t, "녹색지대", festival.Name)
				festival.ID = 1
				return festival, nil
			},
		}
		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodPost, "/admin/festivals", validPayload)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("missing required fields yield 400", func(t *testing.T) {
		router := newAdminRouter(&fakeAdminFestivalService{}, &testAdmin)

		recorder := performRequest(router, http.MethodPost, "/admin/festivals", map[string]interface{}{
			"name": "녹색지대",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed date yields 400", func(t *testing.T) {
		payload := map[string]interface{}{}
		for k, v := range validPayload {
			payload[k] = v
		}
		payload["start_date"] = "2026/05/20"

		router := newAdminRouter(&fakeAdminFestivalService{}, &testAdmin)

		recorder := performRequest(router, http.MethodPost, "/admin/festivals", payload)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("end date before start date yields 400 with the date message", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			createFestivalFunc: func(ctx context.Context, user domain.User, festival domain.Festival) (domain.Festival, error) {
				return domain.Festival{}, service.ErrEndBeforeStart
			},
		}
		payload := map[string]interface{}{}
		for k, v := range validPayload {
			payload[k] = v
		}
		payload["end_date"] = "2026-05-19"

		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodPost, "/admin/festivals", payload)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "종료일은 시작일보다 이후여야 합니다.", body["error"])
	})

	t.Run("foreign university yields 403", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			createFestivalFunc: func(ctx context.Context, user domain.User, festival domain.Festival) (domain.Festival, error) {
				return domain.Festival{}, service.ErrCreateDenied
			},
		}
		payload := map[string]interface{}{}
		for k, v := range validPayload {
			payload[k] = v
		}
		payload["university"] = "홍익대학교"

		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodPost, "/admin/festivals", payload)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, "자신의 대학 축제만 등록할 수 있습니다.", body["error"])
	})
}

func TestAdminFestivalHandler_HandleGetFestival(t *testing.T) {
	t.Run("foreign festival yields 403", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			getFestivalForAdminFunc: func(ctx context.Context, user domain.User, id uint) (domain.Festival, error) {
				return domain.Festival{}, service.ErrReadDenied
			},
		}
		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodGet, "/admin/festivals/7", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("unknown festival yields 404", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			getFestivalForAdminFunc: func(ctx context.Context, user domain.User, id uint) (domain.Festival, error) {
				return domain.Festival{}, service.ErrFestivalNotFound
			},
		}
		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodGet, "/admin/festivals/999", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		router := newAdminRouter(&fakeAdminFestivalService{}, &testAdmin)

		recorder := performRequest(router, http.MethodGet, "/admin/festivals/abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAdminFestivalHandler_HandleUpdateFestival(t *testing.T) {
	t.Run("applies only present fields", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			updateFestivalFunc: func(ctx context.Context, user domain.User, id uint, update domain.FestivalUpdate) (domain.Festival, error) {
				require.NotNil(t, update.Name)
				assert.Equal(t, "새 이름", *update.Name)
				assert.Nil(t, update.Region)
				assert.Nil(t, update.StartDate)
				return domain.Festival{ID: id, Name: *update.Name}, nil
			},
		}
		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodPut, "/admin/festivals/7", map[string]interface{}{
			"name": "새 이름",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("university reassignment by university admin yields 403", func(t *testing.T) {
		svc := &fakeAdminFestivalService{
			updateFestivalFunc: func(ctx context.Context, user domain.User, id uint, update domain.FestivalUpdate) (domain.Festival, error) {
				return domain.Festival{}, service.ErrUniversityChangeDenied
			},
		}
		router := newAdminRouter(svc, &testAdmin)

		recorder := performRequest(router, http.MethodPut, "/admin/festivals/7", map[string]interface{}{
			"university": "홍익대학교",
		})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestAdminFestivalHandler_HandleDeleteFestival(t *testing.T) {
	svc := &fakeAdminFestivalService{
		deleteFestivalFunc: func(ctx context.Context, user domain.User, id uint) error {
			assert.Equal(t, uint(7), id)
			return nil
		},
	}
	router := newAdminRouter(svc, &testAdmin)

	recorder := performRequest(router, http.MethodDelete, "/admin/festivals/7", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "축제가 삭제되었습니다.", body["message"])
}
