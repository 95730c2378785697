package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
)

func TestNewspapers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		newspapers := &MockNewspaperService{
			MockList: func(ctx context.Context) ([]domain.Newspaper, error) {
				return []domain.Newspaper{{Slug: "the-hindu", DisplayName: "The Hindu"}}, nil
			},
		}
		srv := newTestRouter(testDeps{newspapers: newspapers})

		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("GET", "/sb-newspapers", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Success bool               `json:"success"`
			Data    []domain.Newspaper `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "the-hindu", body.Data[0].Slug)
	})

	t.Run("create returns 201", func(t *testing.T) {
		newspapers := &MockNewspaperService{
			MockCreate: func(ctx context.Context, slug, displayName string) (domain.Newspaper, error) {
				assert.Equal(t, "new-times", slug)
				assert.Equal(t, "New Times", displayName)
				return domain.Newspaper{Slug: slug, DisplayName: displayName}, nil
			},
		}
		srv := newTestRouter(testDeps{newspapers: newspapers})

		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("POST", "/sb-newspapers", strings.NewReader(`{"slug":"new-times","display_name":"New Times"}`)))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("create duplicate returns 409", func(t *testing.T) {
		newspapers := &MockNewspaperService{
			MockCreate: func(ctx context.Context, slug, displayName string) (domain.Newspaper, error) {
				return domain.Newspaper{}, &apperrors.ErrorWithStatusCode{Message: "Newspaper with this slug already exists", StatusCode: 409}
			},
		}
		srv := newTestRouter(testDeps{newspapers: newspapers})

		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("POST", "/sb-newspapers", strings.NewReader(`{"slug":"the-hindu","display_name":"The Hindu"}`)))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "already exists")
	})

	t.Run("create without display name rejected", func(t *testing.T) {
		srv := newTestRouter(testDeps{})
		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("POST", "/sb-newspapers", strings.NewReader(`{"slug":"x"}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete with files returns 409", func(t *testing.T) {
		newspapers := &MockNewspaperService{
			MockDelete: func(ctx context.Context, slug string) error {
				return &apperrors.ErrorWithStatusCode{Message: "Cannot delete newspaper: it has associated files", StatusCode: 409}
			},
		}
		srv := newTestRouter(testDeps{newspapers: newspapers})

		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("DELETE", "/sb-newspapers", strings.NewReader(`{"slug":"the-hindu"}`)))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("delete success", func(t *testing.T) {
		newspapers := &MockNewspaperService{}
		srv := newTestRouter(testDeps{newspapers: newspapers})

		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest("DELETE", "/sb-newspapers", strings.NewReader(`{"slug":"the-hindu"}`)))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
	})
}
