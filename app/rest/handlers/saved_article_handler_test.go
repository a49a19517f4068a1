package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-reader/app/domain"
	mock_port "news-reader/app/mocks"
	apperrors "news-reader/app/utils/errors"
)

func TestSavedArticleHandler_SaveArticle(t *testing.T) {
	validForm := url.Values{
		"title":    {"Go 1.24 released"},
		"url":      {"https://go.dev/blog/go1.24"},
		"category": {"technology"},
	}

	tests := []struct {
		name     string
		form     url.Values
		setup    func(m *mock_port.MockSavedArticleUsecase)
		wantID   string
		wantCode apperrors.ErrorCode
	}{
		{
			name: "saved",
			form: validForm,
			setup: func(m *mock_port.MockSavedArticleUsecase) {
				m.EXPECT().Save(gomock.Any(), domain.SaveArticleRequest{
					Title:    "Go 1.24 released",
					URL:      "https://go.dev/blog/go1.24",
					Category: "technology",
				}).Return("65f0c0ffee0000000000abcd", nil)
			},
			wantID: "65f0c0ffee0000000000abcd",
		},
		{
			name:     "missing fields",
			form:     url.Values{"title": {"only title"}},
			setup:    func(m *mock_port.MockSavedArticleUsecase) {},
			wantCode: apperrors.ErrCodeValidationFailed,
		},
		{
			name: "whitespace title is accepted",
			form: url.Values{"title": {"  "}, "url": {"http://x"}, "category": {"tech"}},
			setup: func(m *mock_port.MockSavedArticleUsecase) {
				m.EXPECT().Save(gomock.Any(), domain.SaveArticleRequest{
					Title:    "  ",
					URL:      "http://x",
					Category: "tech",
				}).Return("65f0c0ffee0000000000abce", nil)
			},
			wantID: "65f0c0ffee0000000000abce",
		},
		{
			name:     "empty title",
			form:     url.Values{"title": {""}, "url": {"http://x"}, "category": {"tech"}},
			setup:    func(m *mock_port.MockSavedArticleUsecase) {},
			wantCode: apperrors.ErrCodeValidationFailed,
		},
		{
			name: "duplicate",
			form: validForm,
			setup: func(m *mock_port.MockSavedArticleUsecase) {
				m.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return("", apperrors.New(apperrors.ErrCodeConflict, "Article already saved"))
			},
			wantCode: apperrors.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			usecase := mock_port.NewMockSavedArticleUsecase(ctrl)
			tt.setup(usecase)
			handler := NewSavedArticleHandler(usecase, testLogger())

			c, rec := newContext(newTestEcho(), http.MethodPost, "/saved", tt.form)

			err := handler.SaveArticle(c)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, requireAppError(t, err).Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)

			var got SaveArticleResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "Article saved successfully!", got.Message)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSavedArticleHandler_ListSavedArticles(t *testing.T) {
	ctrl := gomock.NewController(t)
	usecase := mock_port.NewMockSavedArticleUsecase(ctrl)
	usecase.EXPECT().List(gomock.Any()).Return(domain.NewSavedArticleList(nil), nil)

	handler := NewSavedArticleHandler(usecase, testLogger())
	c, rec := newContext(newTestEcho(), http.MethodGet, "/saved", nil)

	require.NoError(t, handler.ListSavedArticles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"articles":[]}`, rec.Body.String())
}

func TestSavedArticleHandler_DeleteSavedArticle(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		err      error
		wantCode apperrors.ErrorCode
	}{
		{name: "deleted", id: "65f0c0ffee0000000000abcd"},
		{name: "invalid id", id: "abc", err: apperrors.New(apperrors.ErrCodeInvalidInput, "Invalid article ID"), wantCode: apperrors.ErrCodeInvalidInput},
		{name: "not found", id: "65f0c0ffee0000000000abcd", err: apperrors.NewNotFound("Article"), wantCode: apperrors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			usecase := mock_port.NewMockSavedArticleUsecase(ctrl)
			usecase.EXPECT().Delete(gomock.Any(), tt.id).Return(tt.err)

			handler := NewSavedArticleHandler(usecase, testLogger())
			c, rec := newContext(newTestEcho(), http.MethodDelete, "/saved/"+tt.id, nil)
			c.SetParamNames("article_id")
			c.SetParamValues(tt.id)

			err := handler.DeleteSavedArticle(c)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, requireAppError(t, err).Code)
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, `{"message":"Article deleted successfully!"}`, rec.Body.String())
		})
	}
}

func TestSavedArticleHandler_GetDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	usecase := mock_port.NewMockSavedArticleUsecase(ctrl)
	usecase.EXPECT().Digest(gomock.Any()).Return(&domain.Digest{
		Date:     "2024-03-05",
		Count:    1,
		Articles: []*domain.SavedArticle{{ID: "1", Title: "t", URL: "u", Category: "c", DateSaved: "2024-03-05T09:00:00.000000Z"}},
	}, nil)

	handler := NewSavedArticleHandler(usecase, testLogger())
	c, rec := newContext(newTestEcho(), http.MethodGet, "/digest", nil)

	require.NoError(t, handler.GetDigest(c))

	var got domain.Digest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2024-03-05", got.Date)
	assert.Equal(t, 1, got.Count)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, "1", got.Articles[0].ID)
}

func TestSavedArticleHandler_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	usecase := mock_port.NewMockSavedArticleUsecase(ctrl)
	usecase.EXPECT().List(gomock.Any()).Return(nil, apperrors.NewDatabaseError(assert.AnError))

	handler := NewSavedArticleHandler(usecase, testLogger())
	c, _ := newContext(newTestEcho(), http.MethodGet, "/saved", nil)

	err := handler.ListSavedArticles(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, requireAppError(t, err).StatusCode)
}
